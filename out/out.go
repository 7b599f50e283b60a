// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements solver output handling for analyses and plotting
package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dsiervo/ICTP-EQ-tutorials/inp"
)

// result keys per output file
var (
	OtKeys   = []string{"t", "tau", "theta", "v", "slip"}      // time series at the monitored element
	VmaxKeys = []string{"t", "vmax", "xmax"}                   // peak slip rate over the fault
	OxKeys   = []string{"x", "t", "v", "theta", "tau", "slip"} // space-time snapshots
)

// Global variables
var (

	// data set by Start
	Sim    *inp.Simulation // simulation data
	Dirout string          // directory with the solver output files
	Fnkey  string          // simulation key

	// results loaded by LoadResults
	Ot    map[string][]float64   // time-series columns
	Vmax  map[string][]float64   // peak-velocity columns
	X     []float64              // element positions from the snapshot file
	Times []float64              // snapshot times
	Snaps map[string][][]float64 // [key][itime][ielem] snapshot profiles

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results given a simulation settings file
func Start(simfnpath, alias string) {

	// read settings without touching previous results
	if strings.HasSuffix(simfnpath, ".hcl") {
		Sim = inp.ReadSimHCL(simfnpath, alias, false, false)
	} else {
		Sim = inp.ReadSim(simfnpath, alias, false, false)
	}
	Dirout = Sim.DirOut
	Fnkey = Sim.Key

	// clear previous data
	Ot = nil
	Vmax = nil
	X = nil
	Times = nil
	Snaps = nil
	Splots = make([]*SplotDat, 0)
	Csplot = nil
}

// LoadResults loads all solver output tables
func LoadResults() (err error) {

	// time series
	Ot, err = readTable(io.Sf("%s/%s_ot.res", Dirout, Fnkey), OtKeys)
	if err != nil {
		return
	}

	// peak velocities
	Vmax, err = readTable(io.Sf("%s/%s_vmax.res", Dirout, Fnkey), VmaxKeys)
	if err != nil {
		return
	}

	// snapshots
	X, Times, Snaps, err = readSnapshots(io.Sf("%s/%s_ox.res", Dirout, Fnkey))
	return
}

// GetRes returns one column of the time-series table
func GetRes(key string) []float64 {
	if Ot == nil {
		chk.Panic("results must be loaded with LoadResults before GetRes")
	}
	if res, ok := Ot[key]; ok {
		return res
	}
	chk.Panic("cannot get time-series results for key %q; options are %v", key, OtKeys)
	return nil
}

// GetVmax returns one column of the peak-velocity table
func GetVmax(key string) []float64 {
	if Vmax == nil {
		chk.Panic("results must be loaded with LoadResults before GetVmax")
	}
	if res, ok := Vmax[key]; ok {
		return res
	}
	chk.Panic("cannot get peak-velocity results for key %q; options are %v", key, VmaxKeys)
	return nil
}

// GetSnap returns the profile of one quantity along the fault at snapshot idxT
func GetSnap(key string, idxT int) []float64 {
	if Snaps == nil {
		chk.Panic("results must be loaded with LoadResults before GetSnap")
	}
	profiles, ok := Snaps[key]
	if !ok {
		chk.Panic("cannot get snapshot results for key %q", key)
	}
	if idxT < 0 {
		idxT = len(profiles) - 1
	}
	if idxT >= len(profiles) {
		chk.Panic("snapshot index %d is out of range; %d snapshots are loaded", idxT, len(profiles))
	}
	return profiles[idxT]
}
