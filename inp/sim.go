// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or (.hcl)
// settings file, the fault mesh expansion, and the rendering of the text
// input file consumed by the external earthquake-cycle solver
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// friction law names understood by the solver
var LawNames = []string{"aging", "slip", "cns"}

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/eqtut
	Encoder string `json:"encoder"` // encoder name for summary files; "gob" or "json"
	Solver  string `json:"solver"`  // solver command; e.g. "eqsolver" or "/opt/bin/eqsolver"
	Law     string `json:"law"`     // friction law variant: aging, slip, cns
	Matfile string `json:"matfile"` // friction parameter database file path; optional
}

// FaultData holds fault geometry and default rate-and-state parameters.
// Scalar values here are expanded across all mesh elements; asperities
// then override parameters on patches.
type FaultData struct {
	N      int     `json:"n"`      // number of fault elements
	Length float64 `json:"length"` // fault length [m]
	Mu     float64 `json:"mu"`     // shear modulus [Pa]
	Vs     float64 `json:"vs"`     // shear wave speed [m/s]
	Sigma  float64 `json:"sigma"`  // effective normal stress [Pa]
	Vpl    float64 `json:"vpl"`    // plate loading velocity [m/s]
	V0     float64 `json:"v0"`     // reference slip velocity [m/s]
	Mu0    float64 `json:"mu0"`    // reference friction coefficient
	A      float64 `json:"a"`      // direct-effect coefficient
	B      float64 `json:"b"`      // state-evolution coefficient
	Dc     float64 `json:"dc"`     // characteristic slip distance [m]
	Vini   float64 `json:"vini"`   // initial slip velocity; 0 => vpl
	Thini  float64 `json:"thini"`  // initial state; 0 => dc/vini (steady state)
	Set    string  `json:"set"`    // name of friction set in database; overrides a, b, dc
}

// Asperity holds one velocity-weakening patch painted onto the fault.
// Zero-valued overrides keep the fault default.
type Asperity struct {
	Desc  string  `json:"desc"`  // description of patch. ex: nucleation asperity
	X     float64 `json:"x"`     // patch centre position [m]
	Hw    float64 `json:"hw"`    // patch half-width [m]
	A     float64 `json:"a"`     // override of direct-effect coefficient
	B     float64 `json:"b"`     // override of state-evolution coefficient
	Dc    float64 `json:"dc"`    // override of characteristic slip distance
	Sigma float64 `json:"sigma"` // override of effective normal stress
	Set   string  `json:"set"`   // name of friction set in database
}

// TimeControl holds data defining the simulated time window and output cadence
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final simulated time [s]
	DtMax float64 `json:"dtmax"` // maximum solver step [s]; 0 => solver default
	DtOut float64 `json:"dtout"` // time-series output interval [s]
	NtOut int     `json:"ntout"` // number of space-time snapshots
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data       Data        `json:"data"`       // stores global simulation data
	Fault      FaultData   `json:"fault"`      // fault geometry and default parameters
	Asperities []*Asperity `json:"asperities"` // velocity-weakening patches
	Control    TimeControl `json:"control"`    // time window and output cadence

	// derived
	DirOut  string  // directory to save results
	Key     string  // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string  // encoder type for summary files
	FricDb  *FricDb // friction parameter database; may be nil
	Msh     *Mesh   // the fault mesh
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// post-processing common to all settings formats
	err = o.PostRead(filepath.Dir(simfilepath), filepath.Base(simfilepath), alias, erasePrev, createDirOut)
	if err != nil {
		chk.Panic("ReadSim: %v", err)
	}
	return &o
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.Data.Encoder = "gob"
	o.Data.Solver = "eqsolver"
	o.Data.Law = "aging"
	o.Fault.V0 = 1e-6
	o.Fault.Mu0 = 0.6
	o.Control.NtOut = 100
}

// PostRead derives the output directory and key, creates/erases directories,
// loads the friction database, and generates the fault mesh. It must be
// called after decoding any of the settings formats.
func (o *Simulation) PostRead(dir, fn, alias string, erasePrev, createDirOut bool) (err error) {

	// input directory and filename key
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/eqtut/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check friction law name
	if !lawIsValid(o.Data.Law) {
		return chk.Err("friction law %q is incorrect; options are %v", o.Data.Law, LawNames)
	}

	// friction database
	if o.Data.Matfile != "" {
		o.FricDb, err = ReadFric(dir, o.Data.Matfile)
		if err != nil {
			return chk.Err("loading friction database failed:\n%v", err)
		}
	}

	// resolve named friction sets
	err = o.resolveSets()
	if err != nil {
		return
	}

	// check scalar settings
	err = o.checkData()
	if err != nil {
		return
	}

	// generate mesh
	o.Msh, err = GenMesh(o)
	if err != nil {
		return chk.Err("cannot generate fault mesh:\n%v", err)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// InpFilename returns the name of the rendered solver input file
func (o *Simulation) InpFilename() string {
	return o.Key + ".in"
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// resolveSets copies a, b, dc from named friction sets into the fault
// defaults and asperity overrides
func (o *Simulation) resolveSets() (err error) {
	if o.FricDb == nil {
		if o.Fault.Set != "" {
			return chk.Err("friction set %q requested but no database file is given", o.Fault.Set)
		}
		for _, asp := range o.Asperities {
			if asp.Set != "" {
				return chk.Err("friction set %q requested but no database file is given", asp.Set)
			}
		}
		return
	}
	if o.Fault.Set != "" {
		set := o.FricDb.Get(o.Fault.Set)
		if set == nil {
			return chk.Err("cannot find friction set named %q for fault defaults", o.Fault.Set)
		}
		set.ApplyTo(&o.Fault.A, &o.Fault.B, &o.Fault.Dc)
	}
	for _, asp := range o.Asperities {
		if asp.Set != "" {
			set := o.FricDb.Get(asp.Set)
			if set == nil {
				return chk.Err("cannot find friction set named %q for asperity %q", asp.Set, asp.Desc)
			}
			set.ApplyTo(&asp.A, &asp.B, &asp.Dc)
		}
	}
	return
}

// checkData checks scalar settings before mesh expansion
func (o *Simulation) checkData() (err error) {
	if o.Fault.N < 1 {
		return chk.Err("number of fault elements must be positive. n=%d is invalid", o.Fault.N)
	}
	if o.Fault.Length <= 0 {
		return chk.Err("fault length must be positive. length=%g is invalid", o.Fault.Length)
	}
	if o.Fault.A <= 0 || o.Fault.Dc <= 0 || o.Fault.Sigma <= 0 {
		return chk.Err("default a, dc and sigma must be positive. a=%g dc=%g sigma=%g", o.Fault.A, o.Fault.Dc, o.Fault.Sigma)
	}
	if o.Control.Tf <= 0 {
		return chk.Err("final time must be positive. tf=%g is invalid", o.Control.Tf)
	}
	if o.Control.NtOut < 1 {
		o.Control.NtOut = 1
	}
	return
}

func lawIsValid(law string) bool {
	for _, l := range LawNames {
		if law == l {
			return true
		}
	}
	return false
}
