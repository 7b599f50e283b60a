// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. load results")

	Start("data/single.sim", "")
	if Fnkey != "single" {
		tst.Errorf("Fnkey is incorrect: %q\n", Fnkey)
		return
	}

	err := LoadResults()
	if err != nil {
		tst.Errorf("LoadResults failed:\n%v", err)
		return
	}

	// time series
	t := GetRes("t")
	v := GetRes("v")
	chk.IntAssert(len(t), 5)
	chk.IntAssert(len(v), 5)
	chk.Float64(tst, "t[0]", 1e-15, t[0], 0)
	chk.Float64(tst, "t[4]", 1e-15, t[4], 100)
	chk.Float64(tst, "v[4]", 1e-24, v[4], 4.0e-9)

	// peak velocities
	vmax := GetVmax("vmax")
	chk.IntAssert(len(vmax), 5)
	chk.Float64(tst, "vmax[4]", 1e-24, vmax[4], 4.4e-9)

	// snapshots
	io.Pforan("X     = %v\n", X)
	io.Pforan("Times = %v\n", Times)
	chk.Array(tst, "X", 1e-15, X, []float64{125, 375, 625, 875})
	chk.Array(tst, "Times", 1e-15, Times, []float64{0, 50, 100})

	vlast := GetSnap("v", -1)
	chk.Array(tst, "v @ last snapshot", 1e-24, vlast, []float64{1.4e-9, 4.4e-9, 4.0e-9, 1.2e-9})
	slip1 := GetSnap("slip", 1)
	chk.Float64(tst, "slip[1][2]", 1e-22, slip1[2], 6.0e-8)
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. inconsistent snapshot table")

	_, _, _, err := readSnapshots("data/res/bad_ox.res")
	if err == nil {
		tst.Errorf("readSnapshots must fail for uneven blocks\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	_, _, _, err = readSnapshots("data/res/shifted_ox.res")
	if err == nil {
		tst.Errorf("readSnapshots must fail when element positions differ between blocks\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	_, err = readTable("data/res/inexistent.res", OtKeys)
	if err == nil {
		tst.Errorf("readTable must fail for a missing file\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	Start("data/single.sim", "")
	err := LoadResults()
	if err != nil {
		tst.Errorf("LoadResults failed:\n%v", err)
		return
	}

	Splot("t-v", "slip rate at monitor")
	Plot("t", "v", &plt.A{C: "b", M: "."}, -1)

	Splot("t-tau", "shear stress at monitor")
	Plot("t", "tau", &plt.A{C: "r", M: "."}, -1)

	Splot("x-v", "slip rate profiles")
	last := len(Times) - 1
	Plot("x", "v", &plt.A{C: "b", M: "o", L: io.Sf("t=%g", Times[0])}, 0)
	Plot("x", "v", &plt.A{C: "m", M: "*", L: io.Sf("t=%g", Times[last])}, last)

	chk.IntAssert(len(Splots), 3)
	chk.IntAssert(len(Splots[2].Data), 2)

	if chk.Verbose {
		Draw("/tmp/eqtut", "test_plot01.png", -1, -1, false, nil)
		plt.Reset(false, nil)
		PlotSlipRateMap("/tmp/eqtut", "test_plot01_map.png", 1.0/3.15576e7)
		SaveFrames("/tmp/eqtut/frames", "single")
	}
}
