// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fric01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fric01")

	fdb, err := ReadFric("data", "fric.mat")
	if err != nil {
		tst.Errorf("cannot read fric.mat:\n%v", err)
		return
	}
	io.Pforan("fric.mat just read:\n%v\n", fdb)

	set := fdb.Get("granite-vw")
	if set == nil {
		tst.Errorf("cannot find set granite-vw\n")
		return
	}
	a, found := set.Value("a")
	if !found {
		tst.Errorf("set granite-vw has no parameter a\n")
		return
	}
	chk.Float64(tst, "a", 1e-17, a, 0.010)

	if fdb.Get("inexistent") != nil {
		tst.Errorf("Get must return nil for unknown set\n")
		return
	}

	// gouge-vs has no dc; ApplyTo must keep the target value
	aa, bb, dc := 0.5, 0.5, 0.5
	fdb.Get("gouge-vs").ApplyTo(&aa, &bb, &dc)
	chk.Float64(tst, "aa", 1e-17, aa, 0.019)
	chk.Float64(tst, "bb", 1e-17, bb, 0.012)
	chk.Float64(tst, "dc", 1e-17, dc, 0.5)

	// write and re-read
	fn := "test_fric.mat"
	io.WriteStringToFileD("/tmp/eqtut/inp", fn, fdb.String())
	fdb2, err := ReadFric("/tmp/eqtut/inp", fn)
	if err != nil {
		tst.Errorf("cannot read test_fric.mat:\n%v", err)
		return
	}
	io.Pfblue2("\n%v\n", fdb2)
	a2, _ := fdb2.Get("granite-vw").Value("a")
	chk.Float64(tst, "a after round trip", 1e-17, a2, 0.010)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/single.sim", "", true, true)
	if sim == nil {
		tst.Errorf("test failed:\n")
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	io.Pfyel("Key     = %v\n", sim.Key)
	io.Pfyel("DirOut  = %v\n", sim.DirOut)
	io.Pfyel("EncType = %v\n", sim.EncType)

	if sim.Key != "single" {
		tst.Errorf("Key is incorrect: %q\n", sim.Key)
		return
	}
	if sim.EncType != "json" {
		tst.Errorf("EncType is incorrect: %q\n", sim.EncType)
		return
	}
	chk.IntAssert(sim.Fault.N, 128)
	chk.Float64(tst, "tf", 1e-7, sim.Control.Tf, 4.73364e8)

	// mesh
	m := sim.Msh
	chk.IntAssert(m.N, 128)
	chk.IntAssert(len(m.X), 128)
	chk.Float64(tst, "dx", 1e-15, m.Dx, 5000.0/128.0)
	chk.Float64(tst, "x0", 1e-15, m.X[0], m.Dx/2.0)
	chk.Float64(tst, "xN", 1e-11, m.X[127], 5000.0-m.Dx/2.0)

	// away from the asperity: fault defaults
	chk.Float64(tst, "a[0]", 1e-17, m.A[0], 0.012)
	chk.Float64(tst, "b[0]", 1e-17, m.B[0], 0.008)
	chk.Float64(tst, "dc[0]", 1e-17, m.Dc[0], 1e-4)
	chk.Float64(tst, "thini[0]", 1e-9, m.Thini[0], 1e-4/1e-9)

	// centre element: granite-vw set painted by the asperity
	ic := 64
	chk.Float64(tst, "a[ic]", 1e-17, m.A[ic], 0.010)
	chk.Float64(tst, "b[ic]", 1e-17, m.B[ic], 0.015)
	chk.Float64(tst, "dc[ic]", 1e-17, m.Dc[ic], 4e-5)
	chk.Float64(tst, "thini[ic]", 1e-9, m.Thini[ic], 4e-5/1e-9)

	io.Pfcyan("Lb = %v\n", m.Lb(sim.Fault.Mu))
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. HCL settings equivalence")

	js := ReadSim("data/single.sim", "", true, true)
	hc := ReadSimHCL("data/single.hcl", "", true, true)

	chk.IntAssert(hc.Fault.N, js.Fault.N)
	chk.Float64(tst, "length", 1e-15, hc.Fault.Length, js.Fault.Length)
	chk.Float64(tst, "mu", 1e-15, hc.Fault.Mu, js.Fault.Mu)
	chk.Float64(tst, "sigma", 1e-15, hc.Fault.Sigma, js.Fault.Sigma)
	chk.Float64(tst, "v0 default", 1e-15, hc.Fault.V0, 1e-6)
	chk.Float64(tst, "mu0 default", 1e-15, hc.Fault.Mu0, 0.6)
	chk.Float64(tst, "tf", 1e-7, hc.Control.Tf, js.Control.Tf)
	chk.IntAssert(hc.Control.NtOut, js.Control.NtOut)
	chk.IntAssert(len(hc.Asperities), 1)

	chk.Array(tst, "a", 1e-17, hc.Msh.A, js.Msh.A)
	chk.Array(tst, "b", 1e-17, hc.Msh.B, js.Msh.B)
	chk.Array(tst, "dc", 1e-17, hc.Msh.Dc, js.Msh.Dc)
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. asperity checks")

	var sim Simulation
	sim.SetDefault()
	sim.Fault.N = 100 // not a power of two on purpose
	sim.Fault.Length = 1000
	sim.Fault.Sigma = 5e7
	sim.Fault.Vpl = 1e-9
	sim.Fault.A = 0.01
	sim.Fault.B = 0.006
	sim.Fault.Dc = 1e-4

	msh, err := GenMesh(&sim)
	if err != nil {
		tst.Errorf("GenMesh failed:\n%v", err)
		return
	}
	chk.IntAssert(msh.N, 100)

	// patch outside the fault
	err = msh.SetAsperity(&Asperity{Desc: "outside", X: 990, Hw: 20, B: 0.02}, sim.Fault.Length)
	if err == nil {
		tst.Errorf("SetAsperity must fail for a patch crossing the fault edge\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	// zero half-width
	err = msh.SetAsperity(&Asperity{Desc: "flat", X: 500, Hw: 0}, sim.Fault.Length)
	if err == nil {
		tst.Errorf("SetAsperity must fail for zero half-width\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	// valid patch
	err = msh.SetAsperity(&Asperity{Desc: "ok", X: 500, Hw: 50, B: 0.02}, sim.Fault.Length)
	if err != nil {
		tst.Errorf("SetAsperity failed:\n%v", err)
		return
	}
	if msh.B[50] != 0.02 {
		tst.Errorf("override was not applied at the patch centre\n")
		return
	}
	chk.Float64(tst, "b[0] untouched", 1e-17, msh.B[0], 0.006)
}

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01")

	sim := ReadSim("data/single.sim", "", true, true)
	buf, err := sim.RenderInput()
	if err != nil {
		tst.Errorf("RenderInput failed:\n%v", err)
		return
	}

	lines := strings.Split(buf.String(), "\n")
	io.Pforan("header:\n%v\n", strings.Join(lines[:13], "\n"))
	if lines[1] != "nelem    128" {
		tst.Errorf("nelem line is incorrect: %q\n", lines[1])
		return
	}
	if lines[3] != "law      aging" {
		tst.Errorf("law line is incorrect: %q\n", lines[3])
		return
	}
	if lines[12] != "elements 128" {
		tst.Errorf("elements line is incorrect: %q\n", lines[12])
		return
	}

	// one row per element plus header block and trailing newline
	nrows := 0
	for _, l := range lines[13:] {
		if strings.TrimSpace(l) != "" {
			nrows++
		}
	}
	chk.IntAssert(nrows, 128)

	// write to disk
	fpath, err := sim.WriteInput(sim.DirOut)
	if err != nil {
		tst.Errorf("WriteInput failed:\n%v", err)
		return
	}
	if _, err := os.Stat(fpath); err != nil {
		tst.Errorf("input file was not written: %v\n", err)
		return
	}
	io.Pfgreen("input file written to %s\n", fpath)
}
