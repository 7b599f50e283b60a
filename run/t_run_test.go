// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func fakeSolverCmd(tst *testing.T, script string) string {
	cwd, err := os.Getwd()
	if err != nil {
		tst.Fatalf("cannot get working directory: %v", err)
	}
	return "sh " + filepath.Join(cwd, "data", script)
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01")

	m := NewMain("data/run01.sim", "", true, true, chk.Verbose)
	m.Sim.Data.Solver = fakeSolverCmd(tst, "fakesolver.sh")

	err := m.Run(context.Background())
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// input file rendered into the output directory
	if _, err := os.Stat(m.InpFile); err != nil {
		tst.Errorf("input file was not written: %v\n", err)
		return
	}

	// output files
	for _, fn := range m.OutputFiles() {
		if _, err := os.Stat(fn); err != nil {
			tst.Errorf("output file %q is missing\n", fn)
			return
		}
	}

	// summary saved and readable
	var sum Summary
	err = sum.Read(m.Sim.DirOut, m.Sim.Key, m.Sim.EncType)
	if err != nil {
		tst.Errorf("cannot read summary:\n%v", err)
		return
	}
	io.Pforan("summary = %+v\n", sum)
	if !sum.ExitOk {
		tst.Errorf("summary must record a clean exit\n")
		return
	}
	chk.Float64(tst, "Tf", 1e-15, sum.Tf, 10.0)
	chk.IntAssert(len(sum.OutFiles), 3)
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. failing solver")

	m := NewMain("data/run01.sim", "fail", true, true, false)
	m.Sim.Data.Solver = fakeSolverCmd(tst, "failsolver.sh")

	err := m.Run(context.Background())
	if err == nil {
		tst.Errorf("Run must fail when the solver exits non-zero\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)

	// summary still saved, with the failure recorded
	var sum Summary
	rerr := sum.Read(m.Sim.DirOut, m.Sim.Key, m.Sim.EncType)
	if rerr != nil {
		tst.Errorf("cannot read summary:\n%v", rerr)
		return
	}
	if sum.ExitOk {
		tst.Errorf("summary must record the failure\n")
		return
	}
	if sum.ExitMsg == "" {
		tst.Errorf("summary must carry the failure message\n")
		return
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. missing outputs")

	m := NewMain("data/run01.sim", "noout", true, false, false)
	m.Sim.Data.Solver = "sh -c true" // exits cleanly without writing outputs

	err := m.Run(context.Background())
	if err == nil {
		tst.Errorf("Run must fail when output files are missing\n")
		return
	}
	io.Pfgrey("ok: %v\n", err)
}

func Test_progress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("progress01")

	t, ok := parseProgress("t 1.5e6")
	if !ok {
		tst.Errorf("progress line was not recognised\n")
		return
	}
	chk.Float64(tst, "t", 1e-15, t, 1.5e6)

	for _, line := range []string{"", "done", "t", "t abc", "tau 3 4"} {
		if _, ok := parseProgress(line); ok {
			tst.Errorf("line %q must not be a progress line\n", line)
			return
		}
	}
}
