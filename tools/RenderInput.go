// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// RenderInput reads a settings file and prints the rendered solver input
// file without running the solver; useful to inspect what the solver will
// actually receive
package main

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dsiervo/ICTP-EQ-tutorials/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input data
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)

	// read settings
	var sim *inp.Simulation
	if strings.HasSuffix(fnamepath, ".hcl") {
		sim = inp.ReadSimHCL(fnamepath, "", false, false)
	} else {
		sim = inp.ReadSim(fnamepath, "", false, false)
	}

	// render
	buf, err := sim.RenderInput()
	if err != nil {
		chk.Panic("cannot render input file:\n%v", err)
	}
	io.Pf("%s", buf.String())
}
