// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dsiervo/ICTP-EQ-tutorials/run"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nEQ-Tutorials -- earthquake-cycle simulation driver\n")
		io.Pf("Copyright 2021 The EQ-Tutorials Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save summary", "saveSummary", saveSummary,
		))
	}

	// analysis data
	alias := ""
	analysis := run.NewMain(fnamepath, alias, erasePrev, saveSummary, verbose)

	// run simulation
	err := analysis.Run(context.Background())
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
