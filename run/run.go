// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package run drives one blocking execution of the external earthquake-cycle
// solver per simulation: it renders the solver input file, launches the
// solver subprocess, tracks its progress, and saves a run summary
package run

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gosuri/uiprogress"

	"github.com/dsiervo/ICTP-EQ-tutorials/inp"
)

// Main holds all data for one solver run
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure; nil when saveSummary is false
	ShowMsg bool            // show messages
	InpFile string          // full path of the rendered solver input file
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim or .hcl) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running variations
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary after the run
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)

	// read input data
	if strings.HasSuffix(simfilepath, ".hcl") {
		o.Sim = inp.ReadSimHCL(simfilepath, alias, erasePrev, true)
	} else {
		o.Sim = inp.ReadSim(simfilepath, alias, erasePrev, true)
	}
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}

	// summary
	if saveSummary {
		o.Summary = new(Summary)
		o.Summary.SimFile = simfilepath
	}

	// message
	o.ShowMsg = verbose
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> Settings file read; fault has %d elements\n", o.Sim.Fault.N)
	}
	return
}

// Run renders the input file, executes the solver and waits for it.
// The context cancels the subprocess.
func (o *Main) Run(ctx context.Context) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// render input file
	o.InpFile, err = o.Sim.WriteInput(o.Sim.DirOut)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Solver input file written to %s\n", o.InpFile)
	}

	// solver command; the executable may carry arguments, e.g. "mpirun -n 4 eqsolver"
	parts := strings.Fields(o.Sim.Data.Solver)
	if len(parts) == 0 {
		return chk.Err("solver command is empty")
	}
	args := append(parts[1:], o.Sim.InpFilename())
	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Dir = o.Sim.DirOut

	// pipes
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return chk.Err("cannot open solver stdout pipe: %v", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// start
	if o.ShowMsg {
		io.Pf("> Running solver: %s\n", o.Sim.Data.Solver)
	}
	err = cmd.Start()
	if err != nil {
		return chk.Err("cannot start solver %q: %v", parts[0], err)
	}

	// progress bar
	var bar *uiprogress.Bar
	if o.ShowMsg {
		uiprogress.Start()
		bar = uiprogress.AddBar(100).AppendCompleted().PrependElapsed()
	}

	// pump stdout: the solver prints "t <current simulated time>" lines
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if t, ok := parseProgress(line); ok {
			if bar != nil {
				frac := t / o.Sim.Control.Tf
				if frac > 1 {
					frac = 1
				}
				bar.Set(int(frac * 100))
			}
			continue
		}
		if o.ShowMsg && strings.TrimSpace(line) != "" {
			io.Pf("  solver: %s\n", line)
		}
	}
	if bar != nil {
		bar.Set(100)
		uiprogress.Stop()
	}

	// wait
	err = cmd.Wait()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return chk.Err("solver failed: %v\n%s", err, msg)
		}
		return chk.Err("solver failed: %v", err)
	}

	// check output files
	for _, fn := range o.OutputFiles() {
		if _, serr := os.Stat(fn); serr != nil {
			return chk.Err("solver finished but output file %q is missing", fn)
		}
	}
	if o.ShowMsg {
		io.Pf("> Output files found\n")
	}
	return
}

// OutputFiles returns the full paths of the files the solver must produce
func (o *Main) OutputFiles() []string {
	d, k := o.Sim.DirOut, o.Sim.Key
	return []string{
		io.Sf("%s/%s_ot.res", d, k),
		io.Sf("%s/%s_vmax.res", d, k),
		io.Sf("%s/%s_ox.res", d, k),
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints the final message and saves the summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil {
		o.Summary.InpFile = o.InpFile
		o.Summary.OutFiles = o.OutputFiles()
		o.Summary.Tf = o.Sim.Control.Tf
		o.Summary.CpuTime = time.Now().Sub(cputime).Seconds()
		o.Summary.ExitOk = prevErr == nil
		if prevErr != nil {
			o.Summary.ExitMsg = prevErr.Error()
		}
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			return
		}
	}

	// keep previous error
	if prevErr != nil {
		err = prevErr
	}
	return
}

// parseProgress extracts the simulated time from a "t <value>" stdout line
func parseProgress(line string) (t float64, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "t" {
		return
	}
	t, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, false
	}
	return t, true
}
