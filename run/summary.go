// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"encoding/gob"
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary holds metadata of one solver run
type Summary struct {
	SimFile  string   // settings file given to NewMain
	InpFile  string   // rendered solver input file
	OutFiles []string // output files the solver produced
	Tf       float64  // final simulated time
	CpuTime  float64  // wall time of the run [s]
	ExitOk   bool     // solver exited cleanly
	ExitMsg  string   // error message when ExitOk is false
}

// Save saves the summary as <fnkey>.sum in dirout, encoded with gob or json
func (o *Summary) Save(dirout, fnkey, enctype string) (err error) {
	f, err := os.Create(io.Sf("%s/%s.sum", dirout, fnkey))
	if err != nil {
		return chk.Err("cannot create summary file: %v", err)
	}
	defer f.Close()
	switch enctype {
	case "json":
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		err = enc.Encode(o)
	default:
		err = gob.NewEncoder(f).Encode(o)
	}
	if err != nil {
		return chk.Err("cannot encode summary: %v", err)
	}
	return
}

// Read reads a previously saved summary
func (o *Summary) Read(dirout, fnkey, enctype string) (err error) {
	f, err := os.Open(io.Sf("%s/%s.sum", dirout, fnkey))
	if err != nil {
		return chk.Err("cannot open summary file: %v", err)
	}
	defer f.Close()
	switch enctype {
	case "json":
		err = json.NewDecoder(f).Decode(o)
	default:
		err = gob.NewDecoder(f).Decode(o)
	}
	if err != nil {
		return chk.Err("cannot decode summary: %v", err)
	}
	return
}
