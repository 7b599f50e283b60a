// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclConfig mirrors the .sim JSON schema for HCL settings files
type hclConfig struct {
	Data       hclData       `hcl:"data,block"`
	Fault      hclFault      `hcl:"fault,block"`
	Asperities []hclAsperity `hcl:"asperity,block"`
	Control    hclControl    `hcl:"control,block"`
}

type hclData struct {
	Desc    string `hcl:"desc,optional"`
	DirOut  string `hcl:"dirout,optional"`
	Encoder string `hcl:"encoder,optional"`
	Solver  string `hcl:"solver,optional"`
	Law     string `hcl:"law,optional"`
	Matfile string `hcl:"matfile,optional"`
}

type hclFault struct {
	N      int      `hcl:"n"`
	Length float64  `hcl:"length"`
	Mu     float64  `hcl:"mu,optional"`
	Vs     float64  `hcl:"vs,optional"`
	Sigma  float64  `hcl:"sigma"`
	Vpl    float64  `hcl:"vpl"`
	V0     *float64 `hcl:"v0,optional"`
	Mu0    *float64 `hcl:"mu0,optional"`
	A      float64  `hcl:"a"`
	B      float64  `hcl:"b"`
	Dc     float64  `hcl:"dc"`
	Vini   float64  `hcl:"vini,optional"`
	Thini  float64  `hcl:"thini,optional"`
	Set    string   `hcl:"set,optional"`
}

type hclAsperity struct {
	Desc  string  `hcl:"desc,label"`
	X     float64 `hcl:"x"`
	Hw    float64 `hcl:"hw"`
	A     float64 `hcl:"a,optional"`
	B     float64 `hcl:"b,optional"`
	Dc    float64 `hcl:"dc,optional"`
	Sigma float64 `hcl:"sigma,optional"`
	Set   string  `hcl:"set,optional"`
}

type hclControl struct {
	Tf    float64 `hcl:"tf"`
	DtMax float64 `hcl:"dtmax,optional"`
	DtOut float64 `hcl:"dtout,optional"`
	NtOut int     `hcl:"ntout,optional"`
}

// evalContext provides convenience unit constants so settings files can say
// e.g. tf = 15 * year or sigma = 50 * mpa
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"minute": cty.NumberFloatVal(60),
			"hour":   cty.NumberFloatVal(3600),
			"day":    cty.NumberFloatVal(86400),
			"year":   cty.NumberFloatVal(3.15576e7),
			"km":     cty.NumberFloatVal(1e3),
			"kpa":    cty.NumberFloatVal(1e3),
			"mpa":    cty.NumberFloatVal(1e6),
			"gpa":    cty.NumberFloatVal(1e9),
		},
	}
}

// ReadSimHCL reads all simulation data from an .hcl settings file.
// The resulting Simulation is identical to one read from the equivalent
// .sim JSON file.
func ReadSimHCL(simfilepath, alias string, erasePrev, createDirOut bool) *Simulation {

	// parse
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(simfilepath)
	if diags.HasErrors() {
		chk.Panic("ReadSimHCL: cannot parse settings file %q:\n%v", simfilepath, diags.Error())
	}

	// decode
	var cfg hclConfig
	diags = gohcl.DecodeBody(f.Body, evalContext(), &cfg)
	if diags.HasErrors() {
		chk.Panic("ReadSimHCL: cannot decode settings file %q:\n%v", simfilepath, diags.Error())
	}

	// convert to Simulation
	var o Simulation
	o.SetDefault()
	o.Data = Data{
		Desc:    cfg.Data.Desc,
		DirOut:  cfg.Data.DirOut,
		Encoder: pickStr(cfg.Data.Encoder, o.Data.Encoder),
		Solver:  pickStr(cfg.Data.Solver, o.Data.Solver),
		Law:     pickStr(cfg.Data.Law, o.Data.Law),
		Matfile: cfg.Data.Matfile,
	}
	o.Fault = FaultData{
		N:      cfg.Fault.N,
		Length: cfg.Fault.Length,
		Mu:     cfg.Fault.Mu,
		Vs:     cfg.Fault.Vs,
		Sigma:  cfg.Fault.Sigma,
		Vpl:    cfg.Fault.Vpl,
		V0:     pickFlt(cfg.Fault.V0, o.Fault.V0),
		Mu0:    pickFlt(cfg.Fault.Mu0, o.Fault.Mu0),
		A:      cfg.Fault.A,
		B:      cfg.Fault.B,
		Dc:     cfg.Fault.Dc,
		Vini:   cfg.Fault.Vini,
		Thini:  cfg.Fault.Thini,
		Set:    cfg.Fault.Set,
	}
	for i := range cfg.Asperities {
		a := &cfg.Asperities[i]
		o.Asperities = append(o.Asperities, &Asperity{
			Desc: a.Desc, X: a.X, Hw: a.Hw,
			A: a.A, B: a.B, Dc: a.Dc, Sigma: a.Sigma, Set: a.Set,
		})
	}
	o.Control = TimeControl{
		Tf:    cfg.Control.Tf,
		DtMax: cfg.Control.DtMax,
		DtOut: cfg.Control.DtOut,
		NtOut: pickInt(cfg.Control.NtOut, o.Control.NtOut),
	}

	// post-processing common to all settings formats
	err := o.PostRead(filepath.Dir(simfilepath), filepath.Base(simfilepath), alias, erasePrev, createDirOut)
	if err != nil {
		chk.Panic("ReadSimHCL: %v", err)
	}
	return &o
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func pickStr(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

func pickFlt(val *float64, def float64) float64 {
	if val == nil {
		return def
	}
	return *val
}

func pickInt(val, def int) int {
	if val == 0 {
		return def
	}
	return val
}
