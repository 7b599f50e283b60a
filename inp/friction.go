// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FricSet holds one named set of rate-and-state friction parameters
type FricSet struct {

	// input
	Name string     `json:"name"` // name of set. ex: granite-vw, gouge-vs
	Law  string     `json:"law"`  // friction law this set was calibrated for; "" => any
	Desc string     `json:"desc"` // description. ex: lab values for wet granite
	Prms dbf.Params `json:"prms"` // parameters: a, b, dc
}

// FricSetsData holds friction sets
type FricSetsData []*FricSet

// FricDb implements a database of friction parameter sets
type FricDb struct {

	// input
	Sets FricSetsData `json:"sets"` // all sets

	// derived
	name2set map[string]*FricSet // maps set name to set
}

// ReadFric reads a friction parameter database from a .mat JSON file
func ReadFric(dir, fn string) (fdb *FricDb, err error) {

	// new database
	fdb = new(FricDb)

	// read file
	fpath := filepath.Join(dir, fn)
	if _, err = os.Stat(fpath); err != nil {
		return nil, chk.Err("cannot find friction database %q", fpath)
	}
	b := io.ReadFile(fpath)

	// decode
	err = json.Unmarshal(b, fdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal friction database %q: %v", fn, err)
	}

	// name map
	fdb.name2set = make(map[string]*FricSet)
	for _, set := range fdb.Sets {
		if set.Law != "" && !lawIsValid(set.Law) {
			return nil, chk.Err("friction set %q has incorrect law %q; options are %v", set.Name, set.Law, LawNames)
		}
		if _, found := fdb.name2set[set.Name]; found {
			return nil, chk.Err("friction set %q is duplicated in database", set.Name)
		}
		fdb.name2set[set.Name] = set
	}
	return
}

// Get returns a set by name
//  Note: returns nil if not found
func (o *FricDb) Get(name string) *FricSet {
	return o.name2set[name]
}

// Value returns the value of a parameter in this set
func (o *FricSet) Value(key string) (val float64, found bool) {
	if p := o.Prms.Find(key); p != nil {
		return p.V, true
	}
	return
}

// ApplyTo copies the a, b, dc parameters of this set onto the given targets.
// Parameters absent from the set keep the target value.
func (o *FricSet) ApplyTo(a, b, dc *float64) {
	if v, ok := o.Value("a"); ok {
		*a = v
	}
	if v, ok := o.Value("b"); ok {
		*b = v
	}
	if v, ok := o.Value("dc"); ok {
		*dc = v
	}
}

// String prints one set
func (o FricSet) String() string {
	l := io.Sf("    {\n      \"name\":%q, \"law\":%q, \"desc\":%q, \"prms\" : [\n", o.Name, o.Law, o.Desc)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints the database
func (o FricDb) String() string {
	l := "{\n  \"sets\" : [\n"
	for i, set := range o.Sets {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", set)
	}
	l += "\n  ]\n}"
	return l
}
