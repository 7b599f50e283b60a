// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// readTable loads one whitespace table with a header row and checks that
// all wanted columns are present and of equal length
func readTable(fpath string, wanted []string) (res map[string][]float64, err error) {
	if _, err = os.Stat(fpath); err != nil {
		return nil, chk.Err("cannot find output table %q", fpath)
	}
	_, res = io.ReadTable(fpath)
	n := -1
	for _, key := range wanted {
		col, ok := res[key]
		if !ok {
			return nil, chk.Err("output table %q has no column %q", fpath, key)
		}
		if n < 0 {
			n = len(col)
		}
		if len(col) != n {
			return nil, chk.Err("output table %q has columns of different lengths", fpath)
		}
	}
	if n == 0 {
		return nil, chk.Err("output table %q is empty", fpath)
	}
	return
}

// readSnapshots loads the space-time snapshot table and reshapes the flat
// rows into per-time profiles. Rows are grouped by equal time values; all
// groups must have the same number of elements and the same positions.
func readSnapshots(fpath string) (x, times []float64, snaps map[string][][]float64, err error) {

	// flat table
	tab, err := readTable(fpath, OxKeys)
	if err != nil {
		return
	}
	tcol := tab["t"]
	xcol := tab["x"]
	nrows := len(tcol)

	// block boundaries from the time column
	starts := []int{0}
	for i := 1; i < nrows; i++ {
		if tcol[i] != tcol[i-1] {
			starts = append(starts, i)
		}
	}
	nt := len(starts)
	nx := nrows / nt
	if nx*nt != nrows {
		err = chk.Err("snapshot table %q has %d rows which cannot hold %d equal blocks", fpath, nrows, nt)
		return
	}

	// check block shapes and positions
	for k, s := range starts {
		end := nrows
		if k+1 < nt {
			end = starts[k+1]
		}
		if end-s != nx {
			err = chk.Err("snapshot block %d of %q has %d rows; %d expected", k, fpath, end-s, nx)
			return
		}
		for j := 0; j < nx; j++ {
			if math.Abs(xcol[s+j]-xcol[j]) > 1e-8 {
				err = chk.Err("snapshot block %d of %q has inconsistent element positions", k, fpath)
				return
			}
		}
	}

	// reshape
	x = xcol[:nx]
	times = make([]float64, nt)
	for k, s := range starts {
		times[k] = tcol[s]
	}
	snaps = make(map[string][][]float64)
	for _, key := range OxKeys {
		if key == "x" || key == "t" {
			continue
		}
		col := tab[key]
		profiles := make([][]float64, nt)
		for k, s := range starts {
			profiles[k] = col[s : s+nx]
		}
		snaps[key] = profiles
	}
	return
}
