// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "t")
	Ylbl  string    // vertical axis label (raw; e.g. "v")
	Style *plt.A    // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xrange []float64    // x range
	Yrange []float64    // y range
	Xlbl   string       // x-axis label (formatted; e.g. "$t$")
	Ylbl   string       // y-axis label (formatted; e.g. "$v$")
	Data   []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot plots data
//  xHandle -- can be a result key, e.g. "t", or a slice, e.g. []float64{0, 1, 2}
//  yHandle -- can be a result key, e.g. "v", or a slice
//  fm      -- formatting codes; e.g. &plt.A{C: "blue", L: "label"}
//  idxT    -- snapshot index for profile keys; use -1 for the time series
func Plot(xHandle, yHandle interface{}, fm *plt.A, idxT int) {
	var e PltEntity
	e.Style = fm
	e.X, e.Xlbl = getValsAndLabel(xHandle, idxT)
	e.Y, e.Ylbl = getValsAndLabel(yHandle, idxT)
	if len(e.X) != len(e.Y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d, x=%v, y=%v", len(e.X), len(e.Y), xHandle, yHandle)
	}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, &e)
	SplotConfig("", "", 1, 1)
}

// Draw draws or saves figure with plot
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.png. Use "" to show figure instead.
//            The extension is chosen by plt (png by default; eps via Reset)
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  split  -- split subplots into separated figures
//  extra  -- is called just after Subplot command and before any plotting
func Draw(dirout, fname string, nr, nc int, split bool, extra func(id string)) {
	var fnk string // filename key
	if fname != "" {
		fnk = io.FnKey(fname)
	}
	nplots := len(Splots)
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	for k := 0; k < nplots; k++ {
		spl := Splots[k]
		if !split {
			plt.Subplot(nr, nc, k+1)
		}
		if extra != nil {
			extra(spl.Id)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			x, y := d.X, d.Y
			if math.Abs(spl.Xscale) > 0 && spl.Xscale != 1 {
				xv := la.NewVector(len(d.X))
				xv.Apply(spl.Xscale, d.X)
				x = xv
			}
			if math.Abs(spl.Yscale) > 0 && spl.Yscale != 1 {
				yv := la.NewVector(len(d.Y))
				yv.Apply(spl.Yscale, d.Y)
				y = yv
			}
			plt.Plot(x, y, d.Style)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if len(spl.Xrange) == 2 {
			plt.AxisXrange(spl.Xrange[0], spl.Xrange[1])
		}
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
		if split {
			savefig(dirout, fnk, spl.Id)
			plt.Clf()
		}
	}
	if !split && fname != "" {
		savefig(dirout, fnk, "")
	}
	if fname == "" {
		plt.Show()
	}
}

// PlotSlipRateMap draws the spatiotemporal map of log10 slip rate.
//  dirout -- directory to save figure
//  fname  -- file name; use "" to show figure instead
//  tscale -- scale applied to snapshot times; e.g. 1.0/3.15576e7 for years
func PlotSlipRateMap(dirout, fname string, tscale float64) {
	if Snaps == nil {
		chk.Panic("results must be loaded with LoadResults before PlotSlipRateMap")
	}
	if tscale <= 0 {
		tscale = 1
	}
	v := Snaps["v"]
	nt, nx := len(Times), len(X)
	xx := utl.Alloc(nt, nx)
	tt := utl.Alloc(nt, nx)
	zz := utl.Alloc(nt, nx)
	for k := 0; k < nt; k++ {
		for j := 0; j < nx; j++ {
			xx[k][j] = X[j]
			tt[k][j] = Times[k] * tscale
			zz[k][j] = math.Log10(v[k][j] + 1e-30)
		}
	}
	plt.ContourF(xx, tt, zz, nil)
	plt.Gll(GetTexLabel("x", ""), GetTexLabel("t", ""), nil)
	if fname == "" {
		plt.Show()
		return
	}
	plt.Save(dirout, io.FnKey(fname))
}

// SaveFrames saves one slip-rate profile figure per snapshot, numbered so
// they can be assembled into an animation
func SaveFrames(dirout, fnkey string) {
	if Snaps == nil {
		chk.Panic("results must be loaded with LoadResults before SaveFrames")
	}
	v := Snaps["v"]
	for k := range Times {
		logv := make([]float64, len(X))
		for j := range X {
			logv[j] = math.Log10(v[k][j] + 1e-30)
		}
		plt.Reset(false, nil)
		plt.Plot(X, logv, &plt.A{C: "b"})
		plt.Title(io.Sf("t = %g", Times[k]), nil)
		plt.Gll(GetTexLabel("x", ""), GetTexLabel("v", "log"), nil)
		plt.Save(dirout, io.Sf("%s_frame%04d", fnkey, k))
	}
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func savefig(dirout, fnk, id string) {
	if id != "" {
		fnk += "_" + id
	}
	if dirout == "" {
		dirout = "."
	}
	plt.Save(dirout, fnk)
}

func getValsAndLabel(handle interface{}, idxT int) ([]float64, string) {
	switch hnd := handle.(type) {
	case []float64:
		return hnd, "data"
	case string:
		if hnd == "x" {
			return X, "x"
		}
		if idxT < 0 {
			if hnd == "vmax" || hnd == "xmax" {
				return GetVmax(hnd), hnd
			}
			return GetRes(hnd), hnd
		}
		if hnd == "t" {
			return Times, "t"
		}
		return GetSnap(hnd, idxT), hnd
	}
	chk.Panic("cannot get values slice with handle = %v", handle)
	return nil, ""
}
