// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []*plt.A

// GetDefaultStyles returns one labelled style per snapshot time
func GetDefaultStyles(times []float64) Styles {
	sty := make([]*plt.A, len(times))
	for i, t := range times {
		sty[i] = &plt.A{L: io.Sf("t=%g", t)}
	}
	return sty
}

// GetTexLabel returns the axis label for a result key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "t":
		l += "t"
	case "x":
		l += "x"
	case "v":
		l += "v"
	case "vmax":
		l += "v_{max}"
	case "xmax":
		l += "x_{max}"
	case "tau":
		l += "\\tau"
	case "theta":
		l += "\\theta"
	case "slip":
		l += "\\delta"
	case "":
		return ""
	default:
		l += key
	}
	if unit != "" {
		l += io.Sf("\\;[%s]", unit)
	}
	return l + "$"
}
