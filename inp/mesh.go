// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Mesh holds the fault discretization: one ordered array per physical
// quantity, one entry per element. All arrays have length N.
type Mesh struct {

	// geometry
	N  int       // number of elements
	Dx float64   // element size
	X  []float64 // element centre positions

	// rate-and-state parameters
	A     []float64 // direct-effect coefficient
	B     []float64 // state-evolution coefficient
	Dc    []float64 // characteristic slip distance
	Sigma []float64 // effective normal stress

	// kinematics
	Vpl   []float64 // plate loading velocity
	Vini  []float64 // initial slip velocity
	Thini []float64 // initial state variable
}

// GenMesh expands the fault defaults across all elements and applies the
// asperity overrides
func GenMesh(sim *Simulation) (o *Mesh, err error) {

	// allocate
	f := &sim.Fault
	o = new(Mesh)
	o.N = f.N
	o.Dx = f.Length / float64(f.N)
	o.X = utl.LinSpace(o.Dx/2.0, f.Length-o.Dx/2.0, f.N)

	// advisory only: tutorials choose powers of two for the solver's FFT kernel
	if !isPow2(f.N) {
		io.Pfyel("warning: number of elements (%d) is not a power of two\n", f.N)
	}

	// initial conditions
	vini := f.Vini
	if vini <= 0 {
		vini = f.Vpl
	}
	thini := f.Thini
	if thini <= 0 {
		if vini <= 0 {
			return nil, chk.Err("cannot compute steady-state initial condition with vini=%g", vini)
		}
		thini = f.Dc / vini
	}

	// expand defaults
	o.A = utl.Vals(f.N, f.A)
	o.B = utl.Vals(f.N, f.B)
	o.Dc = utl.Vals(f.N, f.Dc)
	o.Sigma = utl.Vals(f.N, f.Sigma)
	o.Vpl = utl.Vals(f.N, f.Vpl)
	o.Vini = utl.Vals(f.N, vini)
	o.Thini = utl.Vals(f.N, thini)

	// paint asperities
	for _, asp := range sim.Asperities {
		err = o.SetAsperity(asp, f.Length)
		if err != nil {
			return nil, err
		}
	}

	// check
	err = o.Check()
	return
}

// SetAsperity overrides parameters on the patch |x - asp.X| <= asp.Hw.
// Zero-valued overrides keep the current element values.
func (o *Mesh) SetAsperity(asp *Asperity, faultLength float64) (err error) {
	if asp.Hw <= 0 {
		return chk.Err("asperity %q must have a positive half-width. hw=%g", asp.Desc, asp.Hw)
	}
	if asp.X-asp.Hw < 0 || asp.X+asp.Hw > faultLength {
		return chk.Err("asperity %q (x=%g, hw=%g) does not fit inside the fault (length=%g)", asp.Desc, asp.X, asp.Hw, faultLength)
	}
	n := 0
	for i, x := range o.X {
		if math.Abs(x-asp.X) <= asp.Hw {
			if asp.A > 0 {
				o.A[i] = asp.A
			}
			if asp.B > 0 {
				o.B[i] = asp.B
			}
			if asp.Dc > 0 {
				o.Dc[i] = asp.Dc
				o.Thini[i] = o.Dc[i] / o.Vini[i]
			}
			if asp.Sigma > 0 {
				o.Sigma[i] = asp.Sigma
			}
			n++
		}
	}
	if n == 0 {
		return chk.Err("asperity %q (x=%g, hw=%g) covers no element; element size is %g", asp.Desc, asp.X, asp.Hw, o.Dx)
	}
	return
}

// Check verifies the per-element array invariants
func (o *Mesh) Check() (err error) {
	for _, pair := range []struct {
		name string
		arr  []float64
	}{
		{"x", o.X},
		{"a", o.A},
		{"b", o.B},
		{"dc", o.Dc},
		{"sigma", o.Sigma},
		{"vpl", o.Vpl},
		{"vini", o.Vini},
		{"thini", o.Thini},
	} {
		if len(pair.arr) != o.N {
			return chk.Err("array %q has %d entries but the mesh has %d elements", pair.name, len(pair.arr), o.N)
		}
	}
	for i := 0; i < o.N; i++ {
		if o.A[i] <= 0 || o.Dc[i] <= 0 || o.Sigma[i] <= 0 {
			return chk.Err("element %d has non-positive parameters: a=%g dc=%g sigma=%g", i, o.A[i], o.Dc[i], o.Sigma[i])
		}
	}
	return
}

// Lb returns the smallest process zone size mu*dc/(b*sigma) over the fault,
// useful to judge discretization quality in the tutorials
func (o *Mesh) Lb(mu float64) (lb float64) {
	lb = math.MaxFloat64
	for i := 0; i < o.N; i++ {
		if o.B[i] <= 0 {
			continue
		}
		lb = utl.Min(lb, mu*o.Dc[i]/(o.B[i]*o.Sigma[i]))
	}
	return
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
