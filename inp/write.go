// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RenderInput renders the text input file consumed by the external solver.
// The layout is the solver's contract: scalar settings as "key value" lines,
// then one row per element with the expanded parameter arrays.
func (o *Simulation) RenderInput() (buf *bytes.Buffer, err error) {

	// check mesh
	if o.Msh == nil {
		return nil, chk.Err("cannot render input file without a mesh")
	}
	err = o.Msh.Check()
	if err != nil {
		return
	}

	// scalar settings
	buf = new(bytes.Buffer)
	io.Ff(buf, "# %s\n", o.Data.Desc)
	io.Ff(buf, "nelem    %d\n", o.Fault.N)
	io.Ff(buf, "length   %g\n", o.Fault.Length)
	io.Ff(buf, "law      %s\n", o.Data.Law)
	io.Ff(buf, "mu       %g\n", o.Fault.Mu)
	io.Ff(buf, "vs       %g\n", o.Fault.Vs)
	io.Ff(buf, "v0       %g\n", o.Fault.V0)
	io.Ff(buf, "mu0      %g\n", o.Fault.Mu0)
	io.Ff(buf, "tmax     %g\n", o.Control.Tf)
	io.Ff(buf, "dtmax    %g\n", o.Control.DtMax)
	io.Ff(buf, "dtout    %g\n", o.Control.DtOut)
	io.Ff(buf, "ntout    %d\n", o.Control.NtOut)

	// element table
	m := o.Msh
	io.Ff(buf, "elements %d\n", m.N)
	for i := 0; i < m.N; i++ {
		io.Ff(buf, "%g %g %g %g %g %g %g %g\n",
			m.X[i], m.A[i], m.B[i], m.Dc[i], m.Sigma[i], m.Vini[i], m.Thini[i], m.Vpl[i])
	}
	return
}

// WriteInput renders and saves the solver input file into dirout.
// Returns the full path of the written file.
func (o *Simulation) WriteInput(dirout string) (fpath string, err error) {
	buf, err := o.RenderInput()
	if err != nil {
		return
	}
	fn := o.InpFilename()
	io.WriteFileD(dirout, fn, buf)
	return io.Sf("%s/%s", dirout, fn), nil
}
