// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ml

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Network holds a one-hidden-layer classifier with tanh activation and
// softmax output
type Network struct {

	// dimensions
	Nin  int // number of input features
	Nhid int // number of hidden units
	Nout int // number of classes

	// parameters
	W1 *mat.Dense // (Nin, Nhid) input weights
	B1 *mat.Dense // (1, Nhid) hidden biases
	W2 *mat.Dense // (Nhid, Nout) output weights
	B2 *mat.Dense // (1, Nout) output biases
}

// NewNetwork returns a network with small random weights
func NewNetwork(nin, nhid, nout int, seed uint64) (o *Network, err error) {
	if nin < 1 || nhid < 1 || nout < 2 {
		return nil, chk.Err("invalid network dimensions: nin=%d nhid=%d nout=%d", nin, nhid, nout)
	}
	o = &Network{Nin: nin, Nhid: nhid, Nout: nout}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	randMat := func(r, c int, scale float64) *mat.Dense {
		m := mat.NewDense(r, c, nil)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				m.Set(i, j, scale*normal.Rand())
			}
		}
		return m
	}
	o.W1 = randMat(nin, nhid, 1.0/math.Sqrt(float64(nin)))
	o.B1 = mat.NewDense(1, nhid, nil)
	o.W2 = randMat(nhid, nout, 1.0/math.Sqrt(float64(nhid)))
	o.B2 = mat.NewDense(1, nout, nil)
	return
}

// Forward computes the hidden activations and class probabilities for a
// batch of samples (rows of x)
func (o *Network) Forward(x *mat.Dense) (hidden, probs *mat.Dense) {
	n, _ := x.Dims()

	// hidden layer: tanh(x W1 + b1)
	hidden = mat.NewDense(n, o.Nhid, nil)
	hidden.Mul(x, o.W1)
	hidden.Apply(func(i, j int, v float64) float64 {
		return math.Tanh(v + o.B1.At(0, j))
	}, hidden)

	// output layer: softmax(h W2 + b2), row-wise with max-shift
	probs = mat.NewDense(n, o.Nout, nil)
	probs.Mul(hidden, o.W2)
	for i := 0; i < n; i++ {
		zmax := math.Inf(-1)
		for j := 0; j < o.Nout; j++ {
			z := probs.At(i, j) + o.B2.At(0, j)
			probs.Set(i, j, z)
			if z > zmax {
				zmax = z
			}
		}
		sum := 0.0
		for j := 0; j < o.Nout; j++ {
			e := math.Exp(probs.At(i, j) - zmax)
			probs.Set(i, j, e)
			sum += e
		}
		for j := 0; j < o.Nout; j++ {
			probs.Set(i, j, probs.At(i, j)/sum)
		}
	}
	return
}

// Train fits the network with minibatch gradient descent on the softmax
// cross-entropy loss. Returns the mean loss per epoch.
func (o *Network) Train(d *Dataset, epochs, batch int, lrate float64) (losses []float64, err error) {
	n := d.Nsamples()
	if d.Nfeatures() != o.Nin {
		return nil, chk.Err("dataset has %d features but the network expects %d", d.Nfeatures(), o.Nin)
	}
	if batch < 1 || batch > n {
		batch = n
	}
	if epochs < 1 || lrate <= 0 {
		return nil, chk.Err("invalid training settings: epochs=%d lrate=%g", epochs, lrate)
	}

	losses = make([]float64, epochs)
	for ep := 0; ep < epochs; ep++ {
		sum, nbatches := 0.0, 0
		for r0 := 0; r0 < n; r0 += batch {
			r1 := r0 + batch
			if r1 > n {
				r1 = n
			}
			x := d.X.Slice(r0, r1, 0, o.Nin).(*mat.Dense)
			sum += o.step(x, d.Y[r0:r1], lrate)
			nbatches++
		}
		losses[ep] = sum / float64(nbatches)
	}
	return
}

// Predict returns the most probable class per sample
func (o *Network) Predict(x *mat.Dense) []int {
	_, probs := o.Forward(x)
	n, _ := probs.Dims()
	classes := make([]int, n)
	for i := 0; i < n; i++ {
		best, pbest := 0, probs.At(i, 0)
		for j := 1; j < o.Nout; j++ {
			if p := probs.At(i, j); p > pbest {
				best, pbest = j, p
			}
		}
		classes[i] = best
	}
	return classes
}

// Accuracy returns the fraction of correctly classified samples
func (o *Network) Accuracy(d *Dataset) float64 {
	classes := o.Predict(d.X)
	hits := 0
	for i, c := range classes {
		if c == d.Y[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(classes))
}

// step performs one gradient descent update and returns the batch loss
func (o *Network) step(x *mat.Dense, y []int, lrate float64) (loss float64) {
	m, _ := x.Dims()
	hidden, probs := o.Forward(x)

	// loss and output delta: (p - onehot(y)) / m
	dz2 := mat.NewDense(m, o.Nout, nil)
	for i := 0; i < m; i++ {
		loss -= math.Log(probs.At(i, y[i]) + 1e-12)
		for j := 0; j < o.Nout; j++ {
			g := probs.At(i, j)
			if j == y[i] {
				g -= 1
			}
			dz2.Set(i, j, g/float64(m))
		}
	}
	loss /= float64(m)

	// gradients of the output layer
	dW2 := mat.NewDense(o.Nhid, o.Nout, nil)
	dW2.Mul(hidden.T(), dz2)
	db2 := colSums(dz2)

	// backpropagate through tanh
	dz1 := mat.NewDense(m, o.Nhid, nil)
	dz1.Mul(dz2, o.W2.T())
	dz1.Apply(func(i, j int, v float64) float64 {
		h := hidden.At(i, j)
		return v * (1 - h*h)
	}, dz1)

	// gradients of the hidden layer
	dW1 := mat.NewDense(o.Nin, o.Nhid, nil)
	dW1.Mul(x.T(), dz1)
	db1 := colSums(dz1)

	// update
	axpy(o.W1, dW1, -lrate)
	axpy(o.B1, db1, -lrate)
	axpy(o.W2, dW2, -lrate)
	axpy(o.B2, db2, -lrate)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// colSums returns the column sums of m as a row vector
func colSums(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	s := mat.NewDense(1, c, nil)
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += m.At(i, j)
		}
		s.Set(0, j, sum)
	}
	return s
}

// axpy adds coef*b to a in place
func axpy(a, b *mat.Dense, coef float64) {
	var scaled mat.Dense
	scaled.Scale(coef, b)
	a.Add(a, &scaled)
}
