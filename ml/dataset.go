// Copyright 2021 The EQ-Tutorials Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ml implements the minimal feed-forward classifier used by the
// classification tutorial: a synthetic dataset, one hidden layer, softmax
// output, and minibatch gradient descent
package ml

import (
	"github.com/cpmech/gosl/chk"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset holds samples as rows of X with one integer label per row
type Dataset struct {
	X *mat.Dense // (nsamples, nfeatures)
	Y []int      // (nsamples) labels in 0..nclasses-1
}

// Nsamples returns the number of samples
func (o *Dataset) Nsamples() int {
	n, _ := o.X.Dims()
	return n
}

// Nfeatures returns the number of features
func (o *Dataset) Nfeatures() int {
	_, m := o.X.Dims()
	return m
}

// Blobs generates a shuffled synthetic dataset with gaussian clusters, one
// cluster per class, centred at the given points
func Blobs(nPerClass int, centers [][]float64, std float64, seed uint64) (o *Dataset, err error) {
	if len(centers) < 2 {
		return nil, chk.Err("at least two cluster centres are required")
	}
	nfeat := len(centers[0])
	for _, c := range centers {
		if len(c) != nfeat {
			return nil, chk.Err("all cluster centres must have the same dimension")
		}
	}

	src := rand.NewSource(seed)
	normal := distuv.Normal{Mu: 0, Sigma: std, Src: src}

	n := nPerClass * len(centers)
	o = &Dataset{X: mat.NewDense(n, nfeat, nil), Y: make([]int, n)}
	row := 0
	for class, c := range centers {
		for k := 0; k < nPerClass; k++ {
			for j := 0; j < nfeat; j++ {
				o.X.Set(row, j, c[j]+normal.Rand())
			}
			o.Y[row] = class
			row++
		}
	}

	// shuffle rows
	perm := rand.New(src).Perm(n)
	xs := mat.NewDense(n, nfeat, nil)
	ys := make([]int, n)
	for i, p := range perm {
		xs.SetRow(i, o.X.RawRowView(p))
		ys[i] = o.Y[p]
	}
	o.X, o.Y = xs, ys
	return
}

// Split partitions the dataset into a training and a testing subset
func (o *Dataset) Split(trainFrac float64) (train, test *Dataset, err error) {
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, chk.Err("training fraction must be within (0,1). frac=%g is invalid", trainFrac)
	}
	n := o.Nsamples()
	ntrain := int(trainFrac * float64(n))
	if ntrain < 1 || ntrain >= n {
		return nil, nil, chk.Err("split of %d samples with frac=%g leaves an empty subset", n, trainFrac)
	}
	train = o.subset(0, ntrain)
	test = o.subset(ntrain, n)
	return
}

// subset copies rows [r0,r1) into a new dataset
func (o *Dataset) subset(r0, r1 int) *Dataset {
	nfeat := o.Nfeatures()
	d := &Dataset{X: mat.NewDense(r1-r0, nfeat, nil), Y: make([]int, r1-r0)}
	for i := r0; i < r1; i++ {
		d.X.SetRow(i-r0, o.X.RawRowView(i))
		d.Y[i-r0] = o.Y[i]
	}
	return d
}
