// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// Classical implements the classical gross bearing pressure
//   P = q'0・Nq(φu) + γ・B・Ng(φu)
// with the apparent unit weight rule (saturated weight below the water
// table, no buoyant subtraction) and a method-specific Ng. It covers the
// Brinch Hansen, Caquot & Kérisel and Meyerhof methods, which share Nq and
// differ only in Ng.
type Classical struct {
	siteData
	method Method
	ng     func(φ float64) float64
}

// Name returns the historical method name
func (o *Classical) Name() string {
	return o.method.String()
}

// Init initialises model with site parameters
func (o *Classical) Init(prms dbf.Params) error {
	return o.siteData.init(prms)
}

// GetPrms gets current site parameters
func (o *Classical) GetPrms() dbf.Params {
	return o.siteData.params()
}

// Gross computes the gross bearing pressure and reporting diagnostics.
// φu = 0 is not an error here: Nq(0) = 1 and Ng(0) = 0, hence P = q'0.
// The Nq/Ng diagnostics are zeroed for φu < MinPhi (annexe convention),
// but the pressure itself always uses the true factors.
func (o *Classical) Gross(in *Input) (*Result, error) {
	nq := Nq(in.Phiu)
	ng := o.ng(in.Phiu)
	γ := o.gammaApparent(in.Depth)
	res := &Result{P: in.Q*nq + γ*in.B*ng}
	if in.Phiu >= MinPhi {
		res.Nq = nq
		res.Ng = ng
	}
	return res, nil
}

func init() {
	allocators[BrinchHansen] = func() Model {
		return &Classical{method: BrinchHansen, ng: NgBrinchHansen}
	}
	allocators[CaquotKerisel] = func() Model {
		return &Classical{method: CaquotKerisel, ng: NgCaquotKerisel}
	}
	allocators[Meyerhof] = func() Model {
		return &Classical{method: Meyerhof, ng: NgMeyerhof}
	}
}
