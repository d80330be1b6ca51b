// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// DeBeerModel implements the De Beer method adapted by INISMa
//   Nq = F(φu,φ')・tanφ'・(qp/q'0)^(tanφu/tanφ') − tanφ'/tanφu + 1
//   P  = q'0・Nq + Vpg(φu)・γ・B
// The unit weight rule differs from the classical trio: the buoyant weight
// (ρsat − ρwater) is used strictly below the water table.
//
// The calculator always sets qp = q'0 (no level difference after works), in
// which case the exponentiated ratio is exactly 1; the general form is kept
// for qp ≠ q'0 support.
type DeBeerModel struct {
	siteData
}

// Name returns the historical method name
func (o *DeBeerModel) Name() string {
	return DeBeer.String()
}

// Init initialises model with site parameters
func (o *DeBeerModel) Init(prms dbf.Params) error {
	return o.siteData.init(prms)
}

// GetPrms gets current site parameters
func (o *DeBeerModel) GetPrms() dbf.Params {
	return o.siteData.params()
}

// Gross computes the gross bearing pressure and reporting diagnostics.
// φu < MinPhi short-circuits to a zero pressure with zero diagnostics and
// the Degenerate flag set: sand with negligible friction carries no load
// by this method; this is an inspectable outcome, not an error.
func (o *DeBeerModel) Gross(in *Input) (*Result, error) {
	if in.Phiu < MinPhi {
		return &Result{Degenerate: true}, nil
	}
	if in.Phip < MinPhi {
		return nil, chk.Err("De Beer method needs a drained friction angle. phip=%g is invalid", in.Phip)
	}
	if in.Q <= 0 {
		return nil, chk.Err("De Beer method needs a positive overburden stress. q=%g is invalid", in.Q)
	}
	tu := math.Tan(in.Phiu)
	tp := math.Tan(in.Phip)
	nq := Fphi(in.Phiu, in.Phip)*tp*math.Pow(in.Qp/in.Q, tu/tp) - tp/tu + 1.0
	vpg := Vpg(in.Phiu)
	γ := o.gammaBuoyant(in.Depth)
	return &Result{
		P:  in.Q*nq + vpg*γ*in.B,
		Nq: nq,
		Ng: vpg,
	}, nil
}

func init() {
	allocators[DeBeer] = func() Model {
		return new(DeBeerModel)
	}
}
