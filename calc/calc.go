// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc implements the admissible-pressure calculation over a CPT
// soil profile: per-row method dispatch, safety factor, reporting-unit
// conversion and the zero-pressure fallback guard.
package calc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/frict"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/geost"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/inp"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/mdl/bearing"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/units"
)

// RowResult holds the outcome of one profile row. Err non-nil means the
// row was skipped (row-scoped failure); the run is never aborted by a row.
type RowResult struct {
	Z          float64 // depth [m]
	Qc         float64 // corrected cone resistance [kgf/cm²]
	Q0         float64 // effective overburden stress [kgf/cm²]
	PhiuDeg    float64 // φu [deg]
	PhipDeg    float64 // φ' [deg]
	Padm1      float64 // admissible pressure, footing 1 [kgf/cm²]
	Padm2      float64 // admissible pressure, footing 2 [kgf/cm²]
	Nq         float64 // surcharge factor diagnostic [-]
	Ng         float64 // self-weight factor diagnostic [-]; Vpg for De Beer
	Degenerate bool    // φu ≈ 0 short-circuit taken
	Err        error   // row-scoped failure; row skipped
}

// Results holds the outcome of a complete run
type Results struct {
	Rows        []*RowResult // one result per profile row, in profile order
	Nskipped    int          // number of skipped rows
	Ndegenerate int          // number of degenerate rows
}

// Calculator computes admissible bearing pressures for profile rows
type Calculator struct {

	// input
	Deck *inp.Deck // input deck

	// derived
	Mdl  bearing.Model // selected bearing-capacity model
	Col  *geost.Column // overburden stress column
	Grav float64       // gravitational acceleration [m/s²]
}

// NewCalculator allocates the calculator for a deck. All failure modes here
// are configuration errors: they abort the whole run before any row.
func NewCalculator(deck *inp.Deck) (o *Calculator, err error) {
	if deck == nil {
		return nil, chk.Err("input deck is not available")
	}
	if len(deck.Profile) == 0 {
		return nil, chk.Err("profile is empty")
	}
	method, err := bearing.MethodByName(deck.Data.Method)
	if err != nil {
		return nil, err
	}
	o = &Calculator{Deck: deck, Grav: deck.Constants.G}
	o.Mdl, err = bearing.New(method)
	if err != nil {
		return nil, err
	}
	err = o.Mdl.Init(deck.SiteParams())
	if err != nil {
		return nil, err
	}
	o.Col, err = geost.NewColumn(deck.RhoDry, deck.RhoSat, deck.Nappe, deck.HasNappe)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Row computes the admissible pressures for one profile row. The returned
// result always carries Z, Qc and Q0; on a row-scoped failure Err is set
// and the remaining fields are left unset.
//
// Steps: overburden stress, friction angles (explicit override or qc/q'0
// inversion), gross pressure per footing width, safety factor, conversion
// to kgf/cm², and the zero-pressure guard. The guard order matters: the
// footing-2 fallback uses the post-fallback footing-1 value.
func (o *Calculator) Row(r *inp.Row) (res *RowResult) {
	res = &RowResult{Z: r.Z, Qc: r.Qc}

	// overburden stress
	q0 := o.Col.Stress(r.Z)
	res.Q0 = q0

	// friction angles
	var φu, φp float64
	if r.Phiu != nil {
		φu = units.ToRadians(*r.Phiu)
	} else {
		var ok bool
		φu, ok = frict.Phiu(r.Qc, q0)
		if !ok {
			res.Err = chk.Err("no friction angle at z=%g m (qc=%g, q'0=%g)", r.Z, r.Qc, q0)
			return
		}
	}
	if r.Phip != nil {
		φp = units.ToRadians(*r.Phip)
	} else {
		φp = frict.Phip(φu)
	}
	res.PhiuDeg = units.ToDegrees(φu)
	res.PhipDeg = units.ToDegrees(φp)

	// gross pressures; qp = q'0 (no level difference after works)
	q := units.KgfCm2ToDaNM2(q0, o.Grav)
	in := bearing.Input{Depth: r.Z, Phiu: φu, Phip: φp, Q: q, Qp: q, B: o.Deck.Footing.B1}
	r1, err := o.Mdl.Gross(&in)
	if err != nil {
		res.Err = err
		return
	}
	in.B = o.Deck.Footing.B2
	r2, err := o.Mdl.Gross(&in)
	if err != nil {
		res.Err = err
		return
	}
	res.Nq, res.Ng, res.Degenerate = r1.Nq, r1.Ng, r1.Degenerate

	// safety factor and reporting units
	sfac := o.Deck.Footing.Sfac
	res.Padm1 = units.DaNM2ToKgfCm2(r1.P/sfac, o.Grav)
	res.Padm2 = units.DaNM2ToKgfCm2(r2.P/sfac, o.Grav)

	// zero-pressure guard; footing 1 falls back to the measured qc/10,
	// footing 2 inherits the (post-fallback) footing-1 value
	if res.Padm1 < 0.1 {
		res.Padm1 = r.Qc / 10.0
	}
	if res.Padm2 < 0.1 {
		res.Padm2 = res.Padm1
	}
	return
}
