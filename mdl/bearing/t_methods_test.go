// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/units"
)

func newModel(tst *testing.T, method Method, prms dbf.Params) Model {
	mdl, err := New(method)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	return mdl
}

func siteDry() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rhodry", V: 1800}, // [kg/m³]
		&dbf.P{N: "rhosat", V: 2000}, // [kg/m³]
	}
}

func siteWet(nappe float64) dbf.Params {
	return append(siteDry(), &dbf.P{N: "nappe", V: nappe})
}

func Test_methods01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("methods01. allocation and names")

	for _, name := range []string{"Brinch Hansen", "Caquot Kérisel", "Meyerhof", "De Beer (adapté)"} {
		method, err := MethodByName(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		mdl, err := New(method)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if mdl.Name() != name {
			tst.Errorf("wrong model name: %q != %q\n", mdl.Name(), name)
			return
		}
	}

	// ascii aliases
	for _, alias := range []string{"brinch-hansen", "caquot-kerisel", "meyerhof", "debeer"} {
		if _, err := MethodByName(alias); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}

	// closed set
	if _, err := MethodByName("Terzaghi"); err == nil {
		tst.Errorf("unknown method must be rejected\n")
		return
	}

	// unknown site parameter
	mdl, _ := New(BrinchHansen)
	err := mdl.Init(append(siteDry(), &dbf.P{N: "cohesion", V: 1}))
	if err == nil {
		tst.Errorf("unknown parameter must be rejected\n")
		return
	}
}

func Test_methods02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("methods02. classical trio: shared Nq, distinct Ng")

	in := &Input{Depth: 1.0, Phiu: units.ToRadians(28), Q: 500, Qp: 500, B: 0.8}
	var nqs, ngs []float64
	for _, method := range []Method{BrinchHansen, CaquotKerisel, Meyerhof} {
		mdl := newModel(tst, method, siteDry())
		if mdl == nil {
			return
		}
		res, err := mdl.Gross(in)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		nqs = append(nqs, res.Nq)
		ngs = append(ngs, res.Ng)

		// pressure decomposes with the dry unit weight
		γ := 1800.0 * units.Gravity / 10.0
		chk.Float64(tst, "P = q・Nq + γ・B・Ng", 1e-9, res.P, in.Q*res.Nq+γ*in.B*res.Ng)
	}
	chk.Float64(tst, "Nq BH = Nq CK", 1e-15, nqs[0], nqs[1])
	chk.Float64(tst, "Nq BH = Nq M", 1e-15, nqs[0], nqs[2])
	if ngs[0] == ngs[1] || ngs[0] == ngs[2] || ngs[1] == ngs[2] {
		tst.Errorf("Ng factors must differ between methods\n")
		return
	}
}

func Test_methods03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("methods03. water table switching")

	nappe := 1.0
	φ := units.ToRadians(30)
	γdry := 1800.0 * units.Gravity / 10.0
	γsat := 2000.0 * units.Gravity / 10.0
	γbuoy := (2000.0 - RhoWater) * units.Gravity / 10.0

	// classical trio: saturated weight at depth ≥ nappe, no buoyant subtraction
	for _, method := range []Method{BrinchHansen, CaquotKerisel, Meyerhof} {
		mdl := newModel(tst, method, siteWet(nappe))
		if mdl == nil {
			return
		}
		above := &Input{Depth: 0.99, Phiu: φ, Q: 400, Qp: 400, B: 0.6}
		at := &Input{Depth: 1.0, Phiu: φ, Q: 400, Qp: 400, B: 0.6}
		ra, err := mdl.Gross(above)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		rb, err := mdl.Gross(at)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, "γ above", 1e-9, ra.P-above.Q*ra.Nq, γdry*above.B*ra.Ng)
		chk.Float64(tst, "γ at nappe", 1e-9, rb.P-at.Q*rb.Nq, γsat*at.B*rb.Ng)
	}

	// De Beer: buoyant weight strictly below the water table only
	mdl := newModel(tst, DeBeer, siteWet(nappe))
	if mdl == nil {
		return
	}
	at := &Input{Depth: 1.0, Phiu: φ, Phip: φ, Q: 400, Qp: 400, B: 0.6}
	below := &Input{Depth: 1.01, Phiu: φ, Phip: φ, Q: 400, Qp: 400, B: 0.6}
	ra, err := mdl.Gross(at)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	rb, err := mdl.Gross(below)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "γ at nappe (dry)", 1e-9, ra.P-at.Q*ra.Nq, ra.Ng*γdry*at.B)
	chk.Float64(tst, "γ below nappe (buoyant)", 1e-9, rb.P-below.Q*rb.Nq, rb.Ng*γbuoy*below.B)
}

func Test_debeer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("debeer01. degenerate angle and row errors")

	mdl := newModel(tst, DeBeer, siteDry())
	if mdl == nil {
		return
	}

	// φu ≈ 0 => zero pressure, zero diagnostics, flagged; not an error
	res, err := mdl.Gross(&Input{Depth: 1, Phiu: 0.0009, Phip: units.ToRadians(30), Q: 400, Qp: 400, B: 0.6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !res.Degenerate {
		tst.Errorf("degenerate flag must be set\n")
		return
	}
	chk.Float64(tst, "P", 1e-15, res.P, 0)
	chk.Float64(tst, "Nq", 1e-15, res.Nq, 0)
	chk.Float64(tst, "Ng", 1e-15, res.Ng, 0)

	// missing drained angle and non-positive stress are row errors
	if _, err := mdl.Gross(&Input{Depth: 1, Phiu: 0.5, Phip: 0, Q: 400, Qp: 400, B: 0.6}); err == nil {
		tst.Errorf("phip < MinPhi must be an error\n")
		return
	}
	if _, err := mdl.Gross(&Input{Depth: 1, Phiu: 0.5, Phip: 0.6, Q: 0, Qp: 0, B: 0.6}); err == nil {
		tst.Errorf("q <= 0 must be an error\n")
		return
	}
}

func Test_debeer02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("debeer02. exponent reduction and trio equivalence")

	mdl := newModel(tst, DeBeer, siteDry())
	if mdl == nil {
		return
	}

	// qp = q => the exponentiated ratio is exactly 1 and Nq is independent
	// of the exponent; with φu = φ' the De Beer Nq equals the classical Nq
	for _, phiDeg := range []float64{15, 25, 30, 35} {
		φ := units.ToRadians(phiDeg)
		res, err := mdl.Gross(&Input{Depth: 0.5, Phiu: φ, Phip: φ, Q: 700, Qp: 700, B: 1.0})
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, "Nq De Beer = Nq classical", 1e-9, res.Nq, Nq(φ))
	}

	// general form: doubling qp scales the first Nq term by 2^(tanφu/tanφ')
	φu, φp := units.ToRadians(25), units.ToRadians(32)
	r1, err := mdl.Gross(&Input{Depth: 0.5, Phiu: φu, Phip: φp, Q: 700, Qp: 700, B: 1.0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r2, err := mdl.Gross(&Input{Depth: 0.5, Phiu: φu, Phip: φp, Q: 700, Qp: 1400, B: 1.0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	scale := math.Pow(2, math.Tan(φu)/math.Tan(φp))
	term1 := Fphi(φu, φp) * math.Tan(φp)
	chk.Float64(tst, "Nq(qp=2q)", 1e-9, r2.Nq, r1.Nq+term1*(scale-1))
}

func Test_golden01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("golden01. hand-verified row (z=0.2m, qc=16.6)")

	// z=0.2m with ρdry=1800 gives q'0=0.036 kgf/cm²; the friction-angle
	// inversion for qc=16.6 yields φu=φ'=35.79888°
	φ := 0.624808410784 // [rad]
	q := units.KgfCm2ToDaNM2(0.036, units.Gravity)

	bh := newModel(tst, BrinchHansen, siteDry())
	if bh == nil {
		return
	}
	r1, err := bh.Gross(&Input{Depth: 0.2, Phiu: φ, Q: q, Qp: q, B: 0.6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r2, err := bh.Gross(&Input{Depth: 0.2, Phiu: φ, Q: q, Qp: q, B: 1.5})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Nq", 1e-6, r1.Nq, 36.8030098110)
	chk.Float64(tst, "Ng", 1e-6, r1.Ng, 38.7313287940)
	chk.Float64(tst, "P(b=0.6)", 1e-4, r1.P, 54032.4191754882)
	chk.Float64(tst, "P(b=1.5)", 1e-4, r2.P, 115585.0215214575)

	db := newModel(tst, DeBeer, siteDry())
	if db == nil {
		return
	}
	r3, err := db.Gross(&Input{Depth: 0.2, Phiu: φ, Phip: φ, Q: q, Qp: q, B: 0.6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "De Beer Nq", 1e-6, r3.Nq, 36.8030098110)
	chk.Float64(tst, "De Beer Vpg", 1e-6, r3.Ng, 38.7513817688)
	chk.Float64(tst, "De Beer P(b=0.6)", 1e-4, r3.P, 54053.6649012521)
}
