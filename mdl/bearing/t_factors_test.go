// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/ana"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/units"
)

func Test_factors01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factors01. Nq against published tables")

	for _, phiDeg := range []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45} {
		φ := units.ToRadians(phiDeg)
		chk.Float64(tst, "Nq", 1e-2, Nq(φ), ana.RefNq(phiDeg))
	}
	chk.Float64(tst, "Nq(30°)", 1e-2, Nq(units.ToRadians(30)), 18.401122218708668)
}

func Test_factors02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factors02. Ng per method at φ=30°")

	φ := units.ToRadians(30)
	chk.Float64(tst, "NgBH(30°)", 1e-2, NgBrinchHansen(φ), ana.RefNgBH(30))
	chk.Float64(tst, "NgBH(30°)", 1e-12, NgBrinchHansen(φ), 15.069813895759541)
	chk.Float64(tst, "NgCK(30°)", 1e-12, NgCaquotKerisel(φ), 1.4433756729740637)
	chk.Float64(tst, "NgM(30°)", 1e-12, NgMeyerhof(φ), 15.668040821046283)

	// Brinch Hansen table sweep
	for _, phiDeg := range []float64{0, 10, 20, 30, 40, 45} {
		chk.Float64(tst, "NgBH", 1e-2, NgBrinchHansen(units.ToRadians(phiDeg)), ana.RefNgBH(phiDeg))
	}
}

func Test_factors03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factors03. monotonicity over (0°, 89°)")

	Φ := utl.LinSpace(units.ToRadians(0.5), units.ToRadians(89), 178)
	for i := 1; i < len(Φ); i++ {
		if Nq(Φ[i]) <= Nq(Φ[i-1]) {
			tst.Errorf("Nq is not strictly increasing at φ=%g rad\n", Φ[i])
			return
		}
		if Vpg(Φ[i]) <= Vpg(Φ[i-1]) {
			tst.Errorf("Vpg is not strictly increasing at φ=%g rad\n", Φ[i])
			return
		}
	}
}

func Test_factors04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factors04. Vpg closed form")

	// at φu=30°, tan30・tan60 = 1 and Vpg collapses to exp(1.5π・tan30°)
	φ := units.ToRadians(30)
	chk.Float64(tst, "Vpg(30°)", 1e-12, Vpg(φ), math.Exp(1.5*math.Pi*math.Tan(φ)))
	chk.Float64(tst, "Vpg(30°)", 1e-2, Vpg(φ), 15.191)
}

func Test_factors05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factors05. Fphi identity at φu=φ'")

	// F(φ,φ)・tanφ = exp(π・tanφ)・(1+sinφ)²/cos²φ = Nq(φ)
	for _, phiDeg := range []float64{10, 20, 30, 35, 40} {
		φ := units.ToRadians(phiDeg)
		chk.Float64(tst, "F・tanφ = Nq", 1e-9, Fphi(φ, φ)*math.Tan(φ), Nq(φ))
	}
}
