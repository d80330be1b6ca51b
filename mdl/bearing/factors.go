// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import "math"

// MinPhi is the smallest friction angle [rad] treated as a real angle.
// Below this value the soil is handled as frictionless sand (degenerate).
const MinPhi = 0.001

// Nq computes the surcharge bearing-capacity factor (Reissner/Prandtl)
//   Nq(φ) = exp(π・tanφ)・tan²(π/4 + φ/2)
// shared by the Brinch Hansen, Caquot-Kérisel and Meyerhof methods.
//   φ -- friction angle [rad]
func Nq(φ float64) float64 {
	return math.Exp(math.Pi*math.Tan(φ)) * math.Pow(math.Tan(math.Pi/4.0+φ/2.0), 2.0)
}

// Kp computes the passive earth pressure coefficient
//   Kp(φ) = tan²(π/4 + φ/2)
func Kp(φ float64) float64 {
	return math.Pow(math.Tan(math.Pi/4.0+φ/2.0), 2.0)
}

// NgBrinchHansen computes the self-weight factor of the Brinch Hansen method
//   Ng(φ) = 1.5・(Nq(φ) − 1)・tanφ
func NgBrinchHansen(φ float64) float64 {
	return 1.5 * (Nq(φ) - 1.0) * math.Tan(φ)
}

// NgCaquotKerisel computes the self-weight factor of the Caquot & Kérisel method
//   Ng(φ) = cos(π/4 − φ/2) / (2・sin²(π/4 + φ/2))・(Kp(φ) − sin(π/4 − φ/2))
func NgCaquotKerisel(φ float64) float64 {
	s := math.Sin(math.Pi/4.0 + φ/2.0)
	return math.Cos(math.Pi/4.0-φ/2.0) / (2.0 * s * s) * (Kp(φ) - math.Sin(math.Pi/4.0-φ/2.0))
}

// NgMeyerhof computes the self-weight factor of the Meyerhof method
//   Ng(φ) = (Nq(φ) − 1)・tan(1.4・φ)
func NgMeyerhof(φ float64) float64 {
	return (Nq(φ) - 1.0) * math.Tan(1.4*φ)
}

// Vpg computes the combined shape/depth correction factor of the De Beer
// (INISMa) method. Monotonically increasing for φu in (0, π/2).
//   φu -- undrained friction angle [rad]
func Vpg(φu float64) float64 {
	t := math.Tan(φu)
	th := math.Tan(math.Pi/4.0 + φu/2.0)
	e := math.Exp(1.5 * math.Pi * t)
	A := (1.0 + th*th) / (1.0 + 9.0*t*t)
	B := (3.0*t*th - 1.0) * e
	C := 3.0*t + th
	D := 2.0 * e * th * th
	E := -2.0 * th
	return (A*(B+C) + D + E) / 8.0
}

// Fphi computes the friction-angle interaction factor of the De Beer method
//   F(φu,φ') = (1+sinφ')^(tanφu/tanφ')・exp((π+φ'−φu)・tanφu)・(1+sinφu)/(sinφu・cosφu)
// Both angles must be ≥ MinPhi.
//   φu -- undrained friction angle [rad]
//   φp -- drained (peak) friction angle [rad]
func Fphi(φu, φp float64) float64 {
	t1 := math.Pow(1.0+math.Sin(φp), math.Tan(φu)/math.Tan(φp))
	t2 := math.Exp((math.Pi + φp - φu) * math.Tan(φu))
	t3 := (1.0 + math.Sin(φu)) / (math.Sin(φu) * math.Cos(φu))
	return t1 * t2 * t3
}
