// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements angle and pressure unit conversions.
//
// The bearing-capacity formulas work internally in DaN/m² whereas the CPT
// data and the annexe table use kgf/cm²; all conversions between the two
// families live here. With g [m/s²]:
//   1 kgf/cm² = (g/10) DaN/cm² = 1000・g DaN/m²
//   1 DaN/m²  = 10/(10000・g) kgf/cm²
package units

import "math"

// Gravity is the default gravitational acceleration [m/s²]. Input decks
// may override it; g cancels along the complete calculation chain, so the
// final pressures in kgf/cm² do not depend on its value.
const Gravity = 9.81

// ToRadians converts an angle from degrees to radians
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// ToDegrees converts an angle from radians to degrees
func ToDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// KgfCm2ToDaNM2 converts a stress from kgf/cm² to DaN/m²
func KgfCm2ToDaNM2(q, g float64) float64 {
	return q * 1000.0 * g
}

// DaNM2ToKgfCm2 converts a stress from DaN/m² to kgf/cm²
func DaNM2ToKgfCm2(p, g float64) float64 {
	return p * 10.0 / (10000.0 * g)
}
