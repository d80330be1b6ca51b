// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frict inverts the internal friction angle of the soil from the
// ratio of cone resistance to effective overburden stress (CPT data).
//
// The target ratio switches formula at φ = 30°:
//   fine/intermediate soils (φ ≤ 30°):  r = 1.3・((Nq2π(φ) − 1)・tan30°/tanφ + 1)
//   granular soils (φ > 30°), c = 0:    r = 1.3・Nq2π(φ)
// with Nq2π(φ) = exp(2π・tanφ)・tan²(π/4 + φ/2). The root is found by
// bisection on [0, π/2].
package frict

import "math"

const (
	// Tolerance is the convergence threshold of the bisection on the target ratio
	Tolerance = 1e-6

	// MaxIterations bounds the bisection loop
	MaxIterations = 1000
)

// nq2pi computes Nq2π(φ) = exp(2π・tanφ)・tan²(π/4 + φ/2)
func nq2pi(φ float64) float64 {
	return math.Exp(2.0*math.Pi*math.Tan(φ)) * math.Pow(math.Tan(math.Pi/4.0+φ/2.0), 2.0)
}

// ratioFine is the target ratio for fine and intermediate soils (φ ≤ 30°)
func ratioFine(φ float64) float64 {
	if φ <= 0 {
		return 0
	}
	return 1.3 * ((nq2pi(φ)-1.0)*math.Tan(math.Pi/6.0)/math.Tan(φ) + 1.0)
}

// ratioGranular is the target ratio for granular soils (φ > 30°), zero cohesion
func ratioGranular(φ float64) float64 {
	return 1.3 * nq2pi(φ)
}

// bisection finds φ in [0, π/2] such that f(φ) ≈ target. Both target
// functions are increasing, so the bracket halving is straightforward; on
// non-convergence the midpoint of the final bracket is the best estimate.
func bisection(target float64, f func(φ float64) float64) float64 {
	φmin, φmax := 0.0, math.Pi/2.0
	for it := 0; it < MaxIterations; it++ {
		φmid := (φmin + φmax) / 2.0
		v := f(φmid)
		if math.Abs(v-target) <= Tolerance {
			return φmid
		}
		if v > target {
			φmax = φmid
		} else {
			φmin = φmid
		}
	}
	return (φmin + φmax) / 2.0
}

// Phiu computes the undrained friction angle φu [rad] from the cone
// resistance qc and the effective overburden stress q0 (same units).
// ok is false when qc ≤ 0 or q0 ≤ 0: the row carries no angle.
//
// The fine-soil formula is solved first; if its root reaches 30° the soil
// is granular and the computation is redone with the cohesionless formula.
func Phiu(qc, q0 float64) (φu float64, ok bool) {
	if qc <= 0 || q0 <= 0 {
		return 0, false
	}
	ratio := qc / q0
	φu = bisection(ratio, ratioFine)
	if φu >= math.Pi/6.0 {
		φu = bisection(ratio, ratioGranular)
	}
	return φu, true
}

// Phip computes the drained (peak) friction angle φ' [rad] from φu:
// φu itself for granular soils, clamped to 30° otherwise.
func Phip(φu float64) float64 {
	if φu > math.Pi/6.0 {
		return φu
	}
	return math.Pi / 6.0
}
