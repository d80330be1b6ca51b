// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geost implements the effective vertical (geostatic) stress along
// a homogeneous soil column with an optional water table.
package geost

import "github.com/cpmech/gosl/chk"

// RhoWater is the density of water [kg/m³]
const RhoWater = 1000.0

// Column holds the soil column data for the overburden stress computation
type Column struct {
	RhoDry   float64 // ρdry: unit mass of soil above the water table [kg/m³]
	RhoSat   float64 // ρsat: unit mass of saturated soil [kg/m³]
	Nappe    float64 // depth of the water table [m]; valid if HasNappe
	HasNappe bool    // water table defined
}

// NewColumn returns a new soil column. With hasNappe == false the nappe
// value is ignored and the dry branch applies at every depth.
func NewColumn(rhodry, rhosat, nappe float64, hasNappe bool) (*Column, error) {
	if rhodry <= 0 {
		return nil, chk.Err("dry unit mass must be positive. rhodry=%g is invalid", rhodry)
	}
	if rhosat < rhodry {
		return nil, chk.Err("saturated unit mass must be ≥ dry unit mass. rhosat=%g, rhodry=%g", rhosat, rhodry)
	}
	if hasNappe && nappe < 0 {
		return nil, chk.Err("water table depth must be non-negative. nappe=%g is invalid", nappe)
	}
	return &Column{RhoDry: rhodry, RhoSat: rhosat, Nappe: nappe, HasNappe: hasNappe}, nil
}

// Stress computes the effective vertical stress q'0 [kgf/cm²] at depth z [m].
// Above the water table (or without one)
//   q'0 = z・ρdry / 10000
// Below the water table (z ≥ nappe) the saturated layer contributes its
// buoyant weight ρsat − ρwater:
//   q'0 = (zn・ρdry + (z − zn)・(ρsat − ρwater)) / 10000
// z ≤ 0 is the ground surface and returns 0. The division by 10000 converts
// kg/m² to kgf/cm² directly; gravity cancels and does not appear.
func (o *Column) Stress(z float64) float64 {
	if z <= 0 {
		return 0
	}
	if o.HasNappe && z >= o.Nappe {
		zn := o.Nappe
		if zn < 0 {
			zn = 0
		}
		return (zn*o.RhoDry + (z-zn)*(o.RhoSat-RhoWater)) / 10000.0
	}
	return z * o.RhoDry / 10000.0
}
