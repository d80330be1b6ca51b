// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bearing

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/units"
)

// RhoWater is the density of water [kg/m³] used in the buoyant unit weight
const RhoWater = 1000.0

// siteData holds the site parameters shared by all methods
type siteData struct {
	RhoDry   float64 // ρdry: unit mass of soil above the water table [kg/m³]
	RhoSat   float64 // ρsat: unit mass of saturated soil [kg/m³]
	Nappe    float64 // depth of the water table [m]; valid if HasNappe
	HasNappe bool    // water table defined
	Grav     float64 // gravitational acceleration [m/s²]
}

// init reads site parameters. Unknown parameter names are an error.
func (o *siteData) init(prms dbf.Params) error {
	o.Grav = units.Gravity
	for _, p := range prms {
		switch lowerKey(p) {
		case "rhodry":
			o.RhoDry = p.V
		case "rhosat":
			o.RhoSat = p.V
		case "nappe":
			o.Nappe = p.V
			o.HasNappe = true
		case "g":
			o.Grav = p.V
		default:
			return chk.Err("site parameter named %q is invalid", p.N)
		}
	}
	if o.RhoDry <= 0 {
		return chk.Err("dry unit mass must be positive. rhodry=%g is invalid", o.RhoDry)
	}
	if o.RhoSat < o.RhoDry {
		return chk.Err("saturated unit mass must be ≥ dry unit mass. rhosat=%g, rhodry=%g", o.RhoSat, o.RhoDry)
	}
	if o.HasNappe && o.Nappe < 0 {
		return chk.Err("water table depth must be non-negative. nappe=%g is invalid", o.Nappe)
	}
	if o.Grav <= 0 {
		return chk.Err("gravitational acceleration must be positive. g=%g is invalid", o.Grav)
	}
	return nil
}

// gammaApparent returns the unit weight [DaN/m³] used by the classical trio:
// saturated weight below the water table (depth ≥ nappe), dry weight above.
// No buoyant subtraction here; see gammaBuoyant for the De Beer rule.
func (o *siteData) gammaApparent(depth float64) float64 {
	if o.HasNappe && depth >= o.Nappe {
		return o.RhoSat * (o.Grav / 10.0)
	}
	return o.RhoDry * (o.Grav / 10.0)
}

// gammaBuoyant returns the unit weight [DaN/m³] used by the De Beer method:
// buoyant weight strictly below the water table (depth > nappe), dry weight
// otherwise. Note the operator: at depth == nappe the dry weight applies,
// unlike gammaApparent.
func (o *siteData) gammaBuoyant(depth float64) float64 {
	if o.HasNappe && depth > o.Nappe {
		return (o.RhoSat - RhoWater) * (o.Grav / 10.0)
	}
	return o.RhoDry * (o.Grav / 10.0)
}

// params returns the current site parameters
func (o *siteData) params() dbf.Params {
	prms := dbf.Params{
		&dbf.P{N: "rhodry", V: o.RhoDry},
		&dbf.P{N: "rhosat", V: o.RhoSat},
		&dbf.P{N: "g", V: o.Grav},
	}
	if o.HasNappe {
		prms = append(prms, &dbf.P{N: "nappe", V: o.Nappe})
	}
	return prms
}
