// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// FactorsTable prints sweeps of the bearing-capacity factors for method
// comparison during engineering review.
package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/mdl/bearing"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/units"
)

func main() {

	// input parameters
	phiMin := io.ArgToFloat(0, 0)
	phiMax := io.ArgToFloat(1, 45)
	npts := io.ArgToInt(2, 10)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"minimum friction angle [deg]", "phiMin", phiMin,
		"maximum friction angle [deg]", "phiMax", phiMax,
		"number of points", "npts", npts,
	))

	// table
	io.Pf("%8s%12s%12s%12s%12s%12s\n", "φ [°]", "Nq", "Ng(BH)", "Ng(CK)", "Ng(M)", "Vpg")
	for _, phiDeg := range utl.LinSpace(phiMin, phiMax, npts) {
		φ := units.ToRadians(phiDeg)
		if φ < bearing.MinPhi {
			io.Pf("%8.2f%12.3f%12.3f%12.3f%12.3f%12s\n", phiDeg, bearing.Nq(φ), bearing.NgBrinchHansen(φ), bearing.NgCaquotKerisel(φ), bearing.NgMeyerhof(φ), "-")
			continue
		}
		io.Pf("%8.2f%12.3f%12.3f%12.3f%12.3f%12.3f\n", phiDeg, bearing.Nq(φ), bearing.NgBrinchHansen(φ), bearing.NgCaquotKerisel(φ), bearing.NgMeyerhof(φ), bearing.Vpg(φ))
	}
}
