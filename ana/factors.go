// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds published reference values used as independent test
// oracles for the bearing-capacity factor library.
package ana

import "github.com/cpmech/gosl/chk"

// tabulated friction angles [deg]
var phiTab = []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45}

// Reissner/Prandtl surcharge factor Nq = exp(π・tanφ)・tan²(π/4+φ/2)
// (e.g. Brinch Hansen 1970, Table 1)
var nqTab = []float64{1.00, 1.57, 2.47, 3.94, 6.40, 10.66, 18.40, 33.30, 64.20, 134.87}

// Brinch Hansen self-weight factor Ng = 1.5・(Nq−1)・tanφ
var ngBHTab = []float64{0.00, 0.07, 0.39, 1.18, 2.95, 6.76, 15.07, 33.92, 79.54, 200.81}

// RefNq returns the tabulated Nq value. The angle must be one of the
// tabulated values (0, 5, ..., 45 degrees); no interpolation is performed.
func RefNq(phiDeg float64) float64 {
	return lookup(phiDeg, nqTab)
}

// RefNgBH returns the tabulated Brinch Hansen Ng value. Tabulated angles only.
func RefNgBH(phiDeg float64) float64 {
	return lookup(phiDeg, ngBHTab)
}

func lookup(phiDeg float64, tab []float64) float64 {
	for i, p := range phiTab {
		if p == phiDeg {
			return tab[i]
		}
	}
	chk.Panic("friction angle %g is not tabulated", phiDeg)
	return 0
}
