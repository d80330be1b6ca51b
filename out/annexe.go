// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out assembles the engineering annexe table from the calculation
// results and writes it to an xlsx workbook.
package out

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/calc"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/inp"
)

// AnnexeRow holds one row of the annexe table. Skipped rows carry only the
// depth (and elevation); their value cells stay empty in the workbook.
type AnnexeRow struct {
	Z       float64 // reported depth [m]
	Cote    float64 // elevation = cote_depart − z [m]; valid if HasCote
	HasCote bool    // elevation available
	Qc      float64 // corrected cone resistance [kgf/cm²]
	Q0      float64 // effective overburden stress [kgf/cm²]
	Qst     float64 // standardized cone resistance [kgf/cm²]; kept = qc
	PhipDeg float64 // φ' [deg]
	PhiuDeg float64 // φu [deg]
	Padm1   float64 // admissible pressure, footing 1 [kgf/cm²]
	Padm2   float64 // admissible pressure, footing 2 [kgf/cm²]
	C       float64 // compressibility coefficient = α・qc/q'0 [-]; valid if HasC
	HasC    bool    // C available (q'0 > 0)
	Nq      float64 // surcharge factor diagnostic [-]
	Ng      float64 // self-weight factor diagnostic [-]
	Skipped bool    // row-scoped failure; value cells empty
}

// Annexe holds the assembled annexe table
type Annexe struct {

	// input
	Deck *inp.Deck // input deck

	// derived
	Rows []*AnnexeRow // resampled table rows
}

// NewAnnexe assembles the annexe table from the calculation results.
//
// Report depths form a regular grid of the deck's step, from step to the
// maximum profile depth rounded to the grid. Each grid depth is matched to
// the nearest computed row within step/2; unmatched grid points are left
// out, except the last one which is always forced to the (rounded) maximum
// depth row.
func NewAnnexe(deck *inp.Deck, res *calc.Results) *Annexe {
	o := &Annexe{Deck: deck}
	if len(res.Rows) == 0 {
		return o
	}
	step := deck.Report.Step
	zmax := res.Rows[len(res.Rows)-1].Z
	n := int(math.Round(zmax / step))
	if n < 1 {
		n = 1
	}
	zround := float64(n) * step
	for i := 1; i <= n; i++ {
		target := float64(i) * step
		last := i == n

		// nearest computed row
		best := 0
		dist := math.Abs(res.Rows[0].Z - target)
		for j, r := range res.Rows {
			if d := math.Abs(r.Z - target); d < dist {
				best, dist = j, d
			}
		}
		if !last && dist > step/2.0+1e-9 {
			continue
		}
		src := res.Rows[best]
		z := src.Z
		if last {
			z = zround
		}
		o.Rows = append(o.Rows, o.newRow(z, src))
	}
	return o
}

// newRow builds one annexe row from a calculation result
func (o *Annexe) newRow(z float64, src *calc.RowResult) *AnnexeRow {
	row := &AnnexeRow{Z: z, Skipped: src.Err != nil}
	if o.Deck.Report.Cote != nil {
		row.Cote = *o.Deck.Report.Cote - z
		row.HasCote = true
	}
	if row.Skipped {
		return row
	}
	row.Qc = src.Qc
	row.Q0 = src.Q0
	row.Qst = src.Qc
	row.PhipDeg = src.PhipDeg
	row.PhiuDeg = src.PhiuDeg
	row.Padm1 = src.Padm1
	row.Padm2 = src.Padm2
	row.Nq = src.Nq
	row.Ng = src.Ng
	if src.Q0 > 0 {
		row.C = o.Deck.Report.Alpha * src.Qc / src.Q0
		row.HasC = true
	}
	return row
}

// Print dumps a compact version of the table to the console
func (o *Annexe) Print() {
	io.Pf("%6s%9s%8s%8s%8s%8s%8s%9s%9s\n", "Prof.", "Cote", "qc", "q'0", "φ'", "φu", "C", "Padm,1", "Padm,2")
	for _, r := range o.Rows {
		cote := "-"
		if r.HasCote {
			cote = io.Sf("%.2f", r.Cote)
		}
		if r.Skipped {
			io.Pf("%6.2f%9s%8s%8s%8s%8s%8s%9s%9s\n", r.Z, cote, "-", "-", "-", "-", "-", "-", "-")
			continue
		}
		c := "-"
		if r.HasC {
			c = io.Sf("%.1f", r.C)
		}
		io.Pf("%6.2f%9s%8.2f%8.3f%8.2f%8.2f%8s%9.2f%9.2f\n", r.Z, cote, r.Qc, r.Q0, r.PhipDeg, r.PhiuDeg, c, r.Padm1, r.Padm2)
	}
}
