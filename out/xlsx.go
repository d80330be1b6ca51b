// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// annexe table headers; the units row is built per deck (footing widths, α)
var annexeHeaders = []string{
	"Prof.", "Cote", "qc", "q'0", "Qst", "φ'", "φu", "Padm, 1", "Padm, 2", "C", "Nq", "Nγ",
}

// Save writes the annexe table to <dirout>/<fnkey>-annexe.xlsx
func (o *Annexe) Save(dirout, fnkey string) (err error) {

	// new workbook
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Annexe"
	err = f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return
	}

	// header and units rows
	unitsRow := []string{
		"[m]", "[m]", "[kg/cm²]", "[kg/cm²]", "[kg]", "[°]", "[°]",
		io.Sf("[kg/cm²] B=%dcm", int(math.Round(o.Deck.Footing.B1*100))),
		io.Sf("[kg/cm²] B=%dcm", int(math.Round(o.Deck.Footing.B2*100))),
		io.Sf("[/] α=%g", o.Deck.Report.Alpha),
		"[/]", "[/]",
	}
	for j, h := range annexeHeaders {
		if err = o.setCell(f, sheet, j+1, 1, h); err != nil {
			return
		}
		if err = o.setCell(f, sheet, j+1, 2, unitsRow[j]); err != nil {
			return
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return
	}
	err = f.SetCellStyle(sheet, "A1", "L2", headerStyle)
	if err != nil {
		return
	}
	err = f.SetColWidth(sheet, "A", "L", 12)
	if err != nil {
		return
	}

	// per-column number formats: stresses and depths with two decimals,
	// angles and admissible pressures with one
	twoDec := "0.00"
	oneDec := "0.0"
	styTwo, err := f.NewStyle(&excelize.Style{CustomNumFmt: &twoDec})
	if err != nil {
		return
	}
	styOne, err := f.NewStyle(&excelize.Style{CustomNumFmt: &oneDec})
	if err != nil {
		return
	}
	colSty := []int{styTwo, styTwo, styTwo, styTwo, styTwo, styOne, styOne, styOne, styOne, styOne, styTwo, styTwo}

	// data rows
	for i, r := range o.Rows {
		row := i + 3
		if err = o.setCell(f, sheet, 1, row, r.Z); err != nil {
			return
		}
		if r.HasCote {
			if err = o.setCell(f, sheet, 2, row, r.Cote); err != nil {
				return
			}
		}
		if !r.Skipped {
			vals := []interface{}{r.Qc, r.Q0, r.Qst, r.PhipDeg, r.PhiuDeg, r.Padm1, r.Padm2}
			for j, v := range vals {
				if err = o.setCell(f, sheet, j+3, row, v); err != nil {
					return
				}
			}
			if r.HasC {
				if err = o.setCell(f, sheet, 10, row, r.C); err != nil {
					return
				}
			}
			if err = o.setCell(f, sheet, 11, row, r.Nq); err != nil {
				return
			}
			if err = o.setCell(f, sheet, 12, row, r.Ng); err != nil {
				return
			}
		}
		for j := range annexeHeaders {
			cell, e := excelize.CoordinatesToCellName(j+1, row)
			if e != nil {
				return e
			}
			if err = f.SetCellStyle(sheet, cell, cell, colSty[j]); err != nil {
				return
			}
		}
	}

	// save
	return f.SaveAs(filepath.Join(dirout, fnkey+"-annexe.xlsx"))
}

// setCell writes one cell by column/row coordinates
func (o *Annexe) setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
