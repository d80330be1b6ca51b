// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// CptReport computes admissible bearing pressures of shallow foundations
// from CPT soundings and writes the engineering annexe table.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/calc"
	"github.com/9wgz2y6j8x-ctrl/cpt-report/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	deckpath, _ := io.ArgToFilename(0, "data/mons", ".cpt", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	writeAnnexe := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nCptReport -- bearing capacity of shallow foundations from CPT data\n")
		io.Pf("Copyright 2016 The CptReport Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"deck path", "deckpath", deckpath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"write annexe workbook", "writeAnnexe", writeAnnexe,
		))
	}

	// run calculation
	run := calc.NewMain(deckpath, "", erasePrev, verbose)
	err := run.Run()
	if err != nil {
		chk.Panic("calculation failed:\n%v", err)
	}

	// write annexe
	if writeAnnexe {
		annexe := out.NewAnnexe(run.Deck, run.Results)
		err = annexe.Save(run.Deck.DirOut, run.Deck.Key)
		if err != nil {
			chk.Panic("cannot write annexe workbook:\n%v", err)
		}
		if verbose {
			io.Pf("> Annexe written to %s\n", run.Deck.DirOut)
			annexe.Print()
		}
	}
}
