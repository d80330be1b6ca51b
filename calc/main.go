// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/inp"
)

// Main holds all data for one calculation run over a CPT profile
type Main struct {
	Deck    *inp.Deck   // input deck
	Calc    *Calculator // row calculator
	Results *Results    // outcome; set by Run
	ShowMsg bool        // show messages
}

// NewMain returns a new Main structure. Structural failures (unreadable
// deck, empty profile, unknown method, invalid site parameters) panic with
// a single diagnostic before any row is processed.
//  Input:
//   deckfilepath -- deck (.cpt) filename including full path
//   alias        -- word to be appended to the deck key
//   erasePrev    -- erase previous result files
//   verbose      -- show messages
func NewMain(deckfilepath, alias string, erasePrev, verbose bool) (o *Main) {
	o = new(Main)
	o.Deck = inp.ReadDeck(deckfilepath, alias, erasePrev)
	if o.Deck == nil {
		chk.Panic("cannot read input deck")
	}
	var err error
	o.Calc, err = NewCalculator(o.Deck)
	if err != nil {
		chk.Panic("cannot allocate calculator:\n%v", err)
	}
	o.ShowMsg = verbose
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> Input (.cpt) deck read\n")
	}
	return
}

// Run computes all profile rows, strictly in profile order. Row-scoped
// failures are recorded and skipped; they never abort the run.
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Computing %d profile rows with method %q\n", len(o.Deck.Profile), o.Calc.Mdl.Name())
	}

	// row loop
	o.Results = new(Results)
	for _, r := range o.Deck.Profile {
		res := o.Calc.Row(r)
		o.Results.Rows = append(o.Results.Rows, res)
		if res.Err != nil {
			o.Results.Nskipped++
			if o.ShowMsg {
				io.Pforan("> row at z=%g m skipped: %v\n", r.Z, res.Err)
			}
			continue
		}
		if res.Degenerate {
			o.Results.Ndegenerate++
		}
	}

	// summary
	if o.ShowMsg {
		ncomputed := len(o.Results.Rows) - o.Results.Nskipped
		io.Pf("> %d rows computed, %d skipped, %d degenerate\n", ncomputed, o.Results.Nskipped, o.Results.Ndegenerate)
	}
	return
}

// onexit cleans up and prints the final message
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
