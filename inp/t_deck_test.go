// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_deck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck01. read deck and defaults")

	deck := ReadDeck("data/mons.cpt", "", false)
	if deck == nil {
		tst.Errorf("cannot read deck\n")
		return
	}
	io.Pforan("deck: %v (%d rows)\n", deck.Key, len(deck.Profile))

	if deck.Key != "mons" {
		tst.Errorf("wrong deck key: %q\n", deck.Key)
		return
	}
	if deck.Data.Method != "De Beer (adapté)" {
		tst.Errorf("wrong method: %q\n", deck.Data.Method)
		return
	}
	chk.Float64(tst, "b1", 1e-15, deck.Footing.B1, 0.6)
	chk.Float64(tst, "b2", 1e-15, deck.Footing.B2, 1.5)
	chk.Float64(tst, "sfac", 1e-15, deck.Footing.Sfac, 2.0)
	chk.Float64(tst, "step (default)", 1e-15, deck.Report.Step, 0.2)
	chk.Float64(tst, "alpha (default)", 1e-15, deck.Report.Alpha, 1.5)
	chk.Float64(tst, "g (default)", 1e-15, deck.Constants.G, 9.81)

	// material resolution
	if deck.Mat == nil || deck.Mat.Name != "mons-sand" {
		tst.Errorf("wrong material\n")
		return
	}
	chk.Float64(tst, "rhodry", 1e-15, deck.RhoDry, 1800)
	chk.Float64(tst, "rhosat", 1e-15, deck.RhoSat, 2000)

	// no water table in this deck
	if deck.HasNappe {
		tst.Errorf("deck has no water levels\n")
		return
	}

	// cote present
	if deck.Report.Cote == nil {
		tst.Errorf("cote must be set\n")
		return
	}
	chk.Float64(tst, "cote", 1e-15, *deck.Report.Cote, 102.75)

	if len(deck.Profile) != 10 {
		tst.Errorf("wrong number of rows: %d\n", len(deck.Profile))
		return
	}
	chk.Float64(tst, "z[0]", 1e-15, deck.Profile[0].Z, 0.2)
	chk.Float64(tst, "qc[0]", 1e-15, deck.Profile[0].Qc, 16.6)
}

func Test_deck02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck02. water level priority and angle overrides")

	deck := ReadDeck("data/ghlin.cpt", "", false)
	if deck == nil {
		tst.Errorf("cannot read deck\n")
		return
	}

	// end-of-works level wins over end-of-test level
	if !deck.HasNappe {
		tst.Errorf("water table must be defined\n")
		return
	}
	chk.Float64(tst, "nappe", 1e-15, deck.Nappe, 1.2)

	// explicit angle overrides on one row
	r := deck.Profile[2]
	if r.Phiu == nil || r.Phip == nil {
		tst.Errorf("row 2 must carry angle overrides\n")
		return
	}
	chk.Float64(tst, "phiu override", 1e-15, *r.Phiu, 22.5)
	chk.Float64(tst, "phip override", 1e-15, *r.Phip, 30.0)

	// site parameters include the nappe
	prms := deck.SiteParams()
	found := false
	for _, p := range prms {
		if p.N == "nappe" {
			found = true
			chk.Float64(tst, "nappe prm", 1e-15, p.V, 1.2)
		}
	}
	if !found {
		tst.Errorf("site parameters must carry the nappe\n")
		return
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "soils.mat")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if len(mdb.Materials) != 2 {
		tst.Errorf("wrong number of materials: %d\n", len(mdb.Materials))
		return
	}
	mat := mdb.Get("ghlin-clay")
	if mat == nil {
		tst.Errorf("cannot find material\n")
		return
	}
	if mdb.Get("nonexistent") != nil {
		tst.Errorf("unknown material must return nil\n")
		return
	}
	def := DefaultMaterial()
	chk.Float64(tst, "default rhodry", 1e-15, def.Prms[0].V, 1800)
	chk.Float64(tst, "default rhosat", 1e-15, def.Prms[1].V, 2000)
}
