// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.cpt) JSON deck
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/9wgz2y6j8x-ctrl/cpt-report/units"
)

// Data holds global data for one calculation run
type Data struct {
	Desc    string `json:"desc"`    // description of the sounding/site
	Matfile string `json:"matfile"` // materials file path (relative to deck); empty => built-in default
	Mat     string `json:"mat"`     // name of soil material in matfile
	Method  string `json:"method"`  // bearing-capacity method name
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/cptreport
}

// FootingData holds the footing geometry and the safety factor
type FootingData struct {
	B1   float64 `json:"b1"`   // width of footing 1 [m]
	B2   float64 `json:"b2"`   // width of footing 2 [m]
	Sfac float64 `json:"sfac"` // safety factor [-]
}

// SetDefault sets default values
func (o *FootingData) SetDefault() {
	o.B1 = 0.6
	o.B2 = 1.5
	o.Sfac = 2.0
}

// WaterData holds the observed water levels [m below ground]. Both levels
// are optional; nil means not observed.
type WaterData struct {
	FinChantier *float64 `json:"finchantier"` // level at end of works
	FinEssai    *float64 `json:"finessai"`    // level at end of test
}

// ReportData holds the annexe table settings
type ReportData struct {
	Step  float64  `json:"step"`  // depth resampling step [m]
	Alpha float64  `json:"alpha"` // compressibility coefficient α [-]
	Cote  *float64 `json:"cote"`  // ground elevation at the sounding [m]; optional
}

// SetDefault sets default values
func (o *ReportData) SetDefault() {
	o.Step = 0.2
	o.Alpha = 1.5
}

// ConstantsData holds physical constants
type ConstantsData struct {
	G float64 `json:"g"` // gravitational acceleration [m/s²]
}

// SetDefault sets default values
func (o *ConstantsData) SetDefault() {
	o.G = units.Gravity
}

// Row holds one depth increment of the CPT profile. Explicit friction
// angles, when given, replace the qc/q'0 inversion for that row.
type Row struct {
	Z    float64  `json:"z"`    // depth [m]
	Qc   float64  `json:"qc"`   // corrected cone resistance [kgf/cm²]
	Phiu *float64 `json:"phiu"` // explicit φu override [deg]; optional
	Phip *float64 `json:"phip"` // explicit φ' override [deg]; optional
}

// Deck holds one complete input deck (.cpt file)
type Deck struct {

	// input
	Data      Data          `json:"data"`      // global data
	Footing   FootingData   `json:"footing"`   // footing geometry and safety factor
	Water     WaterData     `json:"water"`     // observed water levels
	Report    ReportData    `json:"report"`    // annexe settings
	Constants ConstantsData `json:"constants"` // physical constants
	Profile   []*Row        `json:"profile"`   // ordered depth rows

	// derived
	Key      string    // deck key == fnkey of deck file (+ alias)
	DirOut   string    // output directory
	Mat      *Material // selected soil material
	RhoDry   float64   // ρdry from material [kg/m³]
	RhoSat   float64   // ρsat from material [kg/m³]
	Nappe    float64   // resolved water table depth [m]; valid if HasNappe
	HasNappe bool      // water table defined
}

// ReadDeck reads a (.cpt) input deck. Structural problems (unreadable file,
// empty profile, invalid footing data) abort the run with a single panic
// before any row is processed.
//  Input:
//   deckfilepath -- deck (.cpt) filename including full path
//   alias        -- word to be appended to the deck key
//   erasePrev    -- erase previous result files in DirOut
func ReadDeck(deckfilepath, alias string, erasePrev bool) *Deck {

	// new deck
	var o Deck

	// read file
	b, err := os.ReadFile(deckfilepath)
	if err != nil {
		chk.Panic("ReadDeck: cannot read input deck file %q", deckfilepath)
	}

	// set default values
	o.Footing.SetDefault()
	o.Report.SetDefault()
	o.Constants.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadDeck: cannot unmarshal deck file %q", deckfilepath)
	}
	if o.Data.Method == "" {
		o.Data.Method = "De Beer (adapté)"
	}

	// deck key
	dir := filepath.Dir(deckfilepath)
	fn := filepath.Base(deckfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/cptreport/" + fnkey
	}
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}

	// erase previous results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// material
	if o.Data.Matfile != "" {
		mdb, err := ReadMat(dir, o.Data.Matfile)
		if err != nil {
			chk.Panic("ReadDeck: cannot read materials file %q:\n%v", o.Data.Matfile, err)
		}
		o.Mat = mdb.Get(o.Data.Mat)
		if o.Mat == nil {
			chk.Panic("ReadDeck: cannot find material %q in %q", o.Data.Mat, o.Data.Matfile)
		}
	} else {
		o.Mat = DefaultMaterial()
	}
	for _, p := range o.Mat.Prms {
		switch strings.ToLower(p.N) {
		case "rhodry":
			o.RhoDry = p.V
		case "rhosat":
			o.RhoSat = p.V
		}
	}

	// resolved water level; end-of-works measurement wins
	if o.Water.FinChantier != nil {
		o.Nappe, o.HasNappe = *o.Water.FinChantier, true
	} else if o.Water.FinEssai != nil {
		o.Nappe, o.HasNappe = *o.Water.FinEssai, true
	}

	// validation
	if len(o.Profile) == 0 {
		chk.Panic("ReadDeck: profile is empty in %q", deckfilepath)
	}
	for i, r := range o.Profile {
		if r.Z < 0 {
			chk.Panic("ReadDeck: profile depth must be non-negative. z=%g at row %d", r.Z, i)
		}
		if i > 0 && r.Z <= o.Profile[i-1].Z {
			chk.Panic("ReadDeck: profile depths must be strictly increasing. z=%g at row %d", r.Z, i)
		}
	}
	if o.Footing.B1 <= 0 || o.Footing.B2 <= 0 {
		chk.Panic("ReadDeck: footing widths must be positive. b1=%g, b2=%g", o.Footing.B1, o.Footing.B2)
	}
	if o.Footing.Sfac <= 0 {
		chk.Panic("ReadDeck: safety factor must be positive. sfac=%g", o.Footing.Sfac)
	}
	if o.Report.Step <= 0 {
		chk.Panic("ReadDeck: resampling step must be positive. step=%g", o.Report.Step)
	}
	if o.Constants.G <= 0 {
		chk.Panic("ReadDeck: gravitational acceleration must be positive. g=%g", o.Constants.G)
	}
	return &o
}

// SiteParams returns the site parameters consumed by the bearing models
func (o *Deck) SiteParams() dbf.Params {
	prms := dbf.Params{
		&dbf.P{N: "rhodry", V: o.RhoDry},
		&dbf.P{N: "rhosat", V: o.RhoSat},
		&dbf.P{N: "g", V: o.Constants.G},
	}
	if o.HasNappe {
		prms = append(prms, &dbf.P{N: "nappe", V: o.Nappe})
	}
	return prms
}
