// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bearing implements bearing-capacity models for shallow foundations
// on frictional soils. Four methods are available: Brinch Hansen,
// Caquot & Kérisel, Meyerhof and De Beer (INISMa). The models compute the
// gross pressure in DaN/m²; safety factor and reporting-unit conversion are
// the caller's job.
package bearing

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Method identifies one of the available bearing-capacity methods
type Method int

// the complete set of methods; there is no fifth one
const (
	BrinchHansen Method = iota
	CaquotKerisel
	Meyerhof
	DeBeer
)

// String returns the historical method name as used in input decks
func (m Method) String() string {
	switch m {
	case BrinchHansen:
		return "Brinch Hansen"
	case CaquotKerisel:
		return "Caquot Kérisel"
	case Meyerhof:
		return "Meyerhof"
	case DeBeer:
		return "De Beer (adapté)"
	}
	return "unknown"
}

// MethodByName parses a method name. Both the historical deck names and
// bare ASCII aliases are accepted.
func MethodByName(name string) (Method, error) {
	switch name {
	case "Brinch Hansen", "brinch-hansen":
		return BrinchHansen, nil
	case "Caquot Kérisel", "caquot-kerisel":
		return CaquotKerisel, nil
	case "Meyerhof", "meyerhof":
		return Meyerhof, nil
	case "De Beer (adapté)", "debeer":
		return DeBeer, nil
	}
	return 0, chk.Err("bearing-capacity method %q is not available", name)
}

// Input holds the per-row quantities consumed by a model
type Input struct {
	Depth float64 // depth of the row [m]
	Phiu  float64 // φu: undrained friction angle [rad]
	Phip  float64 // φ': drained (peak) friction angle [rad]; De Beer only
	Q     float64 // q'0: effective overburden stress [DaN/m²]
	Qp    float64 // stress at foundation level [DaN/m²]; set equal to Q by the calculator
	B     float64 // footing width [m]
}

// Result holds the gross pressure and the reporting diagnostics
type Result struct {
	P          float64 // gross bearing pressure [DaN/m²]
	Nq         float64 // surcharge factor diagnostic [-]
	Ng         float64 // self-weight factor diagnostic [-]; Vpg for De Beer
	Degenerate bool    // φu ≈ 0 short-circuit taken (De Beer)
}

// Model defines the interface for bearing-capacity models
type Model interface {
	Name() string                     // historical method name
	Init(prms dbf.Params) error       // initialises model with site parameters
	Gross(in *Input) (*Result, error) // computes gross pressure and diagnostics
	GetPrms() dbf.Params              // gets current site parameters
}

// New returns a new bearing-capacity model
func New(method Method) (Model, error) {
	allocator, ok := allocators[method]
	if !ok {
		return nil, chk.Err("method %q is not available in 'bearing' database", method)
	}
	return allocator(), nil
}

// allocators holds all available models; method => allocator
var allocators = map[Method]func() Model{}

func lowerKey(p *dbf.P) string {
	return strings.ToLower(p.N)
}
