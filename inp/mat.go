// Copyright 2016 The CptReport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds soil material data
type Material struct {
	Name string     `json:"name"` // name of material
	Desc string     `json:"desc"` // description
	Prms dbf.Params `json:"prms"` // model parameters: rhodry, rhosat
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of soil materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}
	return mdb, nil
}

// Get returns a material or nil
func (o *MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// DefaultMaterial returns the built-in soil material used when the deck
// names no materials file: medium sand with ρdry=1800 and ρsat=2000 kg/m³.
func DefaultMaterial() *Material {
	return &Material{
		Name: "default",
		Desc: "built-in medium sand",
		Prms: dbf.Params{
			&dbf.P{N: "rhodry", V: 1800}, // [kg/m³]
			&dbf.P{N: "rhosat", V: 2000}, // [kg/m³]
		},
	}
}
