// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/wispengine/geom/base/iox/jsonx"
	"github.com/wispengine/geom/base/iox/yamlx"
	"github.com/wispengine/geom/math32"
)

// Data is the serialized form of a [Path]: a flat interleaved
// x, y vertex list plus the corner set and closed flag. A nil Corners
// on decode means every vertex is a corner, which matches the compact
// flat-array form produced by hand-authored asset files.
type Data struct {
	Vertices []float32 `json:"vertices" yaml:"vertices"`
	Corners  []int     `json:"corners" yaml:"corners"`
	Closed   bool      `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// FromFloats returns a new closed path from a flat interleaved
// x, y coordinate list, with every vertex flagged as a corner.
// The length must be even.
func FromFloats(coords []float32) Path {
	if len(coords)%2 != 0 {
		panic(fmt.Sprintf("ppath.FromFloats: odd coordinate count %d", len(coords)))
	}
	n := len(coords) / 2
	p := Path{
		Vertices: make([]math32.Vector2, n),
		Corners:  make([]int, n),
		Closed:   true,
	}
	for i := 0; i < n; i++ {
		p.Vertices[i] = math32.Vec2(coords[2*i], coords[2*i+1])
		p.Corners[i] = i
	}
	return p
}

// FromData returns the path encoded by the given serialized form.
// A nil Corners flags every vertex as a corner; an explicitly empty
// one flags none. Corner indices must be in range for the vertex
// count.
func FromData(d Data) Path {
	p := FromFloats(d.Vertices)
	p.Closed = d.Closed
	if d.Corners != nil {
		p.Corners = slices.Clone(d.Corners)
		slices.Sort(p.Corners)
		p.Corners = slices.Compact(p.Corners)
		if n := len(p.Corners); n > 0 && (p.Corners[0] < 0 || p.Corners[n-1] >= p.Len()) {
			panic(fmt.Sprintf("ppath.FromData: corner index out of range for %d vertices", p.Len()))
		}
	}
	return p
}

// validate checks the serialized form for an even coordinate count
// and in-range corner indices.
func (d Data) validate() error {
	if len(d.Vertices)%2 != 0 {
		return fmt.Errorf("ppath: odd coordinate count %d", len(d.Vertices))
	}
	n := len(d.Vertices) / 2
	for _, c := range d.Corners {
		if c < 0 || c >= n {
			return fmt.Errorf("ppath: corner index %d out of range for %d vertices", c, n)
		}
	}
	return nil
}

// Data returns the serialized form of the path.
func (p Path) Data() Data {
	d := Data{
		Vertices: make([]float32, 0, 2*len(p.Vertices)),
		Corners:  slices.Clone(p.Corners),
		Closed:   p.Closed,
	}
	if d.Corners == nil {
		d.Corners = []int{}
	}
	for _, v := range p.Vertices {
		d.Vertices = append(d.Vertices, v.X, v.Y)
	}
	return d
}

// Open reads the path from the given JSON or YAML file, chosen by
// extension (.yaml / .yml for YAML, JSON otherwise).
func Open(filename string) (Path, error) {
	var p Path
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yamlx.Open(&p, filename)
	default:
		err = jsonx.Open(&p, filename)
	}
	return p, err
}

// Save writes the path to the given file in its [Data] record form,
// as JSON or YAML chosen by extension.
func (p Path) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yamlx.Save(p, filename)
	default:
		return jsonx.Save(p, filename)
	}
}

// MarshalJSON implements [json.Marshaler], encoding the path in its
// [Data] record form.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Data())
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts either the
// [Data] record form or a bare flat coordinate array, which decodes
// as a closed all-corners path.
func (p *Path) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var coords []float32
		if err := json.Unmarshal(b, &coords); err != nil {
			return err
		}
		if len(coords)%2 != 0 {
			return fmt.Errorf("ppath: odd coordinate count %d", len(coords))
		}
		*p = FromFloats(coords)
		return nil
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	*p = FromData(d)
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the path in its
// [Data] record form.
func (p Path) MarshalYAML() (any, error) {
	return p.Data(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts either the
// [Data] record form or a bare flat coordinate sequence, which
// decodes as a closed all-corners path.
func (p *Path) UnmarshalYAML(unmarshal func(any) error) error {
	var coords []float32
	if err := unmarshal(&coords); err == nil {
		if len(coords)%2 != 0 {
			return fmt.Errorf("ppath: odd coordinate count %d", len(coords))
		}
		*p = FromFloats(coords)
		return nil
	}
	var d Data
	if err := unmarshal(&d); err != nil {
		return err
	}
	if err := d.validate(); err != nil {
		return err
	}
	*p = FromData(d)
	return nil
}
