// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides helper functions for reading and writing
// values to and from JSON files and streams.
package jsonx

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
)

// Open reads the given value from the given JSON file.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, fp)
}

// OpenFS reads the given value from the given JSON file
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, fp)
}

// Read reads the given value from the given reader as JSON.
func Read(v any, reader io.Reader) error {
	return json.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given value from the given JSON bytes.
func ReadBytes(v any, data []byte) error {
	return json.Unmarshal(data, v)
}

// Save writes the given value to the given JSON file, indented.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Write(v, fp)
}

// Write writes the given value to the given writer as indented JSON.
func Write(v any, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}

// WriteBytes returns the given value as indented JSON bytes.
func WriteBytes(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "\t")
}
