// Copyright 2025 go-vecmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// Generator writes one file per family into OutputDir.
type Generator struct {
	OutputDir  string
	PackageOut string
	Families   []Family
}

// Run generates every configured family and returns the written paths.
func (g *Generator) Run() ([]string, error) {
	if g.PackageOut == "" {
		return nil, fmt.Errorf("output package name is empty")
	}
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, f := range g.Families {
		filename := filepath.Join(g.OutputDir, f.FileName())
		src, err := g.Source(f)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", filename, err)
		}
		written = append(written, filename)
	}
	return written, nil
}

// Source returns the formatted source for one family.
func (g *Generator) Source(f Family) ([]byte, error) {
	raw := EmitFamilyBytes(g.PackageOut, f)

	formatted, err := imports.Process(f.FileName(), raw, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s family: %w", f.Name, err)
	}
	return formatted, nil
}
