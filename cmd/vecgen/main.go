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

// Command vecgen generates the fixed-size vector families of package vmath.
//
// Usage:
//
//	vecgen -output ./vmath -families byte,short,uint,bool
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vecgen -output .
//
// For every requested family the generator writes <family>.gen.go holding
// the 2, 3 and 4 component types with their componentwise operations,
// conversions, formatting and hash methods. The hash constant tables and
// the hash routines themselves live in hand-written code.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	packageOut = flag.String("pkg", "vmath", "Output package name")
	families   = flag.String("families", "all", "Comma-separated families ("+strings.Join(FamilyNames(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	list, err := parseFamilies(*families)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Families:   list,
	}

	written, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", strings.Join(written, ", "))
}

func parseFamilies(s string) ([]Family, error) {
	var names []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 1 && names[0] == "all" {
		names = FamilyNames()
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no families specified")
	}

	var result []Family
	for _, name := range names {
		f, err := LookupFamily(name)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, nil
}
