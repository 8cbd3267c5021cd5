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
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownFamily is returned for a family name vecgen has no template for.
var ErrUnknownFamily = errors.New("unknown family")

// Family describes one element type whose 2, 3 and 4 component vectors are generated.
type Family struct {
	// Name is the lower-case family name, also used for String() output and
	// the generated file name.
	Name string

	// Elem is the Go element type.
	Elem string

	// Kind is the vmath hash table key constant, empty for bool.
	Kind string

	// Widen is the function applied to a component before hashing.
	// Empty means the component is already a uint32.
	Widen string

	// Verb is the fmt verb for one component.
	Verb string
}

var allFamilies = []Family{
	{Name: "byte", Elem: "uint8", Kind: "kindByte", Widen: "Widen", Verb: "%d"},
	{Name: "short", Elem: "int16", Kind: "kindShort", Widen: "Widen", Verb: "%d"},
	{Name: "uint", Elem: "uint32", Kind: "kindUint", Verb: "%d"},
	{Name: "bool", Elem: "bool", Verb: "%t"},
}

var titleCaser = cases.Title(language.English)

// FamilyNames returns the names of all known families in generation order.
func FamilyNames() []string {
	names := make([]string, len(allFamilies))
	for i, f := range allFamilies {
		names[i] = f.Name
	}
	return names
}

// LookupFamily returns the family called name.
func LookupFamily(name string) (Family, error) {
	for _, f := range allFamilies {
		if f.Name == name {
			return f, nil
		}
	}
	return Family{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// IsNumeric reports whether the family supports arithmetic and hashing.
func (f Family) IsNumeric() bool {
	return f.Kind != ""
}

// TypeName returns the exported vector type name for n components, e.g. Byte3.
func (f Family) TypeName(n int) string {
	return titleCaser.String(f.Name) + strconv.Itoa(n)
}

// Method returns the conversion method name targeting this family, e.g. Short.
func (f Family) Method() string {
	return titleCaser.String(f.Name)
}

// FileName returns the generated file name for the family.
func (f Family) FileName() string {
	return f.Name + ".gen.go"
}

// conversions returns the families a numeric vector converts to.
func (f Family) conversions() []Family {
	var result []Family
	for _, other := range allFamilies {
		if other.IsNumeric() && other.Name != f.Name {
			result = append(result, other)
		}
	}
	return result
}
