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
	"bytes"
	"fmt"
	"io"
	"strings"
)

var components = [4]string{"X", "Y", "Z", "W"}

// binaryOp is a componentwise operator between two vectors of the same type.
type binaryOp struct {
	name string
	op   string
	doc  string
}

var arithmeticOps = []binaryOp{
	{"Add", "+", "returns the componentwise sum v + b."},
	{"Sub", "-", "returns the componentwise difference v - b."},
	{"Mul", "*", "returns the componentwise product v * b."},
	{"Div", "/", "returns the componentwise quotient v / b. It panics if a component of b is zero."},
	{"Mod", "%", "returns the componentwise remainder v % b. It panics if a component of b is zero."},
	{"And", "&", "returns the componentwise bitwise AND of v and b."},
	{"Or", "|", "returns the componentwise bitwise OR of v and b."},
	{"Xor", "^", "returns the componentwise bitwise XOR of v and b."},
}

var scalarOps = []binaryOp{
	{"AddScalar", "+", "returns v with s added to every component."},
	{"SubScalar", "-", "returns v with s subtracted from every component."},
	{"MulScalar", "*", "returns v with every component multiplied by s."},
	{"DivScalar", "/", "returns v with every component divided by s. It panics if s is zero."},
}

var compareOps = []binaryOp{
	{"Eq", "==", "reports v == b for each component."},
	{"Ne", "!=", "reports v != b for each component."},
	{"Lt", "<", "reports v < b for each component."},
	{"Le", "<=", "reports v <= b for each component."},
	{"Gt", ">", "reports v > b for each component."},
	{"Ge", ">=", "reports v >= b for each component."},
}

// EmitFamily writes the complete generated source for f, unformatted.
func EmitFamily(w io.Writer, pkg string, f Family) {
	fmt.Fprintf(w, "// Code generated by vecgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package %s\n\n", pkg)
	fmt.Fprintf(w, "import \"fmt\"\n")
	for n := 2; n <= 4; n++ {
		if f.IsNumeric() {
			emitNumeric(w, f, n)
		} else {
			emitBool(w, f, n)
		}
	}
}

// EmitFamilyBytes is EmitFamily into a fresh buffer.
func EmitFamilyBytes(pkg string, f Family) []byte {
	var buf bytes.Buffer
	EmitFamily(&buf, pkg, f)
	return buf.Bytes()
}

// each joins fn(i, component) for the first n components with sep.
func each(n int, sep string, fn func(i int, c string) string) string {
	parts := make([]string, n)
	for i, c := range components[:n] {
		parts[i] = fn(i, c)
	}
	return strings.Join(parts, sep)
}

// literal builds a keyed composite literal of typ from per-component expressions.
func literal(typ string, n int, fn func(c string) string) string {
	return typ + "{" + each(n, ", ", func(_ int, c string) string {
		return c + ": " + fn(c)
	}) + "}"
}

func emitFunc(w io.Writer, doc, signature, body string) {
	fmt.Fprintf(w, "\n// %s\nfunc %s {\n%s}\n", doc, signature, body)
}

func emitNumeric(w io.Writer, f Family, n int) {
	typ := f.TypeName(n)
	elem := f.Elem
	wide := (Family{Name: "uint"}).TypeName(n)

	fmt.Fprintf(w, "\n// %s is a %d-component vector of %s.\n", typ, n, elem)
	fmt.Fprintf(w, "type %s struct {\n\t%s %s\n}\n", typ, strings.Join(components[:n], ", "), elem)

	args := each(n, ", ", func(_ int, c string) string { return strings.ToLower(c) })
	emitFunc(w,
		fmt.Sprintf("New%s returns a %s with the given components.", typ, typ),
		fmt.Sprintf("New%s(%s %s) %s", typ, args, elem, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, strings.ToLower)))

	emitFunc(w,
		fmt.Sprintf("Splat%s returns a %s with every component set to s.", typ, typ),
		fmt.Sprintf("Splat%s(s %s) %s", typ, elem, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(string) string { return "s" })))

	emitFunc(w,
		fmt.Sprintf("%sFromArray returns the %s whose components are a in order.", typ, typ),
		fmt.Sprintf("%sFromArray(a [%d]%s) %s", typ, n, elem, typ),
		fmt.Sprintf("\treturn %s{%s}\n", typ, each(n, ", ", func(i int, c string) string {
			return fmt.Sprintf("%s: a[%d]", c, i)
		})))

	emitFunc(w,
		"Array returns the components in order.",
		fmt.Sprintf("(v %s) Array() [%d]%s", typ, n, elem),
		fmt.Sprintf("\treturn [%d]%s{%s}\n", n, elem, each(n, ", ", func(_ int, c string) string { return "v." + c })))

	emitLenGetWith(w, typ, elem, n)

	for _, op := range arithmeticOps {
		emitFunc(w,
			op.name+" "+op.doc,
			fmt.Sprintf("(v %s) %s(b %s) %s", typ, op.name, typ, typ),
			fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string {
				return "v." + c + " " + op.op + " b." + c
			})))
	}

	for _, op := range scalarOps {
		emitFunc(w,
			op.name+" "+op.doc,
			fmt.Sprintf("(v %s) %s(s %s) %s", typ, op.name, elem, typ),
			fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string {
				return "v." + c + " " + op.op + " s"
			})))
	}

	emitFunc(w,
		"Neg returns the componentwise negation -v, wrapping at the element width.",
		fmt.Sprintf("(v %s) Neg() %s", typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "-v." + c })))

	emitFunc(w,
		"Not returns the componentwise bitwise complement of v.",
		fmt.Sprintf("(v %s) Not() %s", typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "^v." + c })))

	emitFunc(w,
		"Shl shifts every component left by k bits.",
		fmt.Sprintf("(v %s) Shl(k uint) %s", typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "v." + c + " << k" })))

	emitFunc(w,
		"Shr shifts every component right by k bits.",
		fmt.Sprintf("(v %s) Shr(k uint) %s", typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "v." + c + " >> k" })))

	emitFunc(w,
		"Min returns the componentwise minimum of v and b.",
		fmt.Sprintf("(v %s) Min(b %s) %s", typ, typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "min(v." + c + ", b." + c + ")" })))

	emitFunc(w,
		"Max returns the componentwise maximum of v and b.",
		fmt.Sprintf("(v %s) Max(b %s) %s", typ, typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "max(v." + c + ", b." + c + ")" })))

	boolTyp := (Family{Name: "bool"}).TypeName(n)
	for _, op := range compareOps {
		emitFunc(w,
			op.name+" "+op.doc,
			fmt.Sprintf("(v %s) %s(b %s) %s", typ, op.name, typ, boolTyp),
			fmt.Sprintf("\treturn %s\n", literal(boolTyp, n, func(c string) string {
				return "v." + c + " " + op.op + " b." + c
			})))
	}

	emitFunc(w,
		"Equals reports whether every component of v equals the one in b.",
		fmt.Sprintf("(v %s) Equals(b %s) bool", typ, typ),
		"\treturn v == b\n")

	for _, other := range f.conversions() {
		otherTyp := other.TypeName(n)
		emitFunc(w,
			fmt.Sprintf("%s converts every component to %s.", other.Method(), other.Elem),
			fmt.Sprintf("(v %s) %s() %s", typ, other.Method(), otherTyp),
			fmt.Sprintf("\treturn %s\n", literal(otherTyp, n, func(c string) string {
				return other.Elem + "(v." + c + ")"
			})))
	}

	emitString(w, f, typ, n)

	widened := each(n, ", ", func(_ int, c string) string {
		if f.Widen == "" {
			return "v." + c
		}
		return f.Widen + "(v." + c + ")"
	})
	fmt.Fprintf(w, "\nfunc (v %s) hashLanes() ([4]uint32, *hashTable) {\n", typ)
	fmt.Fprintf(w, "\treturn [4]uint32{%s}, tableFor(%s, %d)\n}\n", widened, f.Kind, n)

	emitFunc(w,
		"Hash returns the narrow 32-bit hash of v.",
		fmt.Sprintf("(v %s) Hash() uint32", typ),
		fmt.Sprintf("\tlanes, t := v.hashLanes()\n\treturn hashNarrow(lanes[:%d], t)\n", n))

	emitFunc(w,
		"HashWide returns the wide hash of v: one partially mixed lane per\n// component, to be combined with other wide hashes before narrowing.",
		fmt.Sprintf("(v %s) HashWide() %s", typ, wide),
		fmt.Sprintf("\tlanes, t := v.hashLanes()\n\thashWide(lanes[:%d], t)\n\treturn %s{%s}\n", n, wide,
			each(n, ", ", func(i int, c string) string { return fmt.Sprintf("%s: lanes[%d]", c, i) })))

	if f.Widen == "" {
		fmt.Fprintf(w, "\nfunc (v %s) fromLanes(lanes []uint32) %s {\n", typ, typ)
		fmt.Fprintf(w, "\treturn %s{%s}\n}\n", typ,
			each(n, ", ", func(i int, c string) string { return fmt.Sprintf("%s: lanes[%d]", c, i) }))
	}
}

func emitLenGetWith(w io.Writer, typ, elem string, n int) {
	emitFunc(w,
		fmt.Sprintf("Len returns the number of components, %d.", n),
		fmt.Sprintf("(v %s) Len() int", typ),
		fmt.Sprintf("\treturn %d\n", n))

	var get strings.Builder
	get.WriteString("\tswitch i {\n")
	for i, c := range components[:n] {
		fmt.Fprintf(&get, "\tcase %d:\n\t\treturn v.%s\n", i, c)
	}
	fmt.Fprintf(&get, "\t}\n\tpanic(indexError(%q, i, %d))\n", typ, n)
	emitFunc(w,
		fmt.Sprintf("Get returns component i. It panics if i is outside [0, %d).", n),
		fmt.Sprintf("(v %s) Get(i int) %s", typ, elem),
		get.String())

	var with strings.Builder
	with.WriteString("\tswitch i {\n")
	for i, c := range components[:n] {
		fmt.Fprintf(&with, "\tcase %d:\n\t\tv.%s = s\n", i, c)
	}
	fmt.Fprintf(&with, "\tdefault:\n\t\tpanic(indexError(%q, i, %d))\n\t}\n\treturn v\n", typ, n)
	emitFunc(w,
		fmt.Sprintf("With returns a copy of v with component i set to s.\n// It panics if i is outside [0, %d).", n),
		fmt.Sprintf("(v %s) With(i int, s %s) %s", typ, elem, typ),
		with.String())
}

func emitString(w io.Writer, f Family, typ string, n int) {
	format := strings.ToLower(typ) + "(" + each(n, ", ", func(int, string) string { return f.Verb }) + ")"
	emitFunc(w,
		fmt.Sprintf("String formats v as %s.", strings.ToLower(typ)+"("+each(n, ", ", func(_ int, c string) string { return strings.ToLower(c) })+")"),
		fmt.Sprintf("(v %s) String() string", typ),
		fmt.Sprintf("\treturn fmt.Sprintf(%q, %s)\n", format, each(n, ", ", func(_ int, c string) string { return "v." + c })))
}

func emitBool(w io.Writer, f Family, n int) {
	typ := f.TypeName(n)

	fmt.Fprintf(w, "\n// %s is a %d-component vector of bool, produced by componentwise comparisons.\n", typ, n)
	fmt.Fprintf(w, "type %s struct {\n\t%s bool\n}\n", typ, strings.Join(components[:n], ", "))

	emitFunc(w,
		"All reports whether every component is true.",
		fmt.Sprintf("(v %s) All() bool", typ),
		fmt.Sprintf("\treturn %s\n", each(n, " && ", func(_ int, c string) string { return "v." + c })))

	emitFunc(w,
		"Any reports whether at least one component is true.",
		fmt.Sprintf("(v %s) Any() bool", typ),
		fmt.Sprintf("\treturn %s\n", each(n, " || ", func(_ int, c string) string { return "v." + c })))

	emitFunc(w,
		"Not returns the componentwise negation of v.",
		fmt.Sprintf("(v %s) Not() %s", typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "!v." + c })))

	emitFunc(w,
		"And returns the componentwise conjunction of v and b.",
		fmt.Sprintf("(v %s) And(b %s) %s", typ, typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "v." + c + " && b." + c })))

	emitFunc(w,
		"Or returns the componentwise disjunction of v and b.",
		fmt.Sprintf("(v %s) Or(b %s) %s", typ, typ, typ),
		fmt.Sprintf("\treturn %s\n", literal(typ, n, func(c string) string { return "v." + c + " || b." + c })))

	emitFunc(w,
		"Equals reports whether every component of v equals the one in b.",
		fmt.Sprintf("(v %s) Equals(b %s) bool", typ, typ),
		"\treturn v == b\n")

	emitString(w, f, typ, n)
}
