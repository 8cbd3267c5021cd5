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

package vmath

// elemKind selects the hash table row for an element type.
type elemKind int

const (
	kindByte elemKind = iota
	kindShort
	kindUint
	numKinds
)

func (k elemKind) String() string {
	switch k {
	case kindByte:
		return "byte"
	case kindShort:
		return "short"
	case kindUint:
		return "uint"
	default:
		return "unknown"
	}
}

// hashTable holds the multipliers for one (element kind, arity) pair.
// Only the first arity entries of narrow and wide are used.
//
// The values are arbitrary odd constants. They are part of the output format:
// changing any of them changes every digest produced with the table.
type hashTable struct {
	narrow  [4]uint32
	final   uint32
	wide    [4]uint32
	wideAdd uint32
}

// hashTables is indexed by elemKind and arity-2.
var hashTables = [numKinds][3]hashTable{
	kindByte: {
		{
			narrow:  [4]uint32{0x7AE1A4C5, 0xC4B8D7E3},
			final:   0x9E3B5C71,
			wide:    [4]uint32{0x6F2B9D13, 0xD1A7E54B},
			wideAdd: 0x8C4F3A27,
		},
		{
			narrow:  [4]uint32{0x685835CF, 0xC3D32AE1, 0xB966942F},
			final:   0xFE9856B3,
			wide:    [4]uint32{0x613DF3DB, 0x86E4C6E7, 0x4AF2B16D},
			wideAdd: 0x9F8C6A35,
		},
		{
			narrow:  [4]uint32{0x0BB6D3C7, 0x5E7A1F29, 0xE3C95B87, 0x7D4B2A11},
			final:   0xA6B3C4E9,
			wide:    [4]uint32{0x1F49A3D5, 0xF2C17B3B, 0x3A8E6D4F, 0xB57D19C3},
			wideAdd: 0x4C2E9F8D,
		},
	},
	kindShort: {
		{
			narrow:  [4]uint32{0x93D5F8A7, 0x58C1E24B},
			final:   0xD67AB935,
			wide:    [4]uint32{0x2E8D4C61, 0xAB3F7E19},
			wideAdd: 0x7193C5DF,
		},
		{
			narrow:  [4]uint32{0x4E6B2A95, 0x9A2D7C13, 0x36F18E4D},
			final:   0xE1B7A3F9,
			wide:    [4]uint32{0xC8E5B06B, 0x15A9D3E7, 0x8F3C6B21},
			wideAdd: 0x5BD41E87,
		},
		{
			narrow:  [4]uint32{0xF1D86B3D, 0x27A45C9F, 0xBC8E3D15, 0x6319A7C5},
			final:   0x8AD2F60B,
			wide:    [4]uint32{0x43B7E9A1, 0xDE5A1C77, 0x7C29F4B3, 0x1B6E8D59},
			wideAdd: 0xA4F13C6F,
		},
	},
	kindUint: {
		{
			narrow:  [4]uint32{0x5C7E3B9D, 0xE8B16A43},
			final:   0x32D9F7A1,
			wide:    [4]uint32{0x9B4C2E65, 0x47F8A1DB},
			wideAdd: 0xC5E3D82F,
		},
		{
			narrow:  [4]uint32{0x8D1F6C37, 0x2B94E5A9, 0xF67C3D0F},
			final:   0x6AE85B13,
			wide:    [4]uint32{0xB3D27A45, 0x5F1C8E9B, 0xE94A6D27},
			wideAdd: 0x1D7B3FC1,
		},
		{
			narrow:  [4]uint32{0x3C8B5E1D, 0xA7F29C63, 0x64D1B8A5, 0xD93E4F7B},
			final:   0x0F5A6C3D,
			wide:    [4]uint32{0x7E2D9B4F, 0xC1A65E83, 0x2F8B7D19, 0x96C3E1A7},
			wideAdd: 0x4B9E2D65,
		},
	},
}

func tableFor(k elemKind, arity int) *hashTable {
	return &hashTables[k][arity-2]
}

// Widen returns the hash input for an 8 or 16-bit component: its unsigned
// bit pattern zero-extended to 32 bits. For int16 this means -1 widens to
// 0x0000FFFF, not 0xFFFFFFFF.
func Widen[T ~uint8 | ~int16](c T) uint32 {
	return uint32(uint16(c))
}

// hashNarrow returns sum(lanes[i]*narrow[i]) + final, wrapping.
func hashNarrow(lanes []uint32, t *hashTable) uint32 {
	var sum uint32
	for i, l := range lanes {
		sum += l * t.narrow[i]
	}
	return sum + t.final
}

// hashWide replaces lanes[i] with lanes[i]*wide[i] + wideAdd, wrapping.
func hashWide(lanes []uint32, t *hashTable) {
	for i := range lanes {
		lanes[i] = lanes[i]*t.wide[i] + t.wideAdd
	}
}

// Hash returns v.Hash(). It lets generic code hash any vector type of this
// package without naming it.
func Hash[V Vector](v V) uint32 {
	return v.Hash()
}

// HashWide returns v.HashWide(). W is not inferred from V, so callers spell
// out both type arguments:
//
//	d := vmath.HashWide[vmath.Short3, vmath.Uint3](v)
func HashWide[V interface{ HashWide() W }, W Digest[W]](v V) W {
	return v.HashWide()
}
