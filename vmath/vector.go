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

import "fmt"

// Vector is implemented by every numeric vector type of this package
// (Byte2..4, Short2..4, Uint2..4). It cannot be implemented outside it.
type Vector interface {
	comparable
	Len() int
	Hash() uint32
	hashLanes() ([4]uint32, *hashTable)
}

// Digest is implemented by the wide hash types Uint2, Uint3 and Uint4.
type Digest[W any] interface {
	Vector
	Add(b W) W
	MulScalar(s uint32) W
	fromLanes(lanes []uint32) W
}

func indexError(typ string, i, n int) string {
	return fmt.Sprintf("vmath: %s index %d out of range [0, %d)", typ, i, n)
}
