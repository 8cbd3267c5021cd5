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

// combineMul is the odd multiplier applied to the accumulator before each
// wide digest is added.
const combineMul = 0x9E3779B1

// CombineWide folds the wide digest h into the accumulator acc:
// acc*combineMul + h, lane by lane, wrapping.
//
// Folding is order sensitive, so aggregates whose element order matters
// (tuples, arrays) get distinct digests for permutations.
func CombineWide[W Digest[W]](acc, h W) W {
	return acc.MulScalar(combineMul).Add(h)
}

// HashSlice hashes an ordered aggregate of vectors. Each element is reduced
// to its wide digest with wide, the digests are folded with CombineWide
// starting from the zero accumulator, and the result is narrowed once.
//
//	h := vmath.HashSlice(points, vmath.Short3.HashWide)
func HashSlice[V any, W Digest[W]](vs []V, wide func(V) W) uint32 {
	var acc W
	for _, v := range vs {
		acc = CombineWide(acc, wide(v))
	}
	return acc.Hash()
}

// Hasher is the streaming form of HashSlice. The zero value is ready to use.
//
// A Hasher is not safe for concurrent use.
type Hasher[V interface{ HashWide() W }, W Digest[W]] struct {
	acc W
	n   int
}

// Write folds the wide digest of v into the running state.
func (h *Hasher[V, W]) Write(v V) {
	h.acc = CombineWide(h.acc, v.HashWide())
	h.n++
}

// Sum32 returns the narrow hash of everything written so far.
// It does not change the state.
func (h *Hasher[V, W]) Sum32() uint32 {
	return h.acc.Hash()
}

// Count returns the number of vectors written since the last Reset.
func (h *Hasher[V, W]) Count() int {
	return h.n
}

// Reset clears the state.
func (h *Hasher[V, W]) Reset() {
	var zero W
	h.acc = zero
	h.n = 0
}
