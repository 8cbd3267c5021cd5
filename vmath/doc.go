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

// Package vmath provides small fixed-size integer vectors and their
// deterministic hashes.
//
// The vector families are Byte2/3/4 (uint8), Short2/3/4 (int16) and
// Uint2/3/4 (uint32), with Bool2/3/4 holding componentwise comparison
// results. All of them are plain comparable value types with exported X, Y,
// Z and W fields and componentwise arithmetic that wraps at the element width.
//
// Every numeric vector has two hashes:
//
//   - Hash returns a narrow 32-bit digest suitable as a final hash value.
//   - HashWide returns one partially mixed uint32 lane per component. Wide
//     digests are meant to be folded together (see CombineWide, HashSlice and
//     Hasher) and narrowed once at the end.
//
// Both are pure functions of the component values and a fixed constant table,
// so digests are identical across runs and platforms. HashBatch and
// HashWideBatch compute the same digests for whole slices using lane vectors
// from package hwy.
package vmath

//go:generate go run ../cmd/vecgen -output . -pkg vmath -families all
