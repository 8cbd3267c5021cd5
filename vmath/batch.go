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

import (
	"fmt"

	"github.com/ajroetker/go-vecmath/hwy"
)

// columns transposes the widened components of a run of vectors into one
// lane buffer per component.
type columns struct {
	arity int
	t     *hashTable
	cols  [4][]uint32
}

func newColumns[V Vector](first V) *columns {
	_, t := first.hashLanes()
	c := &columns{arity: first.Len(), t: t}
	lanes := hwy.MaxLanes[uint32]()
	for s := range c.arity {
		c.cols[s] = make([]uint32, lanes)
	}
	return c
}

func gather[V Vector](c *columns, src []V) {
	for j, v := range src {
		lanes, _ := v.hashLanes()
		for s := range c.arity {
			c.cols[s][j] = lanes[s]
		}
	}
}

// HashBatch sets dst[i] = src[i].Hash() for every element of src.
// It panics if dst is shorter than src.
//
// The vectors are hashed hwy.MaxLanes[uint32]() at a time in column form,
// the layout a native multiply-add kernel consumes. The portable hwy ops
// allocate a fresh Vec per operation, so on its own this is not faster than
// calling Hash in a loop; BenchmarkHash compares the two.
func HashBatch[V Vector](dst []uint32, src []V) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("vmath: HashBatch dst length %d < src length %d", len(dst), len(src)))
	}
	if len(src) == 0 {
		return
	}

	c := newColumns(src[0])
	lanes := hwy.MaxLanes[uint32]()

	var mul [4]hwy.Vec[uint32]
	for s := range c.arity {
		mul[s] = hwy.Set(c.t.narrow[s])
	}
	final := hwy.Set(c.t.final)

	hwy.ProcessWithTail[uint32](len(src),
		func(offset int) {
			gather(c, src[offset:offset+lanes])
			acc := final
			for s := range c.arity {
				acc = hwy.MulAdd(hwy.Load(c.cols[s]), mul[s], acc)
			}
			hwy.Store(acc, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[uint32](count)
			gather(c, src[offset:offset+count])
			acc := final
			for s := range c.arity {
				acc = hwy.MulAdd(hwy.MaskLoad(mask, c.cols[s]), mul[s], acc)
			}
			hwy.MaskStore(mask, acc, dst[offset:])
		},
	)
}

// HashWideBatch sets dst[i] = src[i].HashWide() for every element of src.
// It panics if dst is shorter than src or if W does not have the arity of V.
// It shares the column layout and the allocation behavior of HashBatch.
func HashWideBatch[V Vector, W Digest[W]](dst []W, src []V) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("vmath: HashWideBatch dst length %d < src length %d", len(dst), len(src)))
	}
	if len(src) == 0 {
		return
	}

	var zero W
	c := newColumns(src[0])
	if zero.Len() != c.arity {
		panic(fmt.Sprintf("vmath: HashWideBatch digest arity %d != vector arity %d", zero.Len(), c.arity))
	}
	lanes := hwy.MaxLanes[uint32]()

	var mul [4]hwy.Vec[uint32]
	for s := range c.arity {
		mul[s] = hwy.Set(c.t.wide[s])
	}
	add := hwy.Set(c.t.wideAdd)

	var out [4][]uint32
	for s := range c.arity {
		out[s] = make([]uint32, lanes)
	}
	scatter := func(offset, count int) {
		var row [4]uint32
		for j := range count {
			for s := range c.arity {
				row[s] = out[s][j]
			}
			dst[offset+j] = zero.fromLanes(row[:c.arity])
		}
	}

	hwy.ProcessWithTail[uint32](len(src),
		func(offset int) {
			gather(c, src[offset:offset+lanes])
			for s := range c.arity {
				hwy.Store(hwy.MulAdd(hwy.Load(c.cols[s]), mul[s], add), out[s])
			}
			scatter(offset, lanes)
		},
		func(offset, count int) {
			mask := hwy.TailMask[uint32](count)
			gather(c, src[offset:offset+count])
			for s := range c.arity {
				hwy.MaskStore(mask, hwy.MulAdd(hwy.MaskLoad(mask, c.cols[s]), mul[s], add), out[s])
			}
			scatter(offset, count)
		},
	)
}
