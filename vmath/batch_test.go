package vmath

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vecmath/hwy"
)

func batchSizes() []int {
	lanes := hwy.MaxLanes[uint32]()
	return []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2}
}

func checkHashBatch[V Vector](t *testing.T, r *rand.Rand, gen func(*rand.Rand) V) {
	t.Helper()
	for _, n := range batchSizes() {
		src := randSlice(r, n, gen)
		dst := make([]uint32, n)
		HashBatch(dst, src)
		for i, v := range src {
			require.Equal(t, v.Hash(), dst[i], "n=%d i=%d v=%v", n, i, v)
		}
	}
}

func TestHashBatchMatchesHash(t *testing.T) {
	t.Logf("dispatch %s, %d uint32 lanes", hwy.CurrentName(), hwy.MaxLanes[uint32]())
	r := newTestRand()

	t.Run("Byte2", func(t *testing.T) { checkHashBatch(t, r, randByte2) })
	t.Run("Byte3", func(t *testing.T) { checkHashBatch(t, r, randByte3) })
	t.Run("Byte4", func(t *testing.T) { checkHashBatch(t, r, randByte4) })
	t.Run("Short2", func(t *testing.T) { checkHashBatch(t, r, randShort2) })
	t.Run("Short3", func(t *testing.T) { checkHashBatch(t, r, randShort3) })
	t.Run("Short4", func(t *testing.T) { checkHashBatch(t, r, randShort4) })
	t.Run("Uint2", func(t *testing.T) { checkHashBatch(t, r, randUint2) })
	t.Run("Uint3", func(t *testing.T) { checkHashBatch(t, r, randUint3) })
	t.Run("Uint4", func(t *testing.T) { checkHashBatch(t, r, randUint4) })
}

func checkHashWideBatch[V interface {
	Vector
	HashWide() W
}, W Digest[W]](t *testing.T, r *rand.Rand, gen func(*rand.Rand) V) {
	t.Helper()
	for _, n := range batchSizes() {
		src := randSlice(r, n, gen)
		dst := make([]W, n)
		HashWideBatch(dst, src)
		for i, v := range src {
			require.Equal(t, v.HashWide(), dst[i], "n=%d i=%d v=%v", n, i, v)
		}
	}
}

func TestHashWideBatchMatchesHashWide(t *testing.T) {
	r := newTestRand()

	t.Run("Byte2", func(t *testing.T) { checkHashWideBatch[Byte2, Uint2](t, r, randByte2) })
	t.Run("Byte3", func(t *testing.T) { checkHashWideBatch[Byte3, Uint3](t, r, randByte3) })
	t.Run("Byte4", func(t *testing.T) { checkHashWideBatch[Byte4, Uint4](t, r, randByte4) })
	t.Run("Short2", func(t *testing.T) { checkHashWideBatch[Short2, Uint2](t, r, randShort2) })
	t.Run("Short3", func(t *testing.T) { checkHashWideBatch[Short3, Uint3](t, r, randShort3) })
	t.Run("Short4", func(t *testing.T) { checkHashWideBatch[Short4, Uint4](t, r, randShort4) })
	t.Run("Uint2", func(t *testing.T) { checkHashWideBatch[Uint2, Uint2](t, r, randUint2) })
	t.Run("Uint3", func(t *testing.T) { checkHashWideBatch[Uint3, Uint3](t, r, randUint3) })
	t.Run("Uint4", func(t *testing.T) { checkHashWideBatch[Uint4, Uint4](t, r, randUint4) })
}

func TestBatchIndependentOfWidth(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		t.Run(fmt.Sprintf("%dbytes", width), func(t *testing.T) {
			restore := hwy.SetWidthForTesting(width)
			defer restore()
			require.Equal(t, width/4, hwy.MaxLanes[uint32]())

			r := newTestRand()
			checkHashBatch(t, r, randByte3)
			checkHashBatch(t, r, randShort2)
			checkHashBatch(t, r, randUint4)
			checkHashWideBatch[Byte4, Uint4](t, r, randByte4)
			checkHashWideBatch[Short3, Uint3](t, r, randShort3)
			checkHashWideBatch[Uint2, Uint2](t, r, randUint2)

			dst := make([]uint32, 2)
			HashBatch(dst, []Short2{{X: -5, Y: 7}, {X: 1, Y: 2}})
			assert.Equal(t, uint32(0x59410DFF), dst[0])
		})
	}
}

func TestHashBatchLeavesExtraDst(t *testing.T) {
	dst := []uint32{7, 7, 7, 7}
	HashBatch(dst, []Byte3{{X: 1, Y: 2, Z: 3}})

	assert.Equal(t, uint32(0x1ACA9ED1), dst[0])
	assert.Equal(t, []uint32{7, 7, 7}, dst[1:])
}

func TestHashBatchPanics(t *testing.T) {
	assert.PanicsWithValue(t, "vmath: HashBatch dst length 1 < src length 2", func() {
		HashBatch(make([]uint32, 1), make([]Short2, 2))
	})
	assert.Panics(t, func() {
		HashWideBatch(make([]Uint3, 1), make([]Short3, 2))
	})
	assert.PanicsWithValue(t, "vmath: HashWideBatch digest arity 2 != vector arity 3", func() {
		HashWideBatch(make([]Uint2, 1), make([]Byte3, 1))
	})
}

func BenchmarkHash(b *testing.B) {
	r := newTestRand()
	b.ReportAllocs()
	for _, n := range []int{16, 1024} {
		src := randSlice(r, n, randShort4)
		dst := make([]uint32, n)

		b.Run(fmt.Sprintf("PerVector/%d", n), func(b *testing.B) {
			for b.Loop() {
				for i, v := range src {
					dst[i] = v.Hash()
				}
			}
		})
		b.Run(fmt.Sprintf("Batch/%d", n), func(b *testing.B) {
			for b.Loop() {
				HashBatch(dst, src)
			}
		})
	}
}
