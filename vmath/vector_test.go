package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, Byte3{X: 1, Y: 2, Z: 3}, NewByte3(1, 2, 3))
	assert.Equal(t, Short4{X: -7, Y: -7, Z: -7, W: -7}, SplatShort4(-7))
	assert.Equal(t, Uint2{X: 9, Y: 10}, Uint2FromArray([2]uint32{9, 10}))
	assert.Equal(t, [4]uint8{4, 3, 2, 1}, NewByte4(4, 3, 2, 1).Array())

	v := NewShort3(-1, 0, 1)
	assert.Equal(t, v, Short3FromArray(v.Array()))
}

func TestGetWith(t *testing.T) {
	v := NewByte4(10, 20, 30, 40)
	for i, want := range []uint8{10, 20, 30, 40} {
		assert.Equal(t, want, v.Get(i))
	}
	assert.Equal(t, 4, v.Len())

	w := v.With(2, 99)
	assert.Equal(t, NewByte4(10, 20, 99, 40), w)
	assert.Equal(t, uint8(30), v.Z, "With must not modify the receiver")
}

func TestIndexOutOfRangePanics(t *testing.T) {
	assert.PanicsWithValue(t, "vmath: Short2 index 2 out of range [0, 2)", func() {
		NewShort2(1, 2).Get(2)
	})
	assert.PanicsWithValue(t, "vmath: Uint3 index -1 out of range [0, 3)", func() {
		NewUint3(1, 2, 3).With(-1, 0)
	})
	assert.Panics(t, func() { Byte4{}.Get(4) })
}

func TestArithmeticWraps(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"byte add", NewByte2(250, 1).Add(NewByte2(10, 1)), NewByte2(4, 2)},
		{"byte sub", NewByte2(0, 5).Sub(NewByte2(1, 3)), NewByte2(255, 2)},
		{"byte mul", NewByte3(16, 3, 0).Mul(NewByte3(16, 5, 200)), NewByte3(0, 15, 0)},
		{"byte neg", NewByte2(1, 0).Neg(), NewByte2(255, 0)},
		{"short add", NewShort2(32767, -1).Add(NewShort2(1, 1)), NewShort2(-32768, 0)},
		{"short neg min", NewShort2(-32768, 5).Neg(), NewShort2(-32768, -5)},
		{"short mul", NewShort2(256, -3).Mul(NewShort2(256, 4)), NewShort2(0, -12)},
		{"uint sub", NewUint2(0, 10).Sub(NewUint2(1, 3)), NewUint2(0xFFFFFFFF, 7)},
		{"uint scalar", NewUint3(1, 2, 3).MulScalar(0x80000000), NewUint3(0x80000000, 0, 0x80000000)},
		{"short add scalar", NewShort3(1, 2, 3).AddScalar(-1), NewShort3(0, 1, 2)},
		{"byte sub scalar", NewByte2(0, 5).SubScalar(1), NewByte2(255, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDivMod(t *testing.T) {
	assert.Equal(t, NewShort2(-3, 3), NewShort2(-7, 7).Div(NewShort2(2, 2)))
	assert.Equal(t, NewShort2(-1, 1), NewShort2(-7, 7).Mod(NewShort2(2, 2)))
	assert.Equal(t, NewShort2(-32768, 0), NewShort2(-32768, 0).Div(NewShort2(-1, 1)))
	assert.Equal(t, NewByte3(50, 1, 0), NewByte3(200, 7, 3).DivScalar(4))
	assert.Equal(t, NewUint2(1, 0), NewUint2(10, 12).Mod(NewUint2(3, 4)))

	assert.Panics(t, func() { NewByte2(1, 1).Div(NewByte2(1, 0)) })
	assert.Panics(t, func() { NewShort3(1, 1, 1).DivScalar(0) })
}

func TestBitwise(t *testing.T) {
	v := NewByte4(0xF0, 0x0F, 0xFF, 0x00)
	b := SplatByte4(0x3C)

	assert.Equal(t, NewByte4(0x30, 0x0C, 0x3C, 0x00), v.And(b))
	assert.Equal(t, NewByte4(0xFC, 0x3F, 0xFF, 0x3C), v.Or(b))
	assert.Equal(t, NewByte4(0xCC, 0x33, 0xC3, 0x3C), v.Xor(b))
	assert.Equal(t, NewByte4(0x0F, 0xF0, 0x00, 0xFF), v.Not())
	assert.Equal(t, NewShort2(0, -1), NewShort2(-1, 0).Not())
}

func TestShifts(t *testing.T) {
	assert.Equal(t, NewByte2(0x80, 0x80), NewByte2(0x01, 0x81).Shl(7), "high bits fall off")
	assert.Equal(t, NewByte2(0x7F, 0x00), NewByte2(0xFF, 0x01).Shr(1), "unsigned shift is logical")
	assert.Equal(t, NewShort2(-4, 4), NewShort2(-8, 8).Shr(1), "signed shift is arithmetic")
	assert.Equal(t, NewShort2(-1, 0), NewShort2(-8, 8).Shr(16), "shifting past the width saturates")
	assert.Equal(t, NewUint2(0, 0), NewUint2(1, 0xFFFFFFFF).Shl(32))
	assert.Equal(t, NewUint2(2, 0xFFFFFFFE), NewUint2(1, 0xFFFFFFFF).Shl(1))
}

func TestMinMax(t *testing.T) {
	a := NewShort3(-5, 10, 0)
	b := NewShort3(3, -20, 0)
	assert.Equal(t, NewShort3(-5, -20, 0), a.Min(b))
	assert.Equal(t, NewShort3(3, 10, 0), a.Max(b))
	assert.Equal(t, NewByte2(1, 255), NewByte2(1, 255).Max(NewByte2(0, 200)))
}

func TestComparisons(t *testing.T) {
	a := NewShort4(-1, 0, 1, 5)
	b := NewShort4(0, 0, 0, 5)

	assert.Equal(t, Bool4{Y: true, W: true}, a.Eq(b))
	assert.Equal(t, Bool4{X: true, Z: true}, a.Ne(b))
	assert.Equal(t, Bool4{X: true}, a.Lt(b))
	assert.Equal(t, Bool4{X: true, Y: true, W: true}, a.Le(b))
	assert.Equal(t, Bool4{Z: true}, a.Gt(b))
	assert.Equal(t, Bool4{Y: true, Z: true, W: true}, a.Ge(b))

	// Unsigned comparison does not see 0xFF as negative.
	assert.Equal(t, Bool2{X: false, Y: true}, NewByte2(0xFF, 0).Lt(NewByte2(1, 1)))

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.True(t, a == NewShort4(-1, 0, 1, 5))
}

func TestBoolVectors(t *testing.T) {
	v := Bool3{X: true, Y: false, Z: true}

	assert.False(t, v.All())
	assert.True(t, v.Any())
	assert.True(t, Bool3{X: true, Y: true, Z: true}.All())
	assert.False(t, Bool4{}.Any())
	assert.Equal(t, Bool3{X: false, Y: true, Z: false}, v.Not())
	assert.Equal(t, Bool3{X: true}, v.And(Bool3{X: true, Y: true}))
	assert.Equal(t, Bool3{X: true, Y: true, Z: true}, v.Or(Bool3{Y: true}))
	assert.True(t, v.Equals(Bool3{X: true, Z: true}))
}

func TestConversions(t *testing.T) {
	s := NewShort3(-1, 300, 7)
	assert.Equal(t, NewByte3(255, 44, 7), s.Byte(), "conversion to byte truncates")
	assert.Equal(t, NewUint3(0xFFFFFFFF, 300, 7), s.Uint(), "conversion to uint sign-extends")

	b := NewByte2(255, 0)
	assert.Equal(t, NewShort2(255, 0), b.Short())
	assert.Equal(t, NewUint2(255, 0), b.Uint())

	u := NewUint4(0x12345678, 0xFFFF8000, 1, 0)
	assert.Equal(t, NewShort4(0x5678, -32768, 1, 0), u.Short())
	assert.Equal(t, NewByte4(0x78, 0x00, 1, 0), u.Byte())
}

func TestString(t *testing.T) {
	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{NewByte3(1, 2, 3), "byte3(1, 2, 3)"},
		{NewByte2(0, 255), "byte2(0, 255)"},
		{NewShort2(-5, 7), "short2(-5, 7)"},
		{NewShort4(1, -2, 3, -4), "short4(1, -2, 3, -4)"},
		{NewUint3(0, 4294967295, 9), "uint3(0, 4294967295, 9)"},
		{Bool2{X: true}, "bool2(true, false)"},
		{Bool4{Y: true, W: true}, "bool4(false, true, false, true)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestVectorsAsMapKeys(t *testing.T) {
	seen := map[Short2]int{}
	seen[NewShort2(1, -1)]++
	seen[NewShort2(1, -1)]++
	seen[NewShort2(-1, 1)]++
	assert.Equal(t, map[Short2]int{{X: 1, Y: -1}: 2, {X: -1, Y: 1}: 1}, seen)
}
