package vmath

import "math/rand/v2"

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5EED, 0xC0FFEE))
}

func randU8(r *rand.Rand) uint8   { return uint8(r.Uint32()) }
func randI16(r *rand.Rand) int16  { return int16(r.Uint32()) }
func randU32(r *rand.Rand) uint32 { return r.Uint32() }

func randByte2(r *rand.Rand) Byte2 { return Byte2{X: randU8(r), Y: randU8(r)} }
func randByte3(r *rand.Rand) Byte3 { return Byte3{X: randU8(r), Y: randU8(r), Z: randU8(r)} }
func randByte4(r *rand.Rand) Byte4 {
	return Byte4{X: randU8(r), Y: randU8(r), Z: randU8(r), W: randU8(r)}
}

func randShort2(r *rand.Rand) Short2 { return Short2{X: randI16(r), Y: randI16(r)} }
func randShort3(r *rand.Rand) Short3 { return Short3{X: randI16(r), Y: randI16(r), Z: randI16(r)} }
func randShort4(r *rand.Rand) Short4 {
	return Short4{X: randI16(r), Y: randI16(r), Z: randI16(r), W: randI16(r)}
}

func randUint2(r *rand.Rand) Uint2 { return Uint2{X: randU32(r), Y: randU32(r)} }
func randUint3(r *rand.Rand) Uint3 { return Uint3{X: randU32(r), Y: randU32(r), Z: randU32(r)} }
func randUint4(r *rand.Rand) Uint4 {
	return Uint4{X: randU32(r), Y: randU32(r), Z: randU32(r), W: randU32(r)}
}

func randSlice[V any](r *rand.Rand, n int, gen func(*rand.Rand) V) []V {
	vs := make([]V, n)
	for i := range vs {
		vs[i] = gen(r)
	}
	return vs
}
