package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	v := Load(data)

	if v.NumLanes() != MaxLanes[uint32]() {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[uint32]())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]uint32{7, 8})
	if v.NumLanes() != 2 {
		t.Errorf("Load of 2 elements: got %d lanes, want 2", v.NumLanes())
	}
}

func TestSet(t *testing.T) {
	v := Set[uint32](42)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.data[i])
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[uint16]()
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != uint16(i) {
			t.Errorf("Iota: lane %d: got %v, want %d", i, v.data[i], i)
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](5.0)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.data[i])
		}
	}
}

func TestAddWraps(t *testing.T) {
	result := Add(Set[uint32](math.MaxUint32), Set[uint32](2))

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 1 {
			t.Errorf("Add: lane %d: got %v, want 1", i, result.data[i])
		}
	}
}

func TestSub(t *testing.T) {
	result := Sub(Set[int16](3), Set[int16](10))

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -7 {
			t.Errorf("Sub: lane %d: got %v, want -7", i, result.data[i])
		}
	}
}

func TestMul(t *testing.T) {
	a := Set[uint32](0x80000001)
	b := Set[uint32](2)
	result := Mul(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 2 {
			t.Errorf("Mul: lane %d: got %#x, want 0x2", i, result.data[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint32
		want    uint32
	}{
		{"small", 3, 4, 5, 17},
		{"wrapping product", 0xFFFFFFFF, 3, 0, 0xFFFFFFFD},
		{"wrapping sum", 1, 1, 0xFFFFFFFF, 0},
		{"hash lane", 3, 0xB966942F, 0xFE9856B3, 0x2ACC1340},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MulAdd(Set(tt.a), Set(tt.b), Set(tt.c))
			for i := 0; i < result.NumLanes(); i++ {
				if result.data[i] != tt.want {
					t.Errorf("MulAdd: lane %d: got %#x, want %#x", i, result.data[i], tt.want)
				}
			}
		})
	}
}

func TestReduceSum(t *testing.T) {
	v := Iota[uint32]()
	n := uint32(v.NumLanes())

	got := ReduceSum(v)
	want := n * (n - 1) / 2
	if got != want {
		t.Errorf("ReduceSum: got %v, want %v", got, want)
	}
}

func TestEqual(t *testing.T) {
	a := Iota[uint32]()
	b := Set[uint32](2)
	mask := Equal(a, b)

	if mask.CountTrue() != 1 {
		t.Errorf("Equal: got %d active lanes, want 1", mask.CountTrue())
	}
	if !mask.GetBit(2) {
		t.Error("Equal: lane 2 should be active")
	}
	if mask.AllTrue() {
		t.Error("Equal: AllTrue should be false")
	}
	if !mask.AnyTrue() {
		t.Error("Equal: AnyTrue should be true")
	}
}

func TestMaskLoad(t *testing.T) {
	data := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	mask := TailMask[uint32](2)
	v := MaskLoad(mask, data)

	if v.NumLanes() != MaxLanes[uint32]() {
		t.Fatalf("MaskLoad: got %d lanes, want %d", v.NumLanes(), MaxLanes[uint32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		want := uint32(0)
		if i < 2 {
			want = data[i]
		}
		if v.data[i] != want {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, v.data[i], want)
		}
	}
}

func TestMaskStore(t *testing.T) {
	dst := []uint32{9, 9, 9}
	mask := TailMask[uint32](2)
	MaskStore(mask, Set[uint32](1), dst)

	want := []uint32{1, 1, 9}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("MaskStore: dst[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestVecStore(t *testing.T) {
	dst := make([]int16, 2)
	Set[int16](-3).Store(dst)

	if dst[0] != -3 || dst[1] != -3 {
		t.Errorf("Vec.Store: got %v, want [-3 -3]", dst)
	}
}

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" || name == "unknown" {
		t.Errorf("CurrentName should name a known level, got %q", name)
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestSetWidthForTesting(t *testing.T) {
	origLevel, origWidth := CurrentLevel(), CurrentWidth()

	tests := []struct {
		width int
		level DispatchLevel
		lanes int
	}{
		{16, DispatchScalar, 4},
		{32, DispatchAVX2, 8},
		{64, DispatchAVX512, 16},
	}

	for _, tt := range tests {
		restore := SetWidthForTesting(tt.width)
		if CurrentLevel() != tt.level || CurrentWidth() != tt.width {
			t.Errorf("SetWidthForTesting(%d): level %v width %d, want %v %d",
				tt.width, CurrentLevel(), CurrentWidth(), tt.level, tt.width)
		}
		if got := MaxLanes[uint32](); got != tt.lanes {
			t.Errorf("SetWidthForTesting(%d): MaxLanes[uint32] = %d, want %d", tt.width, got, tt.lanes)
		}
		if got := Set[uint32](1).NumLanes(); got != tt.lanes {
			t.Errorf("SetWidthForTesting(%d): Set lanes = %d, want %d", tt.width, got, tt.lanes)
		}
		restore()

		if CurrentLevel() != origLevel || CurrentWidth() != origWidth {
			t.Fatalf("restore after width %d: level %v width %d, want %v %d",
				tt.width, CurrentLevel(), CurrentWidth(), origLevel, origWidth)
		}
	}
}

func TestSetWidthForTestingRejectsOddWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetWidthForTesting(24) should panic")
		}
	}()
	SetWidthForTesting(24)
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.value)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMaxLanes(t *testing.T) {
	maxU8 := MaxLanes[uint8]()
	maxU32 := MaxLanes[uint32]()
	maxF64 := MaxLanes[float64]()

	t.Logf("MaxLanes: uint8=%d, uint32=%d, float64=%d", maxU8, maxU32, maxF64)

	if maxU32 <= 0 {
		t.Error("MaxLanes[uint32] should be positive")
	}

	if maxU8 != maxU32*4 {
		t.Errorf("MaxLanes: expected uint8 lanes (%d) to be 4x uint32 lanes (%d)", maxU8, maxU32)
	}

	if maxF64*2 != maxU32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of uint32 lanes (%d)", maxF64, maxU32)
	}
}
