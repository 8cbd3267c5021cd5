package hwy

import "testing"

func TestTailMask(t *testing.T) {
	mask := TailMask[uint32](3)

	if !mask.GetBit(0) || !mask.GetBit(1) || !mask.GetBit(2) {
		t.Error("TailMask: first 3 bits should be true")
	}

	for i := 3; i < mask.NumLanes(); i++ {
		if mask.GetBit(i) {
			t.Errorf("TailMask: bit %d should be false", i)
		}
	}
}

func TestTailMaskClamps(t *testing.T) {
	if got := TailMask[uint32](-1).CountTrue(); got != 0 {
		t.Errorf("TailMask(-1): got %d active lanes, want 0", got)
	}
	if !TailMask[uint32](1 << 20).AllTrue() {
		t.Error("TailMask(huge): all lanes should be active")
	}
}

func TestProcessWithTail(t *testing.T) {
	maxLanes := MaxLanes[uint32]()

	for _, size := range []int{0, 1, maxLanes - 1, maxLanes, maxLanes + 1, 3*maxLanes + 2} {
		data := make([]uint32, size)
		for i := range data {
			data[i] = uint32(i)
		}
		output := make([]uint32, size)

		fullVectors, tails := 0, 0
		ProcessWithTail[uint32](size,
			func(offset int) {
				fullVectors++
				v := Load(data[offset:])
				Store(Add(v, v), output[offset:])
			},
			func(offset, count int) {
				tails++
				mask := TailMask[uint32](count)
				v := MaskLoad(mask, data[offset:])
				MaskStore(mask, Add(v, v), output[offset:])
			},
		)

		if fullVectors != size/maxLanes {
			t.Errorf("ProcessWithTail(%d): %d full vectors, want %d", size, fullVectors, size/maxLanes)
		}
		if wantTails := min(size%maxLanes, 1); tails != wantTails {
			t.Errorf("ProcessWithTail(%d): %d tail calls, want %d", size, tails, wantTails)
		}
		for i, val := range output {
			if val != uint32(i)*2 {
				t.Errorf("ProcessWithTail(%d): output[%d]: got %v, want %v", size, i, val, i*2)
			}
		}
	}
}

func TestAlignedSize(t *testing.T) {
	maxLanes := MaxLanes[uint32]()

	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, maxLanes},
		{maxLanes, maxLanes},
		{maxLanes + 1, maxLanes * 2},
		{maxLanes * 2, maxLanes * 2},
	}

	for _, tt := range tests {
		result := AlignedSize[uint32](tt.input)
		if result != tt.expected {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.input, result, tt.expected)
		}
	}
}
