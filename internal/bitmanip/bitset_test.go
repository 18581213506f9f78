package bitmanip

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSetGrowth(t *testing.T) {
	bs := New()
	assert.Equal(t, "{}", bs.String())
	assert.Equal(t, 0, bs.Len())
	assert.Equal(t, 64, bs.Size())

	bs.Set(11)
	bs.Set(6)
	assert.Equal(t, "{6, 11}", bs.String())
	assert.Equal(t, 12, bs.Len())
	assert.Equal(t, 64, bs.Size())

	bs.Set(90)
	assert.Equal(t, 91, bs.Len())
	assert.Equal(t, 128, bs.Size())
	assert.LessOrEqual(t, bs.Len(), bs.Size())

	assert.False(t, bs.Get(10))
	assert.True(t, bs.Get(11))
	assert.False(t, bs.Get(1000), "bits past the storage read as clear")
	assert.Equal(t, []int{6, 11, 90}, bs.Indexes())
	assert.Equal(t, 3, bs.Cardinality())
}

func TestBitSetZeroValue(t *testing.T) {
	var bs BitSet
	assert.Equal(t, 0, bs.Len())
	assert.Equal(t, 64, bs.Size())
	assert.Equal(t, "{}", bs.String())
	assert.Equal(t, "", bs.Bits())
	assert.Equal(t, 0, bs.Cardinality())
	assert.False(t, bs.Get(3))
	assert.Equal(t, -1, bs.NextSetBit(0))
	assert.Equal(t, -1, bs.NextSetBit(200))
	assert.Equal(t, -1, bs.PreviousSetBit(0))
	assert.Equal(t, -1, bs.PreviousSetBit(10))
	assert.Nil(t, bs.Indexes())

	var other BitSet
	bs.Xor(&other)
	bs.And(&other)
	assert.Equal(t, 0, bs.Clone().Len())

	bs.Set(3)
	assert.Equal(t, 64, bs.Size())
	assert.Equal(t, 3, bs.PreviousSetBit(10))
	assert.Equal(t, "{3}", bs.String())
}

func TestBitSetGrowthDoubles(t *testing.T) {
	bs := NewSized(64 * 3)
	bs.Set(64 * 3)
	assert.Equal(t, 64*6, bs.Size(), "doubling beats the minimum needed")

	bs = New()
	bs.Set(64 * 9)
	assert.Equal(t, 64*10, bs.Size(), "minimum needed beats doubling")
}

func TestNewSized(t *testing.T) {
	assert.Equal(t, 64, NewSized(5).Size())
	assert.Equal(t, 0, NewSized(5).Len())
	assert.Equal(t, 64, NewSized(0).Size())
	assert.Equal(t, 128, NewSized(65).Size())
}

func TestBitSetXorWithClone(t *testing.T) {
	bits1 := NewSized(5)
	bits1.Set(3)
	bits1.Set(5)
	bits2 := bits1.Clone()

	bits1.Xor(bits2)
	assert.Equal(t, "{}", bits1.String())
	assert.Equal(t, "{3, 5}", bits2.String())

	assert.Equal(t, "000101", bits2.Bits())
	bits2.FlipRange(0, 4)
	assert.Equal(t, "111001", bits2.Bits())
}

func TestBitSetLogic(t *testing.T) {
	a, b := New(), New()
	a.SetRange(0, 4)
	b.Set(2)
	b.Set(3)
	b.Set(100)

	and := a.Clone()
	and.And(b)
	assert.Equal(t, []int{2, 3}, and.Indexes())

	or := a.Clone()
	or.Or(b)
	assert.Equal(t, []int{0, 1, 2, 3, 100}, or.Indexes())

	andNot := a.Clone()
	andNot.AndNot(b)
	assert.Equal(t, []int{0, 1}, andNot.Indexes())

	xor := a.Clone()
	xor.Xor(b)
	assert.Equal(t, []int{0, 1, 100}, xor.Indexes())
}

func TestBitSetNavigation(t *testing.T) {
	bs := New()
	for _, i := range []int{6, 11, 90} {
		bs.Set(i)
	}

	tests := []struct {
		from, next, prev int
	}{
		{0, 6, -1},
		{6, 6, 6},
		{7, 11, 6},
		{12, 90, 11},
		{90, 90, 90},
		{91, -1, 90},
		{5000, -1, 90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, bs.NextSetBit(tt.from), "next from %d", tt.from)
		assert.Equal(t, tt.prev, bs.PreviousSetBit(tt.from), "previous from %d", tt.from)
	}
	assert.Equal(t, -1, bs.PreviousSetBit(-1))
}

func TestBitSetClearAndFlip(t *testing.T) {
	bs := New()
	bs.Set(3)
	bs.Clear(3)
	bs.Clear(500)
	assert.Equal(t, 0, bs.Len())

	bs.Flip(70)
	assert.True(t, bs.Get(70))
	bs.Flip(70)
	assert.False(t, bs.Get(70))
}

func TestBitSetNegativeIndexPanics(t *testing.T) {
	bs := New()
	assert.Panics(t, func() { bs.Set(-1) })
	assert.Panics(t, func() { bs.Get(-1) })
	assert.Panics(t, func() { bs.FlipRange(4, 0) })
	assert.Panics(t, func() { NewSized(-1) })
}

func TestToBinaryString(t *testing.T) {
	tests := []struct {
		in   int32
		want string
	}{
		{6, "110"},
		{-6, "11111111111111111111111111111010"},
		{0, "0"},
		{-128, "11111111111111111111111110000000"},
		{127, "1111111"},
		{-3, "11111111111111111111111111111101"},
		{-1, "11111111111111111111111111111111"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBinaryString(tt.in), "%d", tt.in)
	}
}

func TestShifts(t *testing.T) {
	assert.Equal(t, int32(-1), ArithmeticShiftRight(-3, 31))
	assert.Equal(t, int32(1), LogicalShiftRight(-3, 31))
	assert.Equal(t, int32(3), ArithmeticShiftRight(6, 1))
}

func TestRunBitSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBitSet(context.Background(), &buf))
	out := buf.String()

	for _, want := range []string{
		"Empty bs: {}",
		"Length of bs is: 0",
		"Size: 8 B",
		"bs: {6, 11}",
		"Length: 91",
		"Size: 16 B",
		"Bit at index 10: false",
		"Bit at index 11: true",
		"After XOR with its clone\nbits1: {}",
		"bits2: {3, 5}",
		"000101\n111001",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRunBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBinary(context.Background(), &buf))
	assert.Equal(t, "110\t11111111111111111111111111111010\t0\n"+
		"-128\n127\n"+
		"11111111111111111111111110000000\n1111111\n"+
		"11111111111111111111111111111101\n-1\n"+
		"11111111111111111111111111111111\n", buf.String())
}
