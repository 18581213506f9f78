package bitmanip

import (
	"context"
	"io"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/KromDaniel/concepts/internal/demo"
)

func sizeOf(b *BitSet) string {
	return humanize.Bytes(uint64(b.Size() / 8))
}

// RunBitSet walks through growing, querying, cloning and flipping a BitSet.
func RunBitSet(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	bs := New()
	p.Println("Empty bs:", bs)
	p.Println("Length of bs is:", bs.Len())
	p.Println("Size:", sizeOf(bs))
	p.Rule()

	bs.Set(11)
	bs.Set(6)
	p.Println("bs:", bs)
	p.Println("Length:", bs.Len())
	p.Println("Size:", sizeOf(bs))
	p.Rule()

	// one word holds 64 bits; bit 90 forces the set to grow
	bs.Set(90)
	p.Println("bs:", bs)
	p.Println("Length:", bs.Len())
	p.Println("Size:", sizeOf(bs))
	p.Rule()

	p.Println("Bit at index 10:", bs.Get(10))
	p.Println("Bit at index 11:", bs.Get(11))
	p.Rule()

	p.Println("Indexes of set bits:")
	for _, i := range bs.Indexes() {
		p.Println(i)
	}
	p.Rule()

	bits1 := NewSized(5)
	p.Println("bits1:", bits1)
	p.Println("Length:", bits1.Len())
	p.Println("Size:", sizeOf(bits1))
	p.Rule()

	bits1.Set(3)
	bits1.Set(5)
	bits2 := bits1.Clone()
	bits1.Xor(bits2)
	p.Println("After XOR with its clone")
	p.Println("bits1:", bits1)
	p.Println("bits2:", bits2)
	p.Rule()

	p.Println(bits2.Bits())
	// the upper bound is exclusive: bits 0 to 3 flip
	bits2.FlipRange(0, 4)
	p.Println(bits2.Bits())
	p.Rule()

	return p.Err()
}

// RunBinary prints two's-complement renderings of a few 32-bit values.
func RunBinary(_ context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)

	a, b, c := int32(6), int32(-6), int32(0)
	p.Printf("%s\t%s\t%s\n", ToBinaryString(a), ToBinaryString(b), ToBinaryString(c))

	minB, maxB := int32(math.MinInt8), int32(math.MaxInt8)
	p.Println(minB)
	p.Println(maxB)
	p.Println(ToBinaryString(minB))
	p.Println(ToBinaryString(maxB))

	num := int32(-3)
	p.Println(ToBinaryString(num))
	num = ArithmeticShiftRight(num, 31)
	p.Println(num)
	p.Println(ToBinaryString(num))

	return p.Err()
}
