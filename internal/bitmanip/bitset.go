// Package bitmanip demonstrates a growable bit set and two's-complement
// integer rendering.
package bitmanip

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const wordSize = 64

// BitSet is a vector of bits that grows as needed. Every bit starts out
// clear. Indices must not be negative. The zero value is an empty set with
// one word of capacity.
type BitSet struct {
	words []uint64
}

// New returns an empty set with one word of storage.
func New() *BitSet {
	return NewSized(wordSize)
}

// NewSized returns an empty set with room for at least nbits bits. The
// hint only affects storage, never the logical length.
func NewSized(nbits int) *BitSet {
	if nbits < 0 {
		panic(fmt.Sprintf("bitmanip: negative size %d", nbits))
	}
	return &BitSet{words: make([]uint64, max(1, (nbits+wordSize-1)/wordSize))}
}

func checkIndex(i int) {
	if i < 0 {
		panic(fmt.Sprintf("bitmanip: index out of range: %d", i))
	}
}

func checkRange(from, to int) {
	if from < 0 || to < 0 || from > to {
		panic(fmt.Sprintf("bitmanip: invalid range [%d, %d)", from, to))
	}
}

// ensure grows the set so word w exists, at least doubling the storage.
func (b *BitSet) ensure(w int) {
	if w < len(b.words) {
		return
	}
	grown := make([]uint64, max(2*len(b.words), w+1))
	copy(grown, b.words)
	b.words = grown
}

// Set sets bit i.
func (b *BitSet) Set(i int) {
	checkIndex(i)
	b.ensure(i / wordSize)
	b.words[i/wordSize] |= 1 << (i % wordSize)
}

// Clear clears bit i.
func (b *BitSet) Clear(i int) {
	checkIndex(i)
	if i/wordSize < len(b.words) {
		b.words[i/wordSize] &^= 1 << (i % wordSize)
	}
}

// Get reports whether bit i is set.
func (b *BitSet) Get(i int) bool {
	checkIndex(i)
	w := i / wordSize
	return w < len(b.words) && b.words[w]&(1<<(i%wordSize)) != 0
}

// Flip toggles bit i.
func (b *BitSet) Flip(i int) {
	checkIndex(i)
	b.ensure(i / wordSize)
	b.words[i/wordSize] ^= 1 << (i % wordSize)
}

// FlipRange toggles bits from (inclusive) to to (exclusive).
func (b *BitSet) FlipRange(from, to int) {
	checkRange(from, to)
	for i := from; i < to; i++ {
		b.Flip(i)
	}
}

// SetRange sets bits from (inclusive) to to (exclusive).
func (b *BitSet) SetRange(from, to int) {
	checkRange(from, to)
	for i := from; i < to; i++ {
		b.Set(i)
	}
}

// Len returns the logical length: the index of the highest set bit plus
// one, or 0 when no bit is set.
func (b *BitSet) Len() int {
	for w := len(b.words) - 1; w >= 0; w-- {
		if b.words[w] != 0 {
			return w*wordSize + bits.Len64(b.words[w])
		}
	}
	return 0
}

// Size returns the number of bits of storage in use, never less than one
// word.
func (b *BitSet) Size() int {
	return max(len(b.words), 1) * wordSize
}

// Cardinality returns the number of set bits.
func (b *BitSet) Cardinality() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// NextSetBit returns the first set bit at or after i, or -1.
func (b *BitSet) NextSetBit(i int) int {
	checkIndex(i)
	w := i / wordSize
	if w >= len(b.words) {
		return -1
	}
	word := b.words[w] >> (i % wordSize) << (i % wordSize)
	for {
		if word != 0 {
			return w*wordSize + bits.TrailingZeros64(word)
		}
		if w++; w == len(b.words) {
			return -1
		}
		word = b.words[w]
	}
}

// PreviousSetBit returns the last set bit at or before i, or -1.
func (b *BitSet) PreviousSetBit(i int) int {
	if i < 0 || len(b.words) == 0 {
		return -1
	}
	w := i / wordSize
	if w >= len(b.words) {
		w = len(b.words) - 1
		i = w*wordSize + wordSize - 1
	}
	shift := wordSize - 1 - i%wordSize
	word := b.words[w] << shift >> shift
	for {
		if word != 0 {
			return w*wordSize + bits.Len64(word) - 1
		}
		if w--; w < 0 {
			return -1
		}
		word = b.words[w]
	}
}

// Indexes returns the set bits in ascending order.
func (b *BitSet) Indexes() []int {
	var out []int
	for i := b.NextSetBit(0); i >= 0; i = b.nextAfter(i) {
		out = append(out, i)
	}
	return out
}

func (b *BitSet) nextAfter(i int) int {
	if i+1 >= b.Size() {
		return -1
	}
	return b.NextSetBit(i + 1)
}

// And keeps only the bits also set in other.
func (b *BitSet) And(other *BitSet) {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &= other.words[i]
		} else {
			b.words[i] = 0
		}
	}
}

// Or sets every bit set in other.
func (b *BitSet) Or(other *BitSet) {
	if len(other.words) > 0 {
		b.ensure(len(other.words) - 1)
	}
	for i, w := range other.words {
		b.words[i] |= w
	}
}

// Xor toggles every bit set in other.
func (b *BitSet) Xor(other *BitSet) {
	if len(other.words) > 0 {
		b.ensure(len(other.words) - 1)
	}
	for i, w := range other.words {
		b.words[i] ^= w
	}
}

// AndNot clears every bit set in other.
func (b *BitSet) AndNot(other *BitSet) {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &^= other.words[i]
		}
	}
}

// Clone returns an independent copy.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words}
}

// String renders the set bits as {6, 11}.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, i := range b.Indexes() {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Bits renders bits 0 through Len()-1 as '0' and '1', lowest index first.
func (b *BitSet) Bits() string {
	n := b.Len()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = '0'
		if b.Get(i) {
			out[i] = '1'
		}
	}
	return string(out)
}
