// Package world implements the volumetric chunk storage used to decode block
// state and biome data: a dense bit-packed array and a self-resizing palette
// on top of it.
package world

import "fmt"

// BitStorage is a dense array of fixed-width cells packed into 64-bit words.
// Cells never straddle a word boundary: each word holds floor(64/bitsPerEntry)
// whole cells, and the remaining high bits of the last cell slot in a word are
// left unused.
type BitStorage struct {
	bitsPerEntry int
	size         int
	mask         uint64
	cellsPerWord int
	data         []uint64
}

// NewBitStorage builds a BitStorage for size cells of bitsPerEntry bits each.
// If data is non-nil it is used as the backing words (its length must equal
// the computed word count); otherwise a zero-initialized array is allocated.
func NewBitStorage(bitsPerEntry, size int, data []uint64) (*BitStorage, error) {
	if bitsPerEntry < 0 || bitsPerEntry > 64 {
		return nil, fmt.Errorf("world: bitsPerEntry %d out of range [0,64]", bitsPerEntry)
	}
	if size < 0 {
		return nil, fmt.Errorf("world: negative size %d", size)
	}

	bs := &BitStorage{bitsPerEntry: bitsPerEntry, size: size}

	if bitsPerEntry == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("world: bitsPerEntry 0 requires empty backing data, got %d words", len(data))
		}
		return bs, nil
	}

	bs.cellsPerWord = 64 / bitsPerEntry
	bs.mask = (uint64(1) << uint(bitsPerEntry)) - 1
	words := ceilDiv(size, bs.cellsPerWord)

	if data != nil {
		if len(data) != words {
			return nil, fmt.Errorf("world: backing data has %d words, want %d", len(data), words)
		}
		bs.data = data
	} else {
		bs.data = make([]uint64, words)
	}
	return bs, nil
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// BitsPerEntry returns the configured cell width.
func (b *BitStorage) BitsPerEntry() int { return b.bitsPerEntry }

// Size returns the number of cells.
func (b *BitStorage) Size() int { return b.size }

// Data returns the backing words, for serialization.
func (b *BitStorage) Data() []uint64 { return b.data }

func (b *BitStorage) checkIndex(i int) error {
	if i < 0 || i >= b.size {
		return fmt.Errorf("world: index %d out of range [0,%d)", i, b.size)
	}
	return nil
}

// Get extracts the value stored at cell i.
func (b *BitStorage) Get(i int) (uint64, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	if b.bitsPerEntry == 0 {
		return 0, nil
	}
	word := i / b.cellsPerWord
	offset := uint(i%b.cellsPerWord) * uint(b.bitsPerEntry)
	return (b.data[word] >> offset) & b.mask, nil
}

// Set overwrites the value at cell i. v must fit in bitsPerEntry bits.
func (b *BitStorage) Set(i int, v uint64) error {
	_, err := b.GetAndSet(i, v)
	return err
}

// GetAndSet writes v at cell i and returns the previous value.
func (b *BitStorage) GetAndSet(i int, v uint64) (uint64, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	if b.bitsPerEntry == 0 {
		if v != 0 {
			return 0, fmt.Errorf("world: value %d does not fit in 0 bits", v)
		}
		return 0, nil
	}
	if v&^b.mask != 0 {
		return 0, fmt.Errorf("world: value %d does not fit in %d bits", v, b.bitsPerEntry)
	}
	word := i / b.cellsPerWord
	offset := uint(i%b.cellsPerWord) * uint(b.bitsPerEntry)
	old := (b.data[word] >> offset) & b.mask
	b.data[word] = (b.data[word] &^ (b.mask << offset)) | (v << offset)
	return old, nil
}
