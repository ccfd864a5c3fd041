package world

import (
	"fmt"
	"io"

	"github.com/go-mcproto/core/wire"
)

// ContainerType selects the spatial dimensions and palette bit thresholds for
// a PalettedContainer: BlockStates volumes are 16x16x16, Biomes volumes are
// 4x4x4.
type ContainerType int

const (
	BlockStates ContainerType = iota
	Biomes
)

// sizeBits is the log2 of one edge length: 4 for BlockStates (16 = 1<<4),
// 2 for Biomes (4 = 1<<2).
func (t ContainerType) sizeBits() int {
	if t == Biomes {
		return 2
	}
	return 4
}

// Size returns the cell count of a container of this type: 4096 for
// BlockStates, 64 for Biomes.
func (t ContainerType) Size() int {
	s := t.sizeBits()
	return 1 << uint(s*3)
}

func (t ContainerType) index(x, y, z int) int {
	s := t.sizeBits()
	return (((y << uint(s)) | z) << uint(s)) | x
}

// PaletteKind is the variant tag of a Palette: the lookup strategy from
// compact local ids to domain values.
type PaletteKind int

const (
	PaletteSingleValue PaletteKind = iota
	PaletteLinear
	PaletteHashmap
	PaletteGlobal
)

func (k PaletteKind) String() string {
	switch k {
	case PaletteSingleValue:
		return "single_value"
	case PaletteLinear:
		return "linear"
	case PaletteHashmap:
		return "hashmap"
	case PaletteGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// PaletteKindFor implements PaletteType::from_bits_and_type: which palette
// representation a container of the given type uses at a given bit width.
func PaletteKindFor(bitsPerEntry int, t ContainerType) PaletteKind {
	switch t {
	case Biomes:
		switch {
		case bitsPerEntry == 0:
			return PaletteSingleValue
		case bitsPerEntry <= 3:
			return PaletteLinear
		default:
			return PaletteGlobal
		}
	default: // BlockStates
		switch {
		case bitsPerEntry == 0:
			return PaletteSingleValue
		case bitsPerEntry <= 4:
			return PaletteLinear
		case bitsPerEntry <= 8:
			return PaletteHashmap
		default:
			return PaletteGlobal
		}
	}
}

// Palette is the lookup table from compact local ids (what the BitStorage
// holds) to domain values (block state ids, biome ids).
//
// Hashmap is modeled as the same position-indexed list as Linear: the spec
// treats it as "semantically a bag with position-indexed access", and per the
// open question in the teacher's design notes, it follows the same 1<<bpe
// capacity rule Linear uses rather than growing unbounded.
type Palette struct {
	kind   PaletteKind
	single uint32
	list   []uint32
}

func newEmptyPalette(kind PaletteKind) *Palette {
	switch kind {
	case PaletteSingleValue:
		return &Palette{kind: kind}
	case PaletteLinear, PaletteHashmap:
		return &Palette{kind: kind, list: []uint32{}}
	default:
		return &Palette{kind: PaletteGlobal}
	}
}

// Kind reports this palette's variant.
func (p *Palette) Kind() PaletteKind { return p.kind }

// ValueFor maps a local id to its domain value.
func (p *Palette) ValueFor(id int) (uint32, error) {
	switch p.kind {
	case PaletteSingleValue:
		return p.single, nil
	case PaletteLinear, PaletteHashmap:
		if id < 0 || id >= len(p.list) {
			return 0, fmt.Errorf("world: palette id %d out of range [0,%d)", id, len(p.list))
		}
		return p.list[id], nil
	default: // Global
		return uint32(id), nil
	}
}

// PalettedContainer is a 3-D volume of domain values (block states or
// biomes) encoded as a bit-packed storage array plus an adaptively-sized
// palette. It starts in SingleValue form with bitsPerEntry == 0 and promotes
// itself (resize) the first time a write needs a representation the current
// palette can't hold.
type PalettedContainer struct {
	bitsPerEntry  int
	palette       *Palette
	storage       *BitStorage
	containerType ContainerType
}

// NewPalettedContainer builds a fresh container of the given type, entirely
// representing value 0 with bitsPerEntry == 0.
func NewPalettedContainer(t ContainerType) *PalettedContainer {
	storage, _ := NewBitStorage(0, t.Size(), nil)
	return &PalettedContainer{
		bitsPerEntry:  0,
		palette:       newEmptyPalette(PaletteSingleValue),
		storage:       storage,
		containerType: t,
	}
}

// BitsPerEntry returns the current cell width.
func (c *PalettedContainer) BitsPerEntry() int { return c.bitsPerEntry }

// PaletteKind returns the current palette's variant.
func (c *PalettedContainer) PaletteKind() PaletteKind { return c.palette.kind }

// Get returns the domain value stored at (x, y, z).
func (c *PalettedContainer) Get(x, y, z int) (uint32, error) {
	local, err := c.storage.Get(c.containerType.index(x, y, z))
	if err != nil {
		return 0, err
	}
	return c.palette.ValueFor(int(local))
}

// Set writes value at (x, y, z), resizing the container's palette and
// storage if the current representation can't hold it.
func (c *PalettedContainer) Set(x, y, z int, value uint32) error {
	_, err := c.GetAndSet(x, y, z, value)
	return err
}

// GetAndSet writes value at (x, y, z) and returns the value previously
// stored there.
func (c *PalettedContainer) GetAndSet(x, y, z int, value uint32) (uint32, error) {
	index := c.containerType.index(x, y, z)
	oldLocal, err := c.storage.Get(index)
	if err != nil {
		return 0, err
	}
	oldValue, err := c.palette.ValueFor(int(oldLocal))
	if err != nil {
		return 0, err
	}

	newLocal, err := c.idFor(value)
	if err != nil {
		return 0, err
	}
	// idFor may have triggered a resize, which replaces c.storage; always set
	// against the current storage, not a stale reference.
	if err := c.storage.Set(index, uint64(newLocal)); err != nil {
		return 0, err
	}
	return oldValue, nil
}

// idFor returns the local id for value, creating a slot for it (and
// resizing the container) if the current palette does not already have one.
func (c *PalettedContainer) idFor(value uint32) (int, error) {
	switch c.palette.kind {
	case PaletteSingleValue:
		if c.palette.single == value {
			return 0, nil
		}
		return c.resize(1, value)

	case PaletteLinear:
		for i, v := range c.palette.list {
			if v == value {
				return i, nil
			}
		}
		capacity := 1 << uint(c.bitsPerEntry)
		if len(c.palette.list) < capacity {
			c.palette.list = append(c.palette.list, value)
			return len(c.palette.list) - 1, nil
		}
		return c.resize(c.bitsPerEntry+1, value)

	case PaletteHashmap:
		for i, v := range c.palette.list {
			if v == value {
				return i, nil
			}
		}
		// Follows the Linear capacity rule per the design notes' resolution
		// of the open question: the source's Hashmap variant appears to skip
		// this check, which looks like a bug.
		capacity := 1 << uint(c.bitsPerEntry)
		if len(c.palette.list) < capacity {
			c.palette.list = append(c.palette.list, value)
			return len(c.palette.list) - 1, nil
		}
		return c.resize(c.bitsPerEntry+1, value)

	default: // Global
		// A value wider than the current cell width grows the storage to the
		// smallest width that holds it.
		if uint64(value)>>uint(c.bitsPerEntry) != 0 {
			newBits := c.bitsPerEntry + 1
			for newBits < 32 && uint64(value)>>uint(newBits) != 0 {
				newBits++
			}
			return c.resize(newBits, value)
		}
		return int(value), nil
	}
}

// resize promotes the container to a new bit width, re-mapping every
// existing cell through the new palette before installing the new state and
// computing the id for the value that triggered the resize.
//
// The new storage is sized from containerType.Size(), never from the old
// storage, and the full copy completes before any field is replaced.
func (c *PalettedContainer) resize(newBits int, triggerValue uint32) (int, error) {
	newKind := PaletteKindFor(newBits, c.containerType)
	newPalette := newEmptyPalette(newKind)
	newStorage, err := NewBitStorage(newBits, c.containerType.Size(), nil)
	if err != nil {
		return 0, err
	}

	next := &PalettedContainer{
		bitsPerEntry:  newBits,
		palette:       newPalette,
		storage:       newStorage,
		containerType: c.containerType,
	}

	for i := 0; i < c.storage.Size(); i++ {
		oldLocal, err := c.storage.Get(i)
		if err != nil {
			return 0, err
		}
		value, err := c.palette.ValueFor(int(oldLocal))
		if err != nil {
			return 0, err
		}
		newLocal, err := next.idFor(value)
		if err != nil {
			return 0, err
		}
		if err := next.storage.Set(i, uint64(newLocal)); err != nil {
			return 0, err
		}
	}

	*c = *next
	return c.idFor(triggerValue)
}

// ReadPalettedContainer decodes a container of the given type from its wire
// form: bits_per_entry:u8, then the palette (SingleValue = VarInt,
// Linear/Hashmap = VarInt-prefixed VarInt sequence, Global = empty), then the
// storage words as a VarInt-prefixed sequence of big-endian u64s.
func ReadPalettedContainer(r io.Reader, t ContainerType) (*PalettedContainer, error) {
	bitsByte, err := wire.DecodeUnsignedByte(r)
	if err != nil {
		return nil, err
	}
	bitsPerEntry := int(bitsByte)
	kind := PaletteKindFor(bitsPerEntry, t)

	palette := newEmptyPalette(kind)
	switch kind {
	case PaletteSingleValue:
		v, err := wire.DecodeVarInt(r)
		if err != nil {
			return nil, err
		}
		palette.single = uint32(v)
	case PaletteLinear, PaletteHashmap:
		list, err := wire.DecodePrefixedArray(r, func(r io.Reader) (uint32, error) {
			v, err := wire.DecodeVarInt(r)
			return uint32(v), err
		})
		if err != nil {
			return nil, err
		}
		palette.list = []uint32(list)
	case PaletteGlobal:
		// empty
	}

	words, err := wire.DecodePrefixedArray(r, func(r io.Reader) (uint64, error) {
		v, err := wire.DecodeLong(r)
		return uint64(v), err
	})
	if err != nil {
		return nil, err
	}

	storage, err := NewBitStorage(bitsPerEntry, t.Size(), []uint64(words))
	if err != nil {
		return nil, wire.NewError(wire.KindDecode, err)
	}

	return &PalettedContainer{
		bitsPerEntry:  bitsPerEntry,
		palette:       palette,
		storage:       storage,
		containerType: t,
	}, nil
}

// WriteTo encodes the container to its wire form (see ReadPalettedContainer).
func (c *PalettedContainer) WriteTo(w io.Writer) error {
	if err := wire.UnsignedByte(uint8(c.bitsPerEntry)).Encode(w); err != nil {
		return err
	}

	switch c.palette.kind {
	case PaletteSingleValue:
		if err := wire.VarInt(int32(c.palette.single)).Encode(w); err != nil {
			return err
		}
	case PaletteLinear, PaletteHashmap:
		if err := wire.EncodePrefixedArray(w, wire.PrefixedArray[uint32](c.palette.list), func(w io.Writer, v uint32) error {
			return wire.VarInt(int32(v)).Encode(w)
		}); err != nil {
			return err
		}
	case PaletteGlobal:
		// empty
	}

	return wire.EncodePrefixedArray(w, wire.PrefixedArray[uint64](c.storage.Data()), func(w io.Writer, v uint64) error {
		return wire.Long(v).Encode(w)
	})
}
