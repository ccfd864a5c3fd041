package world

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Section is one 16x16x16 vertical slice of a chunk: a non-air block count
// used by the client to decide whether the section needs rendering at all,
// plus its block-state and biome paletted containers.
//
// Wire format per section (protocol 774+), grounded on the section layout
// documented in _examples/go-mclib-protocol's chunk.go and azalea's
// PalettedContainer encoding:
//
//	BlockCount:  Short (big-endian)
//	BlockStates: PalettedContainer (world.PalettedContainer wire format)
//	Biomes:      PalettedContainer (world.PalettedContainer wire format)
type Section struct {
	BlockCount  int16
	BlockStates *PalettedContainer
	Biomes      *PalettedContainer
}

// NewSection returns an empty, all-air section with both containers starting
// in their single-value state.
func NewSection() *Section {
	return &Section{
		BlockStates: NewPalettedContainer(BlockStates),
		Biomes:      NewPalettedContainer(Biomes),
	}
}

// EncodeSections writes sections back-to-back with no length prefix; the
// enclosing Level Chunk packet frames the whole concatenated blob as one
// length-prefixed byte array.
func EncodeSections(w io.Writer, sections []*Section) error {
	for i, s := range sections {
		if err := binary.Write(w, binary.BigEndian, s.BlockCount); err != nil {
			return fmt.Errorf("section %d: writing block count: %w", i, err)
		}
		if err := s.BlockStates.WriteTo(w); err != nil {
			return fmt.Errorf("section %d: writing block states: %w", i, err)
		}
		if err := s.Biomes.WriteTo(w); err != nil {
			return fmt.Errorf("section %d: writing biomes: %w", i, err)
		}
	}
	return nil
}

// DecodeSections reads count consecutive sections from r.
func DecodeSections(r io.Reader, count int) ([]*Section, error) {
	sections := make([]*Section, count)
	for i := range count {
		var blockCount int16
		if err := binary.Read(r, binary.BigEndian, &blockCount); err != nil {
			return nil, fmt.Errorf("section %d: reading block count: %w", i, err)
		}
		blockStates, err := ReadPalettedContainer(r, BlockStates)
		if err != nil {
			return nil, fmt.Errorf("section %d: reading block states: %w", i, err)
		}
		biomes, err := ReadPalettedContainer(r, Biomes)
		if err != nil {
			return nil, fmt.Errorf("section %d: reading biomes: %w", i, err)
		}
		sections[i] = &Section{BlockCount: blockCount, BlockStates: blockStates, Biomes: biomes}
	}
	return sections, nil
}
