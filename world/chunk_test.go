package world_test

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/core/world"
)

func TestSectionRoundTrip(t *testing.T) {
	sections := make([]*world.Section, 3)
	for i := range sections {
		s := world.NewSection()
		s.BlockCount = int16(i * 10)
		if err := s.BlockStates.Set(0, 0, 0, uint32(100+i)); err != nil {
			t.Fatalf("Set block state: %v", err)
		}
		if err := s.Biomes.Set(1, 1, 1, uint32(2+i)); err != nil {
			t.Fatalf("Set biome: %v", err)
		}
		sections[i] = s
	}

	var buf bytes.Buffer
	if err := world.EncodeSections(&buf, sections); err != nil {
		t.Fatalf("EncodeSections: %v", err)
	}

	decoded, err := world.DecodeSections(&buf, len(sections))
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}
	if len(decoded) != len(sections) {
		t.Fatalf("got %d sections, want %d", len(decoded), len(sections))
	}
	for i, s := range sections {
		got := decoded[i]
		if got.BlockCount != s.BlockCount {
			t.Errorf("section %d: block count = %d, want %d", i, got.BlockCount, s.BlockCount)
		}
		v, err := got.BlockStates.Get(0, 0, 0)
		if err != nil || v != uint32(100+i) {
			t.Errorf("section %d: block state (0,0,0) = %d, %v; want %d", i, v, err, 100+i)
		}
		b, err := got.Biomes.Get(1, 1, 1)
		if err != nil || b != uint32(2+i) {
			t.Errorf("section %d: biome (1,1,1) = %d, %v; want %d", i, b, err, 2+i)
		}
	}
}
