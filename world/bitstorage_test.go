package world_test

import (
	"testing"

	"github.com/go-mcproto/core/world"
)

func TestBitStorageRoundTrip(t *testing.T) {
	cases := []struct {
		name         string
		bitsPerEntry int
		size         int
	}{
		{"1 bit", 1, 64},
		{"4 bits packed", 4, 100},
		{"5 bits unaligned", 5, 37},
		{"32 bits", 32, 16},
		{"64 bits", 64, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bs, err := world.NewBitStorage(c.bitsPerEntry, c.size, nil)
			if err != nil {
				t.Fatalf("NewBitStorage: %v", err)
			}

			max := uint64(1)<<uint(c.bitsPerEntry) - 1
			for i := 0; i < c.size; i++ {
				v := uint64(i) & max
				if err := bs.Set(i, v); err != nil {
					t.Fatalf("Set(%d, %d): %v", i, v, err)
				}
			}
			for i := 0; i < c.size; i++ {
				want := uint64(i) & max
				got, err := bs.Get(i)
				if err != nil {
					t.Fatalf("Get(%d): %v", i, err)
				}
				if got != want {
					t.Errorf("Get(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestBitStorageGetAndSetReturnsOldValue(t *testing.T) {
	bs, err := world.NewBitStorage(4, 16, nil)
	if err != nil {
		t.Fatalf("NewBitStorage: %v", err)
	}
	if err := bs.Set(3, 7); err != nil {
		t.Fatalf("Set: %v", err)
	}
	old, err := bs.GetAndSet(3, 9)
	if err != nil {
		t.Fatalf("GetAndSet: %v", err)
	}
	if old != 7 {
		t.Errorf("GetAndSet returned old=%d, want 7", old)
	}
	got, err := bs.Get(3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 9 {
		t.Errorf("Get after GetAndSet = %d, want 9", got)
	}
}

func TestBitStorageOtherCellsUnchanged(t *testing.T) {
	bs, err := world.NewBitStorage(5, 20, nil)
	if err != nil {
		t.Fatalf("NewBitStorage: %v", err)
	}
	for i := 0; i < 20; i++ {
		if err := bs.Set(i, uint64(i%31)); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}
	if err := bs.Set(10, 31); err != nil {
		t.Fatalf("Set(10): %v", err)
	}
	for i := 0; i < 20; i++ {
		want := uint64(i % 31)
		if i == 10 {
			want = 31
		}
		got, err := bs.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestBitStorageZeroBitsPerEntry(t *testing.T) {
	bs, err := world.NewBitStorage(0, 4096, nil)
	if err != nil {
		t.Fatalf("NewBitStorage: %v", err)
	}
	if len(bs.Data()) != 0 {
		t.Errorf("bitsPerEntry=0 should have empty backing data, got %d words", len(bs.Data()))
	}
	got, err := bs.Get(100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 0 {
		t.Errorf("Get on bitsPerEntry=0 storage = %d, want 0", got)
	}
	if err := bs.Set(100, 1); err == nil {
		t.Error("Set(100, 1) on bitsPerEntry=0 storage should fail")
	}
}

func TestBitStorageValueTooWideRejected(t *testing.T) {
	bs, err := world.NewBitStorage(4, 8, nil)
	if err != nil {
		t.Fatalf("NewBitStorage: %v", err)
	}
	if err := bs.Set(0, 16); err == nil {
		t.Error("Set with value exceeding bitsPerEntry width should fail")
	}
}

func TestBitStorageExternalWordsLengthMismatch(t *testing.T) {
	if _, err := world.NewBitStorage(5, 100, make([]uint64, 1)); err == nil {
		t.Error("NewBitStorage with mismatched backing word count should fail")
	}
}
