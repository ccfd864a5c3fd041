package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BitSet is a VarInt-length-prefixed array of 64-bit big-endian words, used
// for fields whose bit-length is not known from context (unlike
// FixedBitSet). This is a wire-level primitive, distinct from the
// fixed-layout storage in package world.
type BitSet struct {
	Length int
	Data   []uint64
}

func (b BitSet) Encode(w io.Writer) error {
	if err := VarInt(len(b.Data)).Encode(w); err != nil {
		return err
	}
	var buf [8]byte
	for _, word := range b.Data {
		binary.BigEndian.PutUint64(buf[:], word)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func DecodeBitSet(r io.Reader) (BitSet, error) {
	n, err := DecodeVarInt(r)
	if err != nil {
		return BitSet{}, err
	}
	if n < 0 {
		return BitSet{}, newKindErr(KindDecode, fmt.Errorf("negative bitset length %d", n))
	}
	data := make([]uint64, n)
	var buf [8]byte
	for i := range data {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return BitSet{}, newKindErr(KindUnexpectedEOF, err)
		}
		data[i] = binary.BigEndian.Uint64(buf[:])
	}
	return BitSet{Length: int(n) * 64, Data: data}, nil
}

// FixedBitSet is a bitset whose length in bits is known from context; it is
// serialized as ceil(length/8) bytes with no prefix.
type FixedBitSet struct {
	Length int
	Data   []byte
}

func (b FixedBitSet) Encode(w io.Writer) error {
	_, err := w.Write(b.Data)
	return err
}

func DecodeFixedBitSet(r io.Reader, length int) (FixedBitSet, error) {
	n := (length + 7) / 8
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return FixedBitSet{}, newKindErr(KindUnexpectedEOF, err)
	}
	return FixedBitSet{Length: length, Data: data}, nil
}
