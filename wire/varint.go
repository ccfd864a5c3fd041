// Package wire provides the wire-typed primitives used to lay out Minecraft
// Java Edition packet bodies: varints, fixed-width big-endian integers,
// length-prefixed strings and byte arrays, UUIDs, positions, bitsets, and
// optional/sequence/variant composites.
//
// All multi-byte integers are big-endian except VarInt and VarLong, which use
// 7-bit little-endian groups.
//
// (Ref.: https://minecraft.wiki/w/Java_Edition_protocol/Packets#Data_types)
package wire

import (
	"fmt"
	"io"
)

const (
	segmentBits = 0x7F
	continueBit = 0x80

	maxVarIntBytes  = 5
	maxVarLongBytes = 10
)

// VarInt is a 7-bit-group little-endian variable-length signed 32-bit integer.
type VarInt int32

// Len returns the number of bytes v would encode to.
func (v VarInt) Len() int {
	n := 0
	u := uint32(v)
	for {
		n++
		u >>= 7
		if u == 0 {
			return n
		}
	}
}

// Encode writes v to w.
func (v VarInt) Encode(w io.Writer) error {
	u := uint32(v)
	var buf [maxVarIntBytes]byte
	n := 0
	for {
		b := byte(u & segmentBits)
		u >>= 7
		if u != 0 {
			b |= continueBit
		}
		buf[n] = b
		n++
		if u == 0 {
			break
		}
	}
	_, err := w.Write(buf[:n])
	return err
}

// DecodeVarInt reads a VarInt from r.
//
// Fails with a KindMalformedVarInt error if more than 5 bytes are consumed without a
// terminator byte, and with io.ErrUnexpectedEOF (wrapped) if the stream ends
// mid-varint.
func DecodeVarInt(r io.Reader) (VarInt, error) {
	var result uint32
	var position uint
	var b [1]byte
	for {
		if position >= maxVarIntBytes*7 {
			return 0, newKindErr(KindMalformedVarInt, fmt.Errorf("varint is too big"))
		}
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, newKindErr(KindUnexpectedEOF, fmt.Errorf("reading varint: %w", err))
		}
		result |= uint32(b[0]&segmentBits) << position
		if b[0]&continueBit == 0 {
			break
		}
		position += 7
	}
	return VarInt(int32(result)), nil
}

// VarLong is the 64-bit counterpart of VarInt.
type VarLong int64

// Len returns the number of bytes v would encode to.
func (v VarLong) Len() int {
	n := 0
	u := uint64(v)
	for {
		n++
		u >>= 7
		if u == 0 {
			return n
		}
	}
}

// Encode writes v to w.
func (v VarLong) Encode(w io.Writer) error {
	u := uint64(v)
	var buf [maxVarLongBytes]byte
	n := 0
	for {
		b := byte(u & segmentBits)
		u >>= 7
		if u != 0 {
			b |= continueBit
		}
		buf[n] = b
		n++
		if u == 0 {
			break
		}
	}
	_, err := w.Write(buf[:n])
	return err
}

// DecodeVarLong reads a VarLong from r.
func DecodeVarLong(r io.Reader) (VarLong, error) {
	var result uint64
	var position uint
	var b [1]byte
	for {
		if position >= maxVarLongBytes*7 {
			return 0, newKindErr(KindMalformedVarInt, fmt.Errorf("varlong is too big"))
		}
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, newKindErr(KindUnexpectedEOF, fmt.Errorf("reading varlong: %w", err))
		}
		result |= uint64(b[0]&segmentBits) << position
		if b[0]&continueBit == 0 {
			break
		}
		position += 7
	}
	return VarLong(int64(result)), nil
}
