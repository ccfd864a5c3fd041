package wire

import (
	"fmt"
	"io"
)

// ByteArray is a raw byte sequence whose length is known from context (no
// length prefix of its own).
type ByteArray []byte

func (v ByteArray) Encode(w io.Writer) error {
	_, err := w.Write(v)
	return err
}

// DecodeByteArrayN reads exactly n bytes.
func DecodeByteArrayN(r io.Reader, n int) (ByteArray, error) {
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, newKindErr(KindUnexpectedEOF, err)
	}
	return data, nil
}

// PrefixedByteArray is a byte array with a VarInt length prefix.
type PrefixedByteArray []byte

func (v PrefixedByteArray) Encode(w io.Writer) error {
	if err := VarInt(len(v)).Encode(w); err != nil {
		return err
	}
	_, err := w.Write(v)
	return err
}

// DecodePrefixedByteArray reads a VarInt-length-prefixed byte array. maxLen
// bounds the declared length (0 = no limit).
func DecodePrefixedByteArray(r io.Reader, maxLen int) (PrefixedByteArray, error) {
	length, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, newKindErr(KindDecode, fmt.Errorf("negative byte array length %d", length))
	}
	if maxLen > 0 && int(length) > maxLen {
		return nil, newKindErr(KindDecode, fmt.Errorf("byte array length %d exceeds maximum %d", length, maxLen))
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, newKindErr(KindUnexpectedEOF, err)
	}
	return data, nil
}
