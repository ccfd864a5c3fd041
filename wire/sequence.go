package wire

import (
	"fmt"
	"io"
)

// PrefixedArray is a homogeneous sequence with a VarInt element-count prefix,
// the dominant sequence shape in the Java Edition protocol.
type PrefixedArray[T any] []T

func EncodePrefixedArray[T any](w io.Writer, a PrefixedArray[T], enc EncodeFunc[T]) error {
	if err := VarInt(len(a)).Encode(w); err != nil {
		return err
	}
	for _, v := range a {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

func DecodePrefixedArray[T any](r io.Reader, dec DecodeFunc[T]) (PrefixedArray[T], error) {
	n, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, newKindErr(KindDecode, errNegativeLength(int(n)))
	}
	out := make(PrefixedArray[T], 0, n)
	for i := VarInt(0); i < n; i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Array is a fixed-size sequence whose length is known from context (not
// prefixed on the wire).
type Array[T any] []T

func EncodeArray[T any](w io.Writer, a Array[T], enc EncodeFunc[T]) error {
	for _, v := range a {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

func DecodeArray[T any](r io.Reader, n int, dec DecodeFunc[T]) (Array[T], error) {
	out := make(Array[T], n)
	for i := 0; i < n; i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func errNegativeLength(n int) error {
	return fmt.Errorf("wire: negative sequence length %d", n)
}
