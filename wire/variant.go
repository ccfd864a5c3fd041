package wire

import (
	"fmt"
	"io"
)

// IDor represents the common "registry id, or inline data" shape: a VarInt
// of (id+1) to reference a known registry entry, or 0 followed by an inline
// value.
type IDor[T any] struct {
	IsID bool
	ID   VarInt
	Data T
}

func EncodeIDor[T any](w io.Writer, v IDor[T], enc EncodeFunc[T]) error {
	if v.IsID {
		return VarInt(v.ID + 1).Encode(w)
	}
	if err := VarInt(0).Encode(w); err != nil {
		return err
	}
	return enc(w, v.Data)
}

func DecodeIDor[T any](r io.Reader, dec DecodeFunc[T]) (IDor[T], error) {
	raw, err := DecodeVarInt(r)
	if err != nil {
		return IDor[T]{}, err
	}
	if raw == 0 {
		v, err := dec(r)
		if err != nil {
			return IDor[T]{}, err
		}
		return IDor[T]{IsID: false, Data: v}, nil
	}
	return IDor[T]{IsID: true, ID: raw - 1}, nil
}

// Or represents a two-way discriminated union selected by a leading boolean
// (true selects X).
type Or[X any, Y any] struct {
	IsX bool
	X   X
	Y   Y
}

func EncodeOr[X any, Y any](w io.Writer, v Or[X, Y], encX EncodeFunc[X], encY EncodeFunc[Y]) error {
	if err := Boolean(v.IsX).Encode(w); err != nil {
		return err
	}
	if v.IsX {
		return encX(w, v.X)
	}
	return encY(w, v.Y)
}

func DecodeOr[X any, Y any](r io.Reader, decX DecodeFunc[X], decY DecodeFunc[Y]) (Or[X, Y], error) {
	isX, err := DecodeBoolean(r)
	if err != nil {
		return Or[X, Y]{}, err
	}
	if isX {
		x, err := decX(r)
		if err != nil {
			return Or[X, Y]{}, err
		}
		return Or[X, Y]{IsX: true, X: x}, nil
	}
	y, err := decY(r)
	if err != nil {
		return Or[X, Y]{}, err
	}
	return Or[X, Y]{IsX: false, Y: y}, nil
}

// enumRange validates a VarInt discriminant against an inclusive [0, max]
// range, the shape every bounded enum decode in this package shares.
func enumRange(v VarInt, max VarInt, what string) error {
	if v < 0 || v > max {
		return newKindErr(KindDecode, fmt.Errorf("%s discriminant %d out of range [0,%d]", what, v, max))
	}
	return nil
}
