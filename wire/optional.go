package wire

import "io"

// EncodeFunc writes a single value of T to w.
type EncodeFunc[T any] func(w io.Writer, v T) error

// DecodeFunc reads a single value of T from r.
type DecodeFunc[T any] func(r io.Reader) (T, error)

// Optional is present/absent without its own wire marker; presence must be
// determined by the surrounding context (e.g. a preceding boolean field or an
// end-of-buffer check). Used for the rare "optional trailing field" shape.
type Optional[T any] struct {
	Present bool
	Value   T
}

func EncodeOptional[T any](w io.Writer, o Optional[T], enc EncodeFunc[T]) error {
	if !o.Present {
		return nil
	}
	return enc(w, o.Value)
}

// PrefixedOptional is present/absent via a leading boolean.
type PrefixedOptional[T any] struct {
	Present bool
	Value   T
}

func EncodePrefixedOptional[T any](w io.Writer, o PrefixedOptional[T], enc EncodeFunc[T]) error {
	if err := Boolean(o.Present).Encode(w); err != nil {
		return err
	}
	if !o.Present {
		return nil
	}
	return enc(w, o.Value)
}

func DecodePrefixedOptional[T any](r io.Reader, dec DecodeFunc[T]) (PrefixedOptional[T], error) {
	present, err := DecodeBoolean(r)
	if err != nil {
		return PrefixedOptional[T]{}, err
	}
	if !present {
		return PrefixedOptional[T]{}, nil
	}
	v, err := dec(r)
	if err != nil {
		return PrefixedOptional[T]{}, err
	}
	return PrefixedOptional[T]{Present: true, Value: v}, nil
}

// Some is a convenience constructor for a present PrefixedOptional.
func Some[T any](v T) PrefixedOptional[T] {
	return PrefixedOptional[T]{Present: true, Value: v}
}
