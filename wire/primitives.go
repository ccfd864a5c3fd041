package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// Boolean is a single byte (0x00 = false, 0x01 = true).
type Boolean bool

func (v Boolean) Encode(w io.Writer) error {
	var b byte
	if v {
		b = 0x01
	}
	_, err := w.Write([]byte{b})
	return err
}

func DecodeBoolean(r io.Reader) (Boolean, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, newKindErr(KindUnexpectedEOF, err)
	}
	return b[0] != 0, nil
}

// Byte is a signed 8-bit integer.
type Byte int8

func (v Byte) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeByte(r io.Reader) (Byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Byte(b[0]), nil
}

// UnsignedByte is an unsigned 8-bit integer.
type UnsignedByte uint8

func (v UnsignedByte) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeUnsignedByte(r io.Reader) (UnsignedByte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return UnsignedByte(b[0]), nil
}

// Short is a big-endian signed 16-bit integer.
type Short int16

func (v Short) Encode(w io.Writer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeShort(r io.Reader) (Short, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Short(binary.BigEndian.Uint16(b[:])), nil
}

// UnsignedShort is a big-endian unsigned 16-bit integer.
type UnsignedShort uint16

func (v UnsignedShort) Encode(w io.Writer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeUnsignedShort(r io.Reader) (UnsignedShort, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return UnsignedShort(binary.BigEndian.Uint16(b[:])), nil
}

// Int is a big-endian signed 32-bit integer.
type Int int32

func (v Int) Encode(w io.Writer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeInt(r io.Reader) (Int, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Int(binary.BigEndian.Uint32(b[:])), nil
}

// Long is a big-endian signed 64-bit integer.
type Long int64

func (v Long) Encode(w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return err
}

func DecodeLong(r io.Reader) (Long, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Long(binary.BigEndian.Uint64(b[:])), nil
}

// Float is a big-endian IEEE 754 single-precision float.
type Float float32

func (v Float) Encode(w io.Writer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
	_, err := w.Write(b[:])
	return err
}

func DecodeFloat(r io.Reader) (Float, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Float(math.Float32frombits(binary.BigEndian.Uint32(b[:]))), nil
}

// Double is a big-endian IEEE 754 double-precision float.
type Double float64

func (v Double) Encode(w io.Writer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(float64(v)))
	_, err := w.Write(b[:])
	return err
}

func DecodeDouble(r io.Reader) (Double, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Double(math.Float64frombits(binary.BigEndian.Uint64(b[:]))), nil
}

// Angle is a rotation angle: one byte representing 1/256 of a full turn.
type Angle byte

// NewAngle converts a yaw/pitch in degrees to the wire Angle representation.
func NewAngle(degrees float64) Angle {
	return Angle(byte(int32(degrees*256.0/360.0) & 0xFF))
}

func (v Angle) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeAngle(r io.Reader) (Angle, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, newKindErr(KindUnexpectedEOF, err)
	}
	return Angle(b[0]), nil
}

// ToDegrees converts the wire angle back to degrees in [0, 360).
func (v Angle) ToDegrees() float64 {
	return float64(v) * 360.0 / 256.0
}
