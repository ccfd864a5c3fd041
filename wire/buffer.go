package wire

import (
	"bytes"
	"fmt"
	"io"
)

// PacketBuffer wraps an io.Reader or io.Writer with typed read/write methods
// for every primitive in this package, mirroring the teacher's streaming
// codec so packet Read/Write methods never touch byte slices directly.
type PacketBuffer struct {
	reader io.Reader
	writer io.Writer
	buf    *bytes.Buffer
}

func NewReader(data []byte) *PacketBuffer {
	return &PacketBuffer{reader: bytes.NewReader(data)}
}

func NewReaderFrom(r io.Reader) *PacketBuffer {
	return &PacketBuffer{reader: r}
}

func NewWriter() *PacketBuffer {
	buf := &bytes.Buffer{}
	return &PacketBuffer{writer: buf, buf: buf}
}

func NewWriterTo(w io.Writer) *PacketBuffer {
	return &PacketBuffer{writer: w}
}

func (pb *PacketBuffer) Bytes() []byte {
	if pb.buf != nil {
		return pb.buf.Bytes()
	}
	return nil
}

func (pb *PacketBuffer) Len() int {
	if pb.buf != nil {
		return pb.buf.Len()
	}
	return 0
}

func (pb *PacketBuffer) Read(p []byte) (int, error) {
	if pb.reader == nil {
		return 0, fmt.Errorf("wire: buffer not in read mode")
	}
	return io.ReadFull(pb.reader, p)
}

func (pb *PacketBuffer) Write(p []byte) (int, error) {
	if pb.writer == nil {
		return 0, fmt.Errorf("wire: buffer not in write mode")
	}
	return pb.writer.Write(p)
}

func (pb *PacketBuffer) Reader() io.Reader { return pb.reader }
func (pb *PacketBuffer) Writer() io.Writer { return pb.writer }

func (pb *PacketBuffer) ReadVarInt() (VarInt, error)   { return DecodeVarInt(pb.reader) }
func (pb *PacketBuffer) WriteVarInt(v VarInt) error    { return v.Encode(pb.writer) }
func (pb *PacketBuffer) ReadVarLong() (VarLong, error) { return DecodeVarLong(pb.reader) }
func (pb *PacketBuffer) WriteVarLong(v VarLong) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadBool() (Boolean, error) { return DecodeBoolean(pb.reader) }
func (pb *PacketBuffer) WriteBool(v Boolean) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadByte_() (Byte, error) { return DecodeByte(pb.reader) }
func (pb *PacketBuffer) WriteByte_(v Byte) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadUnsignedByte() (UnsignedByte, error) {
	return DecodeUnsignedByte(pb.reader)
}
func (pb *PacketBuffer) WriteUnsignedByte(v UnsignedByte) error { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadShort() (Short, error) { return DecodeShort(pb.reader) }
func (pb *PacketBuffer) WriteShort(v Short) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadUnsignedShort() (UnsignedShort, error) {
	return DecodeUnsignedShort(pb.reader)
}
func (pb *PacketBuffer) WriteUnsignedShort(v UnsignedShort) error { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadInt() (Int, error) { return DecodeInt(pb.reader) }
func (pb *PacketBuffer) WriteInt(v Int) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadLong() (Long, error) { return DecodeLong(pb.reader) }
func (pb *PacketBuffer) WriteLong(v Long) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadFloat() (Float, error) { return DecodeFloat(pb.reader) }
func (pb *PacketBuffer) WriteFloat(v Float) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadDouble() (Double, error) { return DecodeDouble(pb.reader) }
func (pb *PacketBuffer) WriteDouble(v Double) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadAngle() (Angle, error) { return DecodeAngle(pb.reader) }
func (pb *PacketBuffer) WriteAngle(v Angle) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadString(maxLen int) (String, error) { return DecodeString(pb.reader, maxLen) }
func (pb *PacketBuffer) WriteString(v String) error            { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadIdentifier() (Identifier, error) { return DecodeIdentifier(pb.reader) }
func (pb *PacketBuffer) WriteIdentifier(v Identifier) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadByteArrayN(n int) (ByteArray, error) {
	return DecodeByteArrayN(pb.reader, n)
}
func (pb *PacketBuffer) WriteByteArray(v ByteArray) error { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadPrefixedByteArray(maxLen int) (PrefixedByteArray, error) {
	return DecodePrefixedByteArray(pb.reader, maxLen)
}
func (pb *PacketBuffer) WritePrefixedByteArray(v PrefixedByteArray) error { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadUUID() (UUID, error) { return DecodeUUID(pb.reader) }
func (pb *PacketBuffer) WriteUUID(v UUID) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadPosition() (Position, error) { return DecodePosition(pb.reader) }
func (pb *PacketBuffer) WritePosition(v Position) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadBitSet() (BitSet, error) { return DecodeBitSet(pb.reader) }
func (pb *PacketBuffer) WriteBitSet(v BitSet) error  { return v.Encode(pb.writer) }

func (pb *PacketBuffer) ReadFixedBitSet(length int) (FixedBitSet, error) {
	return DecodeFixedBitSet(pb.reader, length)
}
func (pb *PacketBuffer) WriteFixedBitSet(v FixedBitSet) error { return v.Encode(pb.writer) }
