// Package proto implements the framed, optionally-compressed,
// optionally-encrypted wire transport and the state-typed connection that
// carries a session through Handshake -> Status/Login -> Game, grounded on
// go-mclib-protocol's BaseTCP/TCPClient and azalea-protocol's connect.rs.
package proto

import (
	"bytes"
	"compress/zlib"
	"crypto/cipher"
	"fmt"
	"io"
	"net"

	"github.com/go-mcproto/core/wire"
)

// maxFrameLength is the hard cap on a frame's declared body length. Vanilla
// rejects anything over 2^21-1; this implementation rejects anything over 2^21.
const maxFrameLength = 1 << 21

// ReadHalf is the independently-owned read side of a connection: its own
// socket reference, decrypt cipher, and compression threshold. It shares no
// mutable state with WriteHalf.
type ReadHalf struct {
	conn                 net.Conn
	compressionThreshold int // negative disables compression
	decrypt              cipher.Stream
}

// WriteHalf is the independently-owned write side of a connection.
type WriteHalf struct {
	conn                 net.Conn
	compressionThreshold int
	encrypt              cipher.Stream
}

// NewReadHalf wraps an arbitrary net.Conn as a read half with compression
// and encryption both initially disabled. Dial uses this internally; it's
// exported so callers (and tests) can drive the frame codec over any
// net.Conn, not just a dialed TCP socket.
func NewReadHalf(conn net.Conn) *ReadHalf {
	return &ReadHalf{conn: conn, compressionThreshold: -1}
}

// NewWriteHalf is the write-side counterpart of NewReadHalf.
func NewWriteHalf(conn net.Conn) *WriteHalf {
	return &WriteHalf{conn: conn, compressionThreshold: -1}
}

// SetCompressionThreshold enables compression with the given byte threshold,
// or disables it when threshold is negative.
func (r *ReadHalf) SetCompressionThreshold(threshold int) { r.compressionThreshold = threshold }
func (w *WriteHalf) SetCompressionThreshold(threshold int) { w.compressionThreshold = threshold }

// SetDecryptStream installs the decrypt side of a stream cipher. Called at
// most once per connection, from Login.
func (r *ReadHalf) SetDecryptStream(s cipher.Stream) { r.decrypt = s }

// SetEncryptStream installs the encrypt side of a stream cipher.
func (w *WriteHalf) SetEncryptStream(s cipher.Stream) { w.encrypt = s }

// readByte reads and, if a cipher is installed, decrypts a single byte.
// Bytes are decrypted in the exact order they arrive on the wire: the length
// prefix is itself ciphertext whenever encryption is enabled, so this must
// run before any VarInt parsing, never after.
func (r *ReadHalf) readByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r.conn, b[:]); err != nil {
		return 0, wrapReadErr(err)
	}
	if r.decrypt != nil {
		r.decrypt.XORKeyStream(b[:], b[:])
	}
	return b[0], nil
}

func (r *ReadHalf) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.conn, buf); err != nil {
		return nil, wrapReadErr(err)
	}
	if r.decrypt != nil {
		r.decrypt.XORKeyStream(buf, buf)
	}
	return buf, nil
}

func wrapReadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return wire.NewError(wire.KindUnexpectedEOF, err)
	}
	return wire.NewError(wire.KindIO, err)
}

// readFrameVarInt mirrors wire.DecodeVarInt but reads through readByte so
// every byte, including the length prefix, passes through decryption.
func (r *ReadHalf) readFrameVarInt() (int, error) {
	var result uint32
	var position uint
	for {
		if position >= 5*7 {
			return 0, wire.NewError(wire.KindMalformedVarInt, fmt.Errorf("varint is too big"))
		}
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7F) << position
		if b&0x80 == 0 {
			break
		}
		position += 7
	}
	return int(int32(result)), nil
}

// ReadFrame reads one length-prefixed frame and returns its body, decrypted
// but not yet decompressed.
func (r *ReadHalf) ReadFrame() ([]byte, error) {
	length, err := r.readFrameVarInt()
	if err != nil {
		return nil, err
	}
	if length < 0 || length > maxFrameLength {
		return nil, wire.NewError(wire.KindFrameTooLarge, fmt.Errorf("frame length %d exceeds cap %d", length, maxFrameLength))
	}
	return r.readExact(length)
}

// ReadPacketBytes reads one frame and returns the decompressed packet bytes
// (packet id VarInt followed by its payload), per spec 4.5.
func (r *ReadHalf) ReadPacketBytes() ([]byte, error) {
	body, err := r.ReadFrame()
	if err != nil {
		return nil, err
	}
	if r.compressionThreshold < 0 {
		return body, nil
	}

	br := bytes.NewReader(body)
	uncompressedLen, err := wire.DecodeVarInt(br)
	if err != nil {
		return nil, err
	}
	rest := make([]byte, br.Len())
	if _, err := io.ReadFull(br, rest); err != nil {
		return nil, wrapReadErr(err)
	}
	if uncompressedLen == 0 {
		return rest, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, wire.NewError(wire.KindDecompress, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, wire.NewError(wire.KindDecompress, err)
	}
	if len(out) != int(uncompressedLen) {
		return nil, wire.NewError(wire.KindUncompressedLengthMismatch,
			fmt.Errorf("declared %d, got %d", uncompressedLen, len(out)))
	}
	return out, nil
}

// WritePacketBytes serializes id+payload into a frame (compressing it if
// eligible) and writes it to the stream, encrypting last so the length
// prefix itself is ciphertext whenever encryption is enabled.
func (w *WriteHalf) WritePacketBytes(idAndPayload []byte) error {
	var body []byte
	switch {
	case w.compressionThreshold < 0:
		body = idAndPayload
	case len(idAndPayload) >= w.compressionThreshold:
		var buf bytes.Buffer
		if err := wire.VarInt(len(idAndPayload)).Encode(&buf); err != nil {
			return err
		}
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(idAndPayload); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		body = buf.Bytes()
	default:
		var buf bytes.Buffer
		if err := wire.VarInt(0).Encode(&buf); err != nil {
			return err
		}
		buf.Write(idAndPayload)
		body = buf.Bytes()
	}

	if len(body) > maxFrameLength {
		return wire.NewError(wire.KindFrameTooLarge, fmt.Errorf("frame length %d exceeds cap %d", len(body), maxFrameLength))
	}

	var frame bytes.Buffer
	if err := wire.VarInt(len(body)).Encode(&frame); err != nil {
		return err
	}
	frame.Write(body)

	out := frame.Bytes()
	if w.encrypt != nil {
		w.encrypt.XORKeyStream(out, out)
	}
	_, err := w.conn.Write(out)
	if err != nil {
		return wire.NewError(wire.KindIO, err)
	}
	return nil
}

// Close half-closes the write side, shutting down the outbound half of the
// TCP connection while leaving the peer free to finish delivering buffered
// inbound frames.
func (w *WriteHalf) Close() error {
	if tc, ok := w.conn.(*net.TCPConn); ok {
		return tc.CloseWrite()
	}
	return w.conn.Close()
}

// Close is a no-op: the read half owns no resource of its own. Split halves
// share one net.Conn, which is released by the state-typed connection's Close
// (or by WriteHalf.Close when the conn is not a *net.TCPConn).
func (r *ReadHalf) Close() error {
	return nil
}
