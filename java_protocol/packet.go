// The `java_protocol` package contains the core structs and functions for working with the Java Edition protocol.
//
// > The Minecraft server accepts connections from TCP clients and communicates with them using packets.
// A packet is a sequence of bytes sent over the TCP connection (note: see `net_structures.ByteArray`).
// The meaning of a packet depends both on its packet ID and the current state of the connection
// (note: each state has its own packet ID counter, so packets in different states can have the same packet ID).
// The initial state of each connection is Handshaking, and state is switched using the packets 'Handshake' and 'Login Success'."
//
// Packet format:
//
// > Packets cannot be larger than (2^21) − 1 or 2 097 151 bytes (the maximum that can be sent in a 3-byte VarInt).
// Moreover, the length field must not be longer than 3 bytes, even if the encoded value is within the limit.
// Unnecessarily long encodings at 3 bytes or below are still allowed.
// For compressed packets, this applies to the Packet Length field, i. e. the compressed length.
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
//
// Framing, compression and encryption of packets on an actual socket is handled by the proto
// package; this package only concerns itself with the in-memory packet ID + typed data layer.
package java_protocol

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	ns "github.com/go-mcproto/core/net_structures"
)

// State is the phase that the connection is in (handshake, status, login, configuration, play).
// This is not sent over network (server and client automatically transition phases).
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateStatus:
		return "Status"
	case StateLogin:
		return "Login"
	case StateConfiguration:
		return "Configuration"
	case StatePlay:
		return "Play"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Bound is the direction that the packet is going.
//
// Serverbound: Client -> Server (C2S)
//
// Clientbound: Server -> Client (S2C)
type Bound uint8

const (
	// Client -> Server (C2S, serverbound)
	C2S Bound = iota
	// Server -> Client (S2C, clientbound)
	S2C
)

func (b Bound) String() string {
	if b == S2C {
		return "S2C"
	}
	return "C2S"
}

// Packet is a packet ID plus its marshaled field data, scoped to a protocol
// State and Bound. Packet variants are declared as package-level templates
// via NewPacket (e.g. packets.C2SIntentionPacket) and populated per-instance
// with WithData; the template itself is never mutated.
type Packet struct {
	State    State
	Bound    Bound
	PacketID ns.VarInt
	Data     ns.ByteArray
}

// NewPacket declares a packet variant: its protocol state, direction and ID,
// with no data attached yet. Packet variant files (java_protocol/packets)
// hold one such template per wire packet.
func NewPacket(state State, bound Bound, packetID ns.VarInt) *Packet {
	return &Packet{State: state, Bound: bound, PacketID: packetID}
}

// WithData marshals data (a struct tagged with `mc:"..."`, see packet_codec.go)
// into a new Packet carrying this variant's State/Bound/PacketID. The
// receiver is never modified, so a single package-level template can be
// reused to build any number of instances.
func (p *Packet) WithData(data any) (*Packet, error) {
	encoded, err := PacketDataToBytes(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling packet 0x%02x data: %w", int32(p.PacketID), err)
	}
	return &Packet{State: p.State, Bound: p.Bound, PacketID: p.PacketID, Data: encoded}, nil
}

// UnmarshalInto decodes the packet's raw Data into a struct tagged with
// `mc:"..."` field tags, per packet_codec.go's reflection-based layout.
func (p *Packet) UnmarshalInto(data any) error {
	return BytesToPacketData(p.Data, data)
}

// IDAndPayload encodes the packet ID followed by its raw data, with no
// length prefix, compression or encryption. This is the byte sequence the
// proto package's frame codec expects from WritePacketBytes and returns from
// ReadPacketBytes.
func (p *Packet) IDAndPayload() ([]byte, error) {
	idBytes, err := p.PacketID.ToBytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(idBytes)+len(p.Data))
	out = append(out, idBytes...)
	out = append(out, p.Data...)
	return out, nil
}

// ParsePacket splits idAndPayload (as returned by proto's ReadPacketBytes)
// into a Packet scoped to state/bound, with PacketID and Data populated.
// Matching the ID against a registered variant, and unmarshaling Data into
// that variant's struct, is the caller's responsibility (see proto.DecodePacket).
func ParsePacket(state State, bound Bound, idAndPayload []byte) (*Packet, error) {
	var id ns.VarInt
	n, err := id.FromBytes(ns.ByteArray(idAndPayload))
	if err != nil {
		return nil, fmt.Errorf("reading packet ID: %w", err)
	}
	rest := make(ns.ByteArray, len(idAndPayload)-n)
	copy(rest, idAndPayload[n:])
	return &Packet{State: state, Bound: bound, PacketID: id, Data: rest}, nil
}

// ToBytes serializes the packet as a complete, length-prefixed frame ready
// to write to a socket directly, with compressionThreshold < 0 disabling
// compression. This mirrors the one-shot encode/frame path used by the
// reflection-based packet tests; connections driven through the proto
// package instead call IDAndPayload and hand the result to WriteHalf, which
// applies compression, framing and encryption itself.
//
// Structure (uncompressed):
//
//	packetLength: VarInt(Length of Packet ID + Data) +
//	packetID: VarInt(Packet ID) +
//	data: ByteArray(Data)
//
// Structure (compressed, size >= compressionThreshold):
//
//	packetLength: VarInt(Length of (Data Length) + length of compressed (Packet ID + Data)) +
//	dataLength: VarInt(Length of uncompressed (Packet ID + Data)) +
//	packetID+data: compressed(VarInt(Packet ID) + Data)
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Packet_format
func (p *Packet) ToBytes(compressionThreshold int) ([]byte, error) {
	idAndPayload, err := p.IDAndPayload()
	if err != nil {
		return nil, err
	}

	if compressionThreshold < 0 || len(idAndPayload) < compressionThreshold {
		dataLengthPrefix := []byte{}
		if compressionThreshold >= 0 {
			b, err := ns.VarInt(0).ToBytes()
			if err != nil {
				return nil, err
			}
			dataLengthPrefix = b
		}
		packetContent := append(dataLengthPrefix, idAndPayload...)
		lengthBytes, err := ns.VarInt(len(packetContent)).ToBytes()
		if err != nil {
			return nil, err
		}
		return append(lengthBytes, packetContent...), nil
	}

	compressed := compressZlib(idAndPayload)
	dataLengthBytes, err := ns.VarInt(len(idAndPayload)).ToBytes()
	if err != nil {
		return nil, err
	}
	packetContent := append(dataLengthBytes, compressed...)
	lengthBytes, err := ns.VarInt(len(packetContent)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lengthBytes, packetContent...), nil
}

// ReadPacketFrom reads one complete framed packet from r, handling
// compression according to compressionThreshold (negative disables it). It
// is kept for callers driving a connection synchronously without splitting
// into read/write halves; the proto package implements the same framing
// independently so its halves share no state.
func ReadPacketFrom(r io.Reader, state State, bound Bound, compressionThreshold int) (*Packet, error) {
	var length ns.VarInt
	if err := decodeVarIntFrom(r, &length); err != nil {
		return nil, fmt.Errorf("reading packet length: %w", err)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("reading packet body: %w", err)
	}
	reader := bytes.NewReader(body)

	if compressionThreshold < 0 {
		idAndPayload, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		return ParsePacket(state, bound, idAndPayload)
	}

	var dataLength ns.VarInt
	if err := decodeVarIntFrom(reader, &dataLength); err != nil {
		return nil, fmt.Errorf("reading data length: %w", err)
	}
	rest, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if dataLength == 0 {
		return ParsePacket(state, bound, rest)
	}
	uncompressed, err := decompressZlib(rest)
	if err != nil {
		return nil, fmt.Errorf("decompressing packet: %w", err)
	}
	if len(uncompressed) != int(dataLength) {
		return nil, fmt.Errorf("declared uncompressed length %d, got %d", dataLength, len(uncompressed))
	}
	return ParsePacket(state, bound, uncompressed)
}

// decodeVarIntFrom reads a VarInt one byte at a time from r. ns.VarInt only
// exposes an offset-based FromBytes([]byte) decoder, so framing code that
// streams from an io.Reader of unknown length reads a byte at a time instead.
func decodeVarIntFrom(r io.Reader, out *ns.VarInt) error {
	var result int32
	var position uint
	var b [1]byte
	for {
		if position >= 5*7 {
			return fmt.Errorf("varint is too big")
		}
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		result |= int32(b[0]&0x7F) << position
		if b[0]&0x80 == 0 {
			break
		}
		position += 7
	}
	*out = ns.VarInt(result)
	return nil
}

func compressZlib(data []byte) []byte {
	compressedData := bytes.NewBuffer(nil)
	writer := zlib.NewWriter(compressedData)
	_, _ = writer.Write(data)
	_ = writer.Close()
	return compressedData.Bytes()
}

func decompressZlib(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	return io.ReadAll(reader)
}
