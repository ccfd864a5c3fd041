package proto

import (
	jp "github.com/go-mcproto/core/java_protocol"
)

// EncodePacket serializes a typed packet (built via NewPacket(...).WithData(...))
// into the id+payload bytes WritePacketBytes expects, per spec 4.3 and 4.6 step 1.
func EncodePacket(p *jp.Packet) ([]byte, error) {
	return p.IDAndPayload()
}

// DecodePacket splits idAndPayload (as returned by ReadPacketBytes) into a
// Packet scoped to state/bound, with PacketID and raw Data populated.
// Matching PacketID against a registered variant and unmarshaling Data into
// that variant's struct (via (*jp.Packet).UnmarshalInto) is the caller's job,
// since only the caller knows which variants are valid in a given state.
func DecodePacket(state jp.State, bound jp.Bound, idAndPayload []byte) (*jp.Packet, error) {
	return jp.ParsePacket(state, bound, idAndPayload)
}
