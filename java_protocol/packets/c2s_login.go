package packets

// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login

import (
	jp "github.com/go-mcproto/core/java_protocol"
	ns "github.com/go-mcproto/core/net_structures"
)

// C2SHelloPacket represents "Login Start" (serverbound/login).
//
// Carries a chat session (signed-chat session ID plus an optional profile
// public key) and an optional profile ID, matching azalea's
// ServerboundHelloPacket field-for-field.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Hello
var C2SHelloPacket = jp.NewPacket(jp.StateLogin, jp.C2S, 0x00)

type C2SHelloPacketData struct {
	// Player's Username.
	Name ns.String
	// Signed-chat session data; ProfilePublicKey is absent for players who
	// haven't enabled signed chat.
	ChatSession RemoteChatSessionData
	// The UUID of the player logging in, if known ahead of authentication.
	ProfileID ns.PrefixedOptional[ns.UUID]
}

// RemoteChatSessionData identifies a client's signed-chat session.
type RemoteChatSessionData struct {
	SessionID        ns.UUID
	ProfilePublicKey ns.PrefixedOptional[ProfilePublicKeyData]
}

func (r RemoteChatSessionData) ToBytes() (ns.ByteArray, error) {
	var out ns.ByteArray
	b, err := r.SessionID.ToBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, b...)
	b, err = r.ProfilePublicKey.ToBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, b...)
	return out, nil
}

func (r *RemoteChatSessionData) FromBytes(data ns.ByteArray) (int, error) {
	offset := 0
	n, err := r.SessionID.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = r.ProfilePublicKey.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	return offset, nil
}

// ProfilePublicKeyData is a Mojang-signed player public key, used to verify
// signed chat messages from this session.
type ProfilePublicKeyData struct {
	ExpiresAt    ns.Long
	Key          ns.PrefixedByteArray
	KeySignature ns.PrefixedByteArray
}

func (p ProfilePublicKeyData) ToBytes() (ns.ByteArray, error) {
	var out ns.ByteArray
	b, err := p.ExpiresAt.ToBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, b...)
	b, err = p.Key.ToBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, b...)
	b, err = p.KeySignature.ToBytes()
	if err != nil {
		return nil, err
	}
	out = append(out, b...)
	return out, nil
}

func (p *ProfilePublicKeyData) FromBytes(data ns.ByteArray) (int, error) {
	offset := 0
	n, err := p.ExpiresAt.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = p.Key.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	n, err = p.KeySignature.FromBytes(data[offset:])
	if err != nil {
		return 0, err
	}
	offset += n
	return offset, nil
}

// C2SKeyPacket represents "Encryption Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Response
// https://minecraft.wiki/w/Protocol_encryption
var C2SKeyPacket = jp.NewPacket(jp.StateLogin, jp.C2S, 0x01)

type C2SKeyPacketData struct {
	// Shared Secret value, encrypted with the server's public key.
	SharedSecret ns.PrefixedByteArray
	// Verify Token value, encrypted with the same public key as the shared secret.
	VerifyToken ns.PrefixedByteArray
}

// C2SCustomQueryAnswerPacket represents "Login Plugin Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Response
var C2SCustomQueryAnswerPacket = jp.NewPacket(jp.StateLogin, jp.C2S, 0x02)

type C2SCustomQueryAnswerPacketData struct {
	// Should match ID from server.
	MessageID ns.VarInt
	// Any data, depending on the channel. The length of this array must be inferred
	// from the packet length. Only present if the client understood the request.
	Data ns.PrefixedOptional[ns.ByteArray]
}

// C2SLoginAcknowledgedPacket represents "Login Acknowledged" (serverbound/login). Has no fields
//
// > Acknowledgement to the Login Success packet sent by the server.
// This packet switches the connection state to configuration.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Acknowledged
var C2SLoginAcknowledgedPacket = jp.NewPacket(jp.StateLogin, jp.C2S, 0x03)

// C2SCookieResponseLoginPacket represents "Cookie Response (login)" (serverbound/login).
//
// > Response to a Cookie Request (login) from the server.
// The vanilla server only accepts responses of up to 5 kiB in size.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(login)
var C2SCookieResponseLoginPacket = jp.NewPacket(jp.StateLogin, jp.C2S, 0x04)

type C2SCookieResponsePacketData struct {
	// The identifier of the cookie.
	Key ns.Identifier
	// The data of the cookie.
	Payload ns.PrefixedOptional[ns.ByteArray]
}
