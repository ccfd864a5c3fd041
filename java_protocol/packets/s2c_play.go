package packets

import (
	jp "github.com/go-mcproto/core/java_protocol"
	ns "github.com/go-mcproto/core/net_structures"
)

// S2CKeepAlivePlayPacket represents "Clientbound Keep Alive (play)"
//
// > The server will frequently send out a keep-alive, each containing a random ID.
// The client must respond with the same payload.
// If the client does not respond to a Keep Alive packet within 15 seconds after it was sent,
// the server kicks the client. Vice versa, if the server does not send any keep-alives for 20 seconds,
// the client will disconnect and yields a "Timed out" exception.
//
// > The vanilla server uses a system-dependent time in milliseconds to generate the keep alive ID value.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(play)
var S2CKeepAlivePlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x26)

type S2CKeepAlivePlayPacketData struct {
	KeepAliveID ns.Long
}

// S2CSystemChatMessagePacket represents "System Chat Message"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#System_Chat_Message
var S2CSystemChatMessagePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x62)

type S2CSystemChatMessagePacketData struct {
	Content ns.JSONTextComponent
	Overlay ns.Boolean
}

// S2CPingPlayPacket represents "Ping (play)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(play)
var S2CPingPlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x33)

type S2CPingPlayPacketData struct {
	ID ns.Int
}

// S2CLevelChunkWithLightPacket represents "Chunk Data and Update Light".
//
// Data holds the concatenated, section-encoded chunk payload (block count +
// block-state paletted container + biome paletted container, repeated per
// section) produced by world.EncodeSections / consumed by
// world.DecodeSections; this packet only frames that blob, it does not
// interpret it. Heightmaps and block entities are likewise carried as opaque
// prefixed blobs: decoding them is the lighting/terrain consumer's job, not
// the wire layer's.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chunk_Data_and_Update_Light
var S2CLevelChunkWithLightPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x2C)

type S2CLevelChunkWithLightPacketData struct {
	ChunkX              ns.Int
	ChunkZ              ns.Int
	Heightmaps          ns.PrefixedByteArray
	Data                ns.PrefixedByteArray
	BlockEntities       ns.PrefixedByteArray
	SkyLightMask        ns.PrefixedByteArray
	BlockLightMask      ns.PrefixedByteArray
	EmptySkyLightMask   ns.PrefixedByteArray
	EmptyBlockLightMask ns.PrefixedByteArray
	SkyLightArrays      ns.PrefixedByteArray
	BlockLightArrays    ns.PrefixedByteArray
}
