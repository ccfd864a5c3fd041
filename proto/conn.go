package proto

import (
	"crypto/aes"
	"fmt"
	"net"

	mc_crypto "github.com/go-mcproto/core/crypto"
	"github.com/go-mcproto/core/java_protocol/session_server"
	"github.com/go-mcproto/core/wire"
)

// core is the untyped connection shared by every state-typed wrapper. It is
// never exposed directly: Handshake/Status/Login/Game each expose only the
// operations valid in that state, per azalea-protocol's phantom-type design
// (src/connect.rs) ported to four concrete wrapper types sharing one private
// core.
type core struct {
	conn  net.Conn
	read  *ReadHalf
	write *WriteHalf
}

// Dial opens a TCP connection to addr with Nagle's algorithm disabled and
// returns a Handshake-typed connection with compression and encryption
// disabled.
func Dial(addr string) (*HandshakeConn, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, wire.NewError(wire.KindIO, fmt.Errorf("resolving %s: %w", addr, err))
	}
	conn, err := net.DialTCP("tcp", nil, tcpAddr)
	if err != nil {
		return nil, wire.NewError(wire.KindIO, fmt.Errorf("dialing %s: %w", addr, err))
	}
	if err := conn.SetNoDelay(true); err != nil {
		return nil, wire.NewError(wire.KindIO, err)
	}
	return &HandshakeConn{core: &core{conn: conn, read: NewReadHalf(conn), write: NewWriteHalf(conn)}}, nil
}

// HandshakeConn is the initial typed view of a connection: no compression,
// no encryption, only the Handshake packet registry is valid.
type HandshakeConn struct{ *core }

// StatusConn is reachable from Handshake; status pings never enable
// compression or encryption.
type StatusConn struct{ *core }

// LoginConn is reachable from Handshake; it is the only state that may
// enable compression and/or encryption before transitioning to Game.
type LoginConn struct{ *core }

// GameConn is reachable only from Login. Compression/encryption settings
// made in Login carry over unchanged.
type GameConn struct{ *core }

// Status consumes the Handshake-typed view and returns a Status-typed view
// over the same underlying halves. The old value must not be used again.
func (h *HandshakeConn) Status() *StatusConn {
	c := h.core
	h.core = nil
	return &StatusConn{core: c}
}

// Login consumes the Handshake-typed view and returns a Login-typed view.
func (h *HandshakeConn) Login() *LoginConn {
	c := h.core
	h.core = nil
	return &LoginConn{core: c}
}

// Game consumes the Login-typed view and returns a Game-typed view. Any
// compression threshold and cipher installed during Login are preserved.
func (l *LoginConn) Game() *GameConn {
	c := l.core
	l.core = nil
	return &GameConn{core: c}
}

// SetCompressionThreshold enables compression for frames at or above
// threshold bytes, applied to both halves. A negative threshold disables
// compression.
func (l *LoginConn) SetCompressionThreshold(threshold int) {
	l.read.SetCompressionThreshold(threshold)
	l.write.SetCompressionThreshold(threshold)
}

// SetEncryptionKey installs a shared AES-128/CFB8 cipher, keyed and IV'd
// with key per protocol convention (see crypto package docs). It must be
// called at most once; calling it again replaces the cipher on both halves,
// which a real handshake never does because it would desynchronize state
// with the server.
func (l *LoginConn) SetEncryptionKey(key [16]byte) error {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return wire.NewError(wire.KindIO, fmt.Errorf("building AES cipher: %w", err))
	}
	l.read.SetDecryptStream(mc_crypto.NewDecryptStream(block, key[:]))
	l.write.SetEncryptStream(mc_crypto.NewEncryptStream(block, key[:]))
	return nil
}

// Authenticate performs the outbound session-server join call. Success
// returns nil; failure is a *wire.Error of kind KindSessionServer.
func (l *LoginConn) Authenticate(accessToken, serverID, playerUUID string, sharedSecret, serverPublicKey []byte) error {
	client := session_server.NewSessionServerClient()
	if err := client.Join(accessToken, playerUUID, serverID, sharedSecret, serverPublicKey); err != nil {
		return wire.NewError(wire.KindSessionServer, err)
	}
	return nil
}

// Split returns the connection's read and write halves. After Split the
// typed wrapper itself should not be used for I/O; the two halves are
// independently owned and may be driven by separate goroutines with no
// shared mutable state.
func (s *StatusConn) Split() (*ReadHalf, *WriteHalf) { return s.read, s.write }
func (l *LoginConn) Split() (*ReadHalf, *WriteHalf)  { return l.read, l.write }
func (g *GameConn) Split() (*ReadHalf, *WriteHalf)   { return g.read, g.write }

// ReadPacketBytes and WritePacketBytes are convenience passthroughs for
// callers that don't need split halves (e.g. the Handshake packet, which is
// a single C2S write with no response).
func (h *HandshakeConn) WritePacketBytes(idAndPayload []byte) error {
	return h.write.WritePacketBytes(idAndPayload)
}

func (s *StatusConn) ReadPacketBytes() ([]byte, error)  { return s.read.ReadPacketBytes() }
func (s *StatusConn) WritePacketBytes(b []byte) error   { return s.write.WritePacketBytes(b) }
func (l *LoginConn) ReadPacketBytes() ([]byte, error)   { return l.read.ReadPacketBytes() }
func (l *LoginConn) WritePacketBytes(b []byte) error    { return l.write.WritePacketBytes(b) }
func (g *GameConn) ReadPacketBytes() ([]byte, error)    { return g.read.ReadPacketBytes() }
func (g *GameConn) WritePacketBytes(b []byte) error     { return g.write.WritePacketBytes(b) }

// Close releases the underlying socket. Safe to call on any state; releases
// the one TCP connection the halves share.
func (c *core) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (h *HandshakeConn) Close() error { return h.core.Close() }
func (s *StatusConn) Close() error    { return s.core.Close() }
func (l *LoginConn) Close() error     { return l.core.Close() }
func (g *GameConn) Close() error      { return g.core.Close() }
