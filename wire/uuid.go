package wire

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// UUID is a 128-bit identifier sent as 16 raw bytes, most-significant-word
// first.
type UUID [16]byte

var NilUUID = UUID{}

func (v UUID) Encode(w io.Writer) error {
	_, err := w.Write(v[:])
	return err
}

func DecodeUUID(r io.Reader) (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return u, newKindErr(KindUnexpectedEOF, err)
	}
	return u, nil
}

// UUIDFromInt64s builds a UUID from its most/least-significant 64-bit halves.
func UUIDFromInt64s(msb, lsb int64) UUID {
	var u UUID
	binary.BigEndian.PutUint64(u[0:8], uint64(msb))
	binary.BigEndian.PutUint64(u[8:16], uint64(lsb))
	return u
}

func (v UUID) MostSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(v[0:8]))
}

func (v UUID) LeastSignificantBits() int64 {
	return int64(binary.BigEndian.Uint64(v[8:16]))
}

func (v UUID) IsNil() bool { return v == NilUUID }

// String renders the UUID in canonical hyphenated form.
func (v UUID) String() string {
	h := hex.EncodeToString(v[:])
	return fmt.Sprintf("%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}

// UUIDFromString parses a canonical (hyphenated or not) UUID string.
func UUIDFromString(s string) (UUID, error) {
	clean := strings.ReplaceAll(s, "-", "")
	if len(clean) != 32 {
		return UUID{}, fmt.Errorf("wire: invalid UUID string %q", s)
	}
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return UUID{}, fmt.Errorf("wire: invalid UUID string %q: %w", s, err)
	}
	var u UUID
	copy(u[:], raw)
	return u, nil
}
