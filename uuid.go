package objectid

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Segment boundaries of the sharded layout. Changing these breaks every tree already on disk.
const (
	hexLen      = 32
	firstShard  = 2
	secondShard = 4
)

// ObjectID is a thin wrapper over github.com/google/uuid.UUID naming one stored object.
type ObjectID uuid.UUID

// Nil is the zero-value ObjectID.
var Nil ObjectID

// FromUUID wraps a raw UUID. Every 128-bit value is a valid ObjectID.
func FromUUID(u uuid.UUID) ObjectID {
	return ObjectID(u)
}

// FromBytes converts a 16 byte slice to an ObjectID.
func FromBytes(b []byte) (ObjectID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Nil, &Error{Code: InvalidUUID, Err: err}
	}
	return ObjectID(u), nil
}

// ParseHex parses the 32 hex digit simple form. Upper and lower case digits are accepted,
// hyphenated and other decorated UUID forms are not.
func ParseHex(s string) (ObjectID, error) {
	u, err := parseSimple(s)
	if err != nil {
		return Nil, &Error{Code: InvalidUUID, Err: err}
	}
	return ObjectID(u), nil
}

// parseSimple returns the parser's own error so callers can chain it as the cause.
func parseSimple(s string) (uuid.UUID, error) {
	switch len(s) {
	case 36, 36 + 2, 36 + 9:
		// uuid.Parse takes the hyphenated, braced and urn forms; the layout has none of them.
		return uuid.Nil, fmt.Errorf("decorated UUID form not allowed: %q", s)
	}
	return uuid.Parse(s)
}

// UUID returns the underlying UUID value.
func (id ObjectID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// IsNil reports whether the ObjectID equals the zero-value ObjectID.
func (id ObjectID) IsNil() bool {
	return bytes.Equal(id[:], Nil[:])
}

// Hex returns the 32 lowercase hex digit encoding, without hyphens.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String returns the same form as Hex, which is also the concatenation of the path segments.
func (id ObjectID) String() string {
	return id.Hex()
}

// Compare compares two ObjectIDs and returns -1 if x < y, 1 if x > y, and 0 if they are equal.
func (x ObjectID) Compare(y ObjectID) int {
	return bytes.Compare(x[:], y[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and accepts what ParseHex accepts.
func (id *ObjectID) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// LogValue implements slog.LogValuer.
func (id ObjectID) LogValue() slog.Value {
	return slog.StringValue(id.Hex())
}
