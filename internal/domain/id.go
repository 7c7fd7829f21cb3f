package domain

import (
	"github.com/oklog/ulid/v2"
)

// ID is a validated ULID. The zero value is not a valid ID.
type ID struct {
	value string
}

// NewID generates a fresh ULID from the process-wide monotonic entropy source.
func NewID() ID {
	return ID{value: ulid.Make().String()}
}

// ParseID validates a supplied identifier and returns it in canonical upper case,
// so ids that differ only in case compare equal.
func ParseID(raw string) (ID, error) {
	// ParseStrict rejects wrong length, characters outside the Crockford
	// alphabet and timestamps that overflow 48 bits.
	parsed, err := ulid.ParseStrict(raw)
	if err != nil {
		return ID{}, newValidationError("id", raw, err)
	}
	return ID{value: parsed.String()}, nil
}

func (id ID) String() string {
	return id.value
}

// IsZero reports whether id was never set.
func (id ID) IsZero() bool {
	return id.value == ""
}
