package hexlogo

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidUUID is returned by SeedFromUUID for malformed input.
var ErrInvalidUUID = errors.New("hexlogo: invalid uuid")

// SeedFromUUID derives a seed from the first 8 bytes of a UUID, read big
// endian. Any form accepted by uuid.Parse works.
func SeedFromUUID(s string) (uint64, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidUUID, s, err)
	}
	return binary.BigEndian.Uint64(u[:8]), nil
}

// NewSeed returns a random UUID together with the seed it maps to.
func NewSeed() (string, uint64) {
	u := uuid.New()
	return u.String(), binary.BigEndian.Uint64(u[:8])
}
