package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string for quiz identifiers. ulid.Make uses
// the package-level monotonic entropy source, so IDs stay unique even when
// calls land on the same clock tick.
func NewULID() string {
	return ulid.Make().String()
}
