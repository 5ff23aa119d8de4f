package pkm

import "errors"

// Sentinel errors for the codec's fault taxonomy (spec.md §7). Callers
// that need to distinguish a fault kind should use errors.Is against
// these; wrapped context is always attached via fmt.Errorf("%w: ...").
var (
	// ErrMalformedLength is returned when a byte slice handed to
	// Deserialize is not 136, 220, or 236 bytes.
	ErrMalformedLength = errors.New("pkm: record is not 136, 220, or 236 bytes")

	// ErrInvalidEnum is returned when a field decodes to an id with no
	// corresponding table entry (species, ability, move, item,
	// language, game, ball, trainer class, or location).
	ErrInvalidEnum = errors.New("pkm: field references an unknown id")

	// ErrUnencodableName is returned when a nickname or trainer name
	// cannot be encoded in the target generation's character set, or
	// decodes without a terminator.
	ErrUnencodableName = errors.New("pkm: name cannot be encoded or decoded")
)
