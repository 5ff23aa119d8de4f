// Package gts implements the GTS envelope codec (spec.md §4.5, §4.6):
// reception serialization for a Pokémon sent to a game, deposit
// deserialization for a Pokémon received from one, the Gen-4-only
// secondary stream cipher guarding deposits, and the Gen-5 HTTP
// response footer. Grounded on gts-rs's pkm_utils/gts.rs.
package gts

import "errors"

var (
	// ErrMalformedDeposit is returned when a deposit's decoded length
	// does not match the expected Gen-4/Gen-5 wire size, or its Base64
	// payload fails to decode.
	ErrMalformedDeposit = errors.New("gts: malformed deposit payload")

	// ErrInvalidGeonet is returned when a GTSData's country/region
	// cannot be resolved against the geonet table (spec.md §6: missing
	// translations are a fatal serialization error).
	ErrInvalidGeonet = errors.New("gts: unknown country or region")

	// ErrInvalidEnum is returned when a GTSData field decodes to an id
	// with no corresponding enum value (gender, trainer class, game,
	// language).
	ErrInvalidEnum = errors.New("gts: field references an unknown id")
)
