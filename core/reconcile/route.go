package reconcile

import (
	"strconv"
	"strings"
)

// Manufacturing routes for jacket jobs.
const (
	// RouteIndigo is the HP Indigo line, reserved for the 280x216mm trim.
	RouteIndigo = "Indigo"
	// RouteRicoh is the Ricoh line and the default for every other trim.
	RouteRicoh = "Ricoh"
)

// Trim dimensions (millimetres) that route to Indigo.
const (
	indigoTrimHeight = 280
	indigoTrimWidth  = 216
)

// Route maps physical trim dimensions to a manufacturing route.
// Inputs are parsed as floating-point millimetre values; string-coercible
// numerics are honored and a parse failure yields a non-matching value
// rather than an error. Exactly 280x216 routes to Indigo; everything else,
// including missing or non-numeric dimensions, routes to Ricoh. Ricoh is
// the default route, not an error state. Pure function.
func Route(trimHeight, trimWidth string) string {
	h, errH := strconv.ParseFloat(strings.TrimSpace(trimHeight), 64)
	w, errW := strconv.ParseFloat(strings.TrimSpace(trimWidth), 64)
	if errH == nil && errW == nil && h == indigoTrimHeight && w == indigoTrimWidth {
		return RouteIndigo
	}
	return RouteRicoh
}
