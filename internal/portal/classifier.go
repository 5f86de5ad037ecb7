package portal

import "strings"

// Outcome tags a portal response body.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeConflict
	OutcomeServiceDown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeConflict:
		return "conflict"
	case OutcomeServiceDown:
		return "service-down"
	default:
		return "unknown"
	}
}

// Marker phrases the portal embeds in its HTML. All the classification the
// engine does hangs off these three strings, so they live here and nowhere
// else.
const (
	markerMaintenance = "currently unavailable"
	markerConflict    = "already logged in"
	markerLogout      = "logout"
)

// Classify inspects a raw response body and tags it. Matching is
// case-insensitive substring search. Conflict is checked before success
// because a conflict page can still carry a logout link.
func Classify(body string) Outcome {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, markerMaintenance):
		return OutcomeServiceDown
	case strings.Contains(lower, markerConflict):
		return OutcomeConflict
	case strings.Contains(lower, markerLogout):
		return OutcomeSuccess
	default:
		return OutcomeUnknown
	}
}
