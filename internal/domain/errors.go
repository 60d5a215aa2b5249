package domain

import "errors"

// Error taxonomy. Collaborator adapters map transport failures onto these
// sentinels; pure components never return them for validatable input.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("upstream unavailable")
)

// ErrorKind labels an error for the problem response and for metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		var fe FieldErrors
		if errors.As(err, &fe) {
			return "validation"
		}
		return "internal"
	}
}
