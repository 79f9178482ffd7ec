// Package locate maps browser geolocation outcomes to user-facing
// status messages. The browser owns the geolocation request itself;
// the service only interprets its one-shot result.
package locate

// ErrorKind identifies why a geolocation request failed.
type ErrorKind string

const (
	ErrPermissionDenied    ErrorKind = "permission_denied"
	ErrPositionUnavailable ErrorKind = "position_unavailable"
	ErrTimeout             ErrorKind = "timeout"
	ErrUnsupported         ErrorKind = "unsupported"
)

var messages = map[ErrorKind]string{
	ErrPermissionDenied:    "Location access was denied. Please allow location access in your browser settings and try again.",
	ErrPositionUnavailable: "Location information is unavailable.",
	ErrTimeout:             "The request to get user location timed out.",
	ErrUnsupported:         "Geolocation is not supported by this browser.",
}

const unknownMessage = "An unknown error occurred while retrieving your location."

// Message returns the user-facing message for a failure kind. Unknown
// kinds get a generic message and known=false.
func Message(kind ErrorKind) (msg string, known bool) {
	if msg, ok := messages[kind]; ok {
		return msg, true
	}
	return unknownMessage, false
}
