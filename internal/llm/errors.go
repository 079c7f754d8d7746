package llm

import "errors"

// Classifier failure categories. Raw provider errors are logged server-side;
// handlers map these sentinels to the user-facing messages below.
var (
	// ErrRateLimited is returned when the provider rejects the call with a
	// rate-limit status (HTTP 429).
	ErrRateLimited = errors.New("classifier rate limit reached")

	// ErrAuthFailed is returned when the provider rejects the configured API
	// key (HTTP 401/403).
	ErrAuthFailed = errors.New("classifier authentication failed")

	// ErrTimeout is returned when the call exceeds the configured timeout.
	ErrTimeout = errors.New("classifier call timed out")

	// ErrNetwork is returned when the call fails before an HTTP response is
	// received, for reasons other than a timeout.
	ErrNetwork = errors.New("classifier network error")

	// ErrBadResponse is returned when the provider answers but the payload
	// cannot be used: non-2xx status, no choices, or undecodable content.
	ErrBadResponse = errors.New("classifier returned an unusable response")
)

// UserMessage renders a classifier error as a message safe to show to end
// users. Provider detail never leaks through here.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return "AI service rate limit reached. Please wait a moment and try again."
	case errors.Is(err, ErrAuthFailed):
		return "AI service authentication error. Please contact support."
	case errors.Is(err, ErrTimeout):
		return "AI service timed out. Please try again with fewer words."
	case errors.Is(err, ErrNetwork):
		return "Network error connecting to AI service. Please check your connection and try again."
	default:
		return "Translation service error. Please try again."
	}
}
