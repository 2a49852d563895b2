package catalog

import (
	"context"
	"errors"

	"github.com/bingebuddy/bingebuddy/tmdb"
)

// Fallback messages shown in place of content that failed to load
const (
	MsgTransport   = "Could not reach the movie service. Check your connection and try again."
	MsgNotFound    = "The requested movie could not be found."
	MsgRejected    = "The movie service rejected the request."
	MsgUnauthed    = "The movie service rejected the API key."
	MsgUnavailable = "The movie service is having trouble. Please try again later."
	MsgUnexpected  = "The movie service sent an unexpected response."
	MsgCancelled   = "The request was cancelled."
	MsgGeneric     = "Something went wrong while loading movie data."
)

// Describe maps a client failure to a message suitable for end users. It
// returns an empty string for a nil error.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var validation *tmdb.ValidationError
	if errors.As(err, &validation) && validation.Err != nil {
		return capitalize(validation.Err.Error())
	}

	var upstream *tmdb.UpstreamError
	if errors.As(err, &upstream) {
		switch {
		case upstream.IsNotFound():
			return MsgNotFound
		case upstream.IsUnauthorized():
			return MsgUnauthed
		case upstream.IsServerError():
			return MsgUnavailable
		default:
			return MsgRejected
		}
	}

	var decode *tmdb.DecodeError
	if errors.As(err, &decode) {
		return MsgUnexpected
	}

	var transport *tmdb.TransportError
	if errors.As(err, &transport) {
		if errors.Is(err, context.Canceled) {
			return MsgCancelled
		}
		return MsgTransport
	}

	return MsgGeneric
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:] + "."
	}
	return s + "."
}
