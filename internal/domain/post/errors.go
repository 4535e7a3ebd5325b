package post

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a row index outside the loaded posts.
var ErrIndexOutOfRange = errors.New("index out of range")

// FetchErrorKind classifies why a fetch failed.
type FetchErrorKind int

const (
	// Unknown is a response that could not be classified.
	Unknown FetchErrorKind = iota
	// InvalidURL means the request URL could not be built.
	InvalidURL
	// TransportFailure means no response was obtained.
	TransportFailure
	// ServerError is an HTTP status in 400-599.
	ServerError
	// DecodingFailure means the body did not match the expected JSON shape.
	DecodingFailure
)

func (k FetchErrorKind) String() string {
	switch k {
	case InvalidURL:
		return "invalid url"
	case TransportFailure:
		return "transport failure"
	case ServerError:
		return "server error"
	case DecodingFailure:
		return "decoding failure"
	default:
		return "unknown"
	}
}

// FetchError is returned by the API client for every failed fetch.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Kind.String()
	if e.Kind == ServerError || (e.Kind == Unknown && e.StatusCode != 0) {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf reports the fetch error kind of err, if any.
func KindOf(err error) (FetchErrorKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return Unknown, false
}
