package marketcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
)

// ErrorKind classifies every failure surfaced by a remote fetch. The set is
// closed: anything that cannot be recognized collapses to KindUnknown.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindInvalidRequest
	KindNetworkFailure
	KindServer
	KindDecoding
	KindEmptyData
	KindInvalidResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNetworkFailure:
		return "network_failure"
	case KindServer:
		return "server"
	case KindDecoding:
		return "decoding"
	case KindEmptyData:
		return "empty_data"
	case KindInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// FetchError is the classified form of a fetch failure. The cache stores only
// this, never the underlying error.
type FetchError struct {
	Kind    ErrorKind
	Message string
}

func (e *FetchError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Is reports a match for any FetchError of the same kind, so callers can test
// against the Err* sentinels regardless of message.
func (e *FetchError) Is(target error) bool {
	var other *FetchError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// UserMessage returns text suitable for a retry prompt.
func (e *FetchError) UserMessage() string {
	switch e.Kind {
	case KindInvalidRequest:
		if e.Message != "" {
			return e.Message
		}
		return "The request was not valid."
	case KindNetworkFailure:
		return "Unable to reach the server. Check your connection and try again."
	case KindServer:
		return "The server had a problem. Please try again shortly."
	case KindDecoding, KindInvalidResponse:
		return "Received an unexpected response from the server."
	case KindEmptyData:
		return "No data is available right now."
	default:
		return "Something went wrong. Please try again."
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidRequest  = &FetchError{Kind: KindInvalidRequest}
	ErrNetworkFailure  = &FetchError{Kind: KindNetworkFailure}
	ErrServer          = &FetchError{Kind: KindServer}
	ErrDecoding        = &FetchError{Kind: KindDecoding}
	ErrEmptyData       = &FetchError{Kind: KindEmptyData}
	ErrInvalidResponse = &FetchError{Kind: KindInvalidResponse}
	ErrUnknown         = &FetchError{Kind: KindUnknown}
)

// ErrStillLoading is returned when a caller stops waiting on a fetch that
// another caller started and nothing is cached yet. It is a signal, not a
// classified failure, and is never stored.
var ErrStillLoading = errors.New("marketcache: still loading")

// StatusError lets a remote client report an HTTP status without choosing a
// kind itself.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// kinded is implemented by client errors that already know their kind.
type kinded interface {
	ErrorKind() ErrorKind
}

// Classify maps an arbitrary fetch error onto exactly one ErrorKind. A nil
// error yields nil.
func Classify(err error) *FetchError {
	if err == nil {
		return nil
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return &FetchError{Kind: fe.Kind, Message: fe.Message}
	}

	var k kinded
	if errors.As(err, &k) {
		return &FetchError{Kind: k.ErrorKind(), Message: err.Error()}
	}

	var se *StatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode >= 500:
			return &FetchError{Kind: KindServer, Message: se.Error()}
		case se.StatusCode >= 400:
			msg := se.Body
			if msg == "" {
				msg = se.Error()
			}
			return &FetchError{Kind: KindInvalidRequest, Message: msg}
		default:
			return &FetchError{Kind: KindInvalidResponse, Message: se.Error()}
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &FetchError{Kind: KindDecoding}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &FetchError{Kind: KindNetworkFailure, Message: err.Error()}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &FetchError{Kind: KindNetworkFailure, Message: err.Error()}
	}

	return &FetchError{Kind: KindUnknown}
}

var (
	errSymbolRequired   = &FetchError{Kind: KindInvalidRequest, Message: "symbol is required"}
	errQuestionRequired = &FetchError{Kind: KindInvalidRequest, Message: "question is required"}
)
