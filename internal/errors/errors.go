// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure a console action can hit falls into one Kind, so callers can
// decide how to present it without inspecting message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// AuthFailed indicates the token endpoint rejected the sign-in.
	AuthFailed Kind = "auth_failed"
	// RequestFailed indicates a non-2xx response from an agent endpoint.
	RequestFailed Kind = "request_failed"
	// InvalidFiles indicates the user-supplied file list is not valid JSON.
	InvalidFiles Kind = "invalid_files"
	// NetworkFailed indicates the request never produced an HTTP response.
	NetworkFailed Kind = "network_failed"
	// NotAuthenticated indicates no token is stored.
	NotAuthenticated Kind = "not_authenticated"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
