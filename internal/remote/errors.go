package remote

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a remote failure.
type Kind int

const (
	KindNetwork Kind = iota
	KindAuth
	KindNotFound
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not found"
	case KindTimeout:
		return "timeout"
	default:
		return "network"
	}
}

// ErrNotConfigured is returned when no collaborator is available.
var ErrNotConfigured = errors.New("remote store not configured")

// Error wraps a failed remote operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the Kind of err. Deadline expiry is always KindTimeout;
// anything unclassified is KindNetwork.
func KindOf(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return KindNetwork
}

// Describe renders err as the text shown in the status line.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNotConfigured) {
		return "Not connected to Notion; submissions are disabled"
	}
	detail := err.Error()
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Err != nil {
		detail = rerr.Err.Error()
	}
	switch KindOf(err) {
	case KindAuth:
		return "Authentication failed: " + detail
	case KindNotFound:
		return "Page not found: " + detail
	case KindTimeout:
		return "Request timed out: " + detail
	default:
		return "Network error: " + detail
	}
}
