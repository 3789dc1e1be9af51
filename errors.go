package accel

import (
	"fmt"
)

// ErrorKind classifies a reported error. All three kinds are non-fatal: the
// failing operation returns a sentinel value (nil, zero) and the error is
// queued on the Renderer for the caller to inspect.
type ErrorKind uint32

const (
	// KindUnsupported reports a capability this backend does not implement.
	KindUnsupported ErrorKind = iota + 1

	// KindUserError reports a violated precondition, such as creating an
	// image before any window target exists.
	KindUserError

	// KindBackendError reports a failure inside the underlying drawing
	// library; the message includes its native error text.
	KindBackendError
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported operation"
	case KindUserError:
		return "user error"
	case KindBackendError:
		return "backend error"
	default:
		return "unknown error"
	}
}

// Error is one entry in a Renderer's error queue.
type Error struct {
	// Op is the name of the failing operation, e.g. "CreateImage".
	Op string

	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the human-readable detail.
	Message string

	// Cause is the underlying library error for KindBackendError, or nil.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("accel: %s: %s: %s", e.Op, e.Kind, e.Message)
}

// Unwrap returns the underlying library error, if any.
func (e *Error) Unwrap() error { return e.Cause }

// maxErrors caps the per-renderer error queue. Entries pushed past the cap
// are dropped.
const maxErrors = 20

// PushError queues a formatted error on the Renderer and returns it.
// Backends call this before returning the error to the caller, so the host
// may either check return values or drain the queue after a batch of calls.
func (r *Renderer) PushError(op string, kind ErrorKind, format string, args ...any) *Error {
	e := &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
	r.push(e)
	return e
}

// PushBackendError queues a KindBackendError wrapping cause and returns it.
func (r *Renderer) PushBackendError(op string, cause error, format string, args ...any) *Error {
	e := &Error{
		Op:      op,
		Kind:    KindBackendError,
		Message: fmt.Sprintf(format, args...) + ": " + cause.Error(),
		Cause:   cause,
	}
	r.push(e)
	return e
}

func (r *Renderer) push(e *Error) {
	if len(r.errs) >= maxErrors {
		Logger().Warn("accel: error queue full, dropping error",
			"op", e.Op, "kind", e.Kind.String(), "message", e.Message)
		return
	}
	r.errs = append(r.errs, e)
}

// Unsupported queues and returns a KindUnsupported error for op. It is the
// stock body of every stubbed operation.
func (r *Renderer) Unsupported(op string) *Error {
	return r.PushError(op, KindUnsupported, "not implemented")
}

// LastError returns the most recently queued error without removing it, or
// nil if the queue is empty.
func (r *Renderer) LastError() *Error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[len(r.errs)-1]
}

// PopError removes and returns the oldest queued error, or nil if the queue
// is empty.
func (r *Renderer) PopError() *Error {
	if len(r.errs) == 0 {
		return nil
	}
	e := r.errs[0]
	r.errs = r.errs[1:]
	return e
}

// Errors returns the queued errors, oldest first. The slice is a copy.
func (r *Renderer) Errors() []*Error {
	out := make([]*Error, len(r.errs))
	copy(out, r.errs)
	return out
}

// ClearErrors empties the error queue.
func (r *Renderer) ClearErrors() {
	r.errs = r.errs[:0]
}
