package provider

import "errors"

// Kind partitions provider failures so callers can branch on the class of
// error instead of matching message strings.
type Kind int

const (
	// KindAuthentication - credential check or session establishment failed.
	KindAuthentication Kind = iota
	// KindUpstream - a call to the remote provider failed.
	KindUpstream
	// KindValidation - caller-supplied input or required secrets are invalid.
	KindValidation
	// KindNotFound - a referenced record is absent.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindUpstream:
		return "upstream"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Op + ": " + e.Message
	}
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, op, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsKind reports whether err (or anything it wraps) is a provider Error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
