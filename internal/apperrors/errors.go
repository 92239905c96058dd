package apperrors

import "errors"

// Kind classifies an error so callers can decide how to respond without
// inspecting message text.
type Kind int

const (
	// KindUnknown marks errors that carry no classification.
	KindUnknown Kind = iota
	// KindNotFound means the target article, comment or row is absent.
	KindNotFound
	// KindValidation means the caller supplied a malformed value.
	KindValidation
	// KindConflict means a uniqueness constraint rejected a write. The
	// engines resolve these internally; a conflict should never reach an
	// HTTP handler.
	KindConflict
	// KindStorage means the persistent store failed or misbehaved.
	KindStorage
)

// Error is a tagged error carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a tagged error with a message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind and message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err, or KindUnknown if err is untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is tagged KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is tagged KindConflict.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsValidation reports whether err is tagged KindValidation.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
