package objectid

import "fmt"

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// NonUTF8 means a normal path component is not valid UTF-8 text.
	NonUTF8
	// InvalidUUID means the reconstructed hex string failed to parse. Err carries the parser error.
	InvalidUUID
	// MalformedPath means the path is not exactly the three 2/2/28 segments. Only ParsePath reports it.
	MalformedPath
)

func (c ErrorCode) String() string {
	switch c {
	case NonUTF8:
		return "non-UTF8 path"
	case InvalidUUID:
		return "invalid UUID"
	case MalformedPath:
		return "malformed path"
	}
	return "unknown"
}

// Sentinels for errors.Is. Matching is by Code only.
var (
	ErrNonUTF8       = &Error{Code: NonUTF8}
	ErrInvalidUUID   = &Error{Code: InvalidUUID}
	ErrMalformedPath = &Error{Code: MalformedPath}
)

// Error is the decode failure. Path is the caller supplied input, when there was one.
type Error struct {
	Code ErrorCode
	Err  error
	Path string
}

func (e Error) Error() string {
	msg := e.Code.String()
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error or Error with the same Code.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return t != nil && t.Code == e.Code
	case Error:
		return t.Code == e.Code
	}
	return false
}
