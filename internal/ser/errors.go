package ser

import (
	"errors"
	"fmt"
	"strings"
)

// Contract violations. A producer that calls builders out of order gets
// one of these back (wrapped in an *Error of KindContract); nothing panics
// and nothing is silently dropped.
var (
	ErrValueWithoutKey = errors.New("map value supplied without a preceding key")
	ErrKeyWithoutValue = errors.New("map key supplied without a following value")
	ErrBuilderDone     = errors.New("builder used after End")
	ErrNoValue         = errors.New("producer returned neither a value nor an error")
)

// ErrorKind categorizes conversion failures.
type ErrorKind uint8

const (
	// KindCustom is a failure reported by the producer itself.
	KindCustom ErrorKind = iota + 1
	// KindContract is a producer calling the protocol out of order.
	KindContract
)

func (k ErrorKind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindContract:
		return "contract"
	default:
		return "unknown"
	}
}

// Error is the only error type Convert returns.
type Error struct {
	Kind    ErrorKind
	Message string
	// Path locates the failing value from the root, e.g. ["items", "[2]"].
	Path []string
	Err  error
}

// Custom returns a producer failure carrying msg. Producers return it from
// Serialize to abort the conversion.
func Custom(msg string) error {
	return &Error{Kind: KindCustom, Message: msg}
}

// Customf is Custom with fmt.Sprintf formatting.
func Customf(format string, args ...any) error {
	return &Error{Kind: KindCustom, Message: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Location(), e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same Kind, so callers can test for a
// category with errors.Is(err, &ser.Error{Kind: ser.KindContract}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Location renders Path as a selector: items[2].name
func (e *Error) Location() string {
	var sb strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

func contractError(sentinel error) *Error {
	return &Error{Kind: KindContract, Message: sentinel.Error(), Err: sentinel}
}

// asError normalizes any producer error into an *Error. Foreign errors
// become KindCustom with their message preserved and the cause wrapped.
// An *Error wrapped inside another error keeps its Kind, but the message
// is the outer error's text so the wrapping context survives.
func asError(err error) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: KindCustom, Message: err.Error(), Err: err}
	}
	if error(e) == err {
		return e
	}
	return &Error{Kind: e.Kind, Message: err.Error(), Err: err}
}

// withSegment returns a copy of err with seg prepended to its path.
func withSegment(err error, seg string) *Error {
	e := asError(err)
	out := *e
	out.Path = append([]string{seg}, e.Path...)
	return &out
}
