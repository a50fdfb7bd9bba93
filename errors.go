package intrographics

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrorKind identifies the category of a usage error.
type ErrorKind uint8

const (
	// KindUnknown is never produced by this package.
	KindUnknown ErrorKind = iota
	// KindExtraArguments means a call received more arguments than it takes.
	KindExtraArguments
	// KindMissingArgument means a required argument was absent or nil.
	KindMissingArgument
	// KindInvalidArgument means an argument had the wrong type or could not
	// be coerced to the expected type.
	KindInvalidArgument
	// KindRestrictedValue means a value was outside its legal range.
	KindRestrictedValue
	// KindImmutableAttribute means an attempt to assign a read-only attribute.
	KindImmutableAttribute
	// KindInvalidColor means a color value could not be resolved.
	KindInvalidColor
	// KindConversion means a message could not be parsed as a number.
	KindConversion
	// KindOwnership means a shape was used with a window that does not own it.
	KindOwnership
	// KindHandlerArity means a callback accepts the wrong number of arguments.
	KindHandlerArity
	// KindDeletedShape means a pixel operation was attempted on a removed image.
	KindDeletedShape
)

func (k ErrorKind) String() string {
	switch k {
	case KindExtraArguments:
		return "extra arguments"
	case KindMissingArgument:
		return "missing argument"
	case KindInvalidArgument:
		return "invalid argument"
	case KindRestrictedValue:
		return "restricted value"
	case KindImmutableAttribute:
		return "immutable attribute"
	case KindInvalidColor:
		return "invalid color"
	case KindConversion:
		return "conversion"
	case KindOwnership:
		return "ownership"
	case KindHandlerArity:
		return "handler arity"
	case KindDeletedShape:
		return "deleted shape"
	default:
		return "unknown"
	}
}

// Error is returned by every operation that rejects its arguments.
type Error struct {
	// Op is the signature of the failing call, e.g. "window.addOval(x,y,width,height)".
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Msg describes the offending value.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	switch {
	case e.Op == "" && e.Err == nil:
		return "intrographics: " + msg
	case e.Op == "":
		return fmt.Sprintf("intrographics: %s: %v", msg, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the package sentinels can be
// used with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Op == "" && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrExtraArguments     = &Error{Kind: KindExtraArguments}
	ErrMissingArgument    = &Error{Kind: KindMissingArgument}
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
	ErrRestrictedValue    = &Error{Kind: KindRestrictedValue}
	ErrImmutableAttribute = &Error{Kind: KindImmutableAttribute}
	ErrInvalidColor       = &Error{Kind: KindInvalidColor}
	ErrConversion         = &Error{Kind: KindConversion}
	ErrOwnership          = &Error{Kind: KindOwnership}
	ErrHandlerArity       = &Error{Kind: KindHandlerArity}
	ErrDeletedShape       = &Error{Kind: KindDeletedShape}
)

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func extraArguments(op string, got, limit int) *Error {
	return newError(op, KindExtraArguments, "takes at most %d argument(s), got %d", limit, got)
}

func missingArgument(op, name string) *Error {
	return newError(op, KindMissingArgument, "missing argument %s", name)
}

func invalidArgument(op, name string, v any) *Error {
	return newError(op, KindInvalidArgument, "argument %s has unusable value %v (%T)", name, v, v)
}

func restrictedValue(op, name string, v any, rule string) *Error {
	return newError(op, KindRestrictedValue, "argument %s = %v, %s", name, v, rule)
}

func immutableAttribute(op, name string) *Error {
	return newError(op, KindImmutableAttribute, "attribute %s cannot be set", name)
}

// ErrorHandler observes every usage error before it is returned to the
// caller.
type ErrorHandler func(err error)

// ExitOnError returns an ErrorHandler that prints the error to w and ends the
// process with status 1. A nil w writes to os.Stderr.
func ExitOnError(w io.Writer) ErrorHandler {
	if w == nil {
		w = os.Stderr
	}
	return func(err error) {
		_, _ = fmt.Fprintf(w, "IntrographicsError: %v\n", err)
		os.Exit(1)
	}
}
