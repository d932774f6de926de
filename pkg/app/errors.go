package app

import "fmt"

// ErrorKind categorizes a toolkit error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates a backend or window initialization failure.
	KindInit
	// KindFont indicates a font loading failure.
	KindFont
	// KindConfig indicates an invalid configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindFont:
		return "font"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a structured toolkit error: the failing operation, a category
// and the underlying cause.
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
