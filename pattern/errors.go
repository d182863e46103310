package pattern

import "fmt"

// Kind classifies a matching failure.
type Kind int

const (
	KindType      Kind = iota // wrong input shape or an unmatchable argument
	KindSyntax                // malformed pattern
	KindRange                 // argument count outside the pattern bounds
	KindUnmatched             // a required slot left unbound
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindSyntax:
		return "syntax"
	case KindRange:
		return "range"
	case KindUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "type":
		return KindType, nil
	case "syntax":
		return KindSyntax, nil
	case "range":
		return KindRange, nil
	case "unmatched":
		return KindUnmatched, nil
	default:
		return 0, fmt.Errorf("unknown error kind: %s", s)
	}
}

// Error is returned by the compiler and the matcher for every domain failure.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is makes any *Error match a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrType      = &Error{Kind: KindType}
	ErrSyntax    = &Error{Kind: KindSyntax}
	ErrRange     = &Error{Kind: KindRange}
	ErrUnmatched = &Error{Kind: KindUnmatched}
)

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
