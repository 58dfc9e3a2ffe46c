package svf

import "fmt"

// Kind classifies SVF parse failures.
type Kind int

const (
	// KindLex marks a character the tokenizer could not place in any token class.
	KindLex Kind = iota + 1
	// KindSyntax marks a malformed command shape, such as a missing closing
	// parenthesis or a wrong parameter count.
	KindSyntax
	// KindValue marks a token that failed to parse as the expected type or is
	// not a member of an expected enumerated set.
	KindValue
	// KindSemantic marks a violation of a sticky or ordering rule, such as
	// ENDSTATE appearing before any clock clause.
	KindSemantic
	// KindUnknownCommand marks an unrecognized leading command token.
	KindUnknownCommand
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindSyntax:
		return "syntax"
	case KindValue:
		return "value"
	case KindSemantic:
		return "semantic"
	case KindUnknownCommand:
		return "unknown command"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single error type produced by this package. Interpreters create
// it with just a kind and message; the driver fills in File, Line and Command
// before the error reaches the caller.
type Error struct {
	Kind    Kind
	File    string
	Line    int
	Command string
	Message string
	Err     error // underlying cause, when any
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Command != "" {
		msg = "command " + e.Command + ": " + msg
	}
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	case e.File != "":
		return e.File + ": " + msg
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
