package svf

import (
	"errors"
	"io"
	"strings"
)

type commandFunc func(*Parser, string, *cursor, int) (Action, error)

var commandTable = map[string]commandFunc{
	"ENDIR":     (*Parser).cmdEndState,
	"ENDDR":     (*Parser).cmdEndState,
	"FREQUENCY": (*Parser).cmdFrequency,
	"HDR":       (*Parser).cmdRegister,
	"HIR":       (*Parser).cmdRegister,
	"TDR":       (*Parser).cmdRegister,
	"TIR":       (*Parser).cmdRegister,
	"SIR":       (*Parser).cmdShift,
	"SDR":       (*Parser).cmdShift,
	"RUNTEST":   (*Parser).cmdRunTest,
	"STATE":     (*Parser).cmdState,
	"TRST":      (*Parser).cmdTrst,
}

// Parser parses SVF input into a stream of actions. Sticky SVF state
// (register lengths and data, end states, run state) lives on the parser, so
// reusing one parser across several inputs deliberately carries that state
// over. Use a fresh parser for independent files. A parser is not safe for
// concurrent use; parallel parsing requires separate instances.
type Parser struct {
	session *session
}

// NewParser creates a parser with all sticky state at its defaults: register
// lengths unset, frequency unlimited, end and run states IDLE.
func NewParser() *Parser {
	return &Parser{session: newSession()}
}

// Parse returns a stream over the given input. name is used in error messages.
func (p *Parser) Parse(name string, r io.Reader) (*Stream, error) {
	ts, err := newTokenStream(name, r)
	if err != nil {
		return nil, err
	}
	return &Stream{p: p, file: name, asm: &assembler{ts: ts}}, nil
}

// ParseString parses SVF text from a string.
func (p *Parser) ParseString(name, input string) (*Stream, error) {
	return p.Parse(name, strings.NewReader(input))
}

// ParseFile opens a plain SVF file, or a ".zip" archive containing exactly
// one ".svf" entry. The returned stream owns the file handle and closes it
// when the input is exhausted, on the first error, or on Close.
func (p *Parser) ParseFile(fname string) (*Stream, error) {
	rc, err := openInput(fname)
	if err != nil {
		return nil, err
	}
	s, err := p.Parse(fname, rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	s.closer = rc
	return s, nil
}

func (p *Parser) dispatch(cmd *Command) (Action, error) {
	name := cmd.Name()
	fn, ok := commandTable[name]
	if cmd.Tokens[0].Kind != TokenWord || !ok {
		return nil, newError(KindUnknownCommand, "unknown command %s", name)
	}
	params := &cursor{toks: cmd.Tokens[1:]}
	return fn(p, name, params, cmd.Line)
}

// Stream yields actions one command at a time; the input is never
// materialized as a whole. Errors are fail-fast: after the first error Next
// keeps returning it.
type Stream struct {
	p      *Parser
	file   string
	asm    *assembler
	closer io.Closer
	err    error
	done   bool
}

// Next returns the next action, or io.EOF when the input is exhausted.
// Commands that only update sticky state are consumed silently.
func (s *Stream) Next() (Action, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		return nil, io.EOF
	}
	for {
		cmd, ok, err := s.asm.next()
		if err != nil {
			return nil, s.fail(err, Command{})
		}
		if !ok {
			s.done = true
			s.Close()
			return nil, io.EOF
		}
		act, err := s.p.dispatch(&cmd)
		if err != nil {
			return nil, s.fail(err, cmd)
		}
		if act != nil {
			return act, nil
		}
	}
}

// All drains the stream and returns every remaining action.
func (s *Stream) All() ([]Action, error) {
	var out []Action
	for {
		act, err := s.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, act)
	}
}

// Close releases the underlying file when the stream owns one. It is safe to
// call multiple times and after exhaustion.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// fail attaches file, line and command context to err and latches it.
func (s *Stream) fail(err error, cmd Command) error {
	var perr *Error
	if errors.As(err, &perr) {
		if perr.File == "" {
			perr.File = s.file
		}
		if perr.Line == 0 {
			perr.Line = cmd.Line
		}
		if perr.Command == "" {
			perr.Command = cmd.Name()
		}
		err = perr
	}
	s.err = err
	s.Close()
	return err
}
