package svf

import (
	"errors"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// svfLexer defines the lexical structure of SVF. Comments run from "//" or "!"
// to end of line, words are maximal runs of [A-Za-z0-9.+-], and every other
// non-whitespace character stands alone as a single-character token: "(", ")"
// and ";" drive the assembler, and anything else flows into a command where
// the interpreters reject it with proper context.
var svfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?://|!)[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Word", Pattern: `[A-Za-z0-9.+-]+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Punct", Pattern: `[^ \t\r\n]`},
})

var (
	sym           = svfLexer.Symbols()
	symComment    = sym["Comment"]
	symWhitespace = sym["Whitespace"]
	symLParen     = sym["LParen"]
	symRParen     = sym["RParen"]
	symSemicolon  = sym["Semicolon"]
)

// tokenStream yields significant (token, line) pairs lazily, dropping comment
// and whitespace runs.
type tokenStream struct {
	lex  lexer.Lexer
	file string
}

func newTokenStream(file string, r io.Reader) (*tokenStream, error) {
	lex, err := svfLexer.Lex(file, r)
	if err != nil {
		return nil, &Error{Kind: KindLex, File: file, Err: err}
	}
	return &tokenStream{lex: lex, file: file}, nil
}

// next returns the next significant token; ok is false at end of input.
func (ts *tokenStream) next() (lexer.Token, bool, error) {
	for {
		tok, err := ts.lex.Next()
		if err != nil {
			return lexer.Token{}, false, ts.lexError(err)
		}
		if tok.EOF() {
			return tok, false, nil
		}
		if tok.Type == symComment || tok.Type == symWhitespace {
			continue
		}
		return tok, true, nil
	}
}

// lexError is a safety net: the Punct rule covers every non-whitespace
// character, so the lexer itself should never fail on well-formed readers.
func (ts *tokenStream) lexError(err error) error {
	e := &Error{Kind: KindLex, File: ts.file, Message: "invalid character", Err: err}
	var perr participle.Error
	if errors.As(err, &perr) {
		e.Line = perr.Position().Line
	}
	return e
}
