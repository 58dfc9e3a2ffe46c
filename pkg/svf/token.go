package svf

import "strings"

// TokenKind distinguishes plain word tokens from parenthesized hex blocks.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenHex
)

// Token is one element of an assembled command. Word tokens are uppercased by
// the assembler since the SVF grammar is case-insensitive; hex blocks keep
// their sub-tokens exactly as written.
type Token struct {
	Kind TokenKind
	Text string   // word text
	Sub  []string // hex block sub-tokens
	Line int
}

func (t Token) String() string {
	if t.Kind == TokenHex {
		return "(" + strings.Join(t.Sub, " ") + ")"
	}
	return t.Text
}

// word returns the token text when the token is a plain word.
func (t Token) word() (string, bool) {
	if t.Kind != TokenWord {
		return "", false
	}
	return t.Text, true
}

// Command is a semicolon-terminated run of tokens plus the line its first
// token appeared on.
type Command struct {
	Tokens []Token
	Line   int
}

// Name returns the uppercase command keyword, or "" for an empty command.
func (c *Command) Name() string {
	if len(c.Tokens) == 0 {
		return ""
	}
	return c.Tokens[0].String()
}

// cursor is a peekable view over a command's parameter tokens. Interpreters
// advance it explicitly instead of re-entering a shared token iterator from
// inside a loop body.
type cursor struct {
	toks []Token
	pos  int
}

func (c *cursor) more() bool {
	return c.pos < len(c.toks)
}

func (c *cursor) next() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	t := c.toks[c.pos]
	c.pos++
	return t, true
}

func (c *cursor) peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}
