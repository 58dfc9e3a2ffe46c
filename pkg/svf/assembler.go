package svf

import "strings"

// assembler groups the raw token stream into semicolon-terminated commands,
// folding each parenthesized run into a single hex-block token.
type assembler struct {
	ts *tokenStream
}

// next returns the next command; ok is false at end of input. A trailing
// command without a terminating ";" is still yielded, and bare ";" separators
// are skipped.
func (a *assembler) next() (Command, bool, error) {
	var cmd Command
	for {
		tok, ok, err := a.ts.next()
		if err != nil {
			return Command{}, false, err
		}
		if !ok {
			if len(cmd.Tokens) > 0 {
				return cmd, true, nil
			}
			return Command{}, false, nil
		}
		switch tok.Type {
		case symSemicolon:
			if len(cmd.Tokens) == 0 {
				continue
			}
			return cmd, true, nil
		case symLParen:
			if len(cmd.Tokens) == 0 {
				cmd.Line = tok.Pos.Line
			}
			sub, err := a.hexBlock(&cmd)
			if err != nil {
				return Command{}, false, err
			}
			cmd.Tokens = append(cmd.Tokens, Token{Kind: TokenHex, Sub: sub, Line: tok.Pos.Line})
		default:
			if len(cmd.Tokens) == 0 {
				cmd.Line = tok.Pos.Line
			}
			cmd.Tokens = append(cmd.Tokens, Token{
				Kind: TokenWord,
				Text: strings.ToUpper(tok.Value),
				Line: tok.Pos.Line,
			})
		}
	}
}

// hexBlock collects sub-tokens until the matching ")". Sub-tokens keep their
// original case; a ";" or end of input inside the block is a syntax error.
func (a *assembler) hexBlock(cmd *Command) ([]string, error) {
	var sub []string
	for {
		tok, ok, err := a.ts.next()
		if err != nil {
			return nil, err
		}
		if !ok || tok.Type == symSemicolon {
			return nil, &Error{
				Kind:    KindSyntax,
				Line:    cmd.Line,
				Command: cmd.Name(),
				Message: `missing ")"`,
			}
		}
		if tok.Type == symRParen {
			return sub, nil
		}
		sub = append(sub, tok.Value)
	}
}
