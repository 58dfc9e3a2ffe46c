package svf

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/tap"
)

// cmdEndState handles ENDIR and ENDDR: a single stable state name that
// becomes the sticky end state for subsequent shifts. No action is produced.
func (p *Parser) cmdEndState(name string, params *cursor, line int) (Action, error) {
	tok, ok := params.next()
	if !ok {
		return nil, newError(KindSyntax, "expected single state parameter")
	}
	word, isWord := tok.word()
	state, known := tap.ParseState(word)
	if !isWord || !known || !state.IsStable() {
		return nil, newError(KindValue, "%s is not a valid SVF stable state", tok)
	}
	if params.more() {
		return nil, newError(KindSyntax, "expected single state parameter")
	}
	if name == "ENDIR" {
		p.session.endIR = state
	} else {
		p.session.endDR = state
	}
	return nil, nil
}

// cmdFrequency handles FREQUENCY: either no parameters, which resets the
// frequency to unlimited, or "<float> HZ".
func (p *Parser) cmdFrequency(name string, params *cursor, line int) (Action, error) {
	tok, ok := params.next()
	if !ok {
		p.session.frequency = nil
		return Frequency{Line: line}, nil
	}
	word, isWord := tok.word()
	f, err := strconv.ParseFloat(word, 64)
	if !isWord || err != nil {
		return nil, newError(KindValue, "%s is not a valid floating point number", tok)
	}
	hz, ok := params.next()
	if !ok || hz.String() != "HZ" || params.more() {
		return nil, newError(KindSyntax, "unexpected text after frequency")
	}
	p.session.frequency = &f
	return Frequency{Hz: &f, Line: line}, nil
}

// cmdRegister handles HDR, HIR, TDR and TIR. These only update sticky state.
func (p *Parser) cmdRegister(name string, params *cursor, line int) (Action, error) {
	if err := p.applyRegister(name, params); err != nil {
		return nil, err
	}
	return nil, nil
}

// applyRegister performs the common register phase: a non-negative bit length
// followed by (name, hex data) parameter pairs. Parameters of a stale width
// are invalidated by setLength; the rest keep their previous values.
func (p *Parser) applyRegister(name string, params *cursor) error {
	st := p.session.register(registerByName[name])

	tok, ok := params.next()
	word, isWord := tok.word()
	length := -1
	if ok && isWord {
		if n, err := strconv.Atoi(word); err == nil && n >= 0 {
			length = n
		}
	}
	if length < 0 {
		return newError(KindValue, "missing or invalid bit count")
	}
	st.setLength(length)

	for {
		ptok, ok := params.next()
		if !ok {
			return nil
		}
		pname, isWord := ptok.word()
		field := st.field(pname)
		if !isWord || field == nil {
			return newError(KindValue, "unknown parameter name %s", ptok)
		}
		dtok, ok := params.peek()
		if !ok || dtok.Kind != TokenHex {
			return newError(KindSyntax, "expected (<hex data>) after parameter %s", pname)
		}
		params.next()
		data, err := decodeHex(dtok.Sub)
		if err != nil {
			e := newError(KindValue, "invalid (<hex data>) for parameter %s", pname)
			e.Err = err
			return e
		}
		*field = ScanField{Length: length, Bytes: data}
	}
}

// decodeHex concatenates the sub-tokens of a hex block and decodes the digit
// string, left-padding with "0" when the digit count is odd.
func decodeHex(sub []string) ([]byte, error) {
	digits := strings.Join(sub, "")
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	return hex.DecodeString(digits)
}

// cmdShift handles SIR and SDR: the register phase first, then a Shift action
// bundling the matching header and trailer registers and the configured end
// state, not just the fields present in this command.
func (p *Parser) cmdShift(name string, params *cursor, line int) (Action, error) {
	if err := p.applyRegister(name, params); err != nil {
		return nil, err
	}
	s := p.session
	if name == "SIR" {
		return Shift{
			Register: RegSIR,
			Header:   s.regs[RegHIR],
			Data:     s.regs[RegSIR],
			Trailer:  s.regs[RegTIR],
			EndState: s.endIR,
			Line:     line,
		}, nil
	}
	return Shift{
		Register: RegSDR,
		Header:   s.regs[RegHDR],
		Data:     s.regs[RegSDR],
		Trailer:  s.regs[RegTDR],
		EndState: s.endDR,
		Line:     line,
	}, nil
}

// cmdState handles STATE: one or more state names forming an explicit TAP
// path. Every name must resolve, but only the final state is checked for
// stability; interior states may be minor states along the path.
func (p *Parser) cmdState(name string, params *cursor, line int) (Action, error) {
	var states []tap.State
	for {
		tok, ok := params.next()
		if !ok {
			break
		}
		word, isWord := tok.word()
		st, known := tap.ParseState(word)
		if !isWord || !known {
			return nil, newError(KindValue, "invalid state %s", tok)
		}
		states = append(states, st)
	}
	if len(states) == 0 {
		return nil, newError(KindSyntax, "expected at least one state")
	}
	if last := states[len(states)-1]; !last.IsStable() {
		return nil, newError(KindSemantic, "%s is not a stable state", last)
	}
	return StateSeq{States: states, Line: line}, nil
}

var trstModes = map[string]TrstMode{
	"ON":     TrstOn,
	"OFF":    TrstOff,
	"Z":      TrstZ,
	"ABSENT": TrstAbsent,
}

// cmdTrst handles TRST: exactly one of ON, OFF, Z or ABSENT.
func (p *Parser) cmdTrst(name string, params *cursor, line int) (Action, error) {
	tok, ok := params.next()
	if !ok || params.more() {
		return nil, newError(KindSyntax, "expected a single parameter")
	}
	word, isWord := tok.word()
	mode, known := trstModes[word]
	if !isWord || !known {
		return nil, newError(KindValue, "%s is not a valid TRST value", tok)
	}
	return Trst{Mode: mode, Line: line}, nil
}
