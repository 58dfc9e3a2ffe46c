package svf

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/tap"
)

// cmdRunTest scans RUNTEST's clause list. Clause order is flexible but
// context-dependent: a bare number must be followed by TCK, SCK or SEC;
// "MAXIMUM <n> SEC" needs a minimum time already set; a stable state before
// any clock or time clause sets both the sticky run and end states, while
// "ENDSTATE <state>" is only legal after a clock or time clause and sets the
// end state alone. Every RUNTEST command yields one action built from the
// updated sticky states.
func (p *Parser) cmdRunTest(name string, params *cursor, line int) (Action, error) {
	var (
		clocks      *int
		useSCK      bool
		secs        [2]*float64 // minimum, maximum
		doMax       bool
		doEnd       bool
		didEnd      bool
		didRun      bool
		pending     string
		havePending bool
	)
	for {
		tok, ok := params.next()
		if !ok {
			break
		}
		word, isWord := tok.word()
		if !isWord {
			return nil, newError(KindSyntax, "unexpected %s", tok)
		}
		num, haveNum := pending, havePending
		pending, havePending = "", false
		clockSeen := clocks != nil || secs[0] != nil
		state, isState := tap.ParseState(word)

		switch {
		case haveNum:
			switch word {
			case "TCK", "SCK":
				if doMax || clockSeen {
					return nil, newError(KindSemantic, "invalid %s specification", word)
				}
				n, err := strconv.Atoi(num)
				if err != nil {
					return nil, newError(KindValue, "%s is not a valid integer number", num)
				}
				clocks = &n
				useSCK = word == "SCK"
			case "SEC":
				idx := 0
				if doMax {
					idx = 1
				}
				if secs[idx] != nil {
					if doMax {
						return nil, newError(KindSemantic, "maximum seconds specified twice")
					}
					return nil, newError(KindSemantic, "seconds specified twice")
				}
				f, err := strconv.ParseFloat(num, 64)
				if err != nil {
					return nil, newError(KindValue, "%s is not a valid floating point number", num)
				}
				secs[idx] = &f
			default:
				return nil, newError(KindSyntax, "unexpected clause %q", num+" "+word)
			}
		case isState && state.IsStable():
			switch {
			case doEnd && !didEnd && clockSeen:
				p.session.endState = state
				didEnd = true
			case !doEnd && !clockSeen && !didRun:
				p.session.runState = state
				p.session.endState = state
				didRun = true
			default:
				return nil, newError(KindSemantic, "unexpected state %s", word)
			}
		case doEnd:
			return nil, newError(KindSemantic, "invalid end state %s", word)
		case word == "MAXIMUM":
			if secs[0] == nil || secs[1] != nil {
				return nil, newError(KindSemantic, "cannot do MAXIMUM SEC without SEC")
			}
			doMax = true
		case word == "ENDSTATE":
			if !clockSeen {
				return nil, newError(KindSemantic, "unexpected ENDSTATE")
			}
			doEnd = true
		default:
			pending, havePending = word, true
		}
	}
	if havePending {
		return nil, newError(KindSyntax, "expected TCK, SCK or SEC after %s", pending)
	}
	return RunTest{
		Clocks:     clocks,
		UseSCK:     useSCK,
		MinSeconds: secs[0],
		MaxSeconds: secs[1],
		RunState:   p.session.runState,
		EndState:   p.session.endState,
		Line:       line,
	}, nil
}
