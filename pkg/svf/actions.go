package svf

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/tap"
)

// Action is one replayable record produced by the parser. Only commands that
// require external work yield an action; bookkeeping commands such as ENDIR
// or HDR update sticky state silently.
type Action interface {
	// SourceLine is the 1-indexed input line the originating command started on.
	SourceLine() int
}

// Frequency sets the TCK frequency. A nil Hz resets it to "unlimited".
type Frequency struct {
	Hz   *float64
	Line int
}

func (a Frequency) SourceLine() int { return a.Line }

// Shift replays an SIR or SDR scan. Header, Data and Trailer are snapshots of
// the full sticky register configuration at the time of the command, so every
// shift carries the complete padding and end-state picture even when the
// command itself only changed one field.
type Shift struct {
	Register Register // RegSIR or RegSDR
	Header   RegisterState
	Data     RegisterState
	Trailer  RegisterState
	EndState tap.State
	Line     int
}

func (a Shift) SourceLine() int { return a.Line }

// RunTest holds the TAP controller in RunState for a clock count and/or a
// bounded time before moving to EndState. Nil fields were not present in the
// command.
type RunTest struct {
	Clocks     *int
	UseSCK     bool // count SCK cycles instead of TCK
	MinSeconds *float64
	MaxSeconds *float64
	RunState   tap.State
	EndState   tap.State
	Line       int
}

func (a RunTest) SourceLine() int { return a.Line }

// StateSeq walks the TAP controller through an explicit state path.
type StateSeq struct {
	States []tap.State
	Line   int
}

func (a StateSeq) SourceLine() int { return a.Line }

// TrstMode is the TRST pin mode requested by a TRST command.
type TrstMode int

const (
	TrstOff    TrstMode = 0
	TrstOn     TrstMode = 1
	TrstZ      TrstMode = 2
	TrstAbsent TrstMode = 3
)

func (m TrstMode) String() string {
	switch m {
	case TrstOff:
		return "OFF"
	case TrstOn:
		return "ON"
	case TrstZ:
		return "Z"
	case TrstAbsent:
		return "ABSENT"
	}
	return fmt.Sprintf("TrstMode(%d)", int(m))
}

// Trst drives the optional TRST line.
type Trst struct {
	Mode TrstMode
	Line int
}

func (a Trst) SourceLine() int { return a.Line }
