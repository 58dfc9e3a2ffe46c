package tap

import (
	"fmt"
)

// State represents one of the 16 defined IEEE 1149.1 TAP controller states.
// The string form of each state is its SVF name (RESET, IDLE, DRSHIFT, ...),
// which is also the spelling used by STATE, RUNTEST, ENDIR and ENDDR commands.
type State uint8

const (
	StateReset State = iota
	StateIdle
	StateDRSelect
	StateDRCapture
	StateDRShift
	StateDRExit1
	StateDRPause
	StateDRExit2
	StateDRUpdate
	StateIRSelect
	StateIRCapture
	StateIRShift
	StateIRExit1
	StateIRPause
	StateIRExit2
	StateIRUpdate
)

var stateNames = map[State]string{
	StateReset:     "RESET",
	StateIdle:      "IDLE",
	StateDRSelect:  "DRSELECT",
	StateDRCapture: "DRCAPTURE",
	StateDRShift:   "DRSHIFT",
	StateDRExit1:   "DREXIT1",
	StateDRPause:   "DRPAUSE",
	StateDRExit2:   "DREXIT2",
	StateDRUpdate:  "DRUPDATE",
	StateIRSelect:  "IRSELECT",
	StateIRCapture: "IRCAPTURE",
	StateIRShift:   "IRSHIFT",
	StateIRExit1:   "IREXIT1",
	StateIRPause:   "IRPAUSE",
	StateIRExit2:   "IREXIT2",
	StateIRUpdate:  "IRUPDATE",
}

// byName is the reverse of stateNames, built once at package init.
var byName = func() map[string]State {
	m := make(map[string]State, len(stateNames))
	for s, name := range stateNames {
		m[name] = s
	}
	return m
}()

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", s)
}

// ParseState resolves an uppercase SVF state name to its TAP state.
func ParseState(name string) (State, bool) {
	s, ok := byName[name]
	return s, ok
}

// IsStable reports whether the state can be held indefinitely by keeping
// TMS constant. SVF only allows these four states as run/end states.
func (s State) IsStable() bool {
	switch s {
	case StateReset, StateIdle, StateDRPause, StateIRPause:
		return true
	}
	return false
}

// Sequence captures the TMS drive pattern and the sequence of states that result
// from applying that pattern to the TAP controller.
type Sequence struct {
	TMS    []bool
	States []State
}

type stateTransitions struct {
	onZero State
	onOne  State
}

var transitions = map[State]stateTransitions{
	StateReset:     {onZero: StateIdle, onOne: StateReset},
	StateIdle:      {onZero: StateIdle, onOne: StateDRSelect},
	StateDRSelect:  {onZero: StateDRCapture, onOne: StateIRSelect},
	StateDRCapture: {onZero: StateDRShift, onOne: StateDRExit1},
	StateDRShift:   {onZero: StateDRShift, onOne: StateDRExit1},
	StateDRExit1:   {onZero: StateDRPause, onOne: StateDRUpdate},
	StateDRPause:   {onZero: StateDRPause, onOne: StateDRExit2},
	StateDRExit2:   {onZero: StateDRShift, onOne: StateDRUpdate},
	StateDRUpdate:  {onZero: StateIdle, onOne: StateDRSelect},
	StateIRSelect:  {onZero: StateIRCapture, onOne: StateReset},
	StateIRCapture: {onZero: StateIRShift, onOne: StateIRExit1},
	StateIRShift:   {onZero: StateIRShift, onOne: StateIRExit1},
	StateIRExit1:   {onZero: StateIRPause, onOne: StateIRUpdate},
	StateIRPause:   {onZero: StateIRPause, onOne: StateIRExit2},
	StateIRExit2:   {onZero: StateIRShift, onOne: StateIRUpdate},
	StateIRUpdate:  {onZero: StateIdle, onOne: StateDRSelect},
}

// NextState returns the next TAP state after clocking TCK with the provided TMS
// value. It panics if an invalid state is supplied, which should never happen
// when interacting through the exported API.
func NextState(current State, tms bool) State {
	row, ok := transitions[current]
	if !ok {
		panic(fmt.Sprintf("tap: unhandled state %d", current))
	}
	if tms {
		return row.onOne
	}
	return row.onZero
}

// StateMachine tracks the TAP controller state locally. It does not perform any
// I/O; instead it produces the sequences of TMS bits needed so a hardware
// adapter can be instructed separately.
type StateMachine struct {
	state State
}

// NewStateMachine creates a TAP state machine initialized to Test-Logic-Reset.
func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateReset}
}

// State reports the current TAP state tracked by the machine.
func (m *StateMachine) State() State {
	return m.state
}

// Clock advances the machine one TCK cycle with the provided TMS bit and
// returns the new state.
func (m *StateMachine) Clock(tms bool) State {
	next := NextState(m.state, tms)
	m.state = next
	return next
}

// Reset applies the IEEE recommendation of clocking five consecutive TMS=1
// cycles. It returns the sequence for convenience so it can be forwarded to a
// hardware adapter.
func (m *StateMachine) Reset() Sequence {
	seq := Sequence{
		TMS:    make([]bool, 5),
		States: make([]State, 6),
	}
	seq.States[0] = m.state
	for i := 0; i < 5; i++ {
		seq.TMS[i] = true
		seq.States[i+1] = m.Clock(true)
	}
	return seq
}

// GoTo computes the minimal sequence of TMS values needed to reach the target
// state from the current state. It updates the machine as a side effect and
// returns the generated sequence.
func (m *StateMachine) GoTo(target State) (Sequence, error) {
	path, err := computePath(m.state, target)
	if err != nil {
		return Sequence{}, err
	}
	for _, bit := range path.TMS {
		m.Clock(bit)
	}
	return path, nil
}

// computePath uses BFS across the TAP state diagram to find the shortest set of
// transitions between two states.
func computePath(from, to State) (Sequence, error) {
	if _, ok := transitions[from]; !ok {
		return Sequence{}, fmt.Errorf("tap: invalid start state %d", from)
	}
	if _, ok := transitions[to]; !ok {
		return Sequence{}, fmt.Errorf("tap: invalid target state %d", to)
	}
	if from == to {
		return Sequence{States: []State{from}}, nil
	}

	type node struct {
		state  State
		tms    []bool
		states []State
	}

	queue := []node{{
		state:  from,
		tms:    nil,
		states: []State{from},
	}}
	visited := map[State]struct{}{from: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		nextStates := []struct {
			bit  bool
			next State
		}{
			{bit: false, next: NextState(current.state, false)},
			{bit: true, next: NextState(current.state, true)},
		}

		for _, candidate := range nextStates {
			if _, seen := visited[candidate.next]; seen {
				continue
			}

			newTMS := append(append([]bool{}, current.tms...), candidate.bit)
			newStates := append(append([]State{}, current.states...), candidate.next)

			if candidate.next == to {
				return Sequence{
					TMS:    newTMS,
					States: newStates,
				}, nil
			}

			visited[candidate.next] = struct{}{}
			queue = append(queue, node{
				state:  candidate.next,
				tms:    newTMS,
				states: newStates,
			})
		}
	}

	return Sequence{}, fmt.Errorf("tap: no path from %s to %s", from, to)
}
