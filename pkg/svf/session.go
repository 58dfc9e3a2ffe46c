package svf

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/tap"
)

// Register identifies one of the six sticky scan registers.
type Register int

const (
	RegSDR Register = iota
	RegSIR
	RegHDR
	RegHIR
	RegTDR
	RegTIR
	numRegisters
)

var registerByName = map[string]Register{
	"SDR": RegSDR,
	"SIR": RegSIR,
	"HDR": RegHDR,
	"HIR": RegHIR,
	"TDR": RegTDR,
	"TIR": RegTIR,
}

func (r Register) String() string {
	for name, reg := range registerByName {
		if reg == r {
			return name
		}
	}
	return fmt.Sprintf("Register(%d)", int(r))
}

// ScanField is one sticky (length, bytes) parameter value. A zero Length
// means the parameter is unset.
type ScanField struct {
	Length int
	Bytes  []byte
}

// RegisterState is the sticky configuration of a single scan register: its
// bit length and the last MASK, SMASK, TDI and TDO values of matching width.
type RegisterState struct {
	Length int
	Mask   ScanField
	SMask  ScanField
	TDI    ScanField
	TDO    ScanField
}

var paramNames = []string{"MASK", "SMASK", "TDI", "TDO"}

// field maps an SVF parameter name to its slot, or nil for unknown names.
func (r *RegisterState) field(name string) *ScanField {
	switch name {
	case "MASK":
		return &r.Mask
	case "SMASK":
		return &r.SMask
	case "TDI":
		return &r.TDI
	case "TDO":
		return &r.TDO
	}
	return nil
}

// setLength records a new bit length and drops every parameter whose stored
// width differs from it. Stale data of the wrong width is never reused.
func (r *RegisterState) setLength(n int) {
	r.Length = n
	for _, name := range paramNames {
		f := r.field(name)
		if f.Length != 0 && f.Length != n {
			*f = ScanField{}
		}
	}
}

// session carries all sticky SVF state for the lifetime of one parser: the
// six register states, the current frequency and the persistent end and run
// states.
type session struct {
	regs      [numRegisters]RegisterState
	frequency *float64
	endIR     tap.State
	endDR     tap.State
	runState  tap.State
	endState  tap.State
}

func newSession() *session {
	return &session{
		endIR:    tap.StateIdle,
		endDR:    tap.StateIdle,
		runState: tap.StateIdle,
		endState: tap.StateIdle,
	}
}

func (s *session) register(r Register) *RegisterState {
	return &s.regs[r]
}
