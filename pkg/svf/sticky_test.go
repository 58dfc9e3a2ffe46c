package svf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shiftActions(t *testing.T, p *Parser, input string) []Shift {
	t.Helper()
	stream, err := p.ParseString("test.svf", input)
	require.NoError(t, err)
	acts, err := stream.All()
	require.NoError(t, err)
	var shifts []Shift
	for _, act := range acts {
		shift, ok := act.(Shift)
		require.True(t, ok, "expected only Shift actions, got %T", act)
		shifts = append(shifts, shift)
	}
	return shifts
}

func TestLengthChangeInvalidatesStaleData(t *testing.T) {
	p := NewParser()
	shifts := shiftActions(t, p, "SDR 8 TDI (AB);\nSDR 16 TDI (CDEF);")
	require.Len(t, shifts, 2)
	assert.Equal(t, 16, shifts[1].Data.Length)
	assert.Equal(t, []byte{0xCD, 0xEF}, shifts[1].Data.TDI.Bytes)

	// Same length, no TDI given: the stored 16-bit value is reused.
	shifts = shiftActions(t, p, "SDR 16;")
	require.Len(t, shifts, 1)
	assert.Equal(t, 16, shifts[0].Data.TDI.Length)
	assert.Equal(t, []byte{0xCD, 0xEF}, shifts[0].Data.TDI.Bytes)

	// Width change again: no residual 16-bit value may survive.
	shifts = shiftActions(t, p, "SDR 8;")
	require.Len(t, shifts, 1)
	assert.Zero(t, shifts[0].Data.TDI.Length)
	assert.Empty(t, shifts[0].Data.TDI.Bytes)
}

func TestMatchingWidthParametersSurvive(t *testing.T) {
	p := NewParser()
	shifts := shiftActions(t, p, "SDR 8 TDI (AA) MASK (0F);\nSDR 8 TDI (BB);")
	require.Len(t, shifts, 2)
	assert.Equal(t, []byte{0xBB}, shifts[1].Data.TDI.Bytes)
	assert.Equal(t, []byte{0x0F}, shifts[1].Data.Mask.Bytes)
}

func TestRegistersAreIndependent(t *testing.T) {
	p := NewParser()
	shifts := shiftActions(t, p, "HDR 8 TDI (11);\nSDR 8 TDI (22);\nSIR 4 TDI (3);")
	require.Len(t, shifts, 2)

	sdr := shifts[0]
	assert.Equal(t, []byte{0x11}, sdr.Header.TDI.Bytes)
	assert.Equal(t, []byte{0x22}, sdr.Data.TDI.Bytes)

	// SIR's header register is HIR, which was never configured.
	sir := shifts[1]
	assert.Zero(t, sir.Header.Length)
	assert.Equal(t, []byte{0x03}, sir.Data.TDI.Bytes)
}

func TestSetLengthDirect(t *testing.T) {
	var st RegisterState
	st.setLength(8)
	*st.field("TDI") = ScanField{Length: 8, Bytes: []byte{0xAB}}
	*st.field("SMASK") = ScanField{Length: 8, Bytes: []byte{0xFF}}

	st.setLength(8)
	assert.Equal(t, []byte{0xAB}, st.TDI.Bytes)

	st.setLength(16)
	assert.Zero(t, st.TDI.Length)
	assert.Nil(t, st.TDI.Bytes)
	assert.Zero(t, st.SMask.Length)
}
