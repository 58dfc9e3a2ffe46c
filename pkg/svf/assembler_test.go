package svf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, input string) []Command {
	t.Helper()
	ts, err := newTokenStream("test.svf", strings.NewReader(input))
	require.NoError(t, err)
	a := &assembler{ts: ts}
	var cmds []Command
	for {
		cmd, ok, err := a.next()
		require.NoError(t, err)
		if !ok {
			return cmds
		}
		cmds = append(cmds, cmd)
	}
}

func TestAssembleShiftCommand(t *testing.T) {
	cmds := assemble(t, "SIR 8 TDI (FF) ;")
	require.Len(t, cmds, 1)
	cmd := cmds[0]
	assert.Equal(t, 1, cmd.Line)
	require.Len(t, cmd.Tokens, 4)
	assert.Equal(t, "SIR", cmd.Tokens[0].Text)
	assert.Equal(t, "8", cmd.Tokens[1].Text)
	assert.Equal(t, "TDI", cmd.Tokens[2].Text)
	assert.Equal(t, TokenHex, cmd.Tokens[3].Kind)
	assert.Equal(t, []string{"FF"}, cmd.Tokens[3].Sub)
}

func TestAssembleUppercasesWordsNotHexData(t *testing.T) {
	cmds := assemble(t, "sdr 4 tdi (aB Cd);")
	require.Len(t, cmds, 1)
	cmd := cmds[0]
	assert.Equal(t, "SDR", cmd.Tokens[0].Text)
	assert.Equal(t, "TDI", cmd.Tokens[2].Text)
	assert.Equal(t, []string{"aB", "Cd"}, cmd.Tokens[3].Sub)
}

func TestAssembleSkipsCommentsAndTracksLines(t *testing.T) {
	input := "// header comment\nSTATE IDLE; ! trailing comment\nTRST OFF;"
	cmds := assemble(t, input)
	require.Len(t, cmds, 2)
	assert.Equal(t, "STATE", cmds[0].Name())
	assert.Equal(t, 2, cmds[0].Line)
	assert.Equal(t, "TRST", cmds[1].Name())
	assert.Equal(t, 3, cmds[1].Line)
}

func TestAssembleSkipsEmptySeparators(t *testing.T) {
	cmds := assemble(t, ";;; STATE IDLE ;;")
	require.Len(t, cmds, 1)
	assert.Equal(t, "STATE", cmds[0].Name())
}

func TestAssembleFlushesTrailingCommand(t *testing.T) {
	cmds := assemble(t, "TRST OFF")
	require.Len(t, cmds, 1)
	assert.Equal(t, "TRST", cmds[0].Name())
	require.Len(t, cmds[0].Tokens, 2)
}

func TestAssembleCommandSpanningLines(t *testing.T) {
	cmds := assemble(t, "SDR 16\n\tTDI (12\n\t     34);")
	require.Len(t, cmds, 1)
	cmd := cmds[0]
	assert.Equal(t, 1, cmd.Line)
	require.Len(t, cmd.Tokens, 4)
	assert.Equal(t, []string{"12", "34"}, cmd.Tokens[3].Sub)
}

func TestAssembleMissingParen(t *testing.T) {
	ts, err := newTokenStream("test.svf", strings.NewReader("SDR 8 TDI (FF;"))
	require.NoError(t, err)
	a := &assembler{ts: ts}
	_, _, err = a.next()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindSyntax, perr.Kind)
	assert.Equal(t, "SDR", perr.Command)
	assert.Contains(t, perr.Message, `missing ")"`)
}

func TestStrayCharactersBecomeSingleTokens(t *testing.T) {
	cmds := assemble(t, "STATE IDLE;\nSTATE RESET_FOO;")
	require.Len(t, cmds, 2)
	cmd := cmds[1]
	assert.Equal(t, 2, cmd.Line)
	require.Len(t, cmd.Tokens, 4)
	assert.Equal(t, "RESET", cmd.Tokens[1].Text)
	assert.Equal(t, "_", cmd.Tokens[2].Text)
	assert.Equal(t, "FOO", cmd.Tokens[3].Text)
}

func TestAssembleParenFirstReportsLine(t *testing.T) {
	ts, err := newTokenStream("test.svf", strings.NewReader("STATE IDLE;\n(FF;"))
	require.NoError(t, err)
	a := &assembler{ts: ts}
	_, _, err = a.next()
	require.NoError(t, err)
	_, _, err = a.next()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindSyntax, perr.Kind)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, perr.Message, `missing ")"`)
}
