package svf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSVF/pkg/tap"
)

func runTestAction(t *testing.T, input string) RunTest {
	t.Helper()
	acts, err := parseActions(t, input)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	rt, ok := acts[0].(RunTest)
	require.True(t, ok, "expected a RunTest action, got %T", acts[0])
	return rt
}

func TestRunTestClockCount(t *testing.T) {
	rt := runTestAction(t, "RUNTEST 100 TCK ENDSTATE IDLE;")
	require.NotNil(t, rt.Clocks)
	assert.Equal(t, 100, *rt.Clocks)
	assert.False(t, rt.UseSCK)
	assert.Nil(t, rt.MinSeconds)
	assert.Nil(t, rt.MaxSeconds)
	assert.Equal(t, tap.StateIdle, rt.RunState)
	assert.Equal(t, tap.StateIdle, rt.EndState)
}

func TestRunTestAlternateClock(t *testing.T) {
	rt := runTestAction(t, "RUNTEST 25 SCK;")
	require.NotNil(t, rt.Clocks)
	assert.Equal(t, 25, *rt.Clocks)
	assert.True(t, rt.UseSCK)
}

func TestRunTestSecondsWithMaximum(t *testing.T) {
	rt := runTestAction(t, "RUNTEST 1.5 SEC MAXIMUM 2.0 SEC;")
	assert.Nil(t, rt.Clocks)
	require.NotNil(t, rt.MinSeconds)
	require.NotNil(t, rt.MaxSeconds)
	assert.Equal(t, 1.5, *rt.MinSeconds)
	assert.Equal(t, 2.0, *rt.MaxSeconds)
}

func TestRunTestClocksAndSeconds(t *testing.T) {
	rt := runTestAction(t, "RUNTEST 1000 TCK 1.0 SEC;")
	require.NotNil(t, rt.Clocks)
	assert.Equal(t, 1000, *rt.Clocks)
	require.NotNil(t, rt.MinSeconds)
	assert.Equal(t, 1.0, *rt.MinSeconds)
}

func TestRunTestLeadingStateIsSticky(t *testing.T) {
	acts, err := parseActions(t, "RUNTEST DRPAUSE 50 TCK;\nRUNTEST 10 TCK;")
	require.NoError(t, err)
	require.Len(t, acts, 2)

	first := acts[0].(RunTest)
	assert.Equal(t, tap.StateDRPause, first.RunState)
	assert.Equal(t, tap.StateDRPause, first.EndState)

	// The run and end states persist into the next RUNTEST command.
	second := acts[1].(RunTest)
	assert.Equal(t, tap.StateDRPause, second.RunState)
	assert.Equal(t, tap.StateDRPause, second.EndState)
}

func TestRunTestEndStateClause(t *testing.T) {
	acts, err := parseActions(t, "RUNTEST IRPAUSE 50 TCK ENDSTATE IDLE;")
	require.NoError(t, err)
	require.Len(t, acts, 1)
	rt := acts[0].(RunTest)
	assert.Equal(t, tap.StateIRPause, rt.RunState)
	assert.Equal(t, tap.StateIdle, rt.EndState)
}

func TestRunTestErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  Kind
	}{
		{"RUNTEST MAXIMUM 2.0 SEC;", KindSemantic},       // maximum without minimum
		{"RUNTEST ENDSTATE IDLE;", KindSemantic},         // end state before any clock clause
		{"RUNTEST 100;", KindSyntax},                     // number without unit keyword
		{"RUNTEST 100 TCK 5 TCK;", KindSemantic},         // clock count twice
		{"RUNTEST 1.5 TCK;", KindValue},                  // TCK takes an integer
		{"RUNTEST X SEC;", KindValue},                    // SEC takes a float
		{"RUNTEST 100 TCK IDLE;", KindSemantic},          // bare state after clock clause
		{"RUNTEST IDLE RESET 50 TCK;", KindSemantic},     // second bare state
		{"RUNTEST 1.0 SEC 2.0 SEC;", KindSemantic},       // seconds twice
		{"RUNTEST 50 TCK ENDSTATE DRSHIFT;", KindSemantic}, // end state must be stable
	}
	for _, tc := range cases {
		perr := parseError(t, tc.input)
		assert.Equal(t, tc.kind, perr.Kind, "input %q: %v", tc.input, perr)
		assert.Equal(t, "RUNTEST", perr.Command, "input %q", tc.input)
	}
}
