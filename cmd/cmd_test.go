package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RORICALC_HOME", t.TempDir())
	t.Setenv("RORICALC_ANGLE_MODE", "")
	t.Setenv("RORICALC_LOG_LEVEL", "")

	angleFlag = ""
	tableStart, tableEnd, tableStep = 1, 5, 1
	keysStyle = "auto"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "5P2", "Ans/4", "sin(30)")
	require.NoError(t, err)
	assert.Equal(t, "20\n5\n0.5\n", out)

	out, err = run(t, "--angle", "rad", "eval", "cos(pi)")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestEvalError(t *testing.T) {
	out, err := run(t, "eval", "1+")
	assert.Error(t, err)
	assert.Contains(t, out, "Syntax ERROR")

	_, err = run(t, "--angle", "turns", "eval", "1")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "X^2", "--start", "1", "--end", "3", "--step", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "F(X)")
	for _, want := range []string{"1", "4", "9"} {
		assert.Contains(t, out, want)
	}

	_, err = run(t, "table", "X", "--step", "0")
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	out, err := run(t, "solve", "quadratic", "--", "1", "-3", "2")
	require.NoError(t, err)
	assert.Equal(t, "X1 = 2\nX2 = 1\n", out)

	out, err = run(t, "solve", "quadratic", "1", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "No Real Roots\n", out)

	out, err = run(t, "solve", "2var", "1", "1", "sqrt(9)", "1", "--", "-1", "1")
	require.NoError(t, err)
	assert.Equal(t, "X = 2\nY = 1\n", out)

	out, err = run(t, "solve", "cubic", "1", "0", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "Solver N/A\n", out)

	_, err = run(t, "solve", "quartic", "1")
	assert.Error(t, err)
	_, err = run(t, "solve", "quadratic", "1", "2")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	out, err := run(t, "keys", "--style", "raw")
	require.NoError(t, err)
	assert.Contains(t, out, "## SHIFT layer")
	assert.Contains(t, out, "| S⇔D |")
	assert.Contains(t, out, "- `permutations`: ")
	assert.Contains(t, out, "| enter | = |")

	out, err = run(t, "keys", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Functions")
}

func TestSetupHelpers(t *testing.T) {
	items := []string{"deg", "rad", "gra"}
	assert.Equal(t, 1, indexOf(items, "RAD"))
	assert.Equal(t, 0, indexOf(items, "turns"))
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
