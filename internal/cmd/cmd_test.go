package cmd_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/internal/cmd"
	"github.com/katalvlaran/rootfind/itp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the itp command tree with args and returns stdout.
// Config lookups are confined to a temporary XDG directory.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeCommandStderr(t, args...)
	return out, err
}

// executeCommandStderr is executeCommand that also returns stderr.
func executeCommandStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := executeCommand(t, "solve", "--expr", "x - 0.5", "--left", "0", "--right", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "status:   Success")
	assert.Contains(t, out, ", 0.5]")
	assert.Contains(t, out, "iters:    1")
}

func TestSolve_JSON(t *testing.T) {
	out, err := executeCommand(t, "solve", "-e", "x*x - p", "-p", "2", "-a", "0", "-b", "2", "--json")
	require.NoError(t, err)

	var sol itp.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.True(t, sol.Status.IsConverged())
	assert.InDelta(t, math.Sqrt2, sol.X, 1e-15)
	assert.LessOrEqual(t, sol.Left, sol.X)
	assert.LessOrEqual(t, sol.X, sol.Right)
}

func TestSolve_VectorParameter(t *testing.T) {
	out, err := executeCommand(t, "solve", "-e", "p0*x - p1", "-p", "2,6", "-a", "0", "-b", "10", "--json")
	require.NoError(t, err)

	var sol itp.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.InDelta(t, 3, sol.X, 1e-14)
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"too few parameters", []string{"solve", "-e", "p0*x - p1", "-p", "2", "-a", "0", "-b", "10"}, expr.ErrArity},
		{"no sign change", []string{"solve", "-e", "x*x + 1", "-a", "0", "-b", "1"}, itp.ErrNoSignChange},
		{"degenerate bracket", []string{"solve", "-e", "x", "-a", "1", "-b", "1"}, itp.ErrDegenerateInterval},
		{"parse error", []string{"solve", "-e", "(x + 1", "-a", "0", "-b", "1"}, expr.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSolve_MissingFlag(t *testing.T) {
	_, err := executeCommand(t, "solve", "-e", "x", "-a", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "right")
}

func TestRoot_InvalidAlgorithmFlag(t *testing.T) {
	_, err := executeCommand(t, "--k2", "3", "solve", "-e", "x - 0.5", "-a", "0", "-b", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "algorithm.k2")
}

func TestRoot_EnvOverride(t *testing.T) {
	t.Setenv("ITP_ALGORITHM_MAX_ITERS", "2")
	out, err := executeCommand(t, "solve", "-e", "x*x*x - 2*x - 5", "-a", "2", "-b", "3", "--json")
	require.NoError(t, err)

	var sol itp.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.Equal(t, itp.MaxIters, sol.Status)
	assert.Equal(t, 2, sol.Iters)
}

func TestSweep_JSON(t *testing.T) {
	out, err := executeCommand(t, "sweep", "-e", "x*x - p", "--from", "1", "--to", "9", "--steps", "3",
		"-a", "0", "-b", "10", "--workers", "2", "--json")
	require.NoError(t, err)

	var rows []struct {
		Index    int          `json:"index"`
		P        []float64    `json:"p"`
		Solution itp.Solution `json:"solution"`
		Error    string       `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	for i, want := range []float64{1, math.Sqrt(5), 3} {
		assert.Equal(t, i, rows[i].Index)
		assert.Empty(t, rows[i].Error)
		assert.InDelta(t, want, rows[i].Solution.X, 1e-14)
	}
}

func TestSweep_TableReportsFailures(t *testing.T) {
	out, err := executeCommand(t, "sweep", "-e", "x*x - p", "--from", "-1", "--to", "4", "--steps", "2",
		"-a", "1", "-b", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "p")
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "2")
}

func TestConfig_PathAndInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	out, err := executeCommand(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scaled_k1")

	_, err = executeCommand(t, "config", "init", path)
	require.Error(t, err, "init must not overwrite an existing file")

	out, err = executeCommand(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestConfig_ShowReflectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm:\n  k2: 1.5\n"), 0o644))

	out, err := executeCommand(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# config file: "+path)
	assert.Contains(t, out, "k2: 1.5")
	assert.Contains(t, out, "max_iters: 1000")
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "config", "show")
	require.Error(t, err)
}

func TestSolve_JSONInfiniteResidual(t *testing.T) {
	out, err := executeCommand(t, "solve", "-e", "(x - 0.75) / abs(x - 0.5)", "-a", "0", "-b", "1",
		"--max-iters", "1", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"residual": "-Inf"`)

	var sol itp.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.Equal(t, itp.MaxIters, sol.Status)
	assert.True(t, math.IsInf(sol.Residual, -1))
	assert.Equal(t, 0.5, sol.X)
}

func TestSweep_Progress(t *testing.T) {
	out, errOut, err := executeCommandStderr(t, "sweep", "-e", "x*x - p", "--from", "1", "--to", "4", "--steps", "4",
		"-a", "0", "-b", "10", "--progress", "--json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Sweeping")
	assert.Contains(t, errOut, "4/4")

	var rows []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &rows), "progress output stays off stdout")
	assert.Len(t, rows, 4)
}
