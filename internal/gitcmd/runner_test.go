package gitcmd

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStrings(t *testing.T) {
	result := Result{Stdout: []byte("  out  \n"), Stderr: []byte("  err  \n")}

	assert.Equal(t, "  out  \n", result.StdoutString(false))
	assert.Equal(t, "out", result.StdoutString(true))
	assert.Equal(t, "err", result.StderrString(true))
}

func TestRun_VerboseLogsCommandLine(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	var log bytes.Buffer
	runner := Runner{Verbose: true, Dir: t.TempDir(), Logger: &log}

	result, err := runner.Run("--version")
	require.NoError(t, err)

	assert.Contains(t, result.StdoutString(true), "git version")
	assert.Equal(t, "Running: git --version\n", log.String())
}

func TestRun_QuietByDefault(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	var log bytes.Buffer
	runner := Runner{Dir: t.TempDir(), Logger: &log}

	_, err := runner.Run("--version")
	require.NoError(t, err)
	assert.Empty(t, log.String())
}
