package git

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeremySu0818/Commit-Drafter/internal/gitcmd"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// newTempRepo initializes an isolated repository in a temp directory and
// returns a client bound to it. The real working tree is never touched.
func newTempRepo(t *testing.T) (string, *Client) {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	runner := gitcmd.Runner{Dir: dir}

	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test User"},
	} {
		result, err := runner.Run(args...)
		require.NoError(t, err, "git %v: %s", args, result.StderrString(true))
	}

	return dir, NewClient(Options{Dir: dir})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestIsGitRepository(t *testing.T) {
	requireGit(t)

	t.Run("inside a repository", func(t *testing.T) {
		_, client := newTempRepo(t)
		assert.True(t, client.IsGitRepository())
	})

	t.Run("plain directory", func(t *testing.T) {
		client := NewClient(Options{Dir: t.TempDir()})
		assert.False(t, client.IsGitRepository())
	})
}

func TestAddAllAndGetDiff(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "hello.txt", "hello\n")

	assert.True(t, client.AddAll())

	staged := client.GetDiff(true)
	assert.Contains(t, staged, "hello.txt")
	assert.Contains(t, staged, "+hello")

	unstaged := client.GetDiff(false)
	assert.Empty(t, unstaged, "everything is staged, the working-tree diff is empty")
}

func TestGetDiff_EmptyWhenNothingStaged(t *testing.T) {
	_, client := newTempRepo(t)
	assert.Empty(t, client.GetDiff(true))
}

func TestGetDiff_EmptyOutsideRepository(t *testing.T) {
	requireGit(t)

	var log bytes.Buffer
	client := NewClient(Options{Dir: t.TempDir(), Logger: &log})

	assert.Empty(t, client.GetDiff(true))
	assert.Contains(t, log.String(), "git diff failed")
}

func TestCommit(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "hello.txt", "hello\n")
	require.True(t, client.AddAll())

	assert.True(t, client.Commit("feat: add hello"))

	runner := gitcmd.Runner{Dir: dir}
	result, err := runner.Run("log", "-1", "--pretty=%s")
	require.NoError(t, err)
	assert.Equal(t, "feat: add hello", result.StdoutString(true))
}

func TestCommit_FailsWithNothingStaged(t *testing.T) {
	_, client := newTempRepo(t)

	var log bytes.Buffer
	client.logger = &log
	client.runner.Logger = &log

	assert.False(t, client.Commit("chore: nothing to do"))
}

func TestAddAll_FailsOutsideRepository(t *testing.T) {
	requireGit(t)

	var log bytes.Buffer
	client := NewClient(Options{Dir: t.TempDir(), Logger: &log})

	assert.False(t, client.AddAll())
	assert.Contains(t, log.String(), "git add failed")
}
