package exitcode

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		code int
	}{
		{OK, 0},
		{NotGitRepo, 1},
		{StageFailed, 2},
		{NoChanges, 3},
		{KeyMissing, 10},
		{KeyInvalid, 11},
		{QuotaExceeded, 12},
		{RequestFailed, 13},
		{CommitFailed, 20},
		{Unknown, 99},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Tag(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.Code())
		})
	}
}

func TestKindTags(t *testing.T) {
	assert.Equal(t, "NOT_GIT_REPO", NotGitRepo.Tag())
	assert.Equal(t, "API_KEY_MISSING", KeyMissing.Tag())
	assert.Equal(t, "API_KEY_INVALID", KeyInvalid.Tag())
	assert.Equal(t, "QUOTA_EXCEEDED", QuotaExceeded.Tag())
	assert.Equal(t, "API_ERROR", RequestFailed.Tag())
	assert.Equal(t, "COMMIT_FAILED", CommitFailed.Tag())
	assert.Equal(t, "UNKNOWN", Unknown.Tag())
}

func TestError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := New(NoChanges, "nothing staged")
		assert.Equal(t, "nothing staged", err.Error())
		assert.Equal(t, "NO_CHANGES", err.Tag())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(RequestFailed, "request failed", cause)
		assert.Equal(t, "request failed: boom", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("tag override", func(t *testing.T) {
		err := New(Unknown, "bad provider").WithTag("UNSUPPORTED_PROVIDER")
		assert.Equal(t, "UNSUPPORTED_PROVIDER", err.Tag())
		assert.Equal(t, 99, err.Kind.Code())
	})
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, 0, CodeFor(nil))
	assert.Equal(t, 3, CodeFor(New(NoChanges, "nothing staged")))
	assert.Equal(t, 12, CodeFor(fmt.Errorf("outer: %w", New(QuotaExceeded, "quota"))))
	assert.Equal(t, 99, CodeFor(errors.New("something unexpected")))
}

func TestReport(t *testing.T) {
	t.Run("typed outcome", func(t *testing.T) {
		var buf bytes.Buffer
		Report(&buf, New(KeyMissing, "GEMINI_API_KEY is not set"))
		assert.Equal(t, "Error: [API_KEY_MISSING] GEMINI_API_KEY is not set\n", buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		Report(&buf, errors.New("boom"))
		assert.Equal(t, "Error: boom\n", buf.String())
	})

	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		Report(&buf, nil)
		assert.Empty(t, buf.String())
	})
}
