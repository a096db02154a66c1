// Package llm is the gateway to the language-model provider. It issues one
// chat-completion request per call and translates provider failures into the
// outcome taxonomy.
package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/JeremySu0818/Commit-Drafter/internal/config"
	"github.com/JeremySu0818/Commit-Drafter/internal/exitcode"
)

const (
	// DefaultModel is the pinned model used when the caller supplies none.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIBase is the provider's OpenAI-compatible endpoint.
	DefaultAPIBase = "https://generativelanguage.googleapis.com/v1beta/openai"
)

// Options configures a Client.
type Options struct {
	Model   string
	APIBase string
	Timeout time.Duration
}

// Client generates commit messages through the provider's chat-completions
// endpoint.
type Client struct {
	model   string
	apiBase string
	timeout time.Duration
}

func NewClient(opts Options) *Client {
	c := &Client{
		model:   opts.Model,
		apiBase: opts.APIBase,
		timeout: opts.Timeout,
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.apiBase == "" {
		c.apiBase = DefaultAPIBase
	}
	if c.timeout <= 0 {
		c.timeout = config.DefaultRequestTimeout
	}
	return c
}

// GenerateCommitMessage sends the diff to the provider and returns the
// generated text, trimmed. Every failure is a typed outcome error; a blank
// diff and a missing key are rejected before any network I/O.
func (c *Client) GenerateCommitMessage(ctx context.Context, diff, apiKey string) (string, error) {
	if apiKey == "" {
		return "", exitcode.New(exitcode.KeyMissing,
			config.GeminiKeyName+" is not set. Please set the environment variable or run generate interactively.")
	}
	if strings.TrimSpace(diff) == "" {
		return "", exitcode.New(exitcode.NoChanges, "no changes detected to generate a commit for")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = c.apiBase
	client := openai.NewClientWithConfig(clientConfig)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(diff)},
		},
	})
	if err != nil {
		return "", translateError(err)
	}

	if len(resp.Choices) == 0 {
		return "", exitcode.New(exitcode.RequestFailed, "provider returned an empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// translateError maps provider/client failures onto the outcome taxonomy:
// 401/403 means the key is invalid, 429 means quota, everything else is a
// generic request failure.
func translateError(err error) *exitcode.Error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return exitcode.Wrap(exitcode.KeyInvalid, "the provider rejected the API key", err)
	case http.StatusTooManyRequests:
		return exitcode.Wrap(exitcode.QuotaExceeded, "provider quota exceeded", err)
	}

	if strings.Contains(err.Error(), "429") {
		return exitcode.Wrap(exitcode.QuotaExceeded, "provider quota exceeded", err)
	}

	return exitcode.Wrap(exitcode.RequestFailed, "failed to generate commit message", err)
}
