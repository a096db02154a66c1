package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// KeyStore resolves and persists API keys in a KEY=value env file.
type KeyStore struct {
	// Path of the env file. Empty means the default location next to the
	// executable.
	Path string
}

// NewKeyStore returns a store backed by the default credential file.
func NewKeyStore() (*KeyStore, error) {
	path, err := EnvFilePath()
	if err != nil {
		return nil, err
	}
	return &KeyStore{Path: path}, nil
}

// ResolveKey checks the process environment first, then the env file.
func (s *KeyStore) ResolveKey(name string) (string, bool) {
	if value := os.Getenv(name); value != "" {
		return value, true
	}

	env, err := gotenv.Read(s.Path)
	if err != nil {
		return "", false
	}
	value, ok := env[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// SaveKey rewrites the env file, replacing an existing line for name or
// appending a new one. Unrelated lines, comments and blanks included, are
// preserved verbatim; a trailing newline is ensured before any append.
func (s *KeyStore) SaveKey(name, value string) error {
	var lines []string
	if data, err := os.ReadFile(s.Path); err == nil {
		lines = splitLines(string(data))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", s.Path, err)
	}

	entry := fmt.Sprintf("%s=%s\n", name, value)
	updated := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), name+"=") {
			lines[i] = entry
			updated = true
		}
	}

	if !updated {
		if n := len(lines); n > 0 && !strings.HasSuffix(lines[n-1], "\n") {
			lines[n-1] += "\n"
		}
		lines = append(lines, entry)
	}

	if err := os.WriteFile(s.Path, []byte(strings.Join(lines, "")), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	return nil
}

// splitLines splits keeping the newline on each line, so untouched lines
// round-trip byte-identically.
func splitLines(data string) []string {
	var lines []string
	for len(data) > 0 {
		i := strings.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, data)
			break
		}
		lines = append(lines, data[:i+1])
		data = data[i+1:]
	}
	return lines
}
