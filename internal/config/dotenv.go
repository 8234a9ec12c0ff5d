// Package config reads the server settings stored in the data directory.
package config

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"
)

// LoadDotEnv reads KEY=VALUE pairs from path. A missing file yields an empty
// map. Double-quoted values are unquoted; single quotes are rejected.
func LoadDotEnv(path string) (map[string]string, error) {
	env := make(map[string]string)
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is constructed from the data-dir flag
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, err
	}
	for line := range strings.SplitSeq(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if strings.HasPrefix(val, "'") || strings.HasSuffix(val, "'") {
			if strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'") {
				return nil, fmt.Errorf("single quotes are not supported for wrapping in .env: %s", key)
			}
			return nil, fmt.Errorf("unbalanced single quotes in .env: %s", key)
		}
		if strings.HasPrefix(val, "\"") {
			unquoted, err := strconv.Unquote(val)
			if err != nil {
				return nil, fmt.Errorf("failed to unquote %s: %w", key, err)
			}
			val = unquoted
		}
		env[key] = val
	}
	return env, nil
}

// Environ returns the process environment overlaid on dotenv: variables set
// in the process win over the file.
func Environ(dotenv map[string]string) map[string]string {
	out := make(map[string]string, len(dotenv))
	maps.Copy(out, dotenv)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
