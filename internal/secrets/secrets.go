// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the engine's API keys. Each key is read from a
// plain-text file in the secrets directory (the filename is the key name,
// the trimmed contents are the value), falling back to the key's
// environment variable when the file is absent or empty.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names. Each maps to one file under the secrets directory.
const (
	KeyOpenAI    = "openai-api-key"
	KeyFactCheck = "factcheck-api-key"
)

// envFallbacks maps each key to the environment variable consulted when no
// key file is present.
var envFallbacks = map[string]string{
	KeyOpenAI:    "OPENAI_API_KEY",
	KeyFactCheck: "FACTCHECK_API_KEY",
}

// Load resolves every known key from dir, falling back to the environment.
// A missing directory or key file is not an error; unreadable files produce
// a warning on stderr. Keys that resolve nowhere are absent from the map.
func Load(dir string) map[string]string {
	resolved := make(map[string]string, len(envFallbacks))
	for key, env := range envFallbacks {
		value := readKeyFile(filepath.Join(dir, key))
		if value == "" {
			value = os.Getenv(env)
		}
		if value != "" {
			resolved[key] = value
		}
	}
	return resolved
}

func readKeyFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", path, err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}
