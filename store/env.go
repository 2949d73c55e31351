package store

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvSecrets is a SecretStore backed by environment variables. Secret names
// are upper-cased, non-alphanumerics replaced by underscores, and prefixed.
type EnvSecrets struct {
	prefix string
}

// NewEnvSecrets creates an environment-backed secret store. An empty prefix
// defaults to "FOLIO_SECRET_".
func NewEnvSecrets(prefix string) *EnvSecrets {
	if prefix == "" {
		prefix = "FOLIO_SECRET_"
	}
	return &EnvSecrets{prefix: prefix}
}

// Get returns the secret value for the given name.
func (e *EnvSecrets) Get(ctx context.Context, name string) (string, error) {
	v := os.Getenv(e.prefix + envKey(name))
	if v == "" {
		return "", fmt.Errorf("secret %q not set", name)
	}
	return v, nil
}

func envKey(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			return r
		default:
			return '_'
		}
	}, name)
	return mapped
}
