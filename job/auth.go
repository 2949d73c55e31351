package job

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"strings"

	"github.com/foliohq/folio/faults"
)

// accessSecret is the JSON shape of the authentication secret.
type accessSecret struct {
	AccessKey string `json:"accessKey"`
}

// authorize verifies a bearer token against the configured secret. It is a
// no-op when no auth secret name is configured. Every failure mode maps to
// the same authentication error so callers cannot probe the configuration.
func (o *Orchestrator) authorize(ctx context.Context, header string) error {
	if o.AuthSecret == "" {
		return nil
	}
	if header == "" {
		o.Logger.Error().Msg("no authorization header found")
		return faults.Authf("Authentication failed")
	}

	token := strings.TrimPrefix(header, "Bearer ")

	raw, err := o.Secrets.Get(ctx, o.AuthSecret)
	if err != nil {
		o.Logger.Error().Err(err).Msg("failed to retrieve auth secret")
		return faults.Authf("Authentication failed")
	}

	var secret accessSecret
	if err := json.Unmarshal([]byte(raw), &secret); err != nil || secret.AccessKey == "" {
		o.Logger.Error().Msg("auth secret has no accessKey")
		return faults.Authf("Authentication failed")
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(secret.AccessKey)) != 1 {
		o.Logger.Error().Msg("authentication failed: token mismatch")
		return faults.Authf("Authentication failed")
	}
	return nil
}

// authHeader picks the authorization value for the event shape: the
// Authorization header for gateway events, the authorization field for
// direct invocations. It reads the raw event so auth is checked before any
// job parsing.
func authHeader(env *Envelope, kind EventKind) string {
	if kind == EventGateway {
		return env.Header("Authorization")
	}
	var probe struct {
		Authorization string `json:"authorization"`
	}
	if err := json.Unmarshal(env.raw, &probe); err != nil {
		return ""
	}
	return probe.Authorization
}
