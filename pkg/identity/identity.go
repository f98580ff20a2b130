// Package identity resolves which user cloud operations act for.
//
// This is deliberately a thin surface: hosts with real authentication
// implement Provider on top of their session handling, and the bundled
// implementations only hand back a configured value.
package identity

import (
	"errors"
	"os"
)

// ErrNoIdentity is returned when a provider cannot resolve a user.
var ErrNoIdentity = errors.New("no user identity configured")

// Provider yields the user ID cloud operations act on behalf of.
type Provider interface {
	CurrentUserID() (string, error)
}

// Static is a fixed-value provider.
type Static string

var _ Provider = Static("")

func (s Static) CurrentUserID() (string, error) {
	if s == "" {
		return "", ErrNoIdentity
	}
	return string(s), nil
}

// DefaultEnvKey is the environment variable EnvProvider reads when no
// key is configured.
const DefaultEnvKey = "CLOUDSYNC_USER_ID"

// EnvProvider reads the user ID from an environment variable at call
// time.
type EnvProvider struct {
	// Key overrides DefaultEnvKey.
	Key string
}

var _ Provider = (*EnvProvider)(nil)

func (p *EnvProvider) CurrentUserID() (string, error) {
	key := p.Key
	if key == "" {
		key = DefaultEnvKey
	}
	id := os.Getenv(key)
	if id == "" {
		return "", ErrNoIdentity
	}
	return id, nil
}
