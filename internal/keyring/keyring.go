// Package keyring stores provider API keys in the OS keyring, with an
// environment-variable fallback for CI and headless machines.
package keyring

import (
	"os"

	gokeyring "github.com/zalando/go-keyring"
)

const serviceName = "gitaimsg"

// KeySource indicates where a key was found in the lookup chain.
type KeySource string

const (
	SourceKeyring KeySource = "keyring"
	SourceEnv     KeySource = "env"
	SourceNone    KeySource = ""
)

// Default env var names for the builtin providers.
var envKeys = map[string]string{
	"openai": "OPENAI_API_KEY",
	"gemini": "GEMINI_API_KEY",
}

// Set stores a key in the OS keyring.
func Set(provider, apiKey string) error {
	return gokeyring.Set(serviceName, provider, apiKey)
}

// Delete removes a key from the OS keyring.
func Delete(provider string) error {
	return gokeyring.Delete(serviceName, provider)
}

// Resolve finds a key for the provider: OS keyring first, then the env var
// (customEnv overrides the default mapping).
func Resolve(provider, customEnv string) (string, KeySource) {
	key, err := gokeyring.Get(serviceName, provider)
	if err == nil && key != "" {
		return key, SourceKeyring
	}

	envVar := customEnv
	if envVar == "" {
		envVar = envKeys[provider]
	}
	if envVar != "" {
		if envKey := os.Getenv(envVar); envKey != "" {
			return envKey, SourceEnv
		}
	}

	return "", SourceNone
}

// Get retrieves a key using the default env var mapping.
func Get(provider string) (string, error) {
	key, source := Resolve(provider, "")
	if source == SourceNone {
		return "", gokeyring.ErrNotFound
	}
	return key, nil
}

// KeyInfo holds the availability and source of a key.
type KeyInfo struct {
	Found  bool
	Source KeySource
}

// Status returns key availability and source for the given providers.
// customEnvs maps provider names to custom env var names.
func Status(providers []string, customEnvs map[string]string) map[string]KeyInfo {
	status := make(map[string]KeyInfo, len(providers))
	for _, p := range providers {
		key, source := Resolve(p, customEnvs[p])
		status[p] = KeyInfo{Found: key != "", Source: source}
	}
	return status
}
