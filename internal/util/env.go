package util

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// GetEnv returns the string value of the env var with the given key,
// defaultVal if the key is unset.
func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return defaultVal
}

// GetEnvAsInt returns the int value of the env var with the given key,
// defaultVal if the key is unset or unparsable.
func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}

	return defaultVal
}

// GetEnvAsBool returns the bool value of the env var with the given key,
// defaultVal if the key is unset or unparsable.
func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}

	return defaultVal
}

// GetMgmtSecret returns the value of the env var with the given key,
// or generates a random secret if the key is unset. A generated secret
// only lives for the current process, sufficient for local development.
func GetMgmtSecret(envKey string) string {
	val := GetEnv(envKey, "")

	if len(val) > 0 {
		return val
	}

	log.Warn().Str("key", envKey).Msg("Management secret is not set, generating a random one for this process")

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// deliberately panic here, without randomness the mgmt endpoints would be open
		panic(err)
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

var dotEnvOnce sync.Once

// DotEnvTryLoad applies a .env file at the given path if one exists.
// Already exported env vars always win. Subsequent calls are no-ops.
func DotEnvTryLoad(path string) {
	dotEnvOnce.Do(func() {
		if _, err := os.Stat(path); err != nil {
			return
		}

		if err := gotenv.Load(path); err != nil {
			log.Warn().Str("path", path).Err(err).Msg("Failed to load .env file")
			return
		}

		log.Debug().Str("path", path).Msg("Applied .env file")
	})
}
