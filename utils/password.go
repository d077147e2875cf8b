package utils

import (
	"github.com/matthewhartstonge/argon2"

	"storefront/config"
)

// hashConfig builds the argon2id parameters for new hashes. The memory
// cost (in KiB) can be raised through PASSWORD_HASH_MEMORY; verification
// reads the parameters back from the encoded hash, so existing hashes
// keep working after the setting changes.
func hashConfig() argon2.Config {
	cfg := argon2.DefaultConfig()
	if config.AppConfig != nil && config.AppConfig.PasswordHashMemory > 0 {
		cfg.MemoryCost = config.AppConfig.PasswordHashMemory
	}
	return cfg
}

// HashPassword returns the argon2id encoded hash of a plaintext password.
func HashPassword(password string) (string, error) {
	cfg := hashConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches an
// encoded hash produced by HashPassword.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
