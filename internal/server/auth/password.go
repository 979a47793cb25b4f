// Package auth implements password hashing, session tokens and the cookie
// carrier that moves tokens between requests.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/result"
)

const saltSize = 16

// saltPrefixLen is the length of the hex-encoded salt stored in front of the hash.
const saltPrefixLen = saltSize * 2

// pepper mixes the server secret into the password: HMAC-SHA256 keyed by
// secret over password, then salt.
func pepper(secret, password string, salt []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(password))
	mac.Write(salt)
	return mac.Sum(nil)
}

// SecurePassword derives the stored form of password: the hex salt followed
// by a bcrypt hash of the peppered password.
func SecurePassword(secret, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(pepper(secret, password, salt), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return hex.EncodeToString(salt) + string(hash), nil
}

// CheckPassword verifies password against a value produced by SecurePassword.
// Any mismatch, including a malformed stored value, is AuthenticationFailed.
func CheckPassword(secret, password, stored string) result.Result[bool] {
	if len(stored) <= saltPrefixLen {
		return result.Err[bool](common.ErrAuthenticationFailed)
	}
	salt, err := hex.DecodeString(stored[:saltPrefixLen])
	if err != nil {
		return result.Err[bool](common.ErrAuthenticationFailed)
	}

	hash := []byte(stored[saltPrefixLen:])
	if err := bcrypt.CompareHashAndPassword(hash, pepper(secret, password, salt)); err != nil {
		return result.Err[bool](common.ErrAuthenticationFailed)
	}
	return result.Ok(true)
}
