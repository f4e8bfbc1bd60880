package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. 16384/8/1 with a 64-byte key matches what the stored
// hashes were originally derived with, so they must not change without a
// credential migration.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// ErrMalformedHash is returned when a stored credential cannot be split
// into its derived-key and salt halves.
var ErrMalformedHash = errors.New("auth: malformed password hash")

// HashPassword derives a one-way hash from the plaintext using scrypt with
// a fresh random salt. The encoded form is "<keyHex>.<saltHex>"; hashing
// the same plaintext twice yields different encodings.
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)

	key, err := scrypt.Key([]byte(plaintext), []byte(saltHex), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key) + "." + saltHex, nil
}

// VerifyPassword reports whether the supplied plaintext matches the stored
// encoded hash. The re-derived key is compared in constant time so partial
// matches leak nothing through timing.
func VerifyPassword(supplied, stored string) (bool, error) {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		return false, ErrMalformedHash
	}

	storedKey, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, ErrMalformedHash
	}

	key, err := scrypt.Key([]byte(supplied), []byte(parts[1]), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(storedKey, key) == 1, nil
}
