package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/crypto/argon2"
)

// HashPassword generates a PHC-format Argon2id hash string including salt and parameters.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	// Return PHC-style encoded string
	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// VerifyPassword compares a plaintext password against a PHC-style Argon2id hash.
//
// It reports only match/no-match. A malformed or truncated digest verifies as
// false the same way a wrong password does, so a caller (and anything observing
// the caller) cannot tell the two cases apart. The underlying comparison is
// constant-time over the full digest length.
func VerifyPassword(password, encodedHash string) bool {
	salt, expectedHash, mem, iters, par, ok := parsePHC(encodedHash)
	if !ok {
		return false
	}

	computed := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iters,
		mem,
		par,
		uint32(len(expectedHash)), // #nosec G115 - digest lengths are tiny
	)

	return subtle.ConstantTimeCompare(computed, expectedHash) == 1
}

// parsePHC splits a "$argon2id$v=19$m=X,t=Y,p=Z$salt$hash" string into its
// decoded components. ok is false for anything that isn't a well-formed
// argon2id v19 digest.
func parsePHC(encodedHash string) (salt, hash []byte, mem, iters uint32, par uint8, ok bool) {
	parts := make([]string, 0, 6)
	start := 0
	for i := range len(encodedHash) {
		if encodedHash[i] == '$' {
			parts = append(parts, encodedHash[start:i])
			start = i + 1
		}
	}
	parts = append(parts, encodedHash[start:])

	// Expect ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return nil, nil, 0, 0, 0, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return nil, nil, 0, 0, 0, false
	}

	var err error
	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, nil, 0, 0, 0, false
	}
	if hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, nil, 0, 0, 0, false
	}

	return salt, hash, mem, iters, par, true
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// DummyHash returns a valid digest of a random throwaway password. Login flows
// verify against it when the username does not exist so that "no such user"
// costs the same as "wrong password".
func DummyHash() string {
	dummyOnce.Do(func() {
		var err error
		dummyHash, err = HashPassword(MustGenerateToken(TokenSize128))
		if err != nil {
			panic(fmt.Sprintf("cryptox: failed to build dummy hash: %v", err))
		}
	})
	return dummyHash
}
