// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const saltLength = 16

// argonParams are the cost settings encoded into every argon2id hash.
type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

var currentParams = argonParams{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
}

var errMalformedHash = errors.New("malformed password hash")

// PasswordCheck is the outcome of comparing a password with a stored hash.
// Rehash is set when the password matched but the stored hash should be
// replaced.
type PasswordCheck struct {
	Valid  bool
	Rehash string
}

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return currentParams.encode(salt, currentParams.derive(password, salt)), nil
}

// CheckPassword compares password with an argon2id or legacy bcrypt hash.
// Member accounts imported from the previous platform still carry bcrypt
// hashes and are always flagged for rehash.
func CheckPassword(password, encoded string) (PasswordCheck, error) {
	if isBcryptHash(encoded) {
		ok, err := verifyBcrypt(password, encoded)
		if err != nil || !ok {
			return PasswordCheck{}, err
		}
		return upgrade(password), nil
	}

	params, salt, want, err := parseArgonHash(encoded)
	if err != nil {
		return PasswordCheck{}, err
	}

	got := params.derive(password, salt)
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return PasswordCheck{}, nil
	}

	if params != currentParams {
		return upgrade(password), nil
	}
	return PasswordCheck{Valid: true}, nil
}

var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("icfc-unknown-account")
	if err != nil {
		return ""
	}
	return hash
})

// CheckPasswordOrDummy runs a full hash comparison even when encoded is nil
// or empty, so a login for an unknown account takes as long as a real one.
// It never reports a match in that case.
func CheckPasswordOrDummy(password string, encoded *string) (PasswordCheck, error) {
	if encoded == nil || *encoded == "" {
		//nolint:errcheck // result discarded, only the work matters
		_, _ = CheckPassword(password, dummyHash())
		return PasswordCheck{}, nil
	}
	return CheckPassword(password, *encoded)
}

func upgrade(password string) PasswordCheck {
	fresh, err := HashPassword(password)
	if err != nil {
		return PasswordCheck{Valid: true}
	}
	return PasswordCheck{Valid: true, Rehash: fresh}
}

func (p argonParams) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
}

func (p argonParams) encode(salt, key []byte) string {
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.time,
		p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// parseArgonHash splits "$argon2id$v=19$m=..,t=..,p=..$salt$key".
func parseArgonHash(encoded string) (argonParams, []byte, []byte, error) {
	var p argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, errMalformedHash
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("unsupported hash algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: version: %w", errMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("argon2 version %d not supported", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: params: %w", errMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %w", errMalformedHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: key: %w", errMalformedHash, err)
	}

	//nolint:gosec // G115: argon2 keys are a few dozen bytes
	p.keyLen = uint32(len(key))
	return p, salt, key, nil
}

func isBcryptHash(encoded string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(encoded, prefix) {
			return true
		}
	}
	return false
}

func verifyBcrypt(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify bcrypt hash: %w", err)
	}
}
