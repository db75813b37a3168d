// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	again, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salt must differ between hashes")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		res, err := CheckPassword("s3cret-pass", hash)
		require.NoError(t, err)
		assert.Equal(t, PasswordCheck{Valid: true}, res)
	})

	t.Run("wrong password", func(t *testing.T) {
		res, err := CheckPassword("nope", hash)
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := CheckPassword("s3cret-pass", "$argon2id$broken")
		assert.ErrorIs(t, err, errMalformedHash)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := CheckPassword("s3cret-pass", "$scrypt$v=1$a$b$c")
		assert.ErrorContains(t, err, "scrypt")
	})
}

func TestCheckPasswordUpgradesWeakParams(t *testing.T) {
	weak := argonParams{memory: 8 * 1024, time: 1, threads: 1, keyLen: 32}
	salt := []byte("0123456789abcdef")
	stored := weak.encode(salt, weak.derive("matchday", salt))

	res, err := CheckPassword("matchday", stored)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	require.NotEmpty(t, res.Rehash)

	again, err := CheckPassword("matchday", res.Rehash)
	require.NoError(t, err)
	assert.Equal(t, PasswordCheck{Valid: true}, again)
}

func TestCheckPasswordLegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("@admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	res, err := CheckPassword("@admin123", string(legacy))
	require.NoError(t, err)
	assert.True(t, res.Valid)
	require.NotEmpty(t, res.Rehash, "bcrypt hashes are upgraded on login")
	assert.True(t, strings.HasPrefix(res.Rehash, "$argon2id$"))

	res, err = CheckPassword("wrong", string(legacy))
	require.NoError(t, err)
	assert.Equal(t, PasswordCheck{}, res)
}

func TestCheckPasswordOrDummy(t *testing.T) {
	hash, err := HashPassword("pw-123456")
	require.NoError(t, err)

	res, err := CheckPasswordOrDummy("pw-123456", &hash)
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = CheckPasswordOrDummy("icfc-unknown-account", nil)
	require.NoError(t, err)
	assert.False(t, res.Valid, "missing account never verifies")

	empty := ""
	res, err = CheckPasswordOrDummy("", &empty)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}
