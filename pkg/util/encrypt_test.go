package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashRoundTrip(t *testing.T) {
	password := "my_secure_password"

	hash, err := CreateArgon2Hash(password)
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))

	ok, err := ComparePasswordAndHash(password, hash)
	require.NoError(t, err)
	assert.True(t, ok, "Password should match the hash")

	ok, err = ComparePasswordAndHash("wrong_password", hash)
	require.NoError(t, err)
	assert.False(t, ok, "Wrong password should not match the hash")
}

func TestIsArgon2HashPlainText(t *testing.T) {
	assert.False(t, IsArgon2Hash("plain-password"))
	assert.False(t, IsArgon2Hash("$argon2id$broken"))

	_, err := ComparePasswordAndHash("x", "not-a-hash")
	assert.Error(t, err)
}
