package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken("bob@example.com", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := VerifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", subject)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("bob@example.com", []byte("secret-a"))
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := VerifyToken(token, []byte("secret"))
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerifyTokenIsStateless(t *testing.T) {
	secret := []byte("test-secret")
	token, err := IssueToken("carol@example.com", secret)
	require.NoError(t, err)

	// Repeated verification of the same token yields the same subject.
	for i := 0; i < 3; i++ {
		subject, err := VerifyToken(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", subject)
	}
}
