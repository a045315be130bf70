package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail_ReadsSubjectClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@tum.de",
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	assert.Equal(t, "alice@tum.de", Email(signed))
}

func TestEmail_GarbageTokenIsEmpty(t *testing.T) {
	assert.Empty(t, Email("not-a-jwt"))
	assert.Empty(t, Email(""))
}

func TestEmail_NoSubjectClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": 1893456000,
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	assert.Empty(t, Email(signed))
}
