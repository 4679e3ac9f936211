package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
    hash, err := HashPassword("s3cret", 4)
    require.NoError(t, err)
    assert.NotEqual(t, "s3cret", hash)

    assert.True(t, VerifyPassword(hash, "s3cret"))
    assert.False(t, VerifyPassword(hash, "wrong"))
    assert.False(t, VerifyPassword("not-a-hash", "s3cret"))
}

func TestNewAccessTokenClaims(t *testing.T) {
    at, err := NewAccessToken("test-secret", 42, "CUSTOMER", 15)
    require.NoError(t, err)
    assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), at.Exp, 5*time.Second)

    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("test-secret"), nil
    })
    require.NoError(t, err)
    require.True(t, tok.Valid)

    claims, ok := tok.Claims.(jwt.MapClaims)
    require.True(t, ok)
    assert.Equal(t, float64(42), claims["sub"])
    assert.Equal(t, "CUSTOMER", claims["role"])
}
