package helper

import (
	"testing"

	"cinema_planner/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claim := model.TokenClaim{AccountId: 7, Username: "staff01", Role: "staff"}
	token, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "staff01", claims["username"])
	assert.Equal(t, float64(7), claims["accountId"])
	assert.Equal(t, "staff", claims["role"])
}

// Khoá ký phải được đọc tại thời điểm gọi chứ không chốt lúc khởi động,
// đổi biến môi trường thì token cũ hết hiệu lực và token mới ký bằng khoá mới
func TestTokenSecretReadAtCallTime(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "a"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)

	token2, err := GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "a"})
	require.NoError(t, err)
	parsed, err := ParseToken(token2)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("123456cn")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("123456cn", hash))
	assert.False(t, CheckPasswordHash("sai-mat-khau", hash))
}
