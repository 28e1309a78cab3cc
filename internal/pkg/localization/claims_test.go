package localization

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "payroll-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestClaimsReader_Read(t *testing.T) {
	reader := NewClaimsReader(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":         "employee-42",
		ClaimZoneInfo: "Asia/Tokyo",
		ClaimLocale:   "de",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	claims, err := reader.Read(token)
	require.NoError(t, err)
	assert.Equal(t, Claims{ZoneInfo: "Asia/Tokyo", Locale: "de"}, claims)
}

func TestClaimsReader_MissingClaims(t *testing.T) {
	reader := NewClaimsReader(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "employee-42", ClaimLocale: 7})

	claims, err := reader.Read(token)
	require.NoError(t, err)
	assert.Equal(t, Claims{}, claims)
}

func TestClaimsReader_Invalid(t *testing.T) {
	reader := NewClaimsReader(testSecret)

	tests := map[string]string{
		"wrong secret": signToken(t, "other-secret", jwt.MapClaims{ClaimZoneInfo: "UTC"}),
		"expired": signToken(t, testSecret, jwt.MapClaims{
			ClaimZoneInfo: "UTC",
			"exp":         time.Now().Add(-time.Hour).Unix(),
		}),
		"garbage": "not-a-token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := reader.Read(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, ok := bearerToken(header)
		assert.False(t, ok, header)
	}
}
