package localization

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// ClaimZoneInfo is the OpenID Connect standard claim for the user's zone
	ClaimZoneInfo = "zoneinfo"
	// ClaimLocale is the OpenID Connect standard claim for the user's locale
	ClaimLocale = "locale"
)

// Claims is the localization preference carried in a bearer token
type Claims struct {
	ZoneInfo string
	Locale   string
}

// ClaimsReader verifies HS256 bearer tokens and extracts localization claims
type ClaimsReader struct {
	secret []byte
}

// NewClaimsReader creates a reader for tokens signed with secret
func NewClaimsReader(secret string) *ClaimsReader {
	return &ClaimsReader{secret: []byte(secret)}
}

// Read parses and verifies tokenString. Missing claims are returned empty.
func (r *ClaimsReader) Read(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if zone, ok := mapClaims[ClaimZoneInfo].(string); ok {
		claims.ZoneInfo = strings.TrimSpace(zone)
	}
	if locale, ok := mapClaims[ClaimLocale].(string); ok {
		claims.Locale = strings.TrimSpace(locale)
	}
	return claims, nil
}

// bearerToken extracts the token from an Authorization header value
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
