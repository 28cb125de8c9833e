package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams       = errors.New("invalid params for generating JWT token")
	ErrInvalidToken             = errors.New("invalid viewer token")
	ErrInvalidAuthorizationHead = errors.New("invalid authorization header")
)

// ViewerToken is a signed viewer token and the values it carries.
type ViewerToken struct {
	SignedString string
	ViewerID     string
	ExpiresAt    time.Time
}

// GenerateViewerToken signs an HS256 JWT with iss = issuer, sub = viewerID
// and exp = now + tokenDuration.
//
// Example usage:
//
//	token, err := utils.GenerateViewerToken("flight-search", id, 24*time.Hour, "secret")
func GenerateViewerToken(issuer, viewerID string, tokenDuration time.Duration, signKey string) (ViewerToken, error) {
	if issuer == "" || viewerID == "" || tokenDuration <= 0 || signKey == "" {
		return ViewerToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   viewerID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return ViewerToken{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return ViewerToken{SignedString: tokenString, ViewerID: viewerID, ExpiresAt: expiresAt}, nil
}

// ValidateViewerToken checks signature, issuer and expiry of tokenString and
// returns its viewer id. The subject must be a UUID.
func ValidateViewerToken(tokenString, tokenSignKey, tokenIssuer string) (ViewerToken, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ViewerToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !IsUUID(claims.Subject) {
		return ViewerToken{}, fmt.Errorf("%w: subject is not a viewer id", ErrInvalidToken)
	}

	token := ViewerToken{SignedString: tokenString, ViewerID: claims.Subject}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHead
	}
	return parts[1], nil
}
