package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "studyhub"

var (
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
)

var (
	ErrSecretNotConfigured = errors.New("jwt secret not configured")
	ErrInvalidToken        = errors.New("invalid token")
	ErrWrongTokenType      = errors.New("wrong token type")
)

// InitJWT wires the signing secret and token lifetimes. Called once at startup.
func InitJWT(secret string, access, refresh time.Duration) {
	jwtSecret = secret
	accessTTL = access
	refreshTTL = refresh
}

// GenerateToken issues a signed access token for a user.
func GenerateToken(userID string) (string, error) {
	return generate(userID, "access", accessTTL)
}

// GenerateRefreshToken issues a signed refresh token for a user.
func GenerateRefreshToken(userID string) (string, error) {
	return generate(userID, "refresh", refreshTTL)
}

func generate(userID, tokenType string, ttl time.Duration) (string, error) {
	if jwtSecret == "" {
		return "", ErrSecretNotConfigured
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"iss":     tokenIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateAccessToken verifies signature, expiry and type, returning the subject.
func ValidateAccessToken(tokenString string) (string, error) {
	return validate(tokenString, "access")
}

// ValidateRefreshToken verifies a refresh token, returning the subject.
func ValidateRefreshToken(tokenString string) (string, error) {
	return validate(tokenString, "refresh")
}

func validate(tokenString, wantType string) (string, error) {
	if jwtSecret == "" {
		return "", ErrSecretNotConfigured
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if iss, _ := claims["iss"].(string); iss != tokenIssuer {
		return "", ErrInvalidToken
	}

	tokenType, _ := claims["type"].(string)
	if tokenType == "" {
		tokenType = "access"
	}
	if tokenType != wantType {
		return "", ErrWrongTokenType
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

// TokenExpiry returns the exp claim without verifying the signature. Used to
// size blacklist TTLs for tokens that are already being discarded.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrInvalidToken
	}
	return exp.Time, nil
}
