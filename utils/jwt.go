package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GenerateJWT mints a session token for the account. The jti is persisted as a
// Session row so the token can be revoked server-side.
func GenerateJWT(email, secret string, ttl time.Duration) (token string, tokenID string, err error) {
	tokenID = uuid.NewString()

	claims := jwt.MapClaims{
		"email": email,
		"jti":   tokenID,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return token, tokenID, err
}

// ParseJWT validates the signature and expiry and returns the email and jti
// claims.
func ParseJWT(tokenString, secret string) (email string, tokenID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token payload")
	}
	email, _ = claims["email"].(string)
	tokenID, _ = claims["jti"].(string)
	if email == "" || tokenID == "" {
		return "", "", fmt.Errorf("invalid token payload")
	}

	return email, tokenID, nil
}
