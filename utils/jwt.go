package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "baitussalam-dev"
	}
	return secret
}

// GenerateToken creates a signed session JWT for the given email and
// display name. The token expires after the specified duration.
func GenerateToken(email, name string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"name": name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractIdentityFromToken extracts the email (subject) and display name
// from a valid session token.
func ExtractIdentityFromToken(tokenString string) (email, name string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	email, ok = claims["sub"].(string)
	if !ok || email == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	name, _ = claims["name"].(string)
	return email, name, nil
}
