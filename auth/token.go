// token.go - Issues and verifies the stateless session tokens
//
// A token binds a single claim - the user's email - and is verified by
// signature alone; there is no server-side session store or revocation
// list. The user behind the email must still exist at verification time,
// which the auth middleware checks separately.

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
)

var (
	// ErrNoSecret means the signing secret is unconfigured. This is a
	// deployment error, not a runtime one.
	ErrNoSecret = errors.New("jwt secret is not configured")

	// ErrInvalidToken covers a bad signature, a malformed payload, an
	// expired token, or a payload with no email claim.
	ErrInvalidToken = errors.New("invalid token")
)

// tokenLifetime - How long an issued token stays valid.
const tokenLifetime = 30 * 24 * time.Hour // 30 days

// Issue signs a token carrying the user's email.
func Issue(email, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ // Create JWT token
		"email": email,                                  // Bind the user's email
		"exp":   time.Now().Add(tokenLifetime).Unix(),   // Set expiration (30 days)
	})
	return token.SignedString([]byte(secret)) // Sign token
}

// Verify checks the signature and returns the embedded email.
func Verify(tokenStr, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) { // Parse JWT
		return []byte(secret), nil // Provide secret key for validation
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid { // If token is invalid or expired
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" { // Payload carries no email
		return "", ErrInvalidToken
	}
	return email, nil
}
