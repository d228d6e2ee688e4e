package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a 24h JWT carrying the user's id and role.
func IssueToken(userID string, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
