package auth

import "github.com/heartmarshall/readlog-backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresIn   int // seconds
	User        *domain.User
}
