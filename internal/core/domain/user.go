package domain

import (
	"errors"
	"time"
)

var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// User models a registered account. PasswordHash never leaves the process.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Token is a signed bearer credential handed out at login.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
