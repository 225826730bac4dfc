package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found or credential changed")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models a registered account. Pass is the stored credential, compared
// by equality on login and on every token re-validation; it is never rendered
// in responses.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Pass      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
