package handler

import (
	"github.com/conneco/feed-api/internal/core/domain"
	"github.com/conneco/feed-api/internal/core/ports"
)

type signupRequest struct {
	Name string `json:"name" validate:"required"`
	Pass string `json:"pass" validate:"required"`
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// authResponse is the data payload for signup and login: the created or
// matched user (credential stripped by the domain JSON tags) plus both tokens.
type authResponse struct {
	User   *domain.User     `json:"user"`
	Tokens *ports.TokenPair `json:"tokens"`
}
