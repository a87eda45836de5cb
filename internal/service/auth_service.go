// Package service orchestrates the screens' use cases: it runs the
// client-side validators and talks to the remote API through narrow
// interfaces. Services hold no screen state — that lives in
// internal/screen as immutable values.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"bluestrek/internal/dto"
)

// ErrAuthFailed is returned when the API answered but did not issue a
// session token.
var ErrAuthFailed = errors.New("authentication failed")

// ErrMissingCredentials is returned before any network call when login or
// password is empty.
var ErrMissingCredentials = errors.New("enter your login and password")

// AuthAPI is the slice of the remote API the auth service needs.
type AuthAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthService interface {
	Login(ctx context.Context, login, password string) (*dto.LoginResponse, error)
}

type authService struct {
	api AuthAPI
	log zerolog.Logger
}

func NewAuthService(api AuthAPI, log zerolog.Logger) AuthService {
	return &authService{api: api, log: log}
}

// Login checks the credentials are present, performs the login call and
// verifies the success marker. The returned token is opaque — storage and
// later attachment are handled by the API client / embedding app.
func (s *authService) Login(ctx context.Context, login, password string) (*dto.LoginResponse, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.api.Login(ctx, dto.LoginRequest{Login: login, Password: password})
	if err != nil {
		return nil, err
	}
	if !resp.Authenticated() {
		return nil, ErrAuthFailed
	}

	s.log.Info().Str("user", resp.User.Name).Msg("logged in")
	return resp, nil
}
