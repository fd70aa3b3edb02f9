// Package services contains the server-side business logic. This file
// implements UserService: signup (hash and store credentials) and login
// (verify a password and hand back the stored API key).
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkravets/promptease/internal/common"
	"github.com/mkravets/promptease/internal/cryptox"
	"github.com/mkravets/promptease/internal/server/models"
	"github.com/mkravets/promptease/internal/server/repositories/users"
)

type UserService struct {
	repo users.Repository
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user. The password is salted and hashed before it
// reaches the store; the plaintext never leaves this function.
// Empty fields yield common.ErrValidation, a taken username
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password, apiKey string) (*models.User, error) {
	if username == "" || password == "" || apiKey == "" {
		return nil, fmt.Errorf("%w: username, password and api key are required", common.ErrValidation)
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		Username:     username,
		PasswordHash: cryptox.HashPassword(password, salt),
		PasswordSalt: salt,
		APIKey:       apiKey,
	}

	u, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate verifies the credentials and returns the stored record.
// An unknown username and a wrong password are indistinguishable to the
// caller: both return common.ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if !cryptox.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	return user, nil
}
