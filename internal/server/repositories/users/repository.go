// Package users implements the credential store over the supported SQL
// backends: Postgres for the hosted variant and sqlite for the local
// file-based one. Password verification lives in the service layer; the
// repository only persists and looks up records.
package users

import (
	"context"

	"github.com/mkravets/promptease/internal/server/models"
)

type Repository interface {
	// Create persists a new user record. Duplicate usernames return
	// common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the record for the given username or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
