// Package models holds the server-side data structures shared by
// repositories and services.
package models

import "time"

// User is the credential-store record: a unique username, the salted
// password digest, and the per-user OpenRouter API key substituted into
// outbound completion requests. Records are created on signup and read on
// login; they are never updated or deleted.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	PasswordSalt []byte
	APIKey       string
	CreatedAt    time.Time
}
