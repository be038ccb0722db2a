package domain

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewUser(ctx context.Context, name, email, passwordHash, phone string) (*User, error) {
	if name == "" || email == "" || passwordHash == "" || phone == "" {
		return nil, ErrValidation
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrValidation
	}
	now := ctxtime.Now(ctx)
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
