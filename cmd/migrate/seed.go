package main

import (
	"context"
	"errors"
	"strings"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errSeedPasswordTooShort = errors.New("SEED_ADMIN_PASSWORD must have at least 8 characters")

type userStore interface {
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error)
}

// seedAdmin creates the first administrator. Nothing happens when a user
// already exists or no password is configured.
func seedAdmin(ctx context.Context, users userStore, seed config.SeedConfig) (*model.User, error) {
	if seed.AdminPassword == "" {
		return nil, nil
	}
	if len(seed.AdminPassword) < 8 {
		return nil, errSeedPasswordTooShort
	}

	count, err := users.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return users.Create(ctx, nil, &model.User{
		Name:     strings.TrimSpace(seed.AdminName),
		Phone:    strings.TrimSpace(seed.AdminPhone),
		Username: strings.TrimSpace(seed.AdminUsername),
		Email:    strings.ToLower(strings.TrimSpace(seed.AdminEmail)),
		Password: string(hash),
	})
}
