package main

import (
	"context"
	"testing"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memoryUsers struct {
	users []model.User
}

func (m *memoryUsers) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memoryUsers) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	newUser.ID = uint(len(m.users) + 1)
	m.users = append(m.users, *newUser)
	return newUser, nil
}

func TestSeedAdmin(t *testing.T) {
	seed := config.SeedConfig{
		AdminName:     "Administrador DIPII",
		AdminUsername: "admin",
		AdminEmail:    "Admin@DIPII.com",
		AdminPassword: "cambiar-esta-clave",
	}

	users := &memoryUsers{}
	created, err := seedAdmin(context.Background(), users, seed)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "admin@dipii.com", created.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(seed.AdminPassword)))

	// second run is a no-op
	again, err := seedAdmin(context.Background(), users, seed)
	require.NoError(t, err)
	assert.Nil(t, again)
	assert.Len(t, users.users, 1)
}

func TestSeedAdminSkipsOrRejects(t *testing.T) {
	users := &memoryUsers{}

	created, err := seedAdmin(context.Background(), users, config.SeedConfig{AdminUsername: "admin"})
	require.NoError(t, err)
	assert.Nil(t, created)

	_, err = seedAdmin(context.Background(), users, config.SeedConfig{AdminUsername: "admin", AdminPassword: "short"})
	assert.ErrorIs(t, err, errSeedPasswordTooShort)
	assert.Empty(t, users.users)
}
