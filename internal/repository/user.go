package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"gorm.io/gorm"
)

var ErrUserExists = errors.New("user with the same username or email already exists")

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId uint) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %d \n", userId)

	db := ur.getDB(tx)
	var user model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByLogin finds a user by username or email, case-insensitively.
func (ur UserRepository) GetByLogin(ctx context.Context, tx *gorm.DB, login string) (*model.User, error) {
	ur.logger.Debugf("Get user by login: %s \n", login)

	db := ur.getDB(tx)
	var user model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	login = strings.TrimSpace(login)
	if err := db.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(usuario) = LOWER(?) OR LOWER(email) = LOWER(?)", login, login).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (ur UserRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	ur.logger.Debug("Count users \n")

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (ur UserRepository) List(ctx context.Context, tx *gorm.DB, search string, page, pageSize uint) ([]model.User, int64, error) {
	ur.logger.Debugf("List users with search: %s page: %d pageSize: %d \n", search, page, pageSize)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	searchScope := func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(search) == "" {
			return db
		}
		return db.Where("nombre ILIKE ? OR usuario ILIKE ? OR email ILIKE ?", contains(search), contains(search), contains(search))
	}

	var total int64
	if err := db.WithContext(ctx).Model(&model.User{}).Scopes(searchScope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := []model.User{}
	if err := db.WithContext(ctx).Model(&model.User{}).Scopes(searchScope).Order("id ASC").
		Offset(offset(page, pageSize)).Limit(int(pageSize)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// existsOther reports whether another user already holds username or email.
func (ur UserRepository) existsOther(ctx context.Context, tx *gorm.DB, user model.User) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := tx.WithContext(ctx).Model(&model.User{}).
		Where("(LOWER(usuario) = LOWER(?) OR LOWER(email) = LOWER(?)) AND id <> ?", user.Username, user.Email, user.ID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with username: %s email: %s \n", newUser.Username, newUser.Email)

	db := ur.getDB(tx)
	txErr := ur.withTx(db, func(tx *gorm.DB) error {
		exists, err := ur.existsOther(ctx, tx, *newUser)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserExists
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		return tx.WithContext(ctx).Model(&model.User{}).Create(newUser).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return newUser, nil
}

// Update writes profile fields, and the password hash only when one is given.
func (ur *UserRepository) Update(ctx context.Context, tx *gorm.DB, user *model.User) (*model.User, error) {
	ur.logger.Debugf("Update user id: %d \n", user.ID)

	columns := []string{"nombre", "telefono", "usuario", "email", "updated_at"}
	if user.Password != "" {
		columns = append(columns, "password")
	}

	db := ur.getDB(tx)
	txErr := ur.withTx(db, func(tx *gorm.DB) error {
		exists, err := ur.existsOther(ctx, tx, *user)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserExists
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		result := tx.WithContext(ctx).Model(user).Select(columns).Updates(user)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return user, nil
}

func (ur *UserRepository) Delete(ctx context.Context, tx *gorm.DB, userId uint) error {
	ur.logger.Debugf("Delete user id: %d \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", userId).Delete(&model.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
