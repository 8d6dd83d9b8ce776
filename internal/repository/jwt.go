package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dipii/backoffice/internal/auth"
	constant "github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"gorm.io/gorm"
)

var ErrTokenCannotRefresh = errors.New("token is valid but cannot be refreshed")

type JWTRepository struct {
	*baseRepository
	user *UserRepository
}

func ToJWTPayload(user model.User) auth.JWTPayload {
	return auth.JWTPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
	}
}

func (jr JWTRepository) GenRefreshAndAccessToken(ctx context.Context, tx *gorm.DB, user model.User) (*string, *string, error) {
	jr.logger.Debugf("Generate refresh and access token for userId: %d \n", user.ID)

	refreshToken, accessToken, err := jr.jwtService.GenerateRefreshAndAccessToken(ToJWTPayload(user))
	if err != nil {
		return nil, nil, err
	}

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Token{}).Create(&model.Token{
		RefreshToken: *refreshToken,
		AccessToken:  *accessToken,
		CanAccess:    true,
		CanRefresh:   true,
		UserID:       user.ID,
	}).Error; err != nil {
		return nil, nil, err
	}

	return refreshToken, accessToken, err
}

func (jr JWTRepository) GetTokenByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*model.Token, error) {
	jr.logger.Debug("Get token by refresh token \n")

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var token model.Token

	if err := db.WithContext(ctx).Model(&model.Token{}).Where("refresh_token = ?", refreshToken).First(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

// IsAccessTokenActive reports whether the access token still belongs to a
// session, i.e. it was neither logged out nor rotated away.
func (jr JWTRepository) IsAccessTokenActive(ctx context.Context, tx *gorm.DB, accessToken string) (bool, error) {
	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Token{}).
		Where("access_token = ? AND can_access = ?", accessToken, true).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

/*
 * Refresh token by replacing the old pair with a newly generated refresh and access token
 */
func (jr JWTRepository) RefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*string, *string, error) {
	jr.logger.Debug("Refresh token \n")

	db := jr.getDB(tx)

	var newRefreshToken, newAccessToken *string

	txErr := jr.withTx(db, func(tx2 *gorm.DB) error {
		token, err := jr.GetTokenByRefreshToken(ctx, tx2, refreshToken)
		if err != nil {
			return err
		}

		if !token.CanRefresh {
			return ErrTokenCannotRefresh
		}

		user, err := jr.user.GetById(ctx, tx2, token.UserID)
		if err != nil {
			return err
		}

		newRefreshToken, newAccessToken, err = jr.jwtService.GenerateRefreshAndAccessToken(ToJWTPayload(*user))
		if err != nil {
			return err
		}

		if newRefreshToken == nil || newAccessToken == nil {
			return errors.New("failed to generate refresh and access token")
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		// Update the new token to the database
		return tx2.WithContext(ctx).Model(&model.Token{}).Where("id = ?", token.ID).Updates(map[string]interface{}{
			"refresh_token": *newRefreshToken,
			"access_token":  *newAccessToken,
			"can_access":    true,
			"can_refresh":   true,
			"refresh_count": gorm.Expr("refresh_count + 1"),
			"refreshed_at":  time.Now().UTC(),
		}).Error
	})

	// Log tx error
	if txErr != nil {
		jr.logger.Debugf("Refresh token, Transaction error: %v \n", txErr)
		return nil, nil, txErr
	}

	return newRefreshToken, newAccessToken, nil
}

func (jr JWTRepository) DeleteToken(ctx context.Context, tx *gorm.DB, refreshToken string) error {
	jr.logger.Debug("Delete token using refresh token \n")

	db := jr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("refresh_token = ?", refreshToken).Delete(&model.Token{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
