package controller

import (
	"errors"
	"net/http"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	*baseController
}

const ErrInvalidCredentials = "invalid username, email or password"

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		// Username or email
		Login    string `json:"usuario" form:"usuario" binding:"required,strNotEmpty,max=150"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByLogin(ctx, nil, body.Login)
	if err != nil && !isNotFound(err) {
		ac.respondRepositoryError(ctx, "Failed to login", err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid credentials", util.GenerateErrorMessages(errors.New(ErrInvalidCredentials), "usuario"), nil)
		return
	}

	refreshToken, accessToken, err := ac.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		ac.respondRepositoryError(ctx, "Failed to generate token", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
		"user":         user,
	})
}

func (ac AuthController) Me(ctx *gin.Context) {
	authUser, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		ac.respondRepositoryError(ctx, "Failed to get user", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token := ctx.Param("token")

	// Keep in mind that verify jwt token does not check database.
	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), gin.H{
			"tokenValid": false,
		})
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_ACCESS {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), gin.H{
			"tokenValid": false,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tokenValid": true,
		"payload":    jwtClaims,
	})
}

// readRefreshToken reads the "Refresh <token>" header and checks the token type.
func (ac AuthController) readRefreshToken(ctx *gin.Context) (string, bool) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return "", false
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return "", false
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), nil)
		return "", false
	}

	return refreshToken, true
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, ok := ac.readRefreshToken(ctx)
	if !ok {
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.Repository.JWT.RefreshToken(ctx, nil, refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if newRefreshToken == nil || newAccessToken == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("failed to refresh token")), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": newRefreshToken,
		"accessToken":  newAccessToken,
	})
}

// Logout drops the token pair so neither token can be used again.
func (ac AuthController) Logout(ctx *gin.Context) {
	refreshToken, ok := ac.readRefreshToken(ctx)
	if !ok {
		return
	}

	if err := ac.app.Repository.JWT.DeleteToken(ctx, nil, refreshToken); err != nil {
		if isNotFound(err) {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
			return
		}
		ac.respondRepositoryError(ctx, "Failed to logout", err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
