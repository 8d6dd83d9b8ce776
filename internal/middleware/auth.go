package middleware

import (
	"errors"
	"net/http"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
)

var errSessionEnded = errors.New("session has ended, please login again")

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid access token type", util.GenerateErrorMessages(errors.New("invalid jwt token type"), "unauthorized"), nil)
		return
	}

	active, err := m.sessions.IsAccessTokenActive(ctx, nil, token)
	if err != nil {
		m.app.Logger.Errorf("Failed to check token session: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", err, nil)
		return
	}
	if !active {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(errSessionEnded, "unauthorized"), nil)
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}
