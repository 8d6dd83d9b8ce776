package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/mailer"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	*baseController
}

const ErrCannotDeleteSelf = "you cannot delete your own account"

type UserRequest struct {
	Name     string `json:"nombre" form:"nombre" binding:"required,strNotEmpty,max=150"`
	Phone    string `json:"telefono" form:"telefono" binding:"omitempty,max=30"`
	Username string `json:"usuario" form:"usuario" binding:"required,strNotEmpty,max=60"`
	Email    string `json:"email" form:"email" binding:"required,email,max=150"`
	// Required on create, optional on update.
	Password string `json:"password" form:"password" binding:"omitempty,min=8,max=72"`
}

func (r UserRequest) apply(u *model.User) error {
	u.Name = strings.TrimSpace(r.Name)
	u.Phone = strings.TrimSpace(r.Phone)
	u.Username = strings.TrimSpace(r.Username)
	u.Email = strings.ToLower(strings.TrimSpace(r.Email))
	u.Password = ""

	if r.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
	}

	return nil
}

func (uc UserController) List(ctx *gin.Context) {
	type Request struct {
		listRequest
		Search string `json:"q" form:"q" binding:"omitempty"`
	}
	var params Request

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	users, total, err := uc.app.Repository.User.List(ctx, nil, params.Search, params.page(), constant.DefaultPageSize)
	if err != nil {
		uc.respondRepositoryError(ctx, "Failed to get user list", err)
		return
	}

	util.ResponseSuccess(ctx, listResponse("users", users, total, params.page(), constant.DefaultPageSize))
}

func (uc UserController) Create(ctx *gin.Context) {
	var body UserRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	if body.Password == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errors.New("password is required"), "password"), nil)
		return
	}

	var user model.User
	if err := body.apply(&user); err != nil {
		uc.app.Logger.Errorf("Failed to hash password: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create user", util.GenerateErrorMessages(err), nil)
		return
	}

	created, err := uc.app.Repository.User.Create(ctx, nil, &user)
	if err != nil {
		uc.respondRepositoryError(ctx, "Failed to create user", err)
		return
	}

	// The account exists either way, a mail failure is only logged.
	if _, err := uc.app.Mailer.Send(mailer.WELCOME_TEMPLATE, created.Name, created.Email, mailer.WelcomeData{
		Name:     created.Name,
		Username: created.Username,
		LoginURL: uc.app.Config.Mail.LOGIN_URL,
	}); err != nil {
		uc.app.Logger.Warnf("Failed to send welcome mail to user %d: %v", created.ID, err)
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": created,
	})
}

func (uc UserController) Get(ctx *gin.Context) {
	id, ok := uc.paramId(ctx, "id")
	if !ok {
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, id)
	if err != nil {
		uc.respondRepositoryError(ctx, "Failed to get user", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) Update(ctx *gin.Context) {
	id, ok := uc.paramId(ctx, "id")
	if !ok {
		return
	}

	var body UserRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, id)
	if err != nil {
		uc.respondRepositoryError(ctx, "Failed to get user", err)
		return
	}

	if err := body.apply(user); err != nil {
		uc.app.Logger.Errorf("Failed to hash password: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update user", util.GenerateErrorMessages(err), nil)
		return
	}

	updated, err := uc.app.Repository.User.Update(ctx, nil, user)
	if err != nil {
		uc.respondRepositoryError(ctx, "Failed to update user", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": updated,
	})
}

func (uc UserController) Delete(ctx *gin.Context) {
	id, ok := uc.paramId(ctx, "id")
	if !ok {
		return
	}

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if authUser.ID == id {
		util.ResponseFailed(ctx, http.StatusForbidden, "Forbidden", util.GenerateErrorMessages(errors.New(ErrCannotDeleteSelf), "id"), nil)
		return
	}

	if err := uc.app.Repository.User.Delete(ctx, nil, id); err != nil {
		uc.respondRepositoryError(ctx, "Failed to delete user", err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
