package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	appcontext "github.com/dipii/backoffice/internal/app_context"
	"github.com/dipii/backoffice/internal/auth"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ErrInvalidId       = "id must be a positive integer"
	ErrInvalidSupplier = "supplier does not exist"
)

var errInvalidSupplier = errors.New(ErrInvalidSupplier)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Auth        *AuthController
	User        *UserController
	Supplier    *SupplierController
	Intake      *IntakeController
	Certificate *CertificateController
	LabelBatch  *LabelBatchController
	Dashboard   *DashboardController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Auth:        &AuthController{baseController: bc},
		User:        &UserController{baseController: bc},
		Supplier:    &SupplierController{baseController: bc},
		Intake:      &IntakeController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
		LabelBatch:  &LabelBatchController{baseController: bc},
		Dashboard:   &DashboardController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	if payload, ok := user.(auth.JWTPayload); ok {
		return &payload, nil
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// paramId reads a numeric path parameter, responding 400 when it is not one.
func (b *baseController) paramId(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid id", util.GenerateErrorMessages(errors.New(ErrInvalidId), name), nil)
		return 0, false
	}

	return uint(id), true
}

// respondRepositoryError maps a missing record to 404, a constraint
// violation to 409 and anything else to 500.
func (b *baseController) respondRepositoryError(ctx *gin.Context, message string, err error) {
	switch {
	case isNotFound(err):
		util.ResponseFailed(ctx, http.StatusNotFound, "Record not found", util.GenerateErrorMessages(err), nil)
		return
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, repository.ErrUserExists):
		util.ResponseFailed(ctx, http.StatusConflict, "Record already exists", util.GenerateErrorMessages(err), nil)
		return
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		util.ResponseFailed(ctx, http.StatusConflict, "Record is referenced", util.GenerateErrorMessages(err), nil)
		return
	}

	b.app.Logger.Errorf("%s: %v", message, err)
	util.ResponseFailed(ctx, http.StatusInternalServerError, message, util.GenerateErrorMessages(err), nil)
}

type listRequest struct {
	Page uint `json:"page" form:"page" binding:"omitempty"`
}

func (r listRequest) page() uint {
	if r.Page == 0 {
		return 1
	}
	return r.Page
}

func listResponse(key string, items any, total int64, page, pageSize uint) gin.H {
	return gin.H{
		key:         items,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	}
}
