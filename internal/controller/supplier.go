package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/util"
	"github.com/gin-gonic/gin"
)

type SupplierController struct {
	*baseController
}

type SupplierRequest struct {
	Name        string `json:"nombre" form:"nombre" binding:"required,strNotEmpty,max=150"`
	TaxID       string `json:"nit" form:"nit" binding:"omitempty,max=30"`
	ContactName string `json:"contacto" form:"contacto" binding:"omitempty,max=150"`
	Phone       string `json:"telefono" form:"telefono" binding:"omitempty,max=30"`
	Email       string `json:"email" form:"email" binding:"omitempty,email,max=150"`
	Address     string `json:"direccion" form:"direccion" binding:"omitempty,max=255"`
	// Missing means active.
	Active *bool `json:"activo" form:"activo" binding:"omitempty"`
}

func (r SupplierRequest) apply(s *model.Supplier) {
	s.Name = strings.TrimSpace(r.Name)
	s.TaxID = nil
	if nit := strings.TrimSpace(r.TaxID); nit != "" {
		s.TaxID = &nit
	}
	s.ContactName = strings.TrimSpace(r.ContactName)
	s.Phone = strings.TrimSpace(r.Phone)
	s.Email = strings.TrimSpace(r.Email)
	s.Address = strings.TrimSpace(r.Address)
	s.Active = r.Active == nil || *r.Active
}

func (sc SupplierController) List(ctx *gin.Context) {
	var params listRequest
	var filter repository.SupplierFilter
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	suppliers, total, err := sc.app.Repository.Supplier.List(ctx, nil, filter, params.page(), constant.DefaultPageSize)
	if err != nil {
		sc.respondRepositoryError(ctx, "Failed to get supplier list", err)
		return
	}

	res := listResponse("suppliers", suppliers, total, params.page(), constant.DefaultPageSize)
	res["filters"] = filter
	util.ResponseSuccess(ctx, res)
}

func (sc SupplierController) Create(ctx *gin.Context) {
	var body SupplierRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	var supplier model.Supplier
	body.apply(&supplier)

	created, err := sc.app.Repository.Supplier.Create(ctx, nil, &supplier)
	if err != nil {
		sc.respondRepositoryError(ctx, "Failed to create supplier", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supplier": created,
	})
}

func (sc SupplierController) Get(ctx *gin.Context) {
	id, ok := sc.paramId(ctx, "id")
	if !ok {
		return
	}

	supplier, err := sc.app.Repository.Supplier.GetById(ctx, nil, id)
	if err != nil {
		sc.respondRepositoryError(ctx, "Failed to get supplier", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supplier": supplier,
	})
}

func (sc SupplierController) Update(ctx *gin.Context) {
	id, ok := sc.paramId(ctx, "id")
	if !ok {
		return
	}

	var body SupplierRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	supplier, err := sc.app.Repository.Supplier.GetById(ctx, nil, id)
	if err != nil {
		sc.respondRepositoryError(ctx, "Failed to get supplier", err)
		return
	}

	body.apply(supplier)
	updated, err := sc.app.Repository.Supplier.Update(ctx, nil, supplier)
	if err != nil {
		sc.respondRepositoryError(ctx, "Failed to update supplier", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supplier": updated,
	})
}

func (sc SupplierController) Delete(ctx *gin.Context) {
	id, ok := sc.paramId(ctx, "id")
	if !ok {
		return
	}

	if err := sc.app.Repository.Supplier.Delete(ctx, nil, id); err != nil {
		if errors.Is(err, repository.ErrSupplierHasIntakes) {
			util.ResponseFailed(ctx, http.StatusConflict, "Supplier has intakes", util.GenerateErrorMessages(err, "proveedor_id"), nil)
			return
		}
		sc.respondRepositoryError(ctx, "Failed to delete supplier", err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
