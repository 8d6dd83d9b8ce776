package controller

import (
	"net/http"
	"strings"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/export"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/util"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	*baseController
}

type IntakeRequest struct {
	ReceivedOn    string `json:"fecha_ingreso" form:"fecha_ingreso" binding:"required,datetime=2006-01-02"`
	SupplierID    uint   `json:"proveedor_id" form:"proveedor_id" binding:"required,gte=1"`
	Product       string `json:"producto" form:"producto" binding:"required,strNotEmpty,max=150"`
	QuantityKg    string `json:"cantidad_kg" form:"cantidad_kg" binding:"required,quantity2dp"`
	SupplierBatch string `json:"lote_proveedor" form:"lote_proveedor" binding:"omitempty,max=60"`
	Notes         string `json:"observaciones" form:"observaciones" binding:"omitempty,max=1000"`
}

func (r IntakeRequest) apply(i *model.Intake) error {
	receivedOn, err := dipii.ParseDate(r.ReceivedOn)
	if err != nil {
		return err
	}
	quantity, err := dipii.ParseQuantity(r.QuantityKg)
	if err != nil {
		return err
	}

	i.ReceivedOn = receivedOn
	i.SupplierID = r.SupplierID
	i.Product = dipii.NormalizeProduct(r.Product)
	i.QuantityKg = quantity
	i.SupplierBatch = strings.TrimSpace(r.SupplierBatch)
	i.Notes = strings.TrimSpace(r.Notes)
	i.Supplier = nil
	return nil
}

// bindIntake answers 400 itself when the request or its supplier is invalid.
func (ic IntakeController) bindIntake(ctx *gin.Context, intake *model.Intake) bool {
	var body IntakeRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return false
	}

	if err := body.apply(intake); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, "cantidad_kg"), nil)
		return false
	}

	if _, err := ic.app.Repository.Supplier.GetById(ctx, nil, body.SupplierID); err != nil {
		if isNotFound(err) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(errInvalidSupplier, "proveedor_id"), nil)
			return false
		}
		ic.respondRepositoryError(ctx, "Failed to get supplier", err)
		return false
	}

	return true
}

func (ic IntakeController) List(ctx *gin.Context) {
	var params listRequest
	var filter repository.IntakeFilter
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	intakes, total, err := ic.app.Repository.Intake.List(ctx, nil, filter, params.page(), constant.DefaultPageSize)
	if err != nil {
		ic.respondRepositoryError(ctx, "Failed to get intake list", err)
		return
	}

	res := listResponse("intakes", intakes, total, params.page(), constant.DefaultPageSize)
	res["filters"] = filter
	util.ResponseSuccess(ctx, res)
}

func (ic IntakeController) Create(ctx *gin.Context) {
	var intake model.Intake
	if !ic.bindIntake(ctx, &intake) {
		return
	}

	created, err := ic.app.Repository.Intake.Create(ctx, nil, &intake)
	if err != nil {
		ic.respondRepositoryError(ctx, "Failed to create intake", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"intake": created,
	})
}

func (ic IntakeController) Get(ctx *gin.Context) {
	id, ok := ic.paramId(ctx, "id")
	if !ok {
		return
	}

	intake, err := ic.app.Repository.Intake.GetById(ctx, nil, id)
	if err != nil {
		ic.respondRepositoryError(ctx, "Failed to get intake", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"intake": intake,
	})
}

func (ic IntakeController) Update(ctx *gin.Context) {
	id, ok := ic.paramId(ctx, "id")
	if !ok {
		return
	}

	intake, err := ic.app.Repository.Intake.GetById(ctx, nil, id)
	if err != nil {
		ic.respondRepositoryError(ctx, "Failed to get intake", err)
		return
	}

	if !ic.bindIntake(ctx, intake) {
		return
	}

	updated, err := ic.app.Repository.Intake.Update(ctx, nil, intake)
	if err != nil {
		ic.respondRepositoryError(ctx, "Failed to update intake", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"intake": updated,
	})
}

func (ic IntakeController) Delete(ctx *gin.Context) {
	id, ok := ic.paramId(ctx, "id")
	if !ok {
		return
	}

	if err := ic.app.Repository.Intake.Delete(ctx, nil, id); err != nil {
		ic.respondRepositoryError(ctx, "Failed to delete intake", err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (ic IntakeController) Export(ctx *gin.Context) {
	var filter repository.IntakeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	intakes, err := ic.app.Repository.Intake.ListAll(ctx, nil, filter, constant.ExportLimit)
	if err != nil {
		ic.respondRepositoryError(ctx, "Failed to get intake list", err)
		return
	}

	data, err := export.WriteXLSX(export.IntakeSheet(intakes))
	if err != nil {
		ic.app.Logger.Errorf("Failed to export intakes: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to export intakes", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="ingresos.xlsx"`)
	ctx.Data(http.StatusOK, export.ContentTypeXLSX, data)
}
