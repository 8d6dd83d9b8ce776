package controller

import (
	"errors"
	"net/http"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/export"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/util"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/gin-gonic/gin"
)

type LabelBatchController struct {
	*baseController
}

type LabelBatchRequest struct {
	ElaboratedOn string `json:"fecha_elaboracion" form:"fecha_elaboracion" binding:"required,datetime=2006-01-02"`
	Product      string `json:"producto" form:"producto" binding:"required,labelProduct"`
	WeightKg     string `json:"peso_kg" form:"peso_kg" binding:"required,weight2dp"`
	StartNumber  int    `json:"numero_inicial" form:"numero_inicial" binding:"required,gte=1,lte=999999999"`
	Count        int    `json:"cantidad" form:"cantidad" binding:"required,gte=1,lte=2000"`
}

func (r LabelBatchRequest) normalize() (dipii.LabelBatch, error) {
	elaboratedOn, err := dipii.ParseDate(r.ElaboratedOn)
	if err != nil {
		return dipii.LabelBatch{}, err
	}

	return dipii.NormalizeLabelBatch(dipii.LabelBatchInput{
		ElaboratedOn: elaboratedOn,
		Product:      r.Product,
		WeightKg:     r.WeightKg,
		StartNumber:  r.StartNumber,
		Count:        r.Count,
	})
}

func labelBatchFieldOf(err error) string {
	switch {
	case errors.Is(err, dipii.ErrInvalidLabelProduct):
		return "producto"
	case errors.Is(err, dipii.ErrInvalidWeight):
		return "peso_kg"
	case errors.Is(err, dipii.ErrInvalidStartNumber):
		return "numero_inicial"
	case errors.Is(err, dipii.ErrInvalidLabelCount):
		return "cantidad"
	default:
		return "fecha_elaboracion"
	}
}

func (lc LabelBatchController) List(ctx *gin.Context) {
	var params listRequest
	var filter repository.LabelBatchFilter
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	batches, total, err := lc.app.Repository.LabelBatch.List(ctx, nil, filter, params.page(), constant.LabelBatchPageSize)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch list", err)
		return
	}

	products, err := lc.app.Repository.LabelBatch.DistinctProducts(ctx, nil)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch products", err)
		return
	}

	res := listResponse("labelBatches", batches, total, params.page(), constant.LabelBatchPageSize)
	res["products"] = products
	res["allowedProducts"] = dipii.LabelProducts()
	res["filters"] = filter
	util.ResponseSuccess(ctx, res)
}

func (lc LabelBatchController) Create(ctx *gin.Context) {
	var body LabelBatchRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	doc, err := body.normalize()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, labelBatchFieldOf(err)), nil)
		return
	}

	batch := model.LabelBatchFromDocument(doc)
	created, err := lc.app.Repository.LabelBatch.Create(ctx, nil, &batch)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to create label batch", err)
		return
	}

	if err := lc.generateLabelBatchPdf(ctx, created); err != nil {
		lc.respondDocumentError(ctx, err, gin.H{"labelBatch": created})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"labelBatch": created,
	})
}

// Get also returns the individual labels derived from the batch.
func (lc LabelBatchController) Get(ctx *gin.Context) {
	id, ok := lc.paramId(ctx, "id")
	if !ok {
		return
	}

	batch, err := lc.app.Repository.LabelBatch.GetById(ctx, nil, id)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch", err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"labelBatch": batch,
		"labels":     dipii.BuildLabels(batch.ToDocument()),
	})
}

func (lc LabelBatchController) Delete(ctx *gin.Context) {
	id, ok := lc.paramId(ctx, "id")
	if !ok {
		return
	}

	batch, err := lc.app.Repository.LabelBatch.GetById(ctx, nil, id)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch", err)
		return
	}

	if err := lc.app.Repository.LabelBatch.Delete(ctx, nil, id); err != nil {
		lc.respondRepositoryError(ctx, "Failed to delete label batch", err)
		return
	}

	lc.removeDocument(ctx, batch.PdfPath)

	util.ResponseSuccess(ctx, nil)
}

func (lc LabelBatchController) Download(ctx *gin.Context) {
	id, ok := lc.paramId(ctx, "id")
	if !ok {
		return
	}

	batch, err := lc.app.Repository.LabelBatch.GetById(ctx, nil, id)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch", err)
		return
	}

	lc.serveDocument(ctx, batch.PdfPath)
}

func (lc LabelBatchController) Regenerate(ctx *gin.Context) {
	id, ok := lc.paramId(ctx, "id")
	if !ok {
		return
	}

	batch, err := lc.app.Repository.LabelBatch.GetById(ctx, nil, id)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch", err)
		return
	}

	if err := lc.generateLabelBatchPdf(ctx, batch); err != nil {
		lc.respondDocumentError(ctx, err, gin.H{"labelBatch": batch})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"labelBatch": batch,
	})
}

func (lc LabelBatchController) Export(ctx *gin.Context) {
	var filter repository.LabelBatchFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	batches, err := lc.app.Repository.LabelBatch.ListAll(ctx, nil, filter, constant.ExportLimit)
	if err != nil {
		lc.respondRepositoryError(ctx, "Failed to get label batch list", err)
		return
	}

	data, err := export.WriteXLSX(export.LabelBatchSheet(batches))
	if err != nil {
		lc.app.Logger.Errorf("Failed to export label batches: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to export label batches", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="etiquetas.xlsx"`)
	ctx.Data(http.StatusOK, export.ContentTypeXLSX, data)
}
