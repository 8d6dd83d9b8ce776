package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dipii/backoffice/internal/constant"
	"github.com/dipii/backoffice/internal/export"
	filestorage "github.com/dipii/backoffice/internal/file_storage"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/repository"
	"github.com/dipii/backoffice/internal/util"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	*baseController
}

const ErrNoCertificateDocuments = "no generated certificate matches the filters"

type CertificateRequest struct {
	ElaboratedOn     string `json:"fecha_elaboracion" form:"fecha_elaboracion" binding:"required,datetime=2006-01-02"`
	Product          string `json:"producto" form:"producto" binding:"required,strNotEmpty,max=150"`
	CropOrigin       string `json:"origen_cultivo" form:"origen_cultivo" binding:"required,strNotEmpty,max=150"`
	BatchNumber      int    `json:"numero_batch" form:"numero_batch" binding:"required,gte=1"`
	CubetteCount     int    `json:"cantidad_cubetas" form:"cantidad_cubetas" binding:"required,gte=1,lte=1000000"`
	WeightPerCubette string `json:"peso_por_cubeta" form:"peso_por_cubeta" binding:"required,weight2dp"`
	Color            string `json:"color" form:"color" binding:"omitempty,max=100"`
	Odor             string `json:"olor" form:"olor" binding:"omitempty,max=100"`
	Appearance       string `json:"apariencia" form:"apariencia" binding:"omitempty,max=120"`
	Flavor           string `json:"sabor" form:"sabor" binding:"omitempty,max=100"`
}

func (r CertificateRequest) normalize() (dipii.Certificate, error) {
	elaboratedOn, err := dipii.ParseDate(r.ElaboratedOn)
	if err != nil {
		return dipii.Certificate{}, err
	}

	return dipii.NormalizeCertificate(dipii.CertificateInput{
		ElaboratedOn:     elaboratedOn,
		Product:          r.Product,
		CropOrigin:       r.CropOrigin,
		BatchNumber:      r.BatchNumber,
		CubetteCount:     r.CubetteCount,
		WeightPerCubette: r.WeightPerCubette,
		Color:            r.Color,
		Odor:             r.Odor,
		Appearance:       r.Appearance,
		Flavor:           r.Flavor,
	})
}

// bindCertificate answers 400 itself when the request is invalid.
func (cc CertificateController) bindCertificate(ctx *gin.Context) (dipii.Certificate, bool) {
	var body CertificateRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return dipii.Certificate{}, false
	}

	doc, err := body.normalize()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, certificateFieldOf(err)), nil)
		return dipii.Certificate{}, false
	}

	return doc, true
}

func certificateFieldOf(err error) string {
	switch {
	case errors.Is(err, dipii.ErrInvalidWeight):
		return "peso_por_cubeta"
	case errors.Is(err, dipii.ErrInvalidCount):
		return "numero_batch"
	case errors.Is(err, dipii.ErrInvalidCubetteCount):
		return "cantidad_cubetas"
	case errors.Is(err, dipii.ErrMissingField):
		return "producto"
	default:
		return "fecha_elaboracion"
	}
}

func (cc CertificateController) List(ctx *gin.Context) {
	var params listRequest
	var filter repository.CertificateFilter
	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	certificates, total, err := cc.app.Repository.Certificate.List(ctx, nil, filter, params.page(), constant.CertificatePageSize)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate list", err)
		return
	}

	products, err := cc.app.Repository.Certificate.DistinctProducts(ctx, nil)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate products", err)
		return
	}

	res := listResponse("certificates", certificates, total, params.page(), constant.CertificatePageSize)
	res["products"] = products
	res["filters"] = filter
	util.ResponseSuccess(ctx, res)
}

func (cc CertificateController) Create(ctx *gin.Context) {
	doc, ok := cc.bindCertificate(ctx)
	if !ok {
		return
	}

	var cert model.Certificate
	cert.ApplyDocument(doc)
	created, err := cc.app.Repository.Certificate.Create(ctx, nil, &cert)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to create certificate", err)
		return
	}

	if err := cc.generateCertificatePdf(ctx, created); err != nil {
		cc.respondDocumentError(ctx, err, gin.H{"certificate": created})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": created,
	})
}

func (cc CertificateController) Get(ctx *gin.Context) {
	id, ok := cc.paramId(ctx, "id")
	if !ok {
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate", err)
		return
	}

	res := gin.H{"certificate": cert}
	if url := cc.app.Renderer.Config().PublicURL; url != "" {
		res["downloadUrl"] = dipii.CertificateDownloadURL(url, cert.ID)
	}
	util.ResponseSuccess(ctx, res)
}

// Update saves the new values and overwrites the document at the same path.
// The path is cleared with the update, so a failed render leaves the record
// without a document instead of serving the previous one.
func (cc CertificateController) Update(ctx *gin.Context) {
	id, ok := cc.paramId(ctx, "id")
	if !ok {
		return
	}

	doc, ok := cc.bindCertificate(ctx)
	if !ok {
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate", err)
		return
	}

	cert.ReplaceDocument(doc)
	updated, err := cc.app.Repository.Certificate.Update(ctx, nil, cert)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to update certificate", err)
		return
	}

	if err := cc.generateCertificatePdf(ctx, updated); err != nil {
		cc.respondDocumentError(ctx, err, gin.H{"certificate": updated})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": updated,
	})
}

func (cc CertificateController) Delete(ctx *gin.Context) {
	id, ok := cc.paramId(ctx, "id")
	if !ok {
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate", err)
		return
	}

	if err := cc.app.Repository.Certificate.Delete(ctx, nil, id); err != nil {
		cc.respondRepositoryError(ctx, "Failed to delete certificate", err)
		return
	}

	cc.removeDocument(ctx, cert.PdfPath)

	util.ResponseSuccess(ctx, nil)
}

func (cc CertificateController) Download(ctx *gin.Context) {
	id, ok := cc.paramId(ctx, "id")
	if !ok {
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate", err)
		return
	}

	cc.serveDocument(ctx, cert.PdfPath)
}

// Regenerate renders the stored values again, replacing the previous file.
func (cc CertificateController) Regenerate(ctx *gin.Context) {
	id, ok := cc.paramId(ctx, "id")
	if !ok {
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate", err)
		return
	}

	if err := cc.generateCertificatePdf(ctx, cert); err != nil {
		cc.respondDocumentError(ctx, err, gin.H{"certificate": cert})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": cert,
	})
}

func (cc CertificateController) Export(ctx *gin.Context) {
	var filter repository.CertificateFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	certificates, err := cc.app.Repository.Certificate.ListAll(ctx, nil, filter, constant.ExportLimit)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate list", err)
		return
	}

	data, err := export.WriteXLSX(export.CertificateSheet(certificates))
	if err != nil {
		cc.app.Logger.Errorf("Failed to export certificates: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to export certificates", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="certificados.xlsx"`)
	ctx.Data(http.StatusOK, export.ContentTypeXLSX, data)
}

// Merge joins the stored documents of the filtered certificates, newest
// first, into one PDF. Files missing from storage are skipped.
func (cc CertificateController) Merge(ctx *gin.Context) {
	var filter repository.CertificateFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}
	filter.Pdf = "1"

	certificates, err := cc.app.Repository.Certificate.ListAll(ctx, nil, filter, constant.MergeLimit)
	if err != nil {
		cc.respondRepositoryError(ctx, "Failed to get certificate list", err)
		return
	}

	docs := make([][]byte, 0, len(certificates))
	for _, cert := range certificates {
		data, err := cc.app.Storage.Get(ctx, *cert.PdfPath)
		if errors.Is(err, filestorage.ErrNotFound) {
			cc.app.Logger.Warnf("Skip merging certificate %d, document %s is missing", cert.ID, *cert.PdfPath)
			continue
		}
		if err != nil {
			cc.app.Logger.Errorf("Failed to read document %s: %v", *cert.PdfPath, err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read document", util.GenerateErrorMessages(err), nil)
			return
		}
		docs = append(docs, data)
	}

	if len(docs) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", util.GenerateErrorMessages(errors.New(ErrNoCertificateDocuments), "pdf_path"), nil)
		return
	}

	merged, err := dipii.MergePdfs(docs)
	if err != nil {
		cc.app.Logger.Errorf("Failed to merge %d certificates: %v", len(docs), err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, ErrGeneratePdf, util.GenerateErrorMessages(err), nil)
		return
	}

	if pages, err := dipii.GetPageCount(merged); err == nil {
		cc.app.Logger.Debugf("Merged %d certificates into %d pages", len(docs), pages)
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`inline; filename="certificados-%d.pdf"`, len(docs)))
	ctx.Data(http.StatusOK, "application/pdf", merged)
}
