package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"

	filestorage "github.com/dipii/backoffice/internal/file_storage"
	"github.com/dipii/backoffice/internal/metrics"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/util"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/gin-gonic/gin"
)

const (
	ErrGeneratePdf = "Failed to generate PDF"
	ErrStorePdf    = "Failed to store PDF"
)

// documentError carries the top level message shown when generation fails.
// The record created before generation is kept.
type documentError struct {
	message string
	err     error
}

func (e *documentError) Error() string {
	return fmt.Sprintf("%s: %v", e.message, e.err)
}

func (e *documentError) Unwrap() error {
	return e.err
}

type pathUpdater func(ctx context.Context, id uint, path string) error

// storeDocument validates rendered bytes, writes them at documentPath and
// records the path on the entity.
func (b *baseController) storeDocument(ctx context.Context, kind string, id uint, documentPath string, data []byte, renderErr error, update pathUpdater) error {
	if renderErr == nil {
		renderErr = dipii.ValidatePdf(data)
	}
	if renderErr != nil {
		b.app.Metrics.DocumentFailed(kind, "render")
		return &documentError{message: ErrGeneratePdf, err: renderErr}
	}

	if err := b.app.Storage.Put(ctx, documentPath, data); err != nil {
		b.app.Metrics.DocumentFailed(kind, "store")
		return &documentError{message: ErrStorePdf, err: err}
	}

	if err := update(ctx, id, documentPath); err != nil {
		b.app.Metrics.DocumentFailed(kind, "store")
		return &documentError{message: ErrStorePdf, err: err}
	}

	b.app.Metrics.DocumentGenerated(kind)
	return nil
}

func (b *baseController) generateCertificatePdf(ctx context.Context, cert *model.Certificate) error {
	data, err := b.app.Renderer.RenderCertificate(cert.ToDocument())
	documentPath := util.CertificateDocumentPath(cert.ID)

	err = b.storeDocument(ctx, metrics.DocumentCertificate, cert.ID, documentPath, data, err, func(ctx context.Context, id uint, p string) error {
		return b.app.Repository.Certificate.UpdatePdfPath(ctx, nil, id, p)
	})
	if err != nil {
		return err
	}

	cert.PdfPath = &documentPath
	return nil
}

func (b *baseController) generateLabelBatchPdf(ctx context.Context, batch *model.LabelBatch) error {
	data, err := b.app.Renderer.RenderLabels(batch.ToDocument())
	documentPath := util.LabelBatchDocumentPath(batch.ID)

	err = b.storeDocument(ctx, metrics.DocumentLabelBatch, batch.ID, documentPath, data, err, func(ctx context.Context, id uint, p string) error {
		return b.app.Repository.LabelBatch.UpdatePdfPath(ctx, nil, id, p)
	})
	if err != nil {
		return err
	}

	b.app.Metrics.LabelsGenerated(batch.Count)
	batch.PdfPath = &documentPath
	return nil
}

// respondDocumentError answers 500 with the generation message. data is
// returned so the client still learns the id of the kept record.
func (b *baseController) respondDocumentError(ctx *gin.Context, err error, data any) {
	b.app.Logger.Errorf("Document generation failed: %v", err)

	message := ErrGeneratePdf
	var de *documentError
	if errors.As(err, &de) {
		message = de.message
	}

	util.ResponseFailed(ctx, http.StatusInternalServerError, message, util.GenerateErrorMessages(err), data)
}

// serveDocument streams a stored PDF, 404 when it was never generated or is gone.
func (b *baseController) serveDocument(ctx *gin.Context, documentPath *string) {
	if documentPath == nil || *documentPath == "" {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", util.GenerateErrorMessages(filestorage.ErrNotFound, "pdf_path"), nil)
		return
	}

	data, err := b.app.Storage.Get(ctx, *documentPath)
	if err != nil {
		if errors.Is(err, filestorage.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", util.GenerateErrorMessages(err, "pdf_path"), nil)
			return
		}
		b.app.Logger.Errorf("Failed to read document %s: %v", *documentPath, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read document", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, path.Base(*documentPath)))
	ctx.Data(http.StatusOK, util.ContentTypeByPath(*documentPath), data)
}

// removeDocument deletes a stored file. Failures are only logged.
func (b *baseController) removeDocument(ctx context.Context, documentPath *string) {
	if documentPath == nil || *documentPath == "" {
		return
	}

	if err := b.app.Storage.Delete(ctx, *documentPath); err != nil {
		b.app.Logger.Warnf("Failed to remove document %s: %v", *documentPath, err)
	}
}
