package model

import (
	"testing"
	"time"

	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateReplaceDocument(t *testing.T) {
	path := "certificados/certificado-7.pdf"
	cert := Certificate{BaseModel: BaseModel{ID: 7}, Product: "CEBOLLA", PdfPath: &path}

	doc, err := dipii.NormalizeCertificate(dipii.CertificateInput{
		ElaboratedOn:     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Product:          "jalapeño",
		CropOrigin:       "Jutiapa",
		BatchNumber:      4,
		CubetteCount:     10,
		WeightPerCubette: "2.50",
	})
	require.NoError(t, err)

	cert.ReplaceDocument(doc)

	assert.Equal(t, uint(7), cert.ID)
	assert.Equal(t, "JALAPEÑO", cert.Product)
	assert.Equal(t, "25.000", cert.TotalKilograms.StringFixed(3))
	assert.Nil(t, cert.PdfPath)
	assert.False(t, cert.HasPdf())
}

func TestCertificateApplyDocumentKeepsPath(t *testing.T) {
	path := "certificados/certificado-7.pdf"
	cert := Certificate{PdfPath: &path}

	cert.ApplyDocument(dipii.Certificate{Product: "CEBOLLA"})

	require.NotNil(t, cert.PdfPath)
	assert.Equal(t, path, *cert.PdfPath)
}
