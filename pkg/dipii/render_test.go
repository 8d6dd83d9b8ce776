package dipii

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()
	// a path that does not exist falls back to the drawn logo
	cfg.LogoPath = filepath.Join(t.TempDir(), "missing.png")
	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	return r
}

func testCertificate(t *testing.T) Certificate {
	c, err := NormalizeCertificate(CertificateInput{
		ElaboratedOn:     mustDate(t, "2024-05-02"),
		Product:          "jalapeño en cubos",
		CropOrigin:       "Jutiapa",
		BatchNumber:      7,
		CubetteCount:     12,
		WeightPerCubette: "5.25",
	})
	require.NoError(t, err)
	c.ID = 15
	return c
}

func testBatch(t *testing.T, count int) LabelBatch {
	b, err := NormalizeLabelBatch(LabelBatchInput{
		ElaboratedOn: mustDate(t, "2024-12-30"),
		Product:      ProductOnionCubes,
		WeightKg:     "5.00",
		StartNumber:  1,
		Count:        count,
	})
	require.NoError(t, err)
	b.ID = 3
	return b
}

func TestRenderCertificate(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
	}{
		{name: "Without QR", publicURL: ""},
		{name: "With QR", publicURL: "https://backoffice.dipii.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.PublicURL = tt.publicURL
			r := newTestRenderer(t, cfg)

			data, err := r.RenderCertificate(testCertificate(t))
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
			require.NoError(t, ValidatePdf(data))

			pages, err := GetPageCount(data)
			require.NoError(t, err)
			assert.Equal(t, 1, pages)
		})
	}
}

func TestRenderLabelsPages(t *testing.T) {
	tests := []struct {
		count int
		pages int
	}{
		{count: 1, pages: 1},
		{count: 10, pages: 1},
		{count: 12, pages: 2},
		{count: 25, pages: 3},
	}

	r := newTestRenderer(t, NewDefaultConfig())
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			data, err := r.RenderLabels(testBatch(t, tt.count))
			require.NoError(t, err)

			pages, err := GetPageCount(data)
			require.NoError(t, err)
			assert.Equal(t, tt.pages, pages, "count %d", tt.count)
		})
	}
}

func TestRenderLabelsCustomGrid(t *testing.T) {
	r := newTestRenderer(t, Config{LabelColumns: 3, LabelRows: 8})

	data, err := r.RenderLabels(testBatch(t, 25))
	require.NoError(t, err)

	pages, err := GetPageCount(data)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestRenderLabelsEmpty(t *testing.T) {
	r := newTestRenderer(t, NewDefaultConfig())
	_, err := r.RenderLabels(LabelBatch{StartNumber: 1, Count: 0, WeightKg: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidLabelCount)
}

func TestNewRendererDefaultsGrid(t *testing.T) {
	r := newTestRenderer(t, Config{})
	assert.Equal(t, 2, r.Config().LabelColumns)
	assert.Equal(t, 5, r.Config().LabelRows)
}

func TestMergePdfs(t *testing.T) {
	r := newTestRenderer(t, NewDefaultConfig())

	first, err := r.RenderCertificate(testCertificate(t))
	require.NoError(t, err)
	second, err := r.RenderLabels(testBatch(t, 12))
	require.NoError(t, err)

	merged, err := MergePdfs([][]byte{first, second})
	require.NoError(t, err)

	pages, err := GetPageCount(merged)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	single, err := MergePdfs([][]byte{first})
	require.NoError(t, err)
	assert.Equal(t, first, single)

	_, err = MergePdfs(nil)
	assert.Error(t, err)
}

func TestDrawLogo(t *testing.T) {
	data, err := DrawLogo()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode(CertificateDownloadURL("https://example.com/", 9), 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestCertificateDownloadURL(t *testing.T) {
	assert.Equal(t, "https://example.com/api/v1/certificates/9/download", CertificateDownloadURL("https://example.com/", 9))
	assert.Equal(t, "http://localhost:8080/api/v1/certificates/1/download", CertificateDownloadURL("http://localhost:8080", 1))
}
