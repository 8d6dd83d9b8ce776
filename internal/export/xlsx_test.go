package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/dipii/backoffice/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, data []byte, name string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(name)
	require.NoError(t, err)
	return rows
}

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX(Sheet{
		Name:    "Datos",
		Headers: []string{"ID", "Producto"},
		Rows: [][]interface{}{
			{1, "CEBOLLA EN CUBOS"},
			{2, "JALAPEÑO EN CUBOS"},
		},
	})
	require.NoError(t, err)

	rows := readSheet(t, data, "Datos")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Producto"}, rows[0])
	assert.Equal(t, []string{"2", "JALAPEÑO EN CUBOS"}, rows[2])
}

func TestWriteXLSXEmpty(t *testing.T) {
	data, err := WriteXLSX(Sheet{Headers: []string{"ID"}})
	require.NoError(t, err)

	rows := readSheet(t, data, "Sheet1")
	assert.Equal(t, [][]string{{"ID"}}, rows)
}

func TestCertificateSheet(t *testing.T) {
	path := "certificados/certificado-7.pdf"
	s := CertificateSheet([]model.Certificate{{
		BaseModel:        model.BaseModel{ID: 7},
		ElaboratedOn:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Product:          "CEBOLLA EN CUBOS",
		CropOrigin:       "Zacapa",
		BatchNumber:      3,
		CubetteCount:     12,
		WeightPerCubette: decimal.RequireFromString("5.25"),
		TotalKilograms:   decimal.RequireFromString("63"),
		PdfPath:          &path,
	}})

	require.Len(t, s.Rows, 1)
	assert.Equal(t, len(s.Headers), len(s.Rows[0]))
	assert.Equal(t, "2024-01-10", s.Rows[0][1])
	assert.Equal(t, "5.25", s.Rows[0][6])
	assert.Equal(t, "63.000", s.Rows[0][7])
	assert.Equal(t, "SI", s.Rows[0][12])
}

func TestLabelBatchSheet(t *testing.T) {
	s := LabelBatchSheet([]model.LabelBatch{{
		BaseModel:    model.BaseModel{ID: 4},
		ElaboratedOn: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
		ExpiresOn:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Product:      "PIMIENTO EN CUBOS",
		WeightKg:     decimal.RequireFromString("2.5"),
		StartNumber:  100,
		Count:        25,
	}})

	require.Len(t, s.Rows, 1)
	assert.Equal(t, "2025-01-01", s.Rows[0][2])
	assert.Equal(t, "2.50", s.Rows[0][4])
	assert.Equal(t, 124, s.Rows[0][6])
	assert.Equal(t, "NO", s.Rows[0][8])
}

func TestIntakeSheet(t *testing.T) {
	s := IntakeSheet([]model.Intake{
		{Product: "CEBOLLA", QuantityKg: decimal.RequireFromString("150"), Supplier: &model.Supplier{Name: "Agro Zacapa"}},
		{Product: "JALAPEÑO", QuantityKg: decimal.RequireFromString("10.5")},
	})

	require.Len(t, s.Rows, 2)
	assert.Equal(t, "Agro Zacapa", s.Rows[0][2])
	assert.Equal(t, "150.00", s.Rows[0][4])
	assert.Equal(t, "", s.Rows[1][2])
}
