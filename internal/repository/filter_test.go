package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/dipii/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a database connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=dipii dbname=dipii sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}

func findSQL(db *gorm.DB, dest interface{}, scopes ...func(*gorm.DB) *gorm.DB) (string, []interface{}) {
	stmt := db.Model(dest).Scopes(scopes...).Find(dest).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestCertificateFilterScope(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name     string
		filter   CertificateFilter
		contains []string
		absent   []string
		vars     []interface{}
	}{
		{
			name:     "Empty",
			filter:   CertificateFilter{},
			contains: []string{`FROM "certificados"`, "ORDER BY fecha_elaboracion DESC, id DESC"},
			absent:   []string{"WHERE"},
			vars:     []interface{}{},
		},
		{
			name:     "Text search",
			filter:   CertificateFilter{Q: "cebolla"},
			contains: []string{"producto ILIKE $1"},
			absent:   []string{"numero_batch", "id = "},
			vars:     []interface{}{"%cebolla%"},
		},
		{
			name:     "Numeric search",
			filter:   CertificateFilter{Q: "42"},
			contains: []string{"producto ILIKE $1 OR numero_batch = $2 OR id = $3"},
			vars:     []interface{}{"%42%", int64(42), int64(42)},
		},
		{
			name:     "Product and date range",
			filter:   CertificateFilter{Product: "CEBOLLA", From: "2024-01-01", To: "2024-01-31"},
			contains: []string{"producto ILIKE $1", "fecha_elaboracion >= $2", "fecha_elaboracion <= $3"},
			vars:     []interface{}{"%CEBOLLA%", date(t, "2024-01-01"), date(t, "2024-01-31")},
		},
		{
			name:     "Batch and with pdf",
			filter:   CertificateFilter{Batch: "7", Pdf: "1"},
			contains: []string{"numero_batch = $1", "pdf_path IS NOT NULL"},
			vars:     []interface{}{int64(7)},
		},
		{
			name:     "Without pdf",
			filter:   CertificateFilter{Pdf: "0"},
			contains: []string{"pdf_path IS NULL"},
			vars:     []interface{}{},
		},
		{
			name:   "Unparseable criteria are ignored",
			filter: CertificateFilter{Batch: "x7", From: "01/01/2024", Pdf: "yes"},
			absent: []string{"WHERE"},
			vars:   []interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vars := findSQL(db, &[]model.Certificate{}, tt.filter.Scope, certificateOrder)
			for _, c := range tt.contains {
				assert.Contains(t, sql, c)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, sql, a)
			}
			assert.ElementsMatch(t, tt.vars, vars)
		})
	}
}

func TestCertificateFilterConjunction(t *testing.T) {
	db := dryRunDB(t)
	filter := CertificateFilter{Q: "12", Product: "cebolla", From: "2024-01-01"}

	sql, _ := findSQL(db, &[]model.Certificate{}, filter.Scope, certificateOrder)

	// the OR group stays parenthesized so it does not swallow the other criteria
	where := sql[strings.Index(sql, "WHERE"):]
	assert.Contains(t, where, "(producto ILIKE $1 OR numero_batch = $2 OR id = $3) AND producto ILIKE $4 AND fecha_elaboracion >= $5")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(sql), "ORDER BY fecha_elaboracion DESC, id DESC"))
}

func TestLabelBatchFilterScope(t *testing.T) {
	db := dryRunDB(t)
	filter := LabelBatchFilter{
		Q:            "15",
		ElaboratedOn: "2024-03-01",
		ExpiresTo:    "2024-03-10",
		Pdf:          "1",
	}

	sql, vars := findSQL(db, &[]model.LabelBatch{}, filter.Scope, labelBatchOrder)

	assert.Contains(t, sql, `FROM "lotes_etiquetas"`)
	assert.Contains(t, sql, "(producto ILIKE $1 OR id = $2)")
	assert.Contains(t, sql, "fecha_elaboracion >= $3")
	assert.Contains(t, sql, "fecha_vencimiento <= $4")
	assert.Contains(t, sql, "pdf_path IS NOT NULL")
	assert.Contains(t, sql, "ORDER BY id DESC")
	assert.NotContains(t, sql, "numero_batch")
	assert.Equal(t, []interface{}{"%15%", int64(15), date(t, "2024-03-01"), date(t, "2024-03-10")}, vars)
}

func TestSupplierFilterScope(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name     string
		filter   SupplierFilter
		contains []string
		absent   []string
	}{
		{name: "Active", filter: SupplierFilter{Active: "1"}, contains: []string{"activo = $1"}},
		{name: "Inactive", filter: SupplierFilter{Active: "0"}, contains: []string{"activo = $1"}},
		{name: "Any", filter: SupplierFilter{Active: "all"}, absent: []string{"activo"}},
		{name: "Search", filter: SupplierFilter{Q: "agro"}, contains: []string{"nombre ILIKE $1 OR nit ILIKE $2"}, absent: []string{"id = "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := findSQL(db, &[]model.Supplier{}, tt.filter.Scope, supplierOrder)
			for _, c := range tt.contains {
				assert.Contains(t, sql, c)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, sql, a)
			}
		})
	}
}

func TestIntakeFilterScope(t *testing.T) {
	db := dryRunDB(t)
	filter := IntakeFilter{SupplierID: "3", From: "2024-02-01"}

	sql, vars := findSQL(db, &[]model.Intake{}, filter.Scope, intakeOrder)

	assert.Contains(t, sql, `FROM "ingresos"`)
	assert.Contains(t, sql, "proveedor_id = $1")
	assert.Contains(t, sql, "fecha_ingreso >= $2")
	assert.Contains(t, sql, "ORDER BY fecha_ingreso DESC, id DESC")
	assert.Equal(t, []interface{}{int64(3), date(t, "2024-02-01")}, vars)
}

func TestAsID(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"0", 0, true},
		{"4a", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"99999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := asID(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFillDays(t *testing.T) {
	from := date(t, "2024-12-30")
	out := fillDays(from, 4,
		[]dayCount{{Day: date(t, "2024-12-31"), Total: 2}, {Day: date(t, "2023-01-01"), Total: 9}},
		[]dayCount{{Day: date(t, "2025-01-02"), Total: 1}},
	)

	require.Len(t, out, 4)
	assert.Equal(t, "2024-12-30", out[0].Date)
	assert.Equal(t, "2025-01-02", out[3].Date)
	assert.Equal(t, int64(2), out[1].Certificates)
	assert.Equal(t, int64(0), out[2].Certificates)
	assert.Equal(t, int64(1), out[3].LabelBatches)
}
