//go:build integration

package repository

// Runs against a real Postgres started with testcontainers.
// Run with: go test -tags integration ./internal/repository/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/dipii/backoffice/internal/config"
	"github.com/dipii/backoffice/internal/database"
	"github.com/dipii/backoffice/internal/model"
	"github.com/dipii/backoffice/internal/util"
	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("dipii_test"),
		tcPostgres.WithUsername("dipii"),
		tcPostgres.WithPassword("dipii"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(dsn, config.DatabaseConfig{MaxOpenConns: 5, MaxIdleConns: 5, MaxIdleTime: "1m"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.Models()...))

	return NewRepository(db, util.NewLogger("test"), nil)
}

func createCertificate(t *testing.T, repo *Repository, elab, product string, batch int) *model.Certificate {
	t.Helper()
	doc, err := dipii.NormalizeCertificate(dipii.CertificateInput{
		ElaboratedOn:     mustParse(t, elab),
		Product:          product,
		CropOrigin:       "Zacapa",
		BatchNumber:      batch,
		CubetteCount:     12,
		WeightPerCubette: "5.25",
	})
	require.NoError(t, err)

	var cert model.Certificate
	cert.ApplyDocument(doc)
	created, err := repo.Certificate.Create(context.Background(), nil, &cert)
	require.NoError(t, err)
	return created
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := dipii.ParseDate(s)
	require.NoError(t, err)
	return parsed
}

func TestCertificateRepositoryIntegration(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	a := createCertificate(t, repo, "2024-01-10", "cebolla en cubos", 1)
	b := createCertificate(t, repo, "2024-01-20", "CEBOLLA EN CUBOS", 2)
	c := createCertificate(t, repo, "2024-01-20", "cebolla blanca", 3)
	createCertificate(t, repo, "2024-01-15", "JALAPEÑO EN CUBOS", 4)
	createCertificate(t, repo, "2024-03-01", "CEBOLLA EN CUBOS", 5)

	assert.Equal(t, "63.000", a.TotalKilograms.StringFixed(3))

	list, total, err := repo.Certificate.List(ctx, nil, CertificateFilter{
		Product: "CEBOLLA",
		From:    "2024-01-01",
		To:      "2024-01-31",
	}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, list, 3)

	// fecha_elaboracion desc, then id desc within the same day
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, []uint{list[0].ID, list[1].ID, list[2].ID})

	byBatch, total, err := repo.Certificate.List(ctx, nil, CertificateFilter{Q: "4"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 4, byBatch[0].BatchNumber)

	require.NoError(t, repo.Certificate.UpdatePdfPath(ctx, nil, a.ID, "certificados/certificado-1.pdf"))
	withPdf, total, err := repo.Certificate.List(ctx, nil, CertificateFilter{Pdf: "1"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.True(t, withPdf[0].HasPdf())

	products, err := repo.Certificate.DistinctProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"CEBOLLA BLANCA", "CEBOLLA EN CUBOS", "JALAPEÑO EN CUBOS"}, products)

	require.NoError(t, repo.Certificate.Delete(ctx, nil, a.ID))
	_, err = repo.Certificate.GetById(ctx, nil, a.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Certificate.Delete(ctx, nil, a.ID), gorm.ErrRecordNotFound)
}

func TestSupplierDeleteWithIntakesIntegration(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	supplier, err := repo.Supplier.Create(ctx, nil, &model.Supplier{Name: "Agro Zacapa", Active: true})
	require.NoError(t, err)

	qty, err := dipii.ParseQuantity("150.00")
	require.NoError(t, err)
	_, err = repo.Intake.Create(ctx, nil, &model.Intake{
		ReceivedOn: mustParse(t, "2024-02-01"),
		SupplierID: supplier.ID,
		Product:    "CEBOLLA",
		QuantityKg: qty,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Supplier.Delete(ctx, nil, supplier.ID), ErrSupplierHasIntakes)
}
