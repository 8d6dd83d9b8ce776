package dipii

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CertificateInput is the raw form of a batch certificate.
type CertificateInput struct {
	ElaboratedOn     time.Time
	Product          string
	CropOrigin       string
	BatchNumber      int
	CubetteCount     int
	WeightPerCubette string
	Color            string
	Odor             string
	Appearance       string
	Flavor           string
}

// Certificate is a normalized batch certificate ready to persist or render.
type Certificate struct {
	ID               uint
	ElaboratedOn     time.Time
	Product          string
	CropOrigin       string
	BatchNumber      int
	CubetteCount     int
	WeightPerCubette decimal.Decimal
	Color            string
	Odor             string
	Appearance       string
	Flavor           string
	TotalKilograms   decimal.Decimal
}

func NormalizeCertificate(in CertificateInput) (Certificate, error) {
	weight, err := ParseWeight(in.WeightPerCubette)
	if err != nil {
		return Certificate{}, err
	}

	if in.BatchNumber < 1 {
		return Certificate{}, ErrInvalidCount
	}
	if in.CubetteCount < 1 || in.CubetteCount > MaxCubetteCount {
		return Certificate{}, ErrInvalidCubetteCount
	}

	product := NormalizeProduct(in.Product)
	origin := strings.TrimSpace(in.CropOrigin)
	if product == "" || origin == "" || in.ElaboratedOn.IsZero() {
		return Certificate{}, ErrMissingField
	}

	c := Certificate{
		ElaboratedOn:     in.ElaboratedOn,
		Product:          product,
		CropOrigin:       origin,
		BatchNumber:      in.BatchNumber,
		CubetteCount:     in.CubetteCount,
		WeightPerCubette: weight,
		Color:            defaultIfBlank(in.Color, DefaultSensoryMasculine),
		Odor:             defaultIfBlank(in.Odor, DefaultSensoryMasculine),
		Appearance:       defaultIfBlank(in.Appearance, DefaultSensoryFeminine),
		Flavor:           defaultIfBlank(in.Flavor, DefaultSensoryMasculine),
	}
	c.Recompute()

	return c, nil
}

// Recompute refreshes the derived total from the current count and weight.
func (c *Certificate) Recompute() {
	c.TotalKilograms = TotalKilograms(c.CubetteCount, c.WeightPerCubette)
}
