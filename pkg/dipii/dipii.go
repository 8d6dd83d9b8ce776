// Package dipii holds the document rules of the DIPII back office: input
// normalization for certificates and label batches, label derivation, and
// PDF rendering.
package dipii

import (
	"errors"
	"strings"
	"time"
)

const (
	CompanyLine1 = "Distribuidora de Insumos Industriales"
	CompanyLine2 = "& Alimenticios D I P I & I"

	DefaultSensoryMasculine = "Característico."
	DefaultSensoryFeminine  = "Característica."

	// Days between elaboration and expiry printed on labels.
	ExpiryDays = 2

	MaxLabelsPerBatch = 2000
	// Highest starting label number. The last label, start+count-1, stays
	// within nine digits plus a full batch and fits an int32.
	MaxLabelStartNumber = 999999999

	// kilogramos_total is numeric(12,3), so count × 999.99 must stay below
	// 10^9.
	MaxCubetteCount = 1000000

	// Date layout of form input.
	InputDateLayout = "2006-01-02"
	// Date layout printed on documents.
	DisplayDateLayout = "02/01/2006"
)

const (
	ProductOnionCubes    = "CEBOLLA EN CUBOS"
	ProductJalapenoCubes = "JALAPEÑO EN CUBOS"
	ProductPepperCubes   = "PIMIENTO EN CUBOS"
)

var (
	ErrInvalidWeight       = errors.New("weight must have up to three integer digits and exactly two decimals")
	ErrInvalidLabelProduct = errors.New("product is not a labelled product")
	ErrInvalidLabelCount   = errors.New("label count must be between 1 and 2000")
	ErrInvalidStartNumber  = errors.New("starting label number must be between 1 and 999999999")
	ErrInvalidCount        = errors.New("count must be at least 1")
	ErrInvalidCubetteCount = errors.New("cubette count must be between 1 and 1000000")
	ErrMissingField        = errors.New("required field is empty")
)

// LabelProducts lists the products labels can be printed for, in display order.
func LabelProducts() []string {
	return []string{ProductOnionCubes, ProductJalapenoCubes, ProductPepperCubes}
}

// NormalizeProduct trims and uppercases a product name.
func NormalizeProduct(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func IsLabelProduct(s string) bool {
	p := NormalizeProduct(s)
	for _, lp := range LabelProducts() {
		if p == lp {
			return true
		}
	}
	return false
}

// ParseDate parses a YYYY-MM-DD form date as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(InputDateLayout, strings.TrimSpace(s), time.UTC)
}

// ExpiryDate returns the calendar day ExpiryDays after elaboration.
func ExpiryDate(elaboratedOn time.Time) time.Time {
	return elaboratedOn.AddDate(0, 0, ExpiryDays)
}

func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

func defaultIfBlank(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
