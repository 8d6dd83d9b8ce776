package dipii

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestBuildLabels(t *testing.T) {
	b := LabelBatch{
		ElaboratedOn: mustDate(t, "2024-03-10"),
		ExpiresOn:    mustDate(t, "2024-03-12"),
		Product:      "cebolla en cubos",
		WeightKg:     decimal.RequireFromString("5.00"),
		StartNumber:  100,
		Count:        3,
	}

	labels := BuildLabels(b)
	require.Len(t, labels, 3)

	for i, l := range labels {
		assert.Equal(t, 100+i, l.Number)
		assert.Equal(t, "CEBOLLA EN CUBOS", l.Product)
		assert.Equal(t, "5.00 kg", l.Weight)
		assert.Equal(t, "10/03/2024", l.ElaboratedOn)
		assert.Equal(t, "12/03/2024", l.ExpiresOn)
		assert.Equal(t, CompanyLine1, l.CompanyLine1)
		assert.Equal(t, CompanyLine2, l.CompanyLine2)
	}
	assert.Equal(t, 102, b.LastNumber())
}

func TestBuildLabelsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "Zero", count: 0},
		{name: "Negative", count: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := BuildLabels(LabelBatch{StartNumber: 1, Count: tt.count})
			assert.NotNil(t, labels)
			assert.Empty(t, labels)
		})
	}
}

func TestNormalizeLabelBatch(t *testing.T) {
	valid := LabelBatchInput{
		ElaboratedOn: mustDate(t, "2024-12-30"),
		Product:      "  jalapeño en cubos ",
		WeightKg:     "10.50",
		StartNumber:  1,
		Count:        20,
	}

	b, err := NormalizeLabelBatch(valid)
	require.NoError(t, err)
	assert.Equal(t, ProductJalapenoCubes, b.Product)
	assert.Equal(t, "10.50", FormatWeight(b.WeightKg))
	// expiry crosses the year boundary
	assert.Equal(t, mustDate(t, "2025-01-01"), b.ExpiresOn)

	tests := []struct {
		name   string
		mutate func(in *LabelBatchInput)
		err    error
	}{
		{name: "Unknown product", mutate: func(in *LabelBatchInput) { in.Product = "AJO" }, err: ErrInvalidLabelProduct},
		{name: "Bad weight", mutate: func(in *LabelBatchInput) { in.WeightKg = "10.5" }, err: ErrInvalidWeight},
		{name: "Start zero", mutate: func(in *LabelBatchInput) { in.StartNumber = 0 }, err: ErrInvalidStartNumber},
		{name: "Start above max", mutate: func(in *LabelBatchInput) { in.StartNumber = MaxLabelStartNumber + 1 }, err: ErrInvalidStartNumber},
		{name: "Start at max int", mutate: func(in *LabelBatchInput) { in.StartNumber = math.MaxInt }, err: ErrInvalidStartNumber},
		{name: "Count zero", mutate: func(in *LabelBatchInput) { in.Count = 0 }, err: ErrInvalidLabelCount},
		{name: "Count above max", mutate: func(in *LabelBatchInput) { in.Count = MaxLabelsPerBatch + 1 }, err: ErrInvalidLabelCount},
		{name: "Missing date", mutate: func(in *LabelBatchInput) { in.ElaboratedOn = time.Time{} }, err: ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := NormalizeLabelBatch(in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLabelsAtHighestStartNumber(t *testing.T) {
	b, err := NormalizeLabelBatch(LabelBatchInput{
		ElaboratedOn: mustDate(t, "2024-03-10"),
		Product:      ProductPepperCubes,
		WeightKg:     "1.00",
		StartNumber:  MaxLabelStartNumber,
		Count:        MaxLabelsPerBatch,
	})
	require.NoError(t, err)

	labels := BuildLabels(b)
	require.Len(t, labels, MaxLabelsPerBatch)
	assert.Equal(t, MaxLabelStartNumber, labels[0].Number)
	assert.Equal(t, b.LastNumber(), labels[len(labels)-1].Number)
	assert.LessOrEqual(t, int64(b.LastNumber()), int64(math.MaxInt32))
}

func TestBuildLabelsStopsAtCount(t *testing.T) {
	// the count bounds the loop even when the numbers would wrap
	labels := BuildLabels(LabelBatch{StartNumber: math.MaxInt, Count: 2})
	require.Len(t, labels, 2)
	assert.Equal(t, math.MaxInt, labels[0].Number)
}

func TestExpiryDate(t *testing.T) {
	tests := []struct {
		elab     string
		expected string
	}{
		{elab: "2024-03-10", expected: "2024-03-12"},
		{elab: "2024-02-28", expected: "2024-03-01"},
		{elab: "2023-02-28", expected: "2023-03-02"},
		{elab: "2024-12-30", expected: "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.elab, func(t *testing.T) {
			assert.Equal(t, mustDate(t, tt.expected), ExpiryDate(mustDate(t, tt.elab)))
		})
	}
}

func TestIsLabelProduct(t *testing.T) {
	assert.True(t, IsLabelProduct("PIMIENTO EN CUBOS"))
	assert.True(t, IsLabelProduct(" cebolla en cubos"))
	assert.True(t, IsLabelProduct("Jalapeño en cubos"))
	assert.False(t, IsLabelProduct("JALAPENO EN CUBOS"))
	assert.False(t, IsLabelProduct(""))
}
