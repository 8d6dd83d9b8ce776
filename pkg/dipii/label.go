package dipii

import (
	"time"

	"github.com/shopspring/decimal"
)

// LabelBatchInput is the raw form of a label batch.
type LabelBatchInput struct {
	ElaboratedOn time.Time
	Product      string
	WeightKg     string
	StartNumber  int
	Count        int
}

// LabelBatch is a normalized batch. Only these fields are stored; the
// individual labels are derived with BuildLabels.
type LabelBatch struct {
	ID           uint
	ElaboratedOn time.Time
	ExpiresOn    time.Time
	Product      string
	WeightKg     decimal.Decimal
	StartNumber  int
	Count        int
}

// Label is one printable label card.
type Label struct {
	CompanyLine1 string
	CompanyLine2 string
	ElaboratedOn string
	ExpiresOn    string
	Product      string
	Weight       string
	Number       int
}

func NormalizeLabelBatch(in LabelBatchInput) (LabelBatch, error) {
	if !IsLabelProduct(in.Product) {
		return LabelBatch{}, ErrInvalidLabelProduct
	}

	weight, err := ParseWeight(in.WeightKg)
	if err != nil {
		return LabelBatch{}, err
	}

	if in.StartNumber < 1 || in.StartNumber > MaxLabelStartNumber {
		return LabelBatch{}, ErrInvalidStartNumber
	}
	if in.Count < 1 || in.Count > MaxLabelsPerBatch {
		return LabelBatch{}, ErrInvalidLabelCount
	}
	if in.ElaboratedOn.IsZero() {
		return LabelBatch{}, ErrMissingField
	}

	b := LabelBatch{
		ElaboratedOn: in.ElaboratedOn,
		Product:      NormalizeProduct(in.Product),
		WeightKg:     weight,
		StartNumber:  in.StartNumber,
		Count:        in.Count,
	}
	b.Recompute()

	return b, nil
}

// Recompute refreshes the derived expiry date.
func (b *LabelBatch) Recompute() {
	b.ExpiresOn = ExpiryDate(b.ElaboratedOn)
}

// LastNumber is the number printed on the final label of the batch.
func (b LabelBatch) LastNumber() int {
	return b.StartNumber + b.Count - 1
}

// BuildLabels expands a batch into its labels numbered StartNumber through
// LastNumber, ascending.
func BuildLabels(b LabelBatch) []Label {
	if b.Count <= 0 {
		return []Label{}
	}

	elab := FormatDisplayDate(b.ElaboratedOn)
	exp := FormatDisplayDate(b.ExpiresOn)
	product := NormalizeProduct(b.Product)
	weight := FormatWeight(b.WeightKg) + " kg"

	labels := make([]Label, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		labels = append(labels, Label{
			CompanyLine1: CompanyLine1,
			CompanyLine2: CompanyLine2,
			ElaboratedOn: elab,
			ExpiresOn:    exp,
			Product:      product,
			Weight:       weight,
			Number:       b.StartNumber + i,
		})
	}

	return labels
}
