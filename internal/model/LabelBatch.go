package model

import (
	"encoding/json"
	"time"

	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/shopspring/decimal"
)

type LabelBatch struct {
	BaseModel
	ElaboratedOn time.Time       `gorm:"column:fecha_elaboracion;type:date;not null;index" json:"-"`
	ExpiresOn    time.Time       `gorm:"column:fecha_vencimiento;type:date;not null;index" json:"-"`
	Product      string          `gorm:"column:producto;type:varchar(150);not null;index" json:"producto"`
	WeightKg     decimal.Decimal `gorm:"column:peso_kg;type:numeric(5,2);not null" json:"-"`
	StartNumber  int             `gorm:"column:numero_inicial;not null" json:"numero_inicial"`
	Count        int             `gorm:"column:cantidad;not null" json:"cantidad"`
	PdfPath      *string         `gorm:"column:pdf_path;type:text;default:null" json:"pdf_path"`
}

func (b LabelBatch) TableName() string {
	return "lotes_etiquetas"
}

func (b LabelBatch) MarshalJSON() ([]byte, error) {
	type alias LabelBatch
	return json.Marshal(struct {
		alias
		ElaboratedOn string `json:"fecha_elaboracion"`
		ExpiresOn    string `json:"fecha_vencimiento"`
		WeightKg     string `json:"peso_kg"`
		LastNumber   int    `json:"numero_final"`
	}{
		alias:        alias(b),
		ElaboratedOn: b.ElaboratedOn.Format(dipii.InputDateLayout),
		ExpiresOn:    b.ExpiresOn.Format(dipii.InputDateLayout),
		WeightKg:     dipii.FormatWeight(b.WeightKg),
		LastNumber:   b.ToDocument().LastNumber(),
	})
}

func (b LabelBatch) ToDocument() dipii.LabelBatch {
	return dipii.LabelBatch{
		ID:           b.ID,
		ElaboratedOn: b.ElaboratedOn,
		ExpiresOn:    b.ExpiresOn,
		Product:      b.Product,
		WeightKg:     b.WeightKg,
		StartNumber:  b.StartNumber,
		Count:        b.Count,
	}
}

func LabelBatchFromDocument(d dipii.LabelBatch) LabelBatch {
	return LabelBatch{
		ElaboratedOn: d.ElaboratedOn,
		ExpiresOn:    d.ExpiresOn,
		Product:      d.Product,
		WeightKg:     d.WeightKg,
		StartNumber:  d.StartNumber,
		Count:        d.Count,
	}
}

func (b LabelBatch) HasPdf() bool {
	return b.PdfPath != nil && *b.PdfPath != ""
}
