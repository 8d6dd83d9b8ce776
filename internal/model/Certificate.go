package model

import (
	"encoding/json"
	"time"

	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/shopspring/decimal"
)

type Certificate struct {
	BaseModel
	ElaboratedOn     time.Time       `gorm:"column:fecha_elaboracion;type:date;not null;index" json:"-"`
	Product          string          `gorm:"column:producto;type:varchar(150);not null;index" json:"producto"`
	CropOrigin       string          `gorm:"column:origen_cultivo;type:varchar(150);not null" json:"origen_cultivo"`
	BatchNumber      int             `gorm:"column:numero_batch;not null;index" json:"numero_batch"`
	CubetteCount     int             `gorm:"column:cantidad_cubetas;not null" json:"cantidad_cubetas"`
	WeightPerCubette decimal.Decimal `gorm:"column:peso_por_cubeta;type:numeric(5,2);not null" json:"-"`
	Color            string          `gorm:"column:color;type:varchar(100);not null" json:"color"`
	Odor             string          `gorm:"column:olor;type:varchar(100);not null" json:"olor"`
	Appearance       string          `gorm:"column:apariencia;type:varchar(120);not null" json:"apariencia"`
	Flavor           string          `gorm:"column:sabor;type:varchar(100);not null" json:"sabor"`
	TotalKilograms   decimal.Decimal `gorm:"column:kilogramos_total;type:numeric(12,3);not null" json:"-"`
	PdfPath          *string         `gorm:"column:pdf_path;type:text;default:null" json:"pdf_path"`
}

func (c Certificate) TableName() string {
	return "certificados"
}

// Weights are always written with their fixed number of decimals.
func (c Certificate) MarshalJSON() ([]byte, error) {
	type alias Certificate
	return json.Marshal(struct {
		alias
		ElaboratedOn     string `json:"fecha_elaboracion"`
		WeightPerCubette string `json:"peso_por_cubeta"`
		TotalKilograms   string `json:"kilogramos_total"`
	}{
		alias:            alias(c),
		ElaboratedOn:     c.ElaboratedOn.Format(dipii.InputDateLayout),
		WeightPerCubette: dipii.FormatWeight(c.WeightPerCubette),
		TotalKilograms:   c.TotalKilograms.StringFixed(3),
	})
}

func (c Certificate) ToDocument() dipii.Certificate {
	return dipii.Certificate{
		ID:               c.ID,
		ElaboratedOn:     c.ElaboratedOn,
		Product:          c.Product,
		CropOrigin:       c.CropOrigin,
		BatchNumber:      c.BatchNumber,
		CubetteCount:     c.CubetteCount,
		WeightPerCubette: c.WeightPerCubette,
		Color:            c.Color,
		Odor:             c.Odor,
		Appearance:       c.Appearance,
		Flavor:           c.Flavor,
		TotalKilograms:   c.TotalKilograms,
	}
}

// ApplyDocument copies normalized fields onto the record, keeping id and path.
func (c *Certificate) ApplyDocument(d dipii.Certificate) {
	c.ElaboratedOn = d.ElaboratedOn
	c.Product = d.Product
	c.CropOrigin = d.CropOrigin
	c.BatchNumber = d.BatchNumber
	c.CubetteCount = d.CubetteCount
	c.WeightPerCubette = d.WeightPerCubette
	c.Color = d.Color
	c.Odor = d.Odor
	c.Appearance = d.Appearance
	c.Flavor = d.Flavor
	c.TotalKilograms = d.TotalKilograms
}

// ReplaceDocument applies new values and drops the document path, since the
// stored file no longer matches the record until it is rendered again.
func (c *Certificate) ReplaceDocument(d dipii.Certificate) {
	c.ApplyDocument(d)
	c.PdfPath = nil
}

func (c Certificate) HasPdf() bool {
	return c.PdfPath != nil && *c.PdfPath != ""
}
