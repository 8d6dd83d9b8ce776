package model

import (
	"encoding/json"
	"time"

	"github.com/dipii/backoffice/pkg/dipii"
	"github.com/shopspring/decimal"
)

type Intake struct {
	BaseModel
	ReceivedOn    time.Time       `gorm:"column:fecha_ingreso;type:date;not null;index" json:"-"`
	SupplierID    uint            `gorm:"column:proveedor_id;not null;index" json:"proveedor_id"`
	Product       string          `gorm:"column:producto;type:varchar(150);not null" json:"producto"`
	QuantityKg    decimal.Decimal `gorm:"column:cantidad_kg;type:numeric(10,2);not null" json:"-"`
	SupplierBatch string          `gorm:"column:lote_proveedor;type:varchar(60);default:null" json:"lote_proveedor"`
	Notes         string          `gorm:"column:observaciones;type:text;default:null" json:"observaciones"`

	Supplier *Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"proveedor,omitempty"`
}

func (i Intake) TableName() string {
	return "ingresos"
}

func (i Intake) MarshalJSON() ([]byte, error) {
	type alias Intake
	return json.Marshal(struct {
		alias
		ReceivedOn string `json:"fecha_ingreso"`
		QuantityKg string `json:"cantidad_kg"`
	}{
		alias:      alias(i),
		ReceivedOn: i.ReceivedOn.Format(dipii.InputDateLayout),
		QuantityKg: dipii.FormatWeight(i.QuantityKg),
	})
}
