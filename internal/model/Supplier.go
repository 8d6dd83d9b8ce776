package model

type Supplier struct {
	BaseModel
	Name        string  `gorm:"column:nombre;type:varchar(150);not null;index" json:"nombre"`
	TaxID       *string `gorm:"column:nit;type:varchar(30);uniqueIndex;default:null" json:"nit"`
	ContactName string  `gorm:"column:contacto;type:varchar(150);default:null" json:"contacto"`
	Phone       string  `gorm:"column:telefono;type:varchar(30);default:null" json:"telefono"`
	Email       string  `gorm:"column:email;type:varchar(150);default:null" json:"email"`
	Address     string  `gorm:"column:direccion;type:varchar(255);default:null" json:"direccion"`
	Active      bool    `gorm:"column:activo;not null" json:"activo"`
}

func (s Supplier) TableName() string {
	return "proveedores"
}
