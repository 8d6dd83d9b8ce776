package model

type User struct {
	BaseModel
	Name     string `gorm:"column:nombre;type:varchar(150);not null" json:"nombre"`
	Phone    string `gorm:"column:telefono;type:varchar(30);default:null" json:"telefono"`
	Username string `gorm:"column:usuario;type:varchar(60);not null;uniqueIndex" json:"usuario"`
	Email    string `gorm:"type:varchar(150);not null;uniqueIndex" json:"email"`
	// bcrypt hash
	Password string `gorm:"type:text;not null" json:"-"`
}

func (u User) TableName() string {
	return "users"
}
