package model

import (
	"time"
)

type BaseModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt *time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;not null" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;onUpdate:CURRENT_TIMESTAMP;not null" json:"updatedAt"`
}

// Models lists every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Token{},
		&Supplier{},
		&Intake{},
		&Certificate{},
		&LabelBatch{},
	}
}
