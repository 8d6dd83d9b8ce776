package model

import "time"

// Token is one login session. Logout deletes the row and refresh rotates both
// tokens in place, so an access token is only honoured while its row exists.
type Token struct {
	BaseModel
	AccessToken  string `gorm:"type:text;not null;index" json:"-"`
	RefreshToken string `gorm:"type:text;not null;uniqueIndex" json:"-"`
	CanAccess    bool   `gorm:"not null;default:true" json:"canAccess"`
	CanRefresh   bool   `gorm:"not null;default:true" json:"canRefresh"`

	RefreshCount int        `gorm:"not null;default:0" json:"refreshCount"`
	RefreshedAt  *time.Time `json:"refreshedAt"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (t Token) TableName() string {
	return "tokens"
}
