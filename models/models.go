package models

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Member is a searchable directory entry.
type Member struct {
	BaseModel
	Project     string  `gorm:"size:100;not null;uniqueIndex:idx_member_project_reference_id" json:"project"`
	ReferenceID string  `gorm:"size:100;not null;uniqueIndex:idx_member_project_reference_id" json:"referenceId"`
	Email       *string `gorm:"size:100;" json:"email"`
	Code        string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Status      string  `gorm:"size:50;default:'active';index" json:"status"`
}

func (Member) TableName() string {
	return "referral_members"
}
