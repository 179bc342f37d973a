package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityVersionModel struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	OpportunityID   string         `gorm:"type:uuid;not null;index" json:"opportunity_id"`
	FetchedAt       time.Time      `json:"fetched_at"`
	SourceLink      string         `gorm:"type:varchar(500)" json:"source_link"`
	DescriptionText string         `json:"description_text"`
	ContentHash     string         `gorm:"type:varchar(64)" json:"content_hash"`
	Changed         bool           `gorm:"default:false" json:"changed"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OpportunityVersionModel) TableName() string {
	return "opportunity_versions"
}

func (v *OpportunityVersionModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
