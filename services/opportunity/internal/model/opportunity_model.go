package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityModel struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	Company         string         `gorm:"type:varchar(200);index" json:"company"`
	Title           string         `gorm:"type:varchar(300);not null" json:"title"`
	Description     string         `json:"description"`
	Location        string         `gorm:"type:varchar(200)" json:"location"`
	Region          string         `gorm:"type:varchar(100);index" json:"region"`
	City            string         `gorm:"type:varchar(100);index" json:"city"`
	Deadline        *time.Time     `json:"deadline"`
	Status          string         `gorm:"type:varchar(10);default:'open'" json:"status"`
	Majors          string         `gorm:"type:varchar(300)" json:"majors"`
	CategoryID      string         `gorm:"type:uuid;index" json:"category_id"`
	SourceLink      string         `gorm:"type:varchar(500);index" json:"source_link"`
	SourceType      string         `gorm:"type:varchar(10);default:'admin'" json:"source_type"`
	DescriptionHash string         `gorm:"type:varchar(64)" json:"-"`
	LastCheckedAt   *time.Time     `json:"last_checked_at"`
	// Nullable so rows without an author (curated imports, seeds) insert
	// NULL instead of an empty string the uuid column rejects.
	CreatedBy *string        `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OpportunityModel) TableName() string {
	return "opportunities"
}

func (o *OpportunityModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
