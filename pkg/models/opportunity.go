package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityStatus string

const (
	StatusOpen   OpportunityStatus = "open"
	StatusClosed OpportunityStatus = "closed"
)

type SourceType string

const (
	SourceAI      SourceType = "ai"
	SourceAdmin   SourceType = "admin"
	SourceStudent SourceType = "student"
)

type Category struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type Opportunity struct {
	ID              string            `gorm:"type:uuid;primary_key" json:"id"`
	Company         string            `gorm:"type:varchar(200);index" json:"company"`
	Title           string            `gorm:"type:varchar(300);not null" json:"title"`
	Description     string            `json:"description"`
	Location        string            `gorm:"type:varchar(200)" json:"location"` // "Region,City"
	Region          string            `gorm:"type:varchar(100);index" json:"region"`
	City            string            `gorm:"type:varchar(100);index" json:"city"`
	Deadline        *time.Time        `json:"deadline"`
	Status          OpportunityStatus `gorm:"type:varchar(10);default:'open'" json:"status"`
	Majors          string            `gorm:"type:varchar(300)" json:"majors"`
	CategoryID      string            `gorm:"type:uuid;index" json:"category_id"`
	SourceLink      string            `gorm:"type:varchar(500);index" json:"source_link"`
	SourceType      SourceType        `gorm:"type:varchar(10);default:'admin'" json:"source_type"`
	DescriptionHash string            `gorm:"type:varchar(64)" json:"-"`
	LastCheckedAt   *time.Time        `json:"last_checked_at"`
	CreatedBy       *string           `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

type OpportunityVersion struct {
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

func (v *OpportunityVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
