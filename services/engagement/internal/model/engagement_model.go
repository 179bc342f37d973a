package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     string         `gorm:"type:uuid;not null;index:idx_submissions_student_opp,unique,where:deleted_at IS NULL" json:"student_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index:idx_submissions_student_opp,unique,where:deleted_at IS NULL" json:"opportunity_id"`
	Status        string         `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	CoverNote     string         `gorm:"type:text" json:"cover_note"`
	ResumeURL     string         `gorm:"type:varchar(500)" json:"resume_url"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

func (s *SubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type RatingModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     string         `gorm:"type:uuid;not null;index:idx_ratings_student_opp,unique,where:deleted_at IS NULL" json:"student_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index:idx_ratings_student_opp,unique,where:deleted_at IS NULL" json:"opportunity_id"`
	Stars         int            `gorm:"not null" json:"stars"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RatingModel) TableName() string {
	return "ratings"
}

func (r *RatingModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type ReportModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	ReporterID    string         `gorm:"column:reporter_id;type:uuid;not null;index" json:"reporter_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index" json:"opportunity_id"`
	Reason        string         `gorm:"type:varchar(100);not null" json:"reason"`
	Details       string         `gorm:"type:text" json:"details"`
	Status        string         `gorm:"type:varchar(20);default:'open'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ReportModel) TableName() string {
	return "reports"
}

func (r *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type BookmarkModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     string         `gorm:"type:uuid;not null;index:idx_bookmarks_student_opp,unique,where:deleted_at IS NULL" json:"student_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index:idx_bookmarks_student_opp,unique,where:deleted_at IS NULL" json:"opportunity_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BookmarkModel) TableName() string {
	return "bookmarks"
}

func (b *BookmarkModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
