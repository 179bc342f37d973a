package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionSubmitted   SubmissionStatus = "submitted"
	SubmissionUnderReview SubmissionStatus = "under_review"
	SubmissionAccepted    SubmissionStatus = "accepted"
	SubmissionRejected    SubmissionStatus = "rejected"
)

type Submission struct {
	ID            string           `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     string           `gorm:"type:uuid;not null;index:idx_submissions_student_opp,unique" json:"student_id"`
	OpportunityID string           `gorm:"type:uuid;not null;index:idx_submissions_student_opp,unique" json:"opportunity_id"`
	Status        SubmissionStatus `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	CoverNote     string           `json:"cover_note"`
	ResumeURL     string           `gorm:"type:varchar(500)" json:"resume_url"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type Rating struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     string         `gorm:"type:uuid;not null;index:idx_ratings_student_opp,unique" json:"student_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index:idx_ratings_student_opp,unique" json:"opportunity_id"`
	Stars         int            `gorm:"not null" json:"stars"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
)

type Report struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	ReporterID    string         `gorm:"type:uuid;not null;index" json:"reporter_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index" json:"opportunity_id"`
	Reason        string         `gorm:"type:varchar(100);not null" json:"reason"`
	Details       string         `json:"details"`
	Status        ReportStatus   `gorm:"type:varchar(20);default:'open'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type Bookmark struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     string         `gorm:"type:uuid;not null;index:idx_bookmarks_student_opp,unique" json:"student_id"`
	OpportunityID string         `gorm:"type:uuid;not null;index:idx_bookmarks_student_opp,unique" json:"opportunity_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
