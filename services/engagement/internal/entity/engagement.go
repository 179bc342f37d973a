package entity

import "time"

type SubmissionStatus string

const (
	SubmissionSubmitted   SubmissionStatus = "submitted"
	SubmissionUnderReview SubmissionStatus = "under_review"
	SubmissionAccepted    SubmissionStatus = "accepted"
	SubmissionRejected    SubmissionStatus = "rejected"
)

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
)

type Submission struct {
	ID            string           `json:"id"`
	StudentID     string           `json:"student_id"`
	OpportunityID string           `json:"opportunity_id"`
	Status        SubmissionStatus `json:"status"`
	CoverNote     string           `json:"cover_note,omitempty"`
	ResumeURL     string           `json:"resume_url,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type Rating struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	OpportunityID string    `json:"opportunity_id"`
	Stars         int       `json:"stars"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RatingSummary is the aggregate shown on an opportunity page.
type RatingSummary struct {
	OpportunityID string  `json:"opportunity_id"`
	Average       float64 `json:"average"`
	Count         int64   `json:"count"`
}

type Report struct {
	ID            string       `json:"id"`
	StudentID     string       `json:"student_id"`
	OpportunityID string       `json:"opportunity_id"`
	Reason        string       `json:"reason"`
	Details       string       `json:"details,omitempty"`
	Status        ReportStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type Bookmark struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	OpportunityID string    `json:"opportunity_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// LeaderboardEntry is one row of the engagement leaderboard.
type LeaderboardEntry struct {
	StudentID string  `json:"student_id"`
	Score     float64 `json:"score"`
	Rank      int     `json:"rank"`
}
