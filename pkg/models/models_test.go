package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
		Role:     RoleStudent,
		IsActive: true,
	}

	// BeforeCreate should set ID if empty
	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{
		ID:       existingID,
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, user.ID)
}

func TestStudentProfile_BeforeCreate(t *testing.T) {
	profile := &StudentProfile{
		UserID:   "user-123",
		FullName: "Sara Alotaibi",
		Major:    "Computer Science",
	}

	err := profile.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
}

func TestOpportunity_BeforeCreate(t *testing.T) {
	opp := &Opportunity{
		Company:  "Deloitte",
		Title:    "Software Engineering Co-op",
		Location: "Riyadh,Riyadh",
		Status:   StatusOpen,
	}

	err := opp.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, opp.ID)
}

func TestOpportunity_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-opp-id"
	opp := &Opportunity{
		ID:      existingID,
		Company: "Deloitte",
		Title:   "Software Engineering Co-op",
	}

	err := opp.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, opp.ID)
}

func TestCategory_BeforeCreate(t *testing.T) {
	cat := &Category{Name: "Cybersecurity"}

	err := cat.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
}

func TestOpportunityVersion_BeforeCreate(t *testing.T) {
	version := &OpportunityVersion{
		OpportunityID: "opp-123",
		ContentHash:   "abc123",
	}

	err := version.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, version.ID)
}

func TestSubmission_BeforeCreate(t *testing.T) {
	sub := &Submission{
		StudentID:     "student-123",
		OpportunityID: "opp-123",
		Status:        SubmissionSubmitted,
	}

	err := sub.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
}

func TestRating_BeforeCreate(t *testing.T) {
	rating := &Rating{
		StudentID:     "student-123",
		OpportunityID: "opp-123",
		Stars:         4,
	}

	err := rating.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, rating.ID)
}

func TestReport_BeforeCreate(t *testing.T) {
	report := &Report{
		ReporterID:    "student-123",
		OpportunityID: "opp-123",
		Reason:        "expired posting",
		Status:        ReportOpen,
	}

	err := report.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, report.ID)
}

func TestBookmark_BeforeCreate(t *testing.T) {
	bookmark := &Bookmark{
		StudentID:     "student-123",
		OpportunityID: "opp-123",
	}

	err := bookmark.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, bookmark.ID)
}

func TestUserRole_Constants(t *testing.T) {
	assert.Equal(t, UserRole("student"), RoleStudent)
	assert.Equal(t, UserRole("admin"), RoleAdmin)
}

func TestOpportunityStatus_Constants(t *testing.T) {
	assert.Equal(t, OpportunityStatus("open"), StatusOpen)
	assert.Equal(t, OpportunityStatus("closed"), StatusClosed)
}

func TestSubmissionStatus_Constants(t *testing.T) {
	assert.Equal(t, SubmissionStatus("submitted"), SubmissionSubmitted)
	assert.Equal(t, SubmissionStatus("under_review"), SubmissionUnderReview)
	assert.Equal(t, SubmissionStatus("accepted"), SubmissionAccepted)
	assert.Equal(t, SubmissionStatus("rejected"), SubmissionRejected)
}
