package persistent

import (
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/engagement/internal/model"
)

func ToSubmissionEntity(m *model.SubmissionModel) *entity.Submission {
	if m == nil {
		return nil
	}

	return &entity.Submission{
		ID:            m.ID,
		StudentID:     m.StudentID,
		OpportunityID: m.OpportunityID,
		Status:        entity.SubmissionStatus(m.Status),
		CoverNote:     m.CoverNote,
		ResumeURL:     m.ResumeURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToSubmissionModel(e *entity.Submission) *model.SubmissionModel {
	if e == nil {
		return nil
	}

	return &model.SubmissionModel{
		ID:            e.ID,
		StudentID:     e.StudentID,
		OpportunityID: e.OpportunityID,
		Status:        string(e.Status),
		CoverNote:     e.CoverNote,
		ResumeURL:     e.ResumeURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToRatingEntity(m *model.RatingModel) *entity.Rating {
	if m == nil {
		return nil
	}

	return &entity.Rating{
		ID:            m.ID,
		StudentID:     m.StudentID,
		OpportunityID: m.OpportunityID,
		Stars:         m.Stars,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToReportEntity(m *model.ReportModel) *entity.Report {
	if m == nil {
		return nil
	}

	return &entity.Report{
		ID:            m.ID,
		StudentID:     m.ReporterID,
		OpportunityID: m.OpportunityID,
		Reason:        m.Reason,
		Details:       m.Details,
		Status:        entity.ReportStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToBookmarkEntity(m *model.BookmarkModel) *entity.Bookmark {
	if m == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:            m.ID,
		StudentID:     m.StudentID,
		OpportunityID: m.OpportunityID,
		CreatedAt:     m.CreatedAt,
	}
}
