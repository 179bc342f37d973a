package persistent

import (
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/opportunity/internal/model"
)

func ToOpportunityEntity(m *model.OpportunityModel) *entity.Opportunity {
	if m == nil {
		return nil
	}

	createdBy := ""
	if m.CreatedBy != nil {
		createdBy = *m.CreatedBy
	}

	return &entity.Opportunity{
		ID:              m.ID,
		Company:         m.Company,
		Title:           m.Title,
		Description:     m.Description,
		Location:        m.Location,
		Region:          m.Region,
		City:            m.City,
		Deadline:        m.Deadline,
		Status:          entity.OpportunityStatus(m.Status),
		Majors:          m.Majors,
		CategoryID:      m.CategoryID,
		SourceLink:      m.SourceLink,
		SourceType:      entity.SourceType(m.SourceType),
		DescriptionHash: m.DescriptionHash,
		LastCheckedAt:   m.LastCheckedAt,
		CreatedBy:       createdBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToOpportunityModel(e *entity.Opportunity) *model.OpportunityModel {
	if e == nil {
		return nil
	}

	var createdBy *string
	if e.CreatedBy != "" {
		cb := e.CreatedBy
		createdBy = &cb
	}

	return &model.OpportunityModel{
		ID:              e.ID,
		Company:         e.Company,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		Region:          e.Region,
		City:            e.City,
		Deadline:        e.Deadline,
		Status:          string(e.Status),
		Majors:          e.Majors,
		CategoryID:      e.CategoryID,
		SourceLink:      e.SourceLink,
		SourceType:      string(e.SourceType),
		DescriptionHash: e.DescriptionHash,
		LastCheckedAt:   e.LastCheckedAt,
		CreatedBy:       createdBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToVersionModel(e *entity.OpportunityVersion) *model.OpportunityVersionModel {
	if e == nil {
		return nil
	}

	return &model.OpportunityVersionModel{
		ID:              e.ID,
		OpportunityID:   e.OpportunityID,
		FetchedAt:       e.FetchedAt,
		SourceLink:      e.SourceLink,
		DescriptionText: e.DescriptionText,
		ContentHash:     e.ContentHash,
		Changed:         e.Changed,
		CreatedAt:       e.CreatedAt,
	}
}
