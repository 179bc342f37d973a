package persistent

import (
	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.Password,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToProfileEntity(m *model.StudentProfileModel) *entity.StudentProfile {
	if m == nil {
		return nil
	}

	return &entity.StudentProfile{
		ID:        m.ID,
		UserID:    m.UserID,
		FullName:  m.FullName,
		Major:     m.Major,
		Phone:     m.Phone,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToProfileModel(e *entity.StudentProfile) *model.StudentProfileModel {
	if e == nil {
		return nil
	}

	return &model.StudentProfileModel{
		ID:        e.ID,
		UserID:    e.UserID,
		FullName:  e.FullName,
		Major:     e.Major,
		Phone:     e.Phone,
		AvatarURL: e.AvatarURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
