package persistent

import (
	"strings"

	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User, profile *entity.StudentProfile) error
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	GetProfile(userID string) (*entity.StudentProfile, error)
	UpdateProfile(profile *entity.StudentProfile) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user together with its student profile in one
// transaction so an account never exists without a profile row.
func (r *userRepository) Create(user *entity.User, profile *entity.StudentProfile) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}

	profileModel := ToProfileModel(profile)
	if profileModel.ID == "" {
		profileModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}

		profileModel.UserID = userModel.ID
		if err := tx.Create(profileModel).Error; err != nil {
			return err
		}

		*user = *ToUserEntity(userModel)
		*profile = *ToProfileEntity(profileModel)
		return nil
	})
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Save(userModel).Error
}

func (r *userRepository) GetProfile(userID string) (*entity.StudentProfile, error) {
	var profileModel model.StudentProfileModel
	if err := r.db.Where("user_id = ?", userID).First(&profileModel).Error; err != nil {
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *userRepository) UpdateProfile(profile *entity.StudentProfile) error {
	profileModel := ToProfileModel(profile)
	return r.db.Save(profileModel).Error
}
