package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/CyberVigilant/CoopStation-01/pkg/jwt"
	"github.com/CyberVigilant/CoopStation-01/pkg/logger"
	"github.com/CyberVigilant/CoopStation-01/pkg/s3"
	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/entity"
	"github.com/CyberVigilant/CoopStation-01/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AuthUseCase interface {
	Register(fullName, username, email, password, passwordConfirm string) (*entity.User, string, error)
	Login(identifier, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	GetProfile(userID string) (*entity.StudentProfile, error)
	UpdateProfile(userID string, fullName, major, phone *string) (*entity.StudentProfile, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.StudentProfile, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(fullName, username, email, password, passwordConfirm string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if password != passwordConfirm {
		return nil, "", fmt.Errorf("passwords do not match")
	}
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("this email is already registered")
	}

	_, err = uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", fmt.Errorf("this username is already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Role:     entity.RoleStudent,
		IsActive: true,
	}

	// Default full name falls back to the username so the navbar always has
	// something to show.
	if strings.TrimSpace(fullName) == "" {
		fullName = username
	}
	profile := &entity.StudentProfile{
		FullName: strings.TrimSpace(fullName),
	}

	if err := uc.userRepo.Create(user, profile); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	user.Profile = profile
	return user, token, nil
}

// Login accepts a username or an email as the identifier. Identifiers
// containing "@" resolve through the email column, case-insensitively.
func (uc *authUseCase) Login(identifier, password string) (*entity.User, string, error) {
	identifier = strings.TrimSpace(identifier)

	var user *entity.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = uc.userRepo.GetByEmail(identifier)
	} else {
		user, err = uc.userRepo.GetByUsername(identifier)
	}
	if err != nil {
		return nil, "", fmt.Errorf("invalid username/email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid username/email or password")
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("account is deactivated")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	if profile, err := uc.userRepo.GetProfile(user.ID); err == nil {
		user.Profile = profile
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile, err := uc.userRepo.GetProfile(userID); err == nil {
		user.Profile = profile
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) GetProfile(userID string) (*entity.StudentProfile, error) {
	return uc.userRepo.GetProfile(userID)
}

func (uc *authUseCase) UpdateProfile(userID string, fullName, major, phone *string) (*entity.StudentProfile, error) {
	profile, err := uc.userRepo.GetProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found")
	}

	if fullName != nil {
		profile.FullName = strings.TrimSpace(*fullName)
	}
	if major != nil {
		profile.Major = strings.TrimSpace(*major)
	}
	if phone != nil {
		profile.Phone = strings.TrimSpace(*phone)
	}

	if err := uc.userRepo.UpdateProfile(profile); err != nil {
		uc.logger.Error("Failed to update profile: %v", err)
		return nil, fmt.Errorf("failed to update profile")
	}

	return profile, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.StudentProfile, error) {
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	profile, err := uc.userRepo.GetProfile(userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found")
	}

	profile.AvatarURL = avatarURL
	if err := uc.userRepo.UpdateProfile(profile); err != nil {
		uc.logger.Error("Failed to update profile: %v", err)
		return nil, fmt.Errorf("failed to update profile")
	}

	return profile, nil
}
