package services

import (
	"strings"

	"jobtrack_backend/internal/auth"
	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(userID string) (*dto.ProfileResponse, error)
	UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.UpdateUserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user with a bcrypt-derived password hash and issues
// the first identity token.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:  dto.UserBrief{Name: user.Name},
		Token: token,
	}, nil
}

// Login verifies credentials. An unknown email and a wrong password fail
// with the same error so neither leaks which one was wrong.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:  dto.UserBrief{Name: user.Name},
		Token: token,
	}, nil
}

func (s *AuthServiceImpl) GetUser(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		User: dto.ProfileUser{
			Name:         user.Name,
			Email:        user.Email,
			CustomFields: user.CustomFields,
		},
	}, nil
}

// UpdateUser overwrites name, email and the custom-field list wholesale,
// then re-issues a token carrying the new name.
func (s *AuthServiceImpl) UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.UpdateUserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user.Name = req.Name
	user.Email = normalizeEmail(req.Email)
	user.CustomFields = req.CustomFields

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UpdateUserResponse{
		User:  user,
		Token: token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
