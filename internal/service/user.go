package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
	"clinicdesk/pkg/auth"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, dto domain.CreateUserDTO) (string, error) {
	passwordHash, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return "", errors.New("failed to create user")
	}

	now := time.Now()
	user := domain.User{
		ID:           uuid.New().String(),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: passwordHash,
		Role:         dto.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return "", err
	}

	return user.ID, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateUserDTO) error {
	return s.repo.Update(ctx, id, dto)
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id string, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil || !ok {
		return errors.New("old password is incorrect")
	}

	passwordHash, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return errors.New("failed to update password")
	}

	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.repo.List(ctx, limit, offset)
}
