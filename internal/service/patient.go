package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
	"clinicdesk/pkg/validator"
)

type PatientServiceImpl struct {
	repo   repository.PatientRepository
	logger *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, logger *zap.Logger) *PatientServiceImpl {
	return &PatientServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PatientServiceImpl) Create(ctx context.Context, dto domain.CreatePatientDTO) (string, error) {
	phone := validator.FormatPhone(dto.Phone)
	if !validator.ValidatePhone(phone) {
		return "", fmt.Errorf("invalid phone number %q", dto.Phone)
	}

	now := time.Now()
	patient := domain.Patient{
		ID:                uuid.New().String(),
		FirstName:         dto.FirstName,
		LastName:          dto.LastName,
		Email:             dto.Email,
		Phone:             phone,
		DateOfBirth:       dto.DateOfBirth,
		Address:           dto.Address,
		InsuranceProvider: dto.InsuranceProvider,
		InsuranceID:       dto.InsuranceID,
		MedicalHistory:    dto.MedicalHistory,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		s.logger.Error("failed to create patient", zap.Error(err))
		return "", err
	}

	return patient.ID, nil
}

func (s *PatientServiceImpl) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientServiceImpl) Update(ctx context.Context, id string, dto domain.UpdatePatientDTO) error {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.FirstName != nil {
		patient.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		patient.LastName = *dto.LastName
	}
	if dto.Email != nil {
		patient.Email = *dto.Email
	}
	if dto.Phone != nil {
		patient.Phone = *dto.Phone
	}
	if dto.DateOfBirth != nil {
		patient.DateOfBirth = *dto.DateOfBirth
	}
	if dto.Address != nil {
		patient.Address = *dto.Address
	}
	if dto.InsuranceProvider != nil {
		patient.InsuranceProvider = *dto.InsuranceProvider
	}
	if dto.InsuranceID != nil {
		patient.InsuranceID = *dto.InsuranceID
	}
	if dto.MedicalHistory != nil {
		patient.MedicalHistory = *dto.MedicalHistory
	}
	patient.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *patient); err != nil {
		s.logger.Error("failed to update patient", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *PatientServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PatientServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	return s.repo.List(ctx, limit, offset)
}
