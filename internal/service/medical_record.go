package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/storage"
)

type MedicalRecordServiceImpl struct {
	repo            repository.MedicalRecordRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	fileStorage     storage.FileStorage
	logger          *zap.Logger
}

func NewMedicalRecordService(
	repo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *MedicalRecordServiceImpl {
	return &MedicalRecordServiceImpl{
		repo:            repo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

// Create stores a record after checking the referenced patient and
// doctor exist. When the record is tied to an appointment, the
// appointment's doctor and patient must be the same pair.
func (s *MedicalRecordServiceImpl) Create(ctx context.Context, dto domain.CreateMedicalRecordDTO) (string, error) {
	if _, err := s.patientRepo.GetByID(ctx, dto.PatientID); err != nil {
		return "", err
	}
	if _, err := s.doctorRepo.GetByID(ctx, dto.DoctorID); err != nil {
		return "", err
	}

	if dto.AppointmentID != nil {
		appointment, err := s.appointmentRepo.GetByID(ctx, *dto.AppointmentID)
		if err != nil {
			return "", err
		}
		if appointment.PatientID != dto.PatientID || appointment.DoctorID != dto.DoctorID {
			return "", fmt.Errorf("%w: appointment %s", domain.ErrRecordMismatch, appointment.ID)
		}
	}

	now := time.Now()
	record := domain.MedicalRecord{
		ID:             uuid.New().String(),
		PatientID:      dto.PatientID,
		DoctorID:       dto.DoctorID,
		AppointmentID:  dto.AppointmentID,
		Diagnosis:      dto.Diagnosis,
		TreatmentPlan:  dto.TreatmentPlan,
		Prescription:   dto.Prescription,
		Notes:          dto.Notes,
		IsConfidential: dto.IsConfidential,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to create medical record", zap.Error(err))
		return "", err
	}

	return record.ID, nil
}

func (s *MedicalRecordServiceImpl) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MedicalRecordServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateMedicalRecordDTO) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Diagnosis != nil {
		record.Diagnosis = *dto.Diagnosis
	}
	if dto.TreatmentPlan != nil {
		record.TreatmentPlan = *dto.TreatmentPlan
	}
	if dto.Prescription != nil {
		record.Prescription = *dto.Prescription
	}
	if dto.Notes != nil {
		record.Notes = *dto.Notes
	}
	if dto.IsConfidential != nil {
		record.IsConfidential = *dto.IsConfidential
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *record); err != nil {
		s.logger.Error("failed to update medical record", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *MedicalRecordServiceImpl) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]domain.MedicalRecord, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *MedicalRecordServiceImpl) UploadImage(ctx context.Context, recordID string, dto domain.CreateMedicalImageDTO, data []byte, filename string) (string, error) {
	if _, err := s.repo.GetByID(ctx, recordID); err != nil {
		return "", err
	}

	fileURL, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("failed to upload medical image", zap.String("recordID", recordID), zap.Error(err))
		return "", err
	}

	image := domain.MedicalImage{
		ID:          uuid.New().String(),
		RecordID:    recordID,
		Title:       dto.Title,
		Description: dto.Description,
		ImageType:   dto.ImageType,
		FileURL:     fileURL,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.AddImage(ctx, image); err != nil {
		if delErr := s.fileStorage.DeleteFile(ctx, fileURL); delErr != nil {
			s.logger.Warn("failed to clean up orphaned image file", zap.String("fileURL", fileURL), zap.Error(delErr))
		}
		return "", err
	}

	return image.ID, nil
}

func (s *MedicalRecordServiceImpl) ListImages(ctx context.Context, recordID string) ([]domain.MedicalImage, error) {
	if _, err := s.repo.GetByID(ctx, recordID); err != nil {
		return nil, err
	}
	return s.repo.ListImages(ctx, recordID)
}

func (s *MedicalRecordServiceImpl) DeleteImage(ctx context.Context, imageID string) error {
	image, err := s.repo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return err
	}

	if err := s.fileStorage.DeleteFile(ctx, image.FileURL); err != nil {
		s.logger.Warn("failed to delete image file", zap.String("fileURL", image.FileURL), zap.Error(err))
	}

	return nil
}
