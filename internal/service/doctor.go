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

type DoctorServiceImpl struct {
	repo   repository.DoctorRepository
	logger *zap.Logger
}

func NewDoctorService(repo repository.DoctorRepository, logger *zap.Logger) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *DoctorServiceImpl) Create(ctx context.Context, dto domain.CreateDoctorDTO) (string, error) {
	windows, err := buildWindows(dto.Availability)
	if err != nil {
		return "", err
	}

	now := time.Now()
	doctor := domain.Doctor{
		ID:             uuid.New().String(),
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		Specialization: dto.Specialization,
		Qualifications: dto.Qualifications,
		Availability:   windows,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		s.logger.Error("failed to create doctor", zap.Error(err))
		return "", err
	}

	return doctor.ID, nil
}

func (s *DoctorServiceImpl) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateDoctorDTO) error {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.FirstName != nil {
		doctor.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		doctor.LastName = *dto.LastName
	}
	if dto.Email != nil {
		doctor.Email = *dto.Email
	}
	if dto.Phone != nil {
		doctor.Phone = *dto.Phone
	}
	if dto.Specialization != nil {
		doctor.Specialization = *dto.Specialization
	}
	if dto.Qualifications != nil {
		doctor.Qualifications = *dto.Qualifications
	}
	doctor.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *doctor); err != nil {
		s.logger.Error("failed to update doctor", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *DoctorServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *DoctorServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.Doctor, error) {
	return s.repo.List(ctx, limit, offset)
}

// SetAvailability replaces the doctor's weekly windows. Each window
// must have start before end, and windows sharing a weekday must not
// overlap each other.
func (s *DoctorServiceImpl) SetAvailability(ctx context.Context, doctorID string, dtos []domain.AvailabilityDTO) error {
	if _, err := s.repo.GetByID(ctx, doctorID); err != nil {
		return err
	}

	windows, err := buildWindows(dtos)
	if err != nil {
		return err
	}

	if err := s.repo.SetAvailability(ctx, doctorID, windows); err != nil {
		s.logger.Error("failed to set availability", zap.String("doctorID", doctorID), zap.Error(err))
		return err
	}

	return nil
}

func buildWindows(dtos []domain.AvailabilityDTO) ([]domain.Availability, error) {
	windows := make([]domain.Availability, 0, len(dtos))
	for _, dto := range dtos {
		// window comparisons are lexicographic, so times must be
		// zero-padded HH:MM
		if !validator.ValidateClock(dto.StartTime) || !validator.ValidateClock(dto.EndTime) {
			return nil, fmt.Errorf("%w: malformed time in %s %s-%s", domain.ErrInvalidTimeRange, dto.Day, dto.StartTime, dto.EndTime)
		}
		if dto.StartTime >= dto.EndTime {
			return nil, fmt.Errorf("%w: %s %s-%s", domain.ErrInvalidTimeRange, dto.Day, dto.StartTime, dto.EndTime)
		}
		for _, w := range windows {
			if w.Day == dto.Day && Overlaps(dto.StartTime, dto.EndTime, w.StartTime, w.EndTime) {
				return nil, fmt.Errorf("%w: %s %s-%s and %s-%s", domain.ErrAvailabilityOverlap,
					dto.Day, w.StartTime, w.EndTime, dto.StartTime, dto.EndTime)
			}
		}
		windows = append(windows, domain.Availability{
			Day:       dto.Day,
			StartTime: dto.StartTime,
			EndTime:   dto.EndTime,
		})
	}
	return windows, nil
}

func (s *DoctorServiceImpl) AddTimeOff(ctx context.Context, doctorID string, dto domain.CreateTimeOffDTO) (string, error) {
	if _, err := s.repo.GetByID(ctx, doctorID); err != nil {
		return "", err
	}

	if !dto.StartAt.Before(dto.EndAt) {
		return "", fmt.Errorf("%w: %s to %s", domain.ErrInvalidTimeRange,
			dto.StartAt.Format(time.RFC3339), dto.EndAt.Format(time.RFC3339))
	}

	timeOff := domain.TimeOff{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		StartAt:   dto.StartAt,
		EndAt:     dto.EndAt,
		Reason:    dto.Reason,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateTimeOff(ctx, timeOff); err != nil {
		s.logger.Error("failed to create time off", zap.String("doctorID", doctorID), zap.Error(err))
		return "", err
	}

	return timeOff.ID, nil
}

func (s *DoctorServiceImpl) ListTimeOffs(ctx context.Context, doctorID string) ([]domain.TimeOff, error) {
	if _, err := s.repo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	return s.repo.ListTimeOffs(ctx, doctorID)
}

func (s *DoctorServiceImpl) DeleteTimeOff(ctx context.Context, doctorID, timeOffID string) error {
	timeOffs, err := s.repo.ListTimeOffs(ctx, doctorID)
	if err != nil {
		return err
	}

	for _, off := range timeOffs {
		if off.ID == timeOffID {
			return s.repo.DeleteTimeOff(ctx, timeOffID)
		}
	}

	return fmt.Errorf("%w: id %s", domain.ErrTimeOffNotFound, timeOffID)
}
