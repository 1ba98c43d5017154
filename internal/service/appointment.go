package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
	"clinicdesk/pkg/validator"
)

type AppointmentServiceImpl struct {
	repo        repository.AppointmentRepository
	typeRepo    repository.AppointmentTypeRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	slotMinutes int
	logger      *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	typeRepo repository.AppointmentTypeRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	cfg config.SchedulingConfig,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	slot := cfg.SlotMinutes
	if slot <= 0 {
		slot = 30
	}

	return &AppointmentServiceImpl{
		repo:        repo,
		typeRepo:    typeRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		slotMinutes: slot,
		logger:      logger,
	}
}

// Create validates a booking candidate and persists it as scheduled.
// Checks run in a fixed order and stop at the first failure: doctor,
// patient, weekday window, working hours, time off, doctor slot
// conflict, patient double-booking. Nothing is written unless every
// check passes.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	if !validator.ValidateDate(dto.Date) {
		return nil, fmt.Errorf("invalid date %q", dto.Date)
	}
	if !validator.ValidateClock(dto.StartTime) {
		return nil, fmt.Errorf("invalid start time %q", dto.StartTime)
	}
	if dto.EndTime != "" && !validator.ValidateClock(dto.EndTime) {
		return nil, fmt.Errorf("invalid end time %q", dto.EndTime)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, dto.DoctorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.patientRepo.GetByID(ctx, dto.PatientID); err != nil {
		return nil, err
	}

	endTime := dto.EndTime
	if endTime == "" {
		duration := s.slotMinutes
		if dto.TypeID != nil {
			appointmentType, err := s.typeRepo.GetByID(ctx, *dto.TypeID)
			if err != nil {
				return nil, err
			}
			duration = appointmentType.DurationMinutes
		}
		endTime = ComputeEndTime(dto.StartTime, duration)
	} else if endTime <= dto.StartTime {
		return nil, fmt.Errorf("%w: %s-%s", domain.ErrInvalidTimeRange, dto.StartTime, endTime)
	}

	weekday, err := WeekdayOf(dto.Date)
	if err != nil {
		return nil, err
	}

	window, ok := findWindow(doctor.Availability, weekday)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDoctorUnavailable, weekday)
	}

	if dto.StartTime < window.StartTime || endTime > window.EndTime {
		return nil, fmt.Errorf("%w: window %s-%s", domain.ErrOutsideWorkingHours, window.StartTime, window.EndTime)
	}

	if err := s.checkTimeOff(ctx, dto.DoctorID, dto.Date, dto.StartTime, endTime); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByDoctorAndDate(ctx, dto.DoctorID, dto.Date)
	if err != nil {
		s.logger.Error("conflict scan failed", zap.String("doctorID", dto.DoctorID), zap.Error(err))
		return nil, fmt.Errorf("check existing appointments: %w", err)
	}

	for _, other := range existing {
		if other.Status == domain.AppointmentStatusCancelled {
			continue
		}
		if Overlaps(dto.StartTime, endTime, other.StartTime, other.EndTime) {
			return nil, fmt.Errorf("%w: %s %s-%s", domain.ErrSlotConflict, other.Date, other.StartTime, other.EndTime)
		}
	}

	// a patient cannot be in two places at once, even with different
	// doctors
	cancelled := domain.AppointmentStatusCancelled
	patientExisting, err := s.repo.List(ctx, domain.AppointmentFilter{
		PatientID:     &dto.PatientID,
		Date:          &dto.Date,
		ExcludeStatus: &cancelled,
	})
	if err != nil {
		s.logger.Error("patient conflict scan failed", zap.String("patientID", dto.PatientID), zap.Error(err))
		return nil, fmt.Errorf("check patient appointments: %w", err)
	}
	for _, other := range patientExisting {
		if Overlaps(dto.StartTime, endTime, other.StartTime, other.EndTime) {
			return nil, fmt.Errorf("%w: patient is booked %s-%s", domain.ErrSlotConflict, other.StartTime, other.EndTime)
		}
	}

	now := time.Now()
	appointment := domain.Appointment{
		ID:        uuid.New().String(),
		PatientID: dto.PatientID,
		DoctorID:  dto.DoctorID,
		TypeID:    dto.TypeID,
		Date:      dto.Date,
		StartTime: dto.StartTime,
		EndTime:   endTime,
		Status:    domain.AppointmentStatusScheduled,
		Notes:     dto.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		s.logger.Error("failed to create appointment", zap.Error(err))
		return nil, err
	}

	return &appointment, nil
}

func (s *AppointmentServiceImpl) checkTimeOff(ctx context.Context, doctorID, date, startTime, endTime string) error {
	timeOffs, err := s.doctorRepo.ListTimeOffs(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("check time off: %w", err)
	}
	if len(timeOffs) == 0 {
		return nil
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment start %q %q: %w", date, startTime, err)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", date+" "+endTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment end %q %q: %w", date, endTime, err)
	}

	for _, off := range timeOffs {
		if start.Before(off.EndAt) && off.StartAt.Before(end) {
			return fmt.Errorf("%w: %s to %s", domain.ErrDoctorTimeOff,
				off.StartAt.Format(time.RFC3339), off.EndAt.Format(time.RFC3339))
		}
	}

	return nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentServiceImpl) GetDetails(ctx context.Context, id string) (*domain.AppointmentDetails, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.GetByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}

	return &domain.AppointmentDetails{
		Appointment: *appointment,
		Doctor:      *doctor,
		Patient:     *patient,
	}, nil
}

// UpdateStatus enforces the transition table: a scheduled appointment
// may become completed or cancelled, and both of those are terminal.
func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id string, dto domain.UpdateAppointmentStatusDTO) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !validTransition(appointment.Status, dto.Status) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, appointment.Status, dto.Status)
	}

	appointment.Status = dto.Status
	appointment.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *appointment); err != nil {
		s.logger.Error("failed to update appointment status",
			zap.String("id", id),
			zap.String("status", string(dto.Status)),
			zap.Error(err))
		return err
	}

	return nil
}

func validTransition(from, to domain.AppointmentStatus) bool {
	if from != domain.AppointmentStatusScheduled {
		return false
	}
	return to == domain.AppointmentStatusCompleted || to == domain.AppointmentStatusCancelled
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, domain.UpdateAppointmentStatusDTO{
		Status: domain.AppointmentStatusCancelled,
	})
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list appointments", zap.Error(err))
		return nil, 0, err
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Warn("failed to count appointments", zap.Error(err))
		return appointments, len(appointments), nil
	}

	return appointments, count, nil
}

func (s *AppointmentServiceImpl) CreateType(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (string, error) {
	duration := dto.DurationMinutes
	if duration <= 0 {
		duration = s.slotMinutes
	}

	now := time.Now()
	appointmentType := domain.AppointmentType{
		ID:              uuid.New().String(),
		Name:            dto.Name,
		Description:     dto.Description,
		DurationMinutes: duration,
		ColorHex:        dto.ColorHex,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.typeRepo.Create(ctx, appointmentType); err != nil {
		s.logger.Error("failed to create appointment type", zap.Error(err))
		return "", err
	}

	return appointmentType.ID, nil
}

func (s *AppointmentServiceImpl) GetType(ctx context.Context, id string) (*domain.AppointmentType, error) {
	return s.typeRepo.GetByID(ctx, id)
}

func (s *AppointmentServiceImpl) ListTypes(ctx context.Context) ([]domain.AppointmentType, error) {
	return s.typeRepo.List(ctx)
}

func (s *AppointmentServiceImpl) DeleteType(ctx context.Context, id string) error {
	return s.typeRepo.Delete(ctx, id)
}
