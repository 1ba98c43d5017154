package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/notify"
	"clinicdesk/internal/repository"
)

type ReminderServiceImpl struct {
	repo            repository.ReminderRepository
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	email           notify.EmailSender
	sms             notify.SMSSender
	logger          *zap.Logger
}

func NewReminderService(
	repo repository.ReminderRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	email notify.EmailSender,
	sms notify.SMSSender,
	logger *zap.Logger,
) *ReminderServiceImpl {
	return &ReminderServiceImpl{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		email:           email,
		sms:             sms,
		logger:          logger,
	}
}

// Create schedules a reminder for an appointment. The reminder must
// fire before the appointment starts.
func (s *ReminderServiceImpl) Create(ctx context.Context, dto domain.CreateReminderDTO) (string, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, dto.AppointmentID)
	if err != nil {
		return "", err
	}

	startAt, err := appointmentStart(appointment)
	if err != nil {
		return "", err
	}
	if !dto.ScheduledAt.Before(startAt) {
		return "", fmt.Errorf("%w: appointment starts %s", domain.ErrReminderTooLate, startAt.Format(time.RFC3339))
	}

	reminder := domain.Reminder{
		ID:            uuid.New().String(),
		AppointmentID: dto.AppointmentID,
		Type:          dto.Type,
		ScheduledAt:   dto.ScheduledAt,
		Message:       dto.Message,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, reminder); err != nil {
		s.logger.Error("failed to create reminder", zap.Error(err))
		return "", err
	}

	return reminder.ID, nil
}

func (s *ReminderServiceImpl) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.Reminder, error) {
	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		return nil, err
	}
	return s.repo.ListByAppointment(ctx, appointmentID)
}

// DispatchDue delivers every unsent reminder whose scheduled time has
// passed and returns the number delivered. Reminders for cancelled
// appointments are marked sent without delivery so they are not
// retried. Delivery failures are logged and skipped; the reminder
// stays due for the next run.
func (s *ReminderServiceImpl) DispatchDue(ctx context.Context) (int, error) {
	due, err := s.repo.ListDue(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, reminder := range due {
		appointment, err := s.appointmentRepo.GetByID(ctx, reminder.AppointmentID)
		if err != nil {
			s.logger.Warn("reminder references missing appointment",
				zap.String("reminderID", reminder.ID),
				zap.String("appointmentID", reminder.AppointmentID),
				zap.Error(err))
			continue
		}

		if appointment.Status == domain.AppointmentStatusCancelled {
			if err := s.repo.MarkSent(ctx, reminder.ID, time.Now()); err != nil {
				s.logger.Warn("failed to mark cancelled-appointment reminder", zap.String("reminderID", reminder.ID), zap.Error(err))
			}
			continue
		}

		patient, err := s.patientRepo.GetByID(ctx, appointment.PatientID)
		if err != nil {
			s.logger.Warn("reminder references missing patient",
				zap.String("reminderID", reminder.ID),
				zap.String("patientID", appointment.PatientID),
				zap.Error(err))
			continue
		}

		if err := s.deliver(ctx, reminder, appointment, patient); err != nil {
			s.logger.Error("failed to deliver reminder",
				zap.String("reminderID", reminder.ID),
				zap.String("type", string(reminder.Type)),
				zap.Error(err))
			continue
		}

		if err := s.repo.MarkSent(ctx, reminder.ID, time.Now()); err != nil {
			s.logger.Error("failed to mark reminder sent", zap.String("reminderID", reminder.ID), zap.Error(err))
			continue
		}
		sent++
	}

	return sent, nil
}

func (s *ReminderServiceImpl) deliver(ctx context.Context, reminder domain.Reminder, appointment *domain.Appointment, patient *domain.Patient) error {
	message := reminder.Message
	if message == "" {
		message = fmt.Sprintf("Reminder: you have an appointment on %s at %s.", appointment.Date, appointment.StartTime)
	}

	switch reminder.Type {
	case domain.ReminderTypeEmail:
		return s.email.SendEmail(ctx, patient.Email, patient.FirstName+" "+patient.LastName, "Appointment reminder", message)
	case domain.ReminderTypeSMS:
		return s.sms.SendSMS(ctx, patient.Phone, message)
	case domain.ReminderTypeBoth:
		if err := s.email.SendEmail(ctx, patient.Email, patient.FirstName+" "+patient.LastName, "Appointment reminder", message); err != nil {
			return err
		}
		return s.sms.SendSMS(ctx, patient.Phone, message)
	default:
		return fmt.Errorf("unknown reminder type %q", reminder.Type)
	}
}

func appointmentStart(appointment *domain.Appointment) (time.Time, error) {
	startAt, err := time.ParseInLocation("2006-01-02 15:04", appointment.Date+" "+appointment.StartTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment start %q %q: %w", appointment.Date, appointment.StartTime, err)
	}
	return startAt, nil
}
