package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"clinicdesk/internal/domain"
)

// MemoryAppointmentRepo is the in-process appointment collection. All
// writes go through the scheduling service, which is the sole gate for
// admitting new appointments.
type MemoryAppointmentRepo struct {
	mu           sync.RWMutex
	appointments []domain.Appointment
}

func NewMemoryAppointmentRepository() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{}
}

func (r *MemoryAppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, appointment)
	return nil
}

func (r *MemoryAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appointments {
		if r.appointments[i].ID == id {
			appointment := r.appointments[i]
			return &appointment, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrAppointmentNotFound, id)
}

func (r *MemoryAppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == appointment.ID {
			r.appointments[i] = appointment
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrAppointmentNotFound, appointment.ID)
}

func (r *MemoryAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filter(filter)

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].StartTime < matched[j].StartTime
	})

	if filter.Offset >= len(matched) {
		return []domain.Appointment{}, nil
	}

	end := len(matched)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}

	return matched[filter.Offset:end], nil
}

func (r *MemoryAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filter(filter)), nil
}

func (r *MemoryAppointmentRepo) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryAppointmentRepo) filter(filter domain.AppointmentFilter) []domain.Appointment {
	var matched []domain.Appointment
	for _, a := range r.appointments {
		if filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.Date != nil && a.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.ExcludeStatus != nil && a.Status == *filter.ExcludeStatus {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}

// MemoryAppointmentTypeRepo stores visit categories.
type MemoryAppointmentTypeRepo struct {
	mu    sync.RWMutex
	types []domain.AppointmentType
}

func NewMemoryAppointmentTypeRepository() *MemoryAppointmentTypeRepo {
	return &MemoryAppointmentTypeRepo{}
}

func (r *MemoryAppointmentTypeRepo) Create(ctx context.Context, appointmentType domain.AppointmentType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = append(r.types, appointmentType)
	return nil
}

func (r *MemoryAppointmentTypeRepo) GetByID(ctx context.Context, id string) (*domain.AppointmentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.types {
		if r.types[i].ID == id {
			t := r.types[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrTypeNotFound, id)
}

func (r *MemoryAppointmentTypeRepo) List(ctx context.Context) ([]domain.AppointmentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AppointmentType, len(r.types))
	copy(out, r.types)
	return out, nil
}

func (r *MemoryAppointmentTypeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.types {
		if r.types[i].ID == id {
			r.types = append(r.types[:i], r.types[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrTypeNotFound, id)
}

// MemoryReminderRepo stores appointment reminders.
type MemoryReminderRepo struct {
	mu        sync.RWMutex
	reminders []domain.Reminder
}

func NewMemoryReminderRepository() *MemoryReminderRepo {
	return &MemoryReminderRepo{}
}

func (r *MemoryReminderRepo) Create(ctx context.Context, reminder domain.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reminders = append(r.reminders, reminder)
	return nil
}

func (r *MemoryReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reminders {
		if r.reminders[i].ID == id {
			reminder := r.reminders[i]
			return &reminder, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrReminderNotFound, id)
}

func (r *MemoryReminderRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Reminder
	for _, rem := range r.reminders {
		if rem.AppointmentID == appointmentID {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *MemoryReminderRepo) ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Reminder
	for _, rem := range r.reminders {
		if !rem.Sent && !rem.ScheduledAt.After(now) {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *MemoryReminderRepo) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reminders {
		if r.reminders[i].ID == id {
			r.reminders[i].Sent = true
			at := sentAt
			r.reminders[i].SentAt = &at
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrReminderNotFound, id)
}
