package repository

import (
	"context"
	"fmt"
	"sync"

	"clinicdesk/internal/domain"
)

// MemoryDoctorRepo keeps doctors and their schedule data in process
// memory. It backs demo mode and the unit tests.
type MemoryDoctorRepo struct {
	mu       sync.RWMutex
	doctors  []domain.Doctor
	timeOffs []domain.TimeOff
}

func NewMemoryDoctorRepository() *MemoryDoctorRepo {
	return &MemoryDoctorRepo{}
}

func (r *MemoryDoctorRepo) Create(ctx context.Context, doctor domain.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doctors = append(r.doctors, doctor)
	return nil
}

func (r *MemoryDoctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, id)
}

func (r *MemoryDoctorRepo) Update(ctx context.Context, doctor domain.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doctors {
		if r.doctors[i].ID == doctor.ID {
			r.doctors[i] = doctor
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, doctor.ID)
}

func (r *MemoryDoctorRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doctors {
		if r.doctors[i].ID == id {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, id)
}

func (r *MemoryDoctorRepo) List(ctx context.Context, limit, offset int) ([]domain.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.doctors) {
		return []domain.Doctor{}, nil
	}

	end := len(r.doctors)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]domain.Doctor, end-offset)
	copy(out, r.doctors[offset:end])
	return out, nil
}

func (r *MemoryDoctorRepo) SetAvailability(ctx context.Context, doctorID string, windows []domain.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doctors {
		if r.doctors[i].ID == doctorID {
			r.doctors[i].Availability = append([]domain.Availability(nil), windows...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, doctorID)
}

func (r *MemoryDoctorRepo) CreateTimeOff(ctx context.Context, timeOff domain.TimeOff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doctors {
		if r.doctors[i].ID == timeOff.DoctorID {
			r.timeOffs = append(r.timeOffs, timeOff)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, timeOff.DoctorID)
}

func (r *MemoryDoctorRepo) ListTimeOffs(ctx context.Context, doctorID string) ([]domain.TimeOff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.TimeOff
	for _, t := range r.timeOffs {
		if t.DoctorID == doctorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemoryDoctorRepo) DeleteTimeOff(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.timeOffs {
		if r.timeOffs[i].ID == id {
			r.timeOffs = append(r.timeOffs[:i], r.timeOffs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrTimeOffNotFound, id)
}
