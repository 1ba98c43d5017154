package repository

import (
	"context"
	"fmt"
	"sync"

	"clinicdesk/internal/domain"
)

type MemoryPatientRepo struct {
	mu       sync.RWMutex
	patients []domain.Patient
}

func NewMemoryPatientRepository() *MemoryPatientRepo {
	return &MemoryPatientRepo{}
}

func (r *MemoryPatientRepo) Create(ctx context.Context, patient domain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients = append(r.patients, patient)
	return nil
}

func (r *MemoryPatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.patients {
		if r.patients[i].ID == id {
			patient := r.patients[i]
			return &patient, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrPatientNotFound, id)
}

func (r *MemoryPatientRepo) Update(ctx context.Context, patient domain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == patient.ID {
			r.patients[i] = patient
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrPatientNotFound, patient.ID)
}

func (r *MemoryPatientRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrPatientNotFound, id)
}

func (r *MemoryPatientRepo) List(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.patients) {
		return []domain.Patient{}, nil
	}

	end := len(r.patients)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]domain.Patient, end-offset)
	copy(out, r.patients[offset:end])
	return out, nil
}
