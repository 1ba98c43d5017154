package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"clinicdesk/internal/domain"
)

type MemoryMedicalRecordRepo struct {
	mu      sync.RWMutex
	records []domain.MedicalRecord
	images  []domain.MedicalImage
}

func NewMemoryMedicalRecordRepository() *MemoryMedicalRecordRepo {
	return &MemoryMedicalRecordRepo{}
}

func (r *MemoryMedicalRecordRepo) Create(ctx context.Context, record domain.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	return nil
}

func (r *MemoryMedicalRecordRepo) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].ID == id {
			record := r.records[i]
			return &record, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, id)
}

func (r *MemoryMedicalRecordRepo) Update(ctx context.Context, record domain.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = record
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, record.ID)
}

func (r *MemoryMedicalRecordRepo) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]domain.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.MedicalRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			matched = append(matched, rec)
		}
	}

	// Newest first, mirroring the clinical view.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []domain.MedicalRecord{}, nil
	}

	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return matched[offset:end], nil
}

func (r *MemoryMedicalRecordRepo) AddImage(ctx context.Context, image domain.MedicalImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.images = append(r.images, image)
	return nil
}

func (r *MemoryMedicalRecordRepo) GetImageByID(ctx context.Context, id string) (*domain.MedicalImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.images {
		if r.images[i].ID == id {
			image := r.images[i]
			return &image, nil
		}
	}
	return nil, fmt.Errorf("%w: image id %s", domain.ErrRecordNotFound, id)
}

func (r *MemoryMedicalRecordRepo) ListImages(ctx context.Context, recordID string) ([]domain.MedicalImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.MedicalImage
	for _, img := range r.images {
		if img.RecordID == recordID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *MemoryMedicalRecordRepo) DeleteImage(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.images {
		if r.images[i].ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: image id %s", domain.ErrRecordNotFound, id)
}
