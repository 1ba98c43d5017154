package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicdesk/internal/domain"
)

type MedicalRecordRepo struct {
	db *pgxpool.Pool
}

func NewMedicalRecordRepository(db *pgxpool.Pool) *MedicalRecordRepo {
	return &MedicalRecordRepo{
		db: db,
	}
}

func (r *MedicalRecordRepo) Create(ctx context.Context, record domain.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (id, patient_id, doctor_id, appointment_id, diagnosis, treatment_plan, prescription, notes, is_confidential, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.PatientID,
		record.DoctorID,
		record.AppointmentID,
		record.Diagnosis,
		record.TreatmentPlan,
		record.Prescription,
		record.Notes,
		record.IsConfidential,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create medical record: %w", err)
	}

	return nil
}

func (r *MedicalRecordRepo) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, doctor_id, appointment_id, diagnosis, treatment_plan, prescription, notes, is_confidential, created_at, updated_at
		FROM medical_records
		WHERE id = $1
	`

	var record domain.MedicalRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.PatientID,
		&record.DoctorID,
		&record.AppointmentID,
		&record.Diagnosis,
		&record.TreatmentPlan,
		&record.Prescription,
		&record.Notes,
		&record.IsConfidential,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("get medical record: %w", err)
	}

	return &record, nil
}

func (r *MedicalRecordRepo) Update(ctx context.Context, record domain.MedicalRecord) error {
	query := `
		UPDATE medical_records
		SET diagnosis = $2, treatment_plan = $3, prescription = $4, notes = $5, is_confidential = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		record.ID,
		record.Diagnosis,
		record.TreatmentPlan,
		record.Prescription,
		record.Notes,
		record.IsConfidential,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update medical record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, record.ID)
	}

	return nil
}

func (r *MedicalRecordRepo) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]domain.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, doctor_id, appointment_id, diagnosis, treatment_plan, prescription, notes, is_confidential, created_at, updated_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	var records []domain.MedicalRecord
	for rows.Next() {
		var record domain.MedicalRecord
		if err := rows.Scan(
			&record.ID,
			&record.PatientID,
			&record.DoctorID,
			&record.AppointmentID,
			&record.Diagnosis,
			&record.TreatmentPlan,
			&record.Prescription,
			&record.Notes,
			&record.IsConfidential,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medical records: %w", err)
	}

	return records, nil
}

func (r *MedicalRecordRepo) AddImage(ctx context.Context, image domain.MedicalImage) error {
	query := `
		INSERT INTO medical_images (id, record_id, title, description, image_type, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		image.ID,
		image.RecordID,
		image.Title,
		image.Description,
		image.ImageType,
		image.FileURL,
		image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("add medical image: %w", err)
	}

	return nil
}

func (r *MedicalRecordRepo) GetImageByID(ctx context.Context, id string) (*domain.MedicalImage, error) {
	query := `
		SELECT id, record_id, title, description, image_type, file_url, created_at
		FROM medical_images
		WHERE id = $1
	`

	var image domain.MedicalImage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.RecordID,
		&image.Title,
		&image.Description,
		&image.ImageType,
		&image.FileURL,
		&image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: image id %s", domain.ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("get medical image: %w", err)
	}

	return &image, nil
}

func (r *MedicalRecordRepo) ListImages(ctx context.Context, recordID string) ([]domain.MedicalImage, error) {
	query := `
		SELECT id, record_id, title, description, image_type, file_url, created_at
		FROM medical_images
		WHERE record_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("list medical images: %w", err)
	}
	defer rows.Close()

	var images []domain.MedicalImage
	for rows.Next() {
		var image domain.MedicalImage
		if err := rows.Scan(
			&image.ID,
			&image.RecordID,
			&image.Title,
			&image.Description,
			&image.ImageType,
			&image.FileURL,
			&image.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medical image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medical images: %w", err)
	}

	return images, nil
}

func (r *MedicalRecordRepo) DeleteImage(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM medical_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medical image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: image id %s", domain.ErrRecordNotFound, id)
	}
	return nil
}
