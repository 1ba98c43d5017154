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

type PatientRepo struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) *PatientRepo {
	return &PatientRepo{
		db: db,
	}
}

func (r *PatientRepo) Create(ctx context.Context, patient domain.Patient) error {
	query := `
		INSERT INTO patients (id, first_name, last_name, email, phone, date_of_birth, address, insurance_provider, insurance_id, medical_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
	`

	_, err := r.db.Exec(ctx, query,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.Phone,
		patient.DateOfBirth,
		patient.Address,
		patient.InsuranceProvider,
		patient.InsuranceID,
		patient.MedicalHistory,
		patient.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}

	return nil
}

func (r *PatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, date_of_birth, address, insurance_provider, insurance_id, medical_history, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	var patient domain.Patient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&patient.ID,
		&patient.FirstName,
		&patient.LastName,
		&patient.Email,
		&patient.Phone,
		&patient.DateOfBirth,
		&patient.Address,
		&patient.InsuranceProvider,
		&patient.InsuranceID,
		&patient.MedicalHistory,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrPatientNotFound, id)
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	return &patient, nil
}

func (r *PatientRepo) Update(ctx context.Context, patient domain.Patient) error {
	query := `
		UPDATE patients
		SET first_name = $2, last_name = $3, email = $4, phone = $5, date_of_birth = $6, address = $7, insurance_provider = $8, insurance_id = $9, medical_history = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.Phone,
		patient.DateOfBirth,
		patient.Address,
		patient.InsuranceProvider,
		patient.InsuranceID,
		patient.MedicalHistory,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrPatientNotFound, patient.ID)
	}

	return nil
}

func (r *PatientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrPatientNotFound, id)
	}
	return nil
}

func (r *PatientRepo) List(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, date_of_birth, address, insurance_provider, insurance_id, medical_history, created_at, updated_at
		FROM patients
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var patient domain.Patient
		if err := rows.Scan(
			&patient.ID,
			&patient.FirstName,
			&patient.LastName,
			&patient.Email,
			&patient.Phone,
			&patient.DateOfBirth,
			&patient.Address,
			&patient.InsuranceProvider,
			&patient.InsuranceID,
			&patient.MedicalHistory,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}

	return patients, nil
}
