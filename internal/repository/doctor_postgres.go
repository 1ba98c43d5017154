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

type DoctorRepo struct {
	db *pgxpool.Pool
}

func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepo {
	return &DoctorRepo{
		db: db,
	}
}

func (r *DoctorRepo) Create(ctx context.Context, doctor domain.Doctor) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO doctors (id, first_name, last_name, email, phone, specialization, qualifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`

	_, err = tx.Exec(ctx, query,
		doctor.ID,
		doctor.FirstName,
		doctor.LastName,
		doctor.Email,
		doctor.Phone,
		doctor.Specialization,
		doctor.Qualifications,
		doctor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}

	if err := insertAvailability(ctx, tx, doctor.ID, doctor.Availability); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *DoctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, specialization, qualifications, created_at, updated_at
		FROM doctors
		WHERE id = $1
	`

	var doctor domain.Doctor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doctor.ID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.Email,
		&doctor.Phone,
		&doctor.Specialization,
		&doctor.Qualifications,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, id)
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}

	availability, err := r.loadAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	doctor.Availability = availability

	return &doctor, nil
}

func (r *DoctorRepo) Update(ctx context.Context, doctor domain.Doctor) error {
	query := `
		UPDATE doctors
		SET first_name = $2, last_name = $3, email = $4, phone = $5, specialization = $6, qualifications = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		doctor.ID,
		doctor.FirstName,
		doctor.LastName,
		doctor.Email,
		doctor.Phone,
		doctor.Specialization,
		doctor.Qualifications,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, doctor.ID)
	}

	return nil
}

func (r *DoctorRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, id)
	}
	return nil
}

func (r *DoctorRepo) List(ctx context.Context, limit, offset int) ([]domain.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, specialization, qualifications, created_at, updated_at
		FROM doctors
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var doctor domain.Doctor
		if err := rows.Scan(
			&doctor.ID,
			&doctor.FirstName,
			&doctor.LastName,
			&doctor.Email,
			&doctor.Phone,
			&doctor.Specialization,
			&doctor.Qualifications,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}

	for i := range doctors {
		availability, err := r.loadAvailability(ctx, doctors[i].ID)
		if err != nil {
			return nil, err
		}
		doctors[i].Availability = availability
	}

	return doctors, nil
}

func (r *DoctorRepo) SetAvailability(ctx context.Context, doctorID string, windows []domain.Availability) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`, doctorID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check doctor: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %s", domain.ErrDoctorNotFound, doctorID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM doctor_availability WHERE doctor_id = $1`, doctorID); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}

	if err := insertAvailability(ctx, tx, doctorID, windows); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *DoctorRepo) CreateTimeOff(ctx context.Context, timeOff domain.TimeOff) error {
	query := `
		INSERT INTO doctor_time_off (id, doctor_id, start_at, end_at, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		timeOff.ID,
		timeOff.DoctorID,
		timeOff.StartAt,
		timeOff.EndAt,
		timeOff.Reason,
		timeOff.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create time off: %w", err)
	}

	return nil
}

func (r *DoctorRepo) ListTimeOffs(ctx context.Context, doctorID string) ([]domain.TimeOff, error) {
	query := `
		SELECT id, doctor_id, start_at, end_at, reason, created_at
		FROM doctor_time_off
		WHERE doctor_id = $1
		ORDER BY start_at
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list time offs: %w", err)
	}
	defer rows.Close()

	var timeOffs []domain.TimeOff
	for rows.Next() {
		var t domain.TimeOff
		if err := rows.Scan(&t.ID, &t.DoctorID, &t.StartAt, &t.EndAt, &t.Reason, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan time off: %w", err)
		}
		timeOffs = append(timeOffs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time offs: %w", err)
	}

	return timeOffs, nil
}

func (r *DoctorRepo) DeleteTimeOff(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctor_time_off WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time off: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrTimeOffNotFound, id)
	}
	return nil
}

func (r *DoctorRepo) loadAvailability(ctx context.Context, doctorID string) ([]domain.Availability, error) {
	query := `
		SELECT day, start_time, end_time
		FROM doctor_availability
		WHERE doctor_id = $1
		ORDER BY CASE day
			WHEN 'Monday' THEN 1
			WHEN 'Tuesday' THEN 2
			WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4
			WHEN 'Friday' THEN 5
			WHEN 'Saturday' THEN 6
			WHEN 'Sunday' THEN 7
		END, start_time
	`

	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	defer rows.Close()

	var windows []domain.Availability
	for rows.Next() {
		var w domain.Availability
		if err := rows.Scan(&w.Day, &w.StartTime, &w.EndTime); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability: %w", err)
	}

	return windows, nil
}

func insertAvailability(ctx context.Context, tx pgx.Tx, doctorID string, windows []domain.Availability) error {
	for _, w := range windows {
		_, err := tx.Exec(ctx, `
			INSERT INTO doctor_availability (doctor_id, day, start_time, end_time)
			VALUES ($1, $2, $3, $4)
		`, doctorID, w.Day, w.StartTime, w.EndTime)
		if err != nil {
			return fmt.Errorf("insert availability window: %w", err)
		}
	}
	return nil
}
