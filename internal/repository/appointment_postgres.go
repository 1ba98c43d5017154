package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicdesk/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, appointment domain.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, appointment_type_id, date, start_time, end_time, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`

	_, err := r.db.Exec(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.TypeID,
		appointment.Date,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Status,
		appointment.Notes,
		appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, appointment_type_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time, status, notes, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrAppointmentNotFound, id)
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	return appointment, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appointment domain.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, appointment.ID, appointment.Status, appointment.Notes, time.Now())
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrAppointmentNotFound, appointment.ID)
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	baseQuery := `
		SELECT id, patient_id, doctor_id, appointment_type_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time, status, notes, created_at, updated_at
		FROM appointments
	`

	conditions, args := buildAppointmentConditions(filter)
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	baseQuery += " ORDER BY date, start_time"

	argCount := len(args) + 1
	if filter.Limit > 0 {
		baseQuery += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
		argCount++
	}
	if filter.Offset > 0 {
		baseQuery += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	baseQuery := `SELECT COUNT(*) FROM appointments`

	conditions, args := buildAppointmentConditions(filter)
	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := r.db.QueryRow(ctx, baseQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}

	return count, nil
}

func (r *AppointmentRepo) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]domain.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, appointment_type_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time, status, notes, created_at, updated_at
		FROM appointments
		WHERE doctor_id = $1 AND date = $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments by doctor and date: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func buildAppointmentConditions(filter domain.AppointmentFilter) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.PatientID != nil {
		conditions = append(conditions, fmt.Sprintf("patient_id = $%d", argCount))
		args = append(args, *filter.PatientID)
		argCount++
	}
	if filter.DoctorID != nil {
		conditions = append(conditions, fmt.Sprintf("doctor_id = $%d", argCount))
		args = append(args, *filter.DoctorID)
		argCount++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d", argCount))
		args = append(args, *filter.Date)
		argCount++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}
	if filter.ExcludeStatus != nil {
		conditions = append(conditions, fmt.Sprintf("status != $%d", argCount))
		args = append(args, *filter.ExcludeStatus)
	}

	return conditions, args
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.DoctorID,
		&a.TypeID,
		&a.Date,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	return appointments, nil
}

type AppointmentTypeRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentTypeRepository(db *pgxpool.Pool) *AppointmentTypeRepo {
	return &AppointmentTypeRepo{
		db: db,
	}
}

func (r *AppointmentTypeRepo) Create(ctx context.Context, appointmentType domain.AppointmentType) error {
	query := `
		INSERT INTO appointment_types (id, name, description, duration_minutes, color_hex, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	_, err := r.db.Exec(ctx, query,
		appointmentType.ID,
		appointmentType.Name,
		appointmentType.Description,
		appointmentType.DurationMinutes,
		appointmentType.ColorHex,
		appointmentType.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create appointment type: %w", err)
	}

	return nil
}

func (r *AppointmentTypeRepo) GetByID(ctx context.Context, id string) (*domain.AppointmentType, error) {
	query := `
		SELECT id, name, description, duration_minutes, color_hex, created_at, updated_at
		FROM appointment_types
		WHERE id = $1
	`

	var t domain.AppointmentType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.DurationMinutes,
		&t.ColorHex,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrTypeNotFound, id)
		}
		return nil, fmt.Errorf("get appointment type: %w", err)
	}

	return &t, nil
}

func (r *AppointmentTypeRepo) List(ctx context.Context) ([]domain.AppointmentType, error) {
	query := `
		SELECT id, name, description, duration_minutes, color_hex, created_at, updated_at
		FROM appointment_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appointment types: %w", err)
	}
	defer rows.Close()

	var types []domain.AppointmentType
	for rows.Next() {
		var t domain.AppointmentType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.DurationMinutes, &t.ColorHex, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment type: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointment types: %w", err)
	}

	return types, nil
}

func (r *AppointmentTypeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointment_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrTypeNotFound, id)
	}
	return nil
}

type ReminderRepo struct {
	db *pgxpool.Pool
}

func NewReminderRepository(db *pgxpool.Pool) *ReminderRepo {
	return &ReminderRepo{
		db: db,
	}
}

func (r *ReminderRepo) Create(ctx context.Context, reminder domain.Reminder) error {
	query := `
		INSERT INTO appointment_reminders (id, appointment_id, type, scheduled_at, message, sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		reminder.ID,
		reminder.AppointmentID,
		reminder.Type,
		reminder.ScheduledAt,
		reminder.Message,
		reminder.Sent,
		reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}

	return nil
}

func (r *ReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	query := `
		SELECT id, appointment_id, type, scheduled_at, message, sent, sent_at, created_at
		FROM appointment_reminders
		WHERE id = $1
	`

	var reminder domain.Reminder
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reminder.ID,
		&reminder.AppointmentID,
		&reminder.Type,
		&reminder.ScheduledAt,
		&reminder.Message,
		&reminder.Sent,
		&reminder.SentAt,
		&reminder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrReminderNotFound, id)
		}
		return nil, fmt.Errorf("get reminder: %w", err)
	}

	return &reminder, nil
}

func (r *ReminderRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]domain.Reminder, error) {
	query := `
		SELECT id, appointment_id, type, scheduled_at, message, sent, sent_at, created_at
		FROM appointment_reminders
		WHERE appointment_id = $1
		ORDER BY scheduled_at
	`

	return r.queryReminders(ctx, query, appointmentID)
}

func (r *ReminderRepo) ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	query := `
		SELECT id, appointment_id, type, scheduled_at, message, sent, sent_at, created_at
		FROM appointment_reminders
		WHERE sent = false AND scheduled_at <= $1
		ORDER BY scheduled_at
	`

	return r.queryReminders(ctx, query, now)
}

func (r *ReminderRepo) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE appointment_reminders SET sent = true, sent_at = $2 WHERE id = $1`, id, sentAt)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrReminderNotFound, id)
	}
	return nil
}

func (r *ReminderRepo) queryReminders(ctx context.Context, query string, args ...interface{}) ([]domain.Reminder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		var reminder domain.Reminder
		if err := rows.Scan(
			&reminder.ID,
			&reminder.AppointmentID,
			&reminder.Type,
			&reminder.ScheduledAt,
			&reminder.Message,
			&reminder.Sent,
			&reminder.SentAt,
			&reminder.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}

	return reminders, nil
}
