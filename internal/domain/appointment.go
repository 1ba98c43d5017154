package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked visit. Date is a calendar date in
// "2006-01-02" form, StartTime/EndTime are 24-hour "HH:MM" clock values.
type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patient_id"`
	DoctorID  string            `json:"doctor_id"`
	TypeID    *string           `json:"appointment_type_id,omitempty"`
	Date      string            `json:"date"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// AppointmentDetails bundles an appointment with the referenced
// doctor and patient records for detail views.
type AppointmentDetails struct {
	Appointment Appointment `json:"appointment"`
	Doctor      Doctor      `json:"doctor"`
	Patient     Patient     `json:"patient"`
}

type CreateAppointmentDTO struct {
	PatientID string  `json:"patient_id" binding:"required"`
	DoctorID  string  `json:"doctor_id" binding:"required"`
	TypeID    *string `json:"appointment_type_id"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time"`
	Notes     string  `json:"notes"`
}

type UpdateAppointmentStatusDTO struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

type AppointmentFilter struct {
	PatientID     *string            `json:"patient_id"`
	DoctorID      *string            `json:"doctor_id"`
	Date          *string            `json:"date"`
	Status        *AppointmentStatus `json:"status"`
	ExcludeStatus *AppointmentStatus `json:"exclude_status"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

// AppointmentType describes a visit category with its own duration,
// used to derive the end time when a candidate omits it.
type AppointmentType struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	ColorHex        string    `json:"color_hex"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateAppointmentTypeDTO struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	ColorHex        string `json:"color_hex"`
}

type ReminderType string

const (
	ReminderTypeEmail ReminderType = "email"
	ReminderTypeSMS   ReminderType = "sms"
	ReminderTypeBoth  ReminderType = "both"
)

type Reminder struct {
	ID            string       `json:"id"`
	AppointmentID string       `json:"appointment_id"`
	Type          ReminderType `json:"type"`
	ScheduledAt   time.Time    `json:"scheduled_at"`
	Message       string       `json:"message,omitempty"`
	Sent          bool         `json:"sent"`
	SentAt        *time.Time   `json:"sent_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

type CreateReminderDTO struct {
	AppointmentID string       `json:"appointment_id"`
	Type          ReminderType `json:"type" binding:"required,oneof=email sms both"`
	ScheduledAt   time.Time    `json:"scheduled_at" binding:"required"`
	Message       string       `json:"message"`
}
