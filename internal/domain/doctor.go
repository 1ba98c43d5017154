package domain

import (
	"time"
)

type Doctor struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Specialization string         `json:"specialization"`
	Qualifications string         `json:"qualifications"`
	Availability   []Availability `json:"availability"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Availability is a recurring weekly window during which the doctor
// accepts appointments. Day holds the weekday name ("Monday", ...),
// times are 24-hour "HH:MM".
type Availability struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailableDay is a concrete calendar date on which a doctor has at
// least one availability window.
type AvailableDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// TimeOff blocks a datetime range (vacation, sick leave) regardless of
// the weekly availability windows.
type TimeOff struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDoctorDTO struct {
	FirstName      string            `json:"first_name" binding:"required"`
	LastName       string            `json:"last_name" binding:"required"`
	Email          string            `json:"email" binding:"required,email"`
	Phone          string            `json:"phone" binding:"required"`
	Specialization string            `json:"specialization" binding:"required"`
	Qualifications string            `json:"qualifications"`
	Availability   []AvailabilityDTO `json:"availability" binding:"omitempty,dive"`
}

type UpdateDoctorDTO struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	Qualifications *string `json:"qualifications"`
}

type AvailabilityDTO struct {
	Day       string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateTimeOffDTO struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Reason  string    `json:"reason"`
}
