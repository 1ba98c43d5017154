package domain

import (
	"time"
)

type MedicalRecord struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	AppointmentID  *string   `json:"appointment_id,omitempty"`
	Diagnosis      string    `json:"diagnosis,omitempty"`
	TreatmentPlan  string    `json:"treatment_plan,omitempty"`
	Prescription   string    `json:"prescription,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	IsConfidential bool      `json:"is_confidential"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MedicalImage struct {
	ID          string    `json:"id"`
	RecordID    string    `json:"record_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageType   string    `json:"image_type,omitempty"`
	FileURL     string    `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateMedicalRecordDTO struct {
	PatientID      string  `json:"patient_id" binding:"required"`
	DoctorID       string  `json:"doctor_id" binding:"required"`
	AppointmentID  *string `json:"appointment_id"`
	Diagnosis      string  `json:"diagnosis"`
	TreatmentPlan  string  `json:"treatment_plan"`
	Prescription   string  `json:"prescription"`
	Notes          string  `json:"notes"`
	IsConfidential bool    `json:"is_confidential"`
}

type CreateMedicalImageDTO struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	ImageType   string `form:"image_type"`
}

type UpdateMedicalRecordDTO struct {
	Diagnosis      *string `json:"diagnosis"`
	TreatmentPlan  *string `json:"treatment_plan"`
	Prescription   *string `json:"prescription"`
	Notes          *string `json:"notes"`
	IsConfidential *bool   `json:"is_confidential"`
}
