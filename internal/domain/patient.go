package domain

import (
	"time"
)

type Patient struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DateOfBirth       string    `json:"date_of_birth"`
	Address           string    `json:"address"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	InsuranceID       string    `json:"insurance_id,omitempty"`
	MedicalHistory    string    `json:"medical_history,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreatePatientDTO struct {
	FirstName         string `json:"first_name" binding:"required"`
	LastName          string `json:"last_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required"`
	DateOfBirth       string `json:"date_of_birth" binding:"required"`
	Address           string `json:"address"`
	InsuranceProvider string `json:"insurance_provider"`
	InsuranceID       string `json:"insurance_id"`
	MedicalHistory    string `json:"medical_history"`
}

type UpdatePatientDTO struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Phone             *string `json:"phone"`
	DateOfBirth       *string `json:"date_of_birth"`
	Address           *string `json:"address"`
	InsuranceProvider *string `json:"insurance_provider"`
	InsuranceID       *string `json:"insurance_id"`
	MedicalHistory    *string `json:"medical_history"`
}
