package service

import (
	"context"
	"testing"

	"clinicdesk/internal/domain"
)

func TestCreatePatientNormalizesPhone(t *testing.T) {
	env := newTestEnv()

	id, err := env.patient.Create(context.Background(), domain.CreatePatientDTO{
		FirstName:   "Dana",
		LastName:    "Lee",
		Email:       "dana.lee@example.test",
		Phone:       "+1 (555) 123-4567",
		DateOfBirth: "1985-07-02",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	patient, err := env.patient.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if patient.Phone != "+15551234567" {
		t.Errorf("phone %q, want +15551234567", patient.Phone)
	}
}

func TestCreatePatientRejectsBadPhone(t *testing.T) {
	env := newTestEnv()

	_, err := env.patient.Create(context.Background(), domain.CreatePatientDTO{
		FirstName:   "Dana",
		LastName:    "Lee",
		Email:       "dana.lee@example.test",
		Phone:       "555",
		DateOfBirth: "1985-07-02",
	})
	if err == nil {
		t.Fatal("expected an error for a too-short phone number")
	}
}

func TestUpdatePatientPartialFields(t *testing.T) {
	env := newTestEnv()
	id := env.createPatient(t)

	address := "12 Main St"
	if err := env.patient.Update(context.Background(), id, domain.UpdatePatientDTO{Address: &address}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	patient, err := env.patient.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if patient.Address != address {
		t.Errorf("address %q, want %q", patient.Address, address)
	}
	if patient.Email != "bob.carter@example.test" {
		t.Errorf("email %q changed by an address-only update", patient.Email)
	}
}
