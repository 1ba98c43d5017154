package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinicdesk/internal/domain"
)

// SeedDemoData loads a small clinic into the repositories: three
// patients, three doctors with weekly availability, and one scheduled
// appointment per doctor on its next matching weekday. Meant for the
// in-memory demo mode.
func SeedDemoData(ctx context.Context, repos *Repositories) error {
	now := time.Now()

	patients := []domain.Patient{
		{
			ID:                uuid.New().String(),
			FirstName:         "John",
			LastName:          "Doe",
			Email:             "john.doe@example.com",
			Phone:             "+15551234567",
			DateOfBirth:       "1985-05-15",
			Address:           "123 Main St, Anytown, USA",
			InsuranceProvider: "Health Plus",
			InsuranceID:       "HP12345678",
			MedicalHistory:    "Hypertension, Asthma",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                uuid.New().String(),
			FirstName:         "Jane",
			LastName:          "Smith",
			Email:             "jane.smith@example.com",
			Phone:             "+15559876543",
			DateOfBirth:       "1990-09-20",
			Address:           "456 Oak Ave, Somecity, USA",
			InsuranceProvider: "MediCare",
			InsuranceID:       "MC87654321",
			MedicalHistory:    "Allergies, Diabetes Type 2",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                uuid.New().String(),
			FirstName:         "Robert",
			LastName:          "Johnson",
			Email:             "robert.j@example.com",
			Phone:             "+15554567890",
			DateOfBirth:       "1978-12-10",
			Address:           "789 Pine Rd, Othertown, USA",
			InsuranceProvider: "Blue Cross",
			InsuranceID:       "BC45678901",
			MedicalHistory:    "Arthritis",
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	doctors := []domain.Doctor{
		{
			ID:             uuid.New().String(),
			FirstName:      "Elizabeth",
			LastName:       "Chen",
			Email:          "dr.chen@example.com",
			Phone:          "+15552345678",
			Specialization: "Cardiology",
			Qualifications: "MD, PhD, FACC",
			Availability: []domain.Availability{
				{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Wednesday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Friday", StartTime: "09:00", EndTime: "13:00"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:             uuid.New().String(),
			FirstName:      "Michael",
			LastName:       "Rodriguez",
			Email:          "dr.rodriguez@example.com",
			Phone:          "+15553456789",
			Specialization: "Pediatrics",
			Qualifications: "MD, FAAP",
			Availability: []domain.Availability{
				{Day: "Monday", StartTime: "10:00", EndTime: "18:00"},
				{Day: "Tuesday", StartTime: "10:00", EndTime: "18:00"},
				{Day: "Thursday", StartTime: "10:00", EndTime: "18:00"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:             uuid.New().String(),
			FirstName:      "Sarah",
			LastName:       "Johnson",
			Email:          "dr.johnson@example.com",
			Phone:          "+15554567891",
			Specialization: "Dermatology",
			Qualifications: "MD, FAAD",
			Availability: []domain.Availability{
				{Day: "Tuesday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Thursday", StartTime: "09:00", EndTime: "17:00"},
				{Day: "Friday", StartTime: "14:00", EndTime: "18:00"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, patient := range patients {
		if err := repos.Patient.Create(ctx, patient); err != nil {
			return err
		}
	}
	for _, doctor := range doctors {
		if err := repos.Doctor.Create(ctx, doctor); err != nil {
			return err
		}
	}

	seedTimes := []struct {
		start, end, notes string
	}{
		{"10:00", "10:30", "Annual checkup"},
		{"11:00", "11:30", "Follow-up appointment"},
		{"14:00", "14:30", "Initial consultation"},
	}

	for i, doctor := range doctors {
		appointment := domain.Appointment{
			ID:        uuid.New().String(),
			PatientID: patients[i].ID,
			DoctorID:  doctor.ID,
			Date:      nextMatchingDate(now, doctor.Availability[0].Day),
			StartTime: seedTimes[i].start,
			EndTime:   seedTimes[i].end,
			Status:    domain.AppointmentStatusScheduled,
			Notes:     seedTimes[i].notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repos.Appointment.Create(ctx, appointment); err != nil {
			return err
		}
	}

	return nil
}

func nextMatchingDate(from time.Time, weekday string) string {
	for i := 0; i < 7; i++ {
		day := from.AddDate(0, 0, i)
		if day.Weekday().String() == weekday {
			return day.Format("2006-01-02")
		}
	}
	return from.Format("2006-01-02")
}
