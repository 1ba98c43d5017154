package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
)

type testEnv struct {
	repos       *repository.Repositories
	doctor      *DoctorServiceImpl
	patient     *PatientServiceImpl
	schedule    *ScheduleServiceImpl
	appointment *AppointmentServiceImpl
}

func newTestEnv() *testEnv {
	repos := repository.NewMemoryRepositories()
	log := zap.NewNop()
	cfg := config.SchedulingConfig{HorizonDays: 14, SlotMinutes: 30}

	return &testEnv{
		repos:       repos,
		doctor:      NewDoctorService(repos.Doctor, log),
		patient:     NewPatientService(repos.Patient, log),
		schedule:    NewScheduleService(repos.Doctor, cfg, log),
		appointment: NewAppointmentService(repos.Appointment, repos.AppointmentType, repos.Doctor, repos.Patient, cfg, log),
	}
}

func (e *testEnv) createDoctor(t *testing.T, windows ...domain.AvailabilityDTO) string {
	t.Helper()
	id, err := e.doctor.Create(context.Background(), domain.CreateDoctorDTO{
		FirstName:      "Alice",
		LastName:       "Nguyen",
		Email:          "alice.nguyen@clinic.test",
		Phone:          "+15550001111",
		Specialization: "Cardiology",
		Availability:   windows,
	})
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return id
}

func (e *testEnv) createPatient(t *testing.T) string {
	return e.createPatientWith(t, "bob.carter@example.test")
}

func (e *testEnv) createPatientWith(t *testing.T, email string) string {
	t.Helper()
	id, err := e.patient.Create(context.Background(), domain.CreatePatientDTO{
		FirstName:   "Bob",
		LastName:    "Carter",
		Email:       email,
		Phone:       "+15552223333",
		DateOfBirth: "1990-04-12",
	})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return id
}

// nextDateOn returns the first date from today (inclusive) that falls
// on the given weekday.
func nextDateOn(t *testing.T, weekday string) string {
	t.Helper()
	now := time.Now()
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		if day.Weekday().String() == weekday {
			return day.Format("2006-01-02")
		}
	}
	t.Fatalf("unknown weekday %q", weekday)
	return ""
}

func allWeekdayWindows(start, end string) []domain.AvailabilityDTO {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	windows := make([]domain.AvailabilityDTO, 0, len(days))
	for _, day := range days {
		windows = append(windows, domain.AvailabilityDTO{Day: day, StartTime: start, EndTime: end})
	}
	return windows
}
