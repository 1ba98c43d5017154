package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicdesk/internal/domain"
)

func TestCreateAppointmentDefaultsEndTime(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Monday")

	appointment, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if appointment.EndTime != "10:30" {
		t.Errorf("end time %s, want 10:30", appointment.EndTime)
	}
	if appointment.Status != domain.AppointmentStatusScheduled {
		t.Errorf("status %s, want scheduled", appointment.Status)
	}

	stored, err := env.repos.Appointment.GetByID(context.Background(), appointment.ID)
	if err != nil {
		t.Fatalf("GetByID after create: %v", err)
	}
	if stored.Date != date || stored.StartTime != "10:00" {
		t.Errorf("stored %s %s, want %s 10:00", stored.Date, stored.StartTime, date)
	}
}

func TestCreateAppointmentDerivesEndFromType(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)

	typeID, err := env.appointment.CreateType(context.Background(), domain.CreateAppointmentTypeDTO{
		Name:            "Consultation",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("CreateType: %v", err)
	}

	appointment, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		TypeID:    &typeID,
		Date:      nextDateOn(t, "Tuesday"),
		StartTime: "11:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if appointment.EndTime != "12:00" {
		t.Errorf("end time %s, want 12:00", appointment.EndTime)
	}
}

func TestCreateAppointmentRejectsInvertedRange(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)

	_, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      nextDateOn(t, "Monday"),
		StartTime: "11:00",
		EndTime:   "10:00",
	})
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Fatalf("got %v, want ErrInvalidTimeRange", err)
	}
}

func TestCreateAppointmentUnknownDoctorAndPatient(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Monday")

	_, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  "missing",
		Date:      date,
		StartTime: "10:00",
	})
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("got %v, want ErrDoctorNotFound", err)
	}

	_, err = env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: "missing",
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "10:00",
	})
	if !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("got %v, want ErrPatientNotFound", err)
	}
}

func TestCreateAppointmentOutsideAvailability(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	)
	patientID := env.createPatient(t)

	_, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      nextDateOn(t, "Sunday"),
		StartTime: "10:00",
	})
	if !errors.Is(err, domain.ErrDoctorUnavailable) {
		t.Fatalf("got %v, want ErrDoctorUnavailable", err)
	}
}

func TestCreateAppointmentOutsideWorkingHours(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Monday")

	// starts before the window opens
	_, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "08:30",
	})
	if !errors.Is(err, domain.ErrOutsideWorkingHours) {
		t.Fatalf("early start: got %v, want ErrOutsideWorkingHours", err)
	}

	// starts inside but runs past the window end
	_, err = env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "16:45",
	})
	if !errors.Is(err, domain.ErrOutsideWorkingHours) {
		t.Fatalf("late end: got %v, want ErrOutsideWorkingHours", err)
	}

	// ends exactly at the window close, allowed
	if _, err = env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "16:30",
	}); err != nil {
		t.Fatalf("boundary end: %v", err)
	}
}

func TestCreateAppointmentDuringTimeOff(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Wednesday")

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if _, err := env.doctor.AddTimeOff(context.Background(), doctorID, domain.CreateTimeOffDTO{
		StartAt: day,
		EndAt:   day.Add(24 * time.Hour),
		Reason:  "conference",
	}); err != nil {
		t.Fatalf("AddTimeOff: %v", err)
	}

	_, err = env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "10:00",
	})
	if !errors.Is(err, domain.ErrDoctorTimeOff) {
		t.Fatalf("got %v, want ErrDoctorTimeOff", err)
	}
}

func TestCreateAppointmentConflicts(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Thursday")

	book := func(start string) (*domain.Appointment, error) {
		return env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
			PatientID: patientID,
			DoctorID:  doctorID,
			Date:      date,
			StartTime: start,
		})
	}

	if _, err := book("10:00"); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	if _, err := book("10:15"); !errors.Is(err, domain.ErrSlotConflict) {
		t.Fatalf("overlapping booking: got %v, want ErrSlotConflict", err)
	}

	// back-to-back with the existing 10:00-10:30 visit
	if _, err := book("10:30"); err != nil {
		t.Fatalf("adjacent booking: %v", err)
	}
}

func TestCreateAppointmentPatientDoubleBooking(t *testing.T) {
	env := newTestEnv()
	firstDoctor := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	secondDoctor := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Wednesday")

	book := func(doctorID, start string) (*domain.Appointment, error) {
		return env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
			PatientID: patientID,
			DoctorID:  doctorID,
			Date:      date,
			StartTime: start,
		})
	}

	if _, err := book(firstDoctor, "10:00"); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// same patient, different doctor, overlapping time
	if _, err := book(secondDoctor, "10:15"); !errors.Is(err, domain.ErrSlotConflict) {
		t.Fatalf("double booking: got %v, want ErrSlotConflict", err)
	}

	// back to back with the first visit is fine
	if _, err := book(secondDoctor, "10:30"); err != nil {
		t.Fatalf("adjacent cross-doctor booking: %v", err)
	}

	// cancelling the first visit frees the patient
	first, err := book(firstDoctor, "11:00")
	if err != nil {
		t.Fatalf("third booking: %v", err)
	}
	if err := env.appointment.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := book(secondDoctor, "11:00"); err != nil {
		t.Fatalf("rebooking after cancel with another doctor: %v", err)
	}
}

func TestCreateAppointmentAfterCancellation(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Friday")

	first, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "14:00",
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	if err := env.appointment.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// cancelled visits free their slot
	if _, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "14:00",
	}); err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestCreateAppointmentWritesNothingOnFailure(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Monday")

	_, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: "18:00",
	})
	if err == nil {
		t.Fatal("expected rejection")
	}

	stored, err := env.repos.Appointment.ListByDoctorAndDate(context.Background(), doctorID, date)
	if err != nil {
		t.Fatalf("ListByDoctorAndDate: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("rejected booking left %d rows behind", len(stored))
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Monday")

	book := func(start string) string {
		t.Helper()
		appointment, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
			PatientID: patientID,
			DoctorID:  doctorID,
			Date:      date,
			StartTime: start,
		})
		if err != nil {
			t.Fatalf("booking at %s: %v", start, err)
		}
		return appointment.ID
	}
	setStatus := func(id string, status domain.AppointmentStatus) error {
		return env.appointment.UpdateStatus(context.Background(), id, domain.UpdateAppointmentStatusDTO{Status: status})
	}

	completed := book("09:00")
	if err := setStatus(completed, domain.AppointmentStatusCompleted); err != nil {
		t.Fatalf("scheduled -> completed: %v", err)
	}

	cancelled := book("10:00")
	if err := setStatus(cancelled, domain.AppointmentStatusCancelled); err != nil {
		t.Fatalf("scheduled -> cancelled: %v", err)
	}

	// completed and cancelled are terminal
	for _, tc := range []struct {
		id string
		to domain.AppointmentStatus
	}{
		{completed, domain.AppointmentStatusCancelled},
		{completed, domain.AppointmentStatusScheduled},
		{cancelled, domain.AppointmentStatusCompleted},
		{cancelled, domain.AppointmentStatusScheduled},
	} {
		if err := setStatus(tc.id, tc.to); !errors.Is(err, domain.ErrInvalidStatusTransition) {
			t.Errorf("transition to %s: got %v, want ErrInvalidStatusTransition", tc.to, err)
		}
	}

	scheduled := book("11:00")
	if err := setStatus(scheduled, domain.AppointmentStatusScheduled); !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Errorf("scheduled -> scheduled: got %v, want ErrInvalidStatusTransition", err)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	env := newTestEnv()

	err := env.appointment.UpdateStatus(context.Background(), "missing", domain.UpdateAppointmentStatusDTO{
		Status: domain.AppointmentStatusCompleted,
	})
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("got %v, want ErrAppointmentNotFound", err)
	}
}

func TestGetDetails(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)

	appointment, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      nextDateOn(t, "Monday"),
		StartTime: "09:30",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	details, err := env.appointment.GetDetails(context.Background(), appointment.ID)
	if err != nil {
		t.Fatalf("GetDetails: %v", err)
	}
	if details.Doctor.ID != doctorID {
		t.Errorf("doctor %s, want %s", details.Doctor.ID, doctorID)
	}
	if details.Patient.ID != patientID {
		t.Errorf("patient %s, want %s", details.Patient.ID, patientID)
	}
	if details.Appointment.ID != appointment.ID {
		t.Errorf("appointment %s, want %s", details.Appointment.ID, appointment.ID)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	date := nextDateOn(t, "Monday")

	first, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID, DoctorID: doctorID, Date: date, StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID, DoctorID: doctorID, Date: date, StartTime: "10:00",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := env.appointment.Cancel(context.Background(), first.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	status := domain.AppointmentStatusScheduled
	appointments, total, err := env.appointment.List(context.Background(), domain.AppointmentFilter{
		DoctorID: &doctorID,
		Status:   &status,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(appointments) != 1 {
		t.Fatalf("got %d/%d scheduled appointments, want 1", len(appointments), total)
	}
	if appointments[0].StartTime != "10:00" {
		t.Errorf("listed %s, want the 10:00 visit", appointments[0].StartTime)
	}
}
