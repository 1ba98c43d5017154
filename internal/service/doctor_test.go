package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicdesk/internal/domain"
)

func TestSetAvailabilityReplacesWindows(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t,
		domain.AvailabilityDTO{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	)

	err := env.doctor.SetAvailability(context.Background(), doctorID, []domain.AvailabilityDTO{
		{Day: "Tuesday", StartTime: "10:00", EndTime: "14:00"},
		{Day: "Thursday", StartTime: "10:00", EndTime: "14:00"},
	})
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}

	doctor, err := env.doctor.GetByID(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(doctor.Availability) != 2 {
		t.Fatalf("got %d windows, want 2", len(doctor.Availability))
	}
	for _, w := range doctor.Availability {
		if w.Day == "Monday" {
			t.Error("old Monday window survived the replacement")
		}
	}
}

func TestSetAvailabilityRejectsInvertedWindow(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)

	err := env.doctor.SetAvailability(context.Background(), doctorID, []domain.AvailabilityDTO{
		{Day: "Monday", StartTime: "17:00", EndTime: "09:00"},
	})
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Fatalf("got %v, want ErrInvalidTimeRange", err)
	}
}

func TestSetAvailabilityRejectsMalformedClock(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)

	// unpadded times would corrupt every lexicographic comparison
	// downstream ("9:30" sorts above "23:59")
	for _, windows := range [][]domain.AvailabilityDTO{
		{{Day: "Monday", StartTime: "09:00", EndTime: "9:30"}},
		{{Day: "Monday", StartTime: "9:00", EndTime: "17:00"}},
		{{Day: "Monday", StartTime: "09:00", EndTime: "24:00"}},
		{{Day: "Monday", StartTime: "09:00", EndTime: "five"}},
	} {
		err := env.doctor.SetAvailability(context.Background(), doctorID, windows)
		if !errors.Is(err, domain.ErrInvalidTimeRange) {
			t.Errorf("windows %v: got %v, want ErrInvalidTimeRange", windows, err)
		}
	}

	doctor, err := env.doctor.GetByID(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(doctor.Availability) != 0 {
		t.Fatalf("malformed window was stored: %v", doctor.Availability)
	}
}

func TestSetAvailabilityRejectsSameDayOverlap(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)

	err := env.doctor.SetAvailability(context.Background(), doctorID, []domain.AvailabilityDTO{
		{Day: "Monday", StartTime: "09:00", EndTime: "13:00"},
		{Day: "Monday", StartTime: "12:00", EndTime: "17:00"},
	})
	if !errors.Is(err, domain.ErrAvailabilityOverlap) {
		t.Fatalf("got %v, want ErrAvailabilityOverlap", err)
	}

	// touching windows on the same day are fine
	err = env.doctor.SetAvailability(context.Background(), doctorID, []domain.AvailabilityDTO{
		{Day: "Monday", StartTime: "09:00", EndTime: "13:00"},
		{Day: "Monday", StartTime: "13:00", EndTime: "17:00"},
	})
	if err != nil {
		t.Fatalf("adjacent windows rejected: %v", err)
	}

	// identical times on different days never clash
	err = env.doctor.SetAvailability(context.Background(), doctorID, []domain.AvailabilityDTO{
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		{Day: "Tuesday", StartTime: "09:00", EndTime: "17:00"},
	})
	if err != nil {
		t.Fatalf("cross-day windows rejected: %v", err)
	}
}

func TestUpdateDoctorPartialFields(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)

	phone := "+15559998888"
	if err := env.doctor.Update(context.Background(), doctorID, domain.UpdateDoctorDTO{Phone: &phone}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	doctor, err := env.doctor.GetByID(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if doctor.Phone != phone {
		t.Errorf("phone %s, want %s", doctor.Phone, phone)
	}
	if doctor.FirstName != "Alice" {
		t.Errorf("first name %s changed by a phone-only update", doctor.FirstName)
	}
}

func TestTimeOffLifecycle(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)
	id, err := env.doctor.AddTimeOff(ctx, doctorID, domain.CreateTimeOffDTO{
		StartAt: start,
		EndAt:   start.Add(48 * time.Hour),
		Reason:  "vacation",
	})
	if err != nil {
		t.Fatalf("AddTimeOff: %v", err)
	}

	offs, err := env.doctor.ListTimeOffs(ctx, doctorID)
	if err != nil {
		t.Fatalf("ListTimeOffs: %v", err)
	}
	if len(offs) != 1 || offs[0].ID != id {
		t.Fatalf("got %d time offs, want the one just added", len(offs))
	}

	if err := env.doctor.DeleteTimeOff(ctx, doctorID, id); err != nil {
		t.Fatalf("DeleteTimeOff: %v", err)
	}

	offs, err = env.doctor.ListTimeOffs(ctx, doctorID)
	if err != nil {
		t.Fatalf("ListTimeOffs after delete: %v", err)
	}
	if len(offs) != 0 {
		t.Fatalf("time off survived deletion")
	}
}

func TestAddTimeOffRejectsInvertedRange(t *testing.T) {
	env := newTestEnv()
	doctorID := env.createDoctor(t)

	start := time.Now().Add(24 * time.Hour)
	_, err := env.doctor.AddTimeOff(context.Background(), doctorID, domain.CreateTimeOffDTO{
		StartAt: start,
		EndAt:   start.Add(-time.Hour),
	})
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Fatalf("got %v, want ErrInvalidTimeRange", err)
	}
}

func TestDeleteTimeOffChecksOwnership(t *testing.T) {
	env := newTestEnv()
	first := env.createDoctor(t)
	ctx := context.Background()

	second, err := env.doctor.Create(ctx, domain.CreateDoctorDTO{
		FirstName:      "Carol",
		LastName:       "Ivanov",
		Email:          "carol.ivanov@clinic.test",
		Phone:          "+15550002222",
		Specialization: "Dermatology",
	})
	if err != nil {
		t.Fatalf("create second doctor: %v", err)
	}

	start := time.Now().Add(24 * time.Hour)
	id, err := env.doctor.AddTimeOff(ctx, first, domain.CreateTimeOffDTO{
		StartAt: start,
		EndAt:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("AddTimeOff: %v", err)
	}

	if err := env.doctor.DeleteTimeOff(ctx, second, id); !errors.Is(err, domain.ErrTimeOffNotFound) {
		t.Fatalf("got %v, want ErrTimeOffNotFound", err)
	}

	offs, err := env.doctor.ListTimeOffs(ctx, first)
	if err != nil {
		t.Fatalf("ListTimeOffs: %v", err)
	}
	if len(offs) != 1 {
		t.Fatalf("time off deleted through the wrong doctor")
	}
}
