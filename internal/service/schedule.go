package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/repository"
)

const clockLayout = "15:04"

type ScheduleServiceImpl struct {
	doctorRepo  repository.DoctorRepository
	horizonDays int
	slotMinutes int
	logger      *zap.Logger
}

func NewScheduleService(doctorRepo repository.DoctorRepository, cfg config.SchedulingConfig, logger *zap.Logger) *ScheduleServiceImpl {
	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = 14
	}
	slot := cfg.SlotMinutes
	if slot <= 0 {
		slot = 30
	}

	return &ScheduleServiceImpl{
		doctorRepo:  doctorRepo,
		horizonDays: horizon,
		slotMinutes: slot,
		logger:      logger,
	}
}

// AvailableDates returns, for the next horizon days starting today, the
// dates whose weekday matches at least one of the doctor's availability
// windows, in calendar order. An unknown doctor yields an empty list so
// callers can render nothing instead of an error page.
func (s *ScheduleServiceImpl) AvailableDates(ctx context.Context, doctorID string) ([]domain.AvailableDay, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if errors.Is(err, domain.ErrDoctorNotFound) {
		return []domain.AvailableDay{}, nil
	}
	if err != nil {
		return nil, err
	}

	weekdays := make(map[string]bool, len(doctor.Availability))
	for _, w := range doctor.Availability {
		weekdays[w.Day] = true
	}

	days := make([]domain.AvailableDay, 0, s.horizonDays)
	start := time.Now()
	for i := 0; i < s.horizonDays; i++ {
		day := start.AddDate(0, 0, i)
		weekday := day.Weekday().String()
		if weekdays[weekday] {
			days = append(days, domain.AvailableDay{
				Date:    day.Format("2006-01-02"),
				Weekday: weekday,
			})
		}
	}

	return days, nil
}

// TimeSlots lists the slot start times for the doctor on the given
// date: beginning at the matching window's start, stepping by the slot
// length while the start stays strictly before the window's end. An
// unmatched weekday or unknown doctor yields an empty list, not an
// error.
func (s *ScheduleServiceImpl) TimeSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if errors.Is(err, domain.ErrDoctorNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	weekday, err := WeekdayOf(date)
	if err != nil {
		return nil, err
	}

	window, ok := findWindow(doctor.Availability, weekday)
	if !ok {
		return []string{}, nil
	}

	slots := []string{}
	for t := window.StartTime; t < window.EndTime; {
		slots = append(slots, t)
		next := AddMinutes(t, s.slotMinutes)
		// AddMinutes wraps at midnight; a wrapped value would compare
		// below the window end and restart the scan
		if next <= t {
			break
		}
		t = next
	}

	return slots, nil
}

func findWindow(windows []domain.Availability, weekday string) (domain.Availability, bool) {
	for _, w := range windows {
		if w.Day == weekday {
			return w, true
		}
	}
	return domain.Availability{}, false
}

// WeekdayOf returns the English weekday name for a "2006-01-02" date.
func WeekdayOf(date string) (string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day.Weekday().String(), nil
}

// AddMinutes shifts an "HH:MM" clock value forward, wrapping past
// midnight without carrying a date ("23:45" + 30 = "00:15").
func AddMinutes(clock string, minutes int) string {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return clock
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(clockLayout)
}

// ComputeEndTime derives the default visit end from its start.
func ComputeEndTime(startTime string, durationMinutes int) string {
	return AddMinutes(startTime, durationMinutes)
}

// Overlaps reports whether two half-open clock intervals intersect.
// Touching boundaries do not overlap, which is what lets back-to-back
// slots coexist.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
