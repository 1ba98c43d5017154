package domain

import (
	"errors"
)

// Scheduling and lookup errors returned by the service layer. Handlers
// map them to HTTP status codes with errors.Is; services wrap them with
// fmt.Errorf("%w: ...") to carry detail (weekday, window bounds).
var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrRecordNotFound      = errors.New("medical record not found")
	ErrTypeNotFound        = errors.New("appointment type not found")
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrTimeOffNotFound     = errors.New("time off not found")

	ErrDoctorUnavailable   = errors.New("doctor is not available on this day")
	ErrOutsideWorkingHours = errors.New("appointment time is outside the doctor's working hours")
	ErrDoctorTimeOff       = errors.New("doctor has time off in this period")
	ErrSlotConflict        = errors.New("time slot is already booked")

	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
	ErrInvalidTimeRange        = errors.New("start time must be before end time")
	ErrAvailabilityOverlap     = errors.New("availability window overlaps an existing one")
	ErrReminderTooLate         = errors.New("reminder must be scheduled before the appointment starts")
	ErrRecordMismatch          = errors.New("record doctor and patient must match the appointment")
)
