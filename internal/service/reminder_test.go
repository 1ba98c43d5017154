package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

type captureSender struct {
	emails []string
	smses  []string
	fail   error
}

func (c *captureSender) SendEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	if c.fail != nil {
		return c.fail
	}
	c.emails = append(c.emails, toEmail)
	return nil
}

func (c *captureSender) SendSMS(ctx context.Context, toPhone, body string) error {
	if c.fail != nil {
		return c.fail
	}
	c.smses = append(c.smses, toPhone)
	return nil
}

func newReminderEnv(t *testing.T, sender *captureSender) (*testEnv, *ReminderServiceImpl, string) {
	t.Helper()
	env := newTestEnv()
	svc := NewReminderService(env.repos.Reminder, env.repos.Appointment, env.repos.Patient, sender, sender, zap.NewNop())

	doctorID := env.createDoctor(t, allWeekdayWindows("00:00", "23:30")...)
	patientID := env.createPatient(t)

	appointment, err := env.appointment.Create(context.Background(), domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("book appointment: %v", err)
	}
	return env, svc, appointment.ID
}

func TestCreateReminderBeforeStart(t *testing.T) {
	sender := &captureSender{}
	_, svc, appointmentID := newReminderEnv(t, sender)

	id, err := svc.Create(context.Background(), domain.CreateReminderDTO{
		AppointmentID: appointmentID,
		Type:          domain.ReminderTypeEmail,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reminders, err := svc.ListByAppointment(context.Background(), appointmentID)
	if err != nil {
		t.Fatalf("ListByAppointment: %v", err)
	}
	if len(reminders) != 1 || reminders[0].ID != id {
		t.Fatalf("got %d reminders, want the one just created", len(reminders))
	}
	if reminders[0].Sent {
		t.Error("new reminder already marked sent")
	}
}

func TestCreateReminderTooLate(t *testing.T) {
	sender := &captureSender{}
	_, svc, appointmentID := newReminderEnv(t, sender)

	_, err := svc.Create(context.Background(), domain.CreateReminderDTO{
		AppointmentID: appointmentID,
		Type:          domain.ReminderTypeSMS,
		ScheduledAt:   time.Now().AddDate(0, 0, 3),
	})
	if !errors.Is(err, domain.ErrReminderTooLate) {
		t.Fatalf("got %v, want ErrReminderTooLate", err)
	}
}

func TestCreateReminderUnknownAppointment(t *testing.T) {
	sender := &captureSender{}
	_, svc, _ := newReminderEnv(t, sender)

	_, err := svc.Create(context.Background(), domain.CreateReminderDTO{
		AppointmentID: "missing",
		Type:          domain.ReminderTypeEmail,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("got %v, want ErrAppointmentNotFound", err)
	}
}

func TestDispatchDueDeliversBoth(t *testing.T) {
	sender := &captureSender{}
	_, svc, appointmentID := newReminderEnv(t, sender)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateReminderDTO{
		AppointmentID: appointmentID,
		Type:          domain.ReminderTypeBoth,
		ScheduledAt:   time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// not due yet, must stay untouched
	if _, err := svc.Create(ctx, domain.CreateReminderDTO{
		AppointmentID: appointmentID,
		Type:          domain.ReminderTypeEmail,
		ScheduledAt:   time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create future reminder: %v", err)
	}

	sent, err := svc.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent %d, want 1", sent)
	}
	if len(sender.emails) != 1 || len(sender.smses) != 1 {
		t.Fatalf("delivered %d emails and %d sms, want 1 each", len(sender.emails), len(sender.smses))
	}

	reminders, err := svc.ListByAppointment(ctx, appointmentID)
	if err != nil {
		t.Fatalf("ListByAppointment: %v", err)
	}
	var sentCount int
	for _, r := range reminders {
		if r.Sent {
			sentCount++
			if r.SentAt == nil {
				t.Error("sent reminder missing SentAt")
			}
		}
	}
	if sentCount != 1 {
		t.Fatalf("%d reminders marked sent, want 1", sentCount)
	}

	// second run finds nothing left to do
	sent, err = svc.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("second DispatchDue: %v", err)
	}
	if sent != 0 {
		t.Fatalf("second run sent %d, want 0", sent)
	}
}

func TestDispatchDueSkipsCancelledAppointments(t *testing.T) {
	sender := &captureSender{}
	env, svc, appointmentID := newReminderEnv(t, sender)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateReminderDTO{
		AppointmentID: appointmentID,
		Type:          domain.ReminderTypeEmail,
		ScheduledAt:   time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := env.appointment.Cancel(ctx, appointmentID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	sent, err := svc.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if sent != 0 {
		t.Fatalf("sent %d reminders for a cancelled appointment", sent)
	}
	if len(sender.emails) != 0 {
		t.Fatalf("delivered %d emails for a cancelled appointment", len(sender.emails))
	}

	// marked sent anyway so it is not retried
	reminders, err := svc.ListByAppointment(ctx, appointmentID)
	if err != nil {
		t.Fatalf("ListByAppointment: %v", err)
	}
	if len(reminders) != 1 || !reminders[0].Sent {
		t.Fatal("cancelled-appointment reminder left due")
	}
}

func TestDispatchDueKeepsFailedDeliveries(t *testing.T) {
	sender := &captureSender{fail: errors.New("provider down")}
	_, svc, appointmentID := newReminderEnv(t, sender)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateReminderDTO{
		AppointmentID: appointmentID,
		Type:          domain.ReminderTypeSMS,
		ScheduledAt:   time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sent, err := svc.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if sent != 0 {
		t.Fatalf("sent %d despite delivery failure", sent)
	}

	// provider recovers, reminder is still due
	sender.fail = nil
	sent, err = svc.DispatchDue(ctx)
	if err != nil {
		t.Fatalf("retry DispatchDue: %v", err)
	}
	if sent != 1 {
		t.Fatalf("retry sent %d, want 1", sent)
	}
}
