package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinicdesk/internal/domain"
)

type memoryStorage struct {
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string][]byte{}}
}

func (m *memoryStorage) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	url := "mem://" + filename
	m.files[url] = data
	return url, nil
}

func (m *memoryStorage) DeleteFile(ctx context.Context, fileURL string) error {
	if _, ok := m.files[fileURL]; !ok {
		return fmt.Errorf("file %s not found", fileURL)
	}
	delete(m.files, fileURL)
	return nil
}

func (m *memoryStorage) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	data, ok := m.files[fileURL]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileURL)
	}
	return data, nil
}

func (m *memoryStorage) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	return fileURL, nil
}

func newRecordEnv(t *testing.T) (*testEnv, *MedicalRecordServiceImpl, *memoryStorage, string, string) {
	t.Helper()
	env := newTestEnv()
	files := newMemoryStorage()
	svc := NewMedicalRecordService(env.repos.MedicalRecord, env.repos.Patient, env.repos.Doctor, env.repos.Appointment, files, zap.NewNop())

	doctorID := env.createDoctor(t, allWeekdayWindows("09:00", "17:00")...)
	patientID := env.createPatient(t)
	return env, svc, files, doctorID, patientID
}

func TestCreateMedicalRecordChecksAppointmentPair(t *testing.T) {
	env, svc, _, doctorID, patientID := newRecordEnv(t)
	ctx := context.Background()

	appointment, err := env.appointment.Create(ctx, domain.CreateAppointmentDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      nextDateOn(t, "Monday"),
		StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("book appointment: %v", err)
	}

	if _, err := svc.Create(ctx, domain.CreateMedicalRecordDTO{
		PatientID:     patientID,
		DoctorID:      doctorID,
		AppointmentID: &appointment.ID,
		Diagnosis:     "mild hypertension",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// record tied to the appointment but naming a different patient
	otherPatient := env.createPatientWith(t, "other.patient@example.test")
	_, err = svc.Create(ctx, domain.CreateMedicalRecordDTO{
		PatientID:     otherPatient,
		DoctorID:      doctorID,
		AppointmentID: &appointment.ID,
	})
	if !errors.Is(err, domain.ErrRecordMismatch) {
		t.Fatalf("got %v, want ErrRecordMismatch", err)
	}
}

func TestUploadAndDeleteImage(t *testing.T) {
	_, svc, files, doctorID, patientID := newRecordEnv(t)
	ctx := context.Background()

	recordID, err := svc.Create(ctx, domain.CreateMedicalRecordDTO{
		PatientID: patientID,
		DoctorID:  doctorID,
		Diagnosis: "sprained ankle",
	})
	if err != nil {
		t.Fatalf("Create record: %v", err)
	}

	payload := []byte("fake png bytes")
	imageID, err := svc.UploadImage(ctx, recordID, domain.CreateMedicalImageDTO{
		Title:     "X-ray",
		ImageType: "xray",
	}, payload, "ankle.png")
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	images, err := svc.ListImages(ctx, recordID)
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if len(images) != 1 || images[0].ID != imageID {
		t.Fatalf("got %d images, want the one just uploaded", len(images))
	}

	stored, err := files.GetFile(ctx, images[0].FileURL)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if !bytes.Equal(stored, payload) {
		t.Error("stored file differs from upload")
	}

	if err := svc.DeleteImage(ctx, imageID); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if _, err := files.GetFile(ctx, images[0].FileURL); err == nil {
		t.Error("file survived image deletion")
	}
	images, err = svc.ListImages(ctx, recordID)
	if err != nil {
		t.Fatalf("ListImages after delete: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("image row survived deletion")
	}
}

func TestUploadImageUnknownRecord(t *testing.T) {
	_, svc, _, _, _ := newRecordEnv(t)

	_, err := svc.UploadImage(context.Background(), "missing", domain.CreateMedicalImageDTO{Title: "X-ray"}, []byte("data"), "a.png")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}
