package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"clinicdesk/internal/domain"
)

type Repositories struct {
	User            UserRepository
	Auth            AuthRepository
	Doctor          DoctorRepository
	Patient         PatientRepository
	Appointment     AppointmentRepository
	AppointmentType AppointmentTypeRepository
	Reminder        ReminderRepository
	MedicalRecord   MedicalRecordRepository
}

// NewPostgresRepositories wires the pgx-backed implementations.
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:            NewUserRepository(db),
		Auth:            NewAuthRepository(db),
		Doctor:          NewDoctorRepository(db),
		Patient:         NewPatientRepository(db),
		Appointment:     NewAppointmentRepository(db),
		AppointmentType: NewAppointmentTypeRepository(db),
		Reminder:        NewReminderRepository(db),
		MedicalRecord:   NewMedicalRecordRepository(db),
	}
}

// NewMemoryRepositories wires the in-memory implementations used in
// demo mode and by tests.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User:            NewMemoryUserRepository(),
		Auth:            NewMemoryAuthRepository(),
		Doctor:          NewMemoryDoctorRepository(),
		Patient:         NewMemoryPatientRepository(),
		Appointment:     NewMemoryAppointmentRepository(),
		AppointmentType: NewMemoryAppointmentTypeRepository(),
		Reminder:        NewMemoryReminderRepository(),
		MedicalRecord:   NewMemoryMedicalRecordRepository(),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, id string, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID string) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor domain.Doctor) error
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	Update(ctx context.Context, doctor domain.Doctor) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.Doctor, error)

	SetAvailability(ctx context.Context, doctorID string, windows []domain.Availability) error

	CreateTimeOff(ctx context.Context, timeOff domain.TimeOff) error
	ListTimeOffs(ctx context.Context, doctorID string) ([]domain.TimeOff, error)
	DeleteTimeOff(ctx context.Context, id string) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient domain.Patient) error
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	Update(ctx context.Context, patient domain.Patient) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, appointment domain.Appointment) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)

	// ListByDoctorAndDate returns every appointment for the doctor on
	// the given calendar date regardless of status; the conflict scan
	// filters cancelled ones itself.
	ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]domain.Appointment, error)
}

type AppointmentTypeRepository interface {
	Create(ctx context.Context, appointmentType domain.AppointmentType) error
	GetByID(ctx context.Context, id string) (*domain.AppointmentType, error)
	List(ctx context.Context) ([]domain.AppointmentType, error)
	Delete(ctx context.Context, id string) error
}

type ReminderRepository interface {
	Create(ctx context.Context, reminder domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]domain.Reminder, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.Reminder, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record domain.MedicalRecord) error
	GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error)
	Update(ctx context.Context, record domain.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]domain.MedicalRecord, error)

	AddImage(ctx context.Context, image domain.MedicalImage) error
	GetImageByID(ctx context.Context, id string) (*domain.MedicalImage, error)
	ListImages(ctx context.Context, recordID string) ([]domain.MedicalImage, error)
	DeleteImage(ctx context.Context, id string) error
}
