package service

import (
	"context"

	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/notify"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Email       notify.EmailSender
	SMS         notify.SMSSender
}

type Services struct {
	User          UserService
	Auth          AuthService
	Doctor        DoctorService
	Patient       PatientService
	Schedule      ScheduleService
	Appointment   AppointmentService
	Reminder      ReminderService
	MedicalRecord MedicalRecordService
}

func NewServices(deps Deps) *Services {
	schedule := NewScheduleService(deps.Repos.Doctor, deps.Config.Scheduling, deps.Logger)

	return &Services{
		User:          NewUserService(deps.Repos.User, deps.Logger),
		Auth:          NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Doctor:        NewDoctorService(deps.Repos.Doctor, deps.Logger),
		Patient:       NewPatientService(deps.Repos.Patient, deps.Logger),
		Schedule:      schedule,
		Appointment:   NewAppointmentService(deps.Repos.Appointment, deps.Repos.AppointmentType, deps.Repos.Doctor, deps.Repos.Patient, deps.Config.Scheduling, deps.Logger),
		Reminder:      NewReminderService(deps.Repos.Reminder, deps.Repos.Appointment, deps.Repos.Patient, deps.Email, deps.SMS, deps.Logger),
		MedicalRecord: NewMedicalRecordService(deps.Repos.MedicalRecord, deps.Repos.Patient, deps.Repos.Doctor, deps.Repos.Appointment, deps.FileStorage, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id string, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (string, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (string, domain.UserRole, error)
}

type DoctorService interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	Update(ctx context.Context, id string, dto domain.UpdateDoctorDTO) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.Doctor, error)

	SetAvailability(ctx context.Context, doctorID string, windows []domain.AvailabilityDTO) error

	AddTimeOff(ctx context.Context, doctorID string, dto domain.CreateTimeOffDTO) (string, error)
	ListTimeOffs(ctx context.Context, doctorID string) ([]domain.TimeOff, error)
	DeleteTimeOff(ctx context.Context, doctorID, timeOffID string) error
}

type PatientService interface {
	Create(ctx context.Context, dto domain.CreatePatientDTO) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	Update(ctx context.Context, id string, dto domain.UpdatePatientDTO) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]domain.Patient, error)
}

// ScheduleService derives concrete bookable dates and slot start times
// from a doctor's recurring weekly availability.
type ScheduleService interface {
	AvailableDates(ctx context.Context, doctorID string) ([]domain.AvailableDay, error)
	TimeSlots(ctx context.Context, doctorID, date string) ([]string, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetDetails(ctx context.Context, id string) (*domain.AppointmentDetails, error)
	UpdateStatus(ctx context.Context, id string, dto domain.UpdateAppointmentStatusDTO) error
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)

	CreateType(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (string, error)
	GetType(ctx context.Context, id string) (*domain.AppointmentType, error)
	ListTypes(ctx context.Context) ([]domain.AppointmentType, error)
	DeleteType(ctx context.Context, id string) error
}

type ReminderService interface {
	Create(ctx context.Context, dto domain.CreateReminderDTO) (string, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]domain.Reminder, error)
	DispatchDue(ctx context.Context) (int, error)
}

type MedicalRecordService interface {
	Create(ctx context.Context, dto domain.CreateMedicalRecordDTO) (string, error)
	GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error)
	Update(ctx context.Context, id string, dto domain.UpdateMedicalRecordDTO) error
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]domain.MedicalRecord, error)

	UploadImage(ctx context.Context, recordID string, dto domain.CreateMedicalImageDTO, data []byte, filename string) (string, error)
	ListImages(ctx context.Context, recordID string) ([]domain.MedicalImage, error)
	DeleteImage(ctx context.Context, imageID string) error
}
