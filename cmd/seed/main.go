package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicdesk/config"
	"clinicdesk/internal/domain"
	"clinicdesk/internal/notify"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/service"
	"clinicdesk/internal/storage"
	"clinicdesk/pkg/database"
	"clinicdesk/pkg/logger"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Fills a postgres database with plausible fake clinic data for local
// development. Appointments are booked through the service layer so
// they respect availability and conflict rules.
func main() {
	doctorCount := flag.Int("doctors", 5, "number of doctors to create")
	patientCount := flag.Int("patients", 20, "number of patients to create")
	appointmentCount := flag.Int("appointments", 30, "number of appointments to attempt")
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	if cfg.Postgres.Host == "" {
		log.Fatal("POSTGRES_HOST must be set to seed a database")
	}

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	repos := repository.NewPostgresRepositories(db)
	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: storage.NewNoopStorage(),
		Email:       notify.NewNoopSender(),
		SMS:         notify.NewNoopSender(),
	})

	ctx := context.Background()
	faker := gofakeit.New(0)

	doctorIDs := make([]string, 0, *doctorCount)
	for i := 0; i < *doctorCount; i++ {
		id, err := services.Doctor.Create(ctx, domain.CreateDoctorDTO{
			FirstName:      faker.FirstName(),
			LastName:       faker.LastName(),
			Email:          faker.Email(),
			Phone:          faker.Phone(),
			Specialization: faker.RandomString([]string{"Cardiology", "Pediatrics", "Dermatology", "Neurology", "Orthopedics"}),
			Qualifications: "MD",
			Availability:   randomAvailability(faker),
		})
		if err != nil {
			log.Fatal("failed to create doctor", zap.Error(err))
		}
		doctorIDs = append(doctorIDs, id)
	}
	log.Info("doctors created", zap.Int("count", len(doctorIDs)))

	patientIDs := make([]string, 0, *patientCount)
	for i := 0; i < *patientCount; i++ {
		id, err := services.Patient.Create(ctx, domain.CreatePatientDTO{
			FirstName:         faker.FirstName(),
			LastName:          faker.LastName(),
			Email:             faker.Email(),
			Phone:             fmt.Sprintf("+1555%07d", faker.Number(0, 9999999)),
			DateOfBirth:       faker.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			Address:           faker.Address().Address,
			InsuranceProvider: faker.Company(),
			InsuranceID:       uuid.New().String()[:8],
			MedicalHistory:    faker.Sentence(6),
		})
		if err != nil {
			log.Fatal("failed to create patient", zap.Error(err))
		}
		patientIDs = append(patientIDs, id)
	}
	log.Info("patients created", zap.Int("count", len(patientIDs)))

	typeIDs := make([]string, 0, 3)
	for _, t := range []domain.CreateAppointmentTypeDTO{
		{Name: "Checkup", DurationMinutes: 30, ColorHex: "#4caf50"},
		{Name: "Consultation", DurationMinutes: 60, ColorHex: "#2196f3"},
		{Name: "Follow-up", DurationMinutes: 30, ColorHex: "#ff9800"},
	} {
		id, err := services.Appointment.CreateType(ctx, t)
		if err != nil {
			log.Fatal("failed to create appointment type", zap.Error(err))
		}
		typeIDs = append(typeIDs, id)
	}

	booked := 0
	for i := 0; i < *appointmentCount; i++ {
		doctorID := doctorIDs[faker.Number(0, len(doctorIDs)-1)]

		dates, err := services.Schedule.AvailableDates(ctx, doctorID)
		if err != nil || len(dates) == 0 {
			continue
		}
		date := dates[faker.Number(0, len(dates)-1)].Date

		slots, err := services.Schedule.TimeSlots(ctx, doctorID, date)
		if err != nil || len(slots) == 0 {
			continue
		}

		typeID := typeIDs[faker.Number(0, len(typeIDs)-1)]
		_, err = services.Appointment.Create(ctx, domain.CreateAppointmentDTO{
			PatientID: patientIDs[faker.Number(0, len(patientIDs)-1)],
			DoctorID:  doctorID,
			TypeID:    &typeID,
			Date:      date,
			StartTime: slots[faker.Number(0, len(slots)-1)],
			Notes:     faker.Sentence(4),
		})
		if err != nil {
			// conflicts are expected when slots collide
			continue
		}
		booked++
	}
	log.Info("appointments booked", zap.Int("count", booked))
}

func randomAvailability(faker *gofakeit.Faker) []domain.AvailabilityDTO {
	count := faker.Number(2, 4)
	used := make(map[string]bool)
	windows := make([]domain.AvailabilityDTO, 0, count)
	for len(windows) < count {
		day := weekdays[faker.Number(0, len(weekdays)-1)]
		if used[day] {
			continue
		}
		used[day] = true

		startHour := faker.Number(8, 11)
		endHour := startHour + faker.Number(4, 8)
		if endHour > 19 {
			endHour = 19
		}
		windows = append(windows, domain.AvailabilityDTO{
			Day:       day,
			StartTime: fmt.Sprintf("%02d:00", startHour),
			EndTime:   fmt.Sprintf("%02d:00", endHour),
		})
	}
	return windows
}
