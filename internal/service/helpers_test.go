package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carelink/internal/db"
	"carelink/internal/domain"
	"carelink/internal/repository"
	"carelink/internal/token"
)

type testEnv struct {
	auth     *AuthService
	doctors  *DoctorService
	patients *PatientService
	mappings *MappingService
	audit    *AuditService

	doctorRepo  domain.DoctorRepository
	patientRepo domain.PatientRepository
	mappingRepo domain.MappingRepository
	userRepo    domain.UserRepository
	auditRepo   domain.AuditRepository
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	writeDB, _ := db.OpenTestSQLite(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := repository.NewUserRepo(writeDB)
	doctors := repository.NewDoctorRepo(writeDB)
	patients := repository.NewPatientRepo(writeDB)
	mappings := repository.NewMappingRepo(writeDB)
	audits := repository.NewAuditRepo(writeDB)

	tokens, err := token.NewService("test-secret", "carelink-test", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	return &testEnv{
		auth:        NewAuthService(users, tokens, audits, logger),
		doctors:     NewDoctorService(doctors, audits, logger),
		patients:    NewPatientService(patients, audits, logger),
		mappings:    NewMappingService(mappings, patients, doctors, audits, logger),
		audit:       NewAuditService(audits, logger),
		doctorRepo:  doctors,
		patientRepo: patients,
		mappingRepo: mappings,
		userRepo:    users,
		auditRepo:   audits,
	}
}

// registerUser creates an account and returns its principal.
func registerUser(t *testing.T, env *testEnv, username string) domain.ContextPrincipal {
	t.Helper()

	res, err := env.auth.Register(context.Background(), &domain.RegisterRequest{
		Name:     "Test User",
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return domain.ContextPrincipal{ID: res.User.ID, Username: res.User.Username}
}

func createDoctor(t *testing.T, env *testEnv, principal domain.ContextPrincipal, email string) *domain.Doctor {
	t.Helper()

	doctor, err := env.doctors.Create(context.Background(), principal, &domain.CreateDoctorRequest{
		FirstName: "Greg",
		LastName:  "House",
		Email:     email,
		Specialty: "Diagnostics",
	})
	require.NoError(t, err)
	return doctor
}

func createPatient(t *testing.T, env *testEnv, principal domain.ContextPrincipal, firstName string) *domain.Patient {
	t.Helper()

	patient, err := env.patients.Create(context.Background(), principal, &domain.CreatePatientRequest{
		FirstName: firstName,
		LastName:  "Doe",
	})
	require.NoError(t, err)
	return patient
}
