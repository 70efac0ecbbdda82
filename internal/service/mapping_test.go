package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/domain"
)

func TestMappingCreateRecordsAssigner(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	mapping, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, mapping.AssignedBy)
	assert.Equal(t, alice.ID, *mapping.AssignedBy)
}

func TestMappingCreateDistinguishesMissingFromForeign(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	var notFound *domain.NotFoundError
	var denied *domain.AccessDeniedError

	// Missing patient or doctor: 404 territory.
	_, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{
		PatientID: "no-such-patient", DoctorID: doctor.ID,
	})
	require.ErrorAs(t, err, &notFound)

	_, err = env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{
		PatientID: patient.ID, DoctorID: "no-such-doctor",
	})
	require.ErrorAs(t, err, &notFound)

	// Existing patient owned by someone else: denied, not hidden.
	_, err = env.mappings.Create(ctx, bob, &domain.CreateMappingRequest{
		PatientID: patient.ID, DoctorID: doctor.ID,
	})
	require.ErrorAs(t, err, &denied)
}

func TestMappingDuplicatePairConflicts(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	req := &domain.CreateMappingRequest{PatientID: patient.ID, DoctorID: doctor.ID}
	_, err := env.mappings.Create(ctx, alice, req)
	require.NoError(t, err)

	_, err = env.mappings.Create(ctx, alice, req)
	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestMappingListForPrincipal(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	doctor := createDoctor(t, env, alice, "house@example.com")

	alicePatient := createPatient(t, env, alice, "Jane")
	bobPatient := createPatient(t, env, bob, "Mallory")

	_, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{PatientID: alicePatient.ID, DoctorID: doctor.ID})
	require.NoError(t, err)
	_, err = env.mappings.Create(ctx, bob, &domain.CreateMappingRequest{PatientID: bobPatient.ID, DoctorID: doctor.ID})
	require.NoError(t, err)

	details, err := env.mappings.ListForPrincipal(ctx, alice)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, alicePatient.ID, details[0].PatientID)
	assert.Equal(t, doctor.ID, details[0].Doctor.ID)
	assert.Equal(t, "Jane", details[0].Patient.FirstName)
}

func TestMappingListByPatient(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	_, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{PatientID: patient.ID, DoctorID: doctor.ID})
	require.NoError(t, err)

	details, err := env.mappings.ListByPatient(ctx, alice, patient.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	var denied *domain.AccessDeniedError
	_, err = env.mappings.ListByPatient(ctx, bob, patient.ID)
	require.ErrorAs(t, err, &denied)

	var notFound *domain.NotFoundError
	_, err = env.mappings.ListByPatient(ctx, alice, "no-such-patient")
	require.ErrorAs(t, err, &notFound)
}

func TestMappingDeletePermissions(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	mapping, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{PatientID: patient.ID, DoctorID: doctor.ID})
	require.NoError(t, err)

	var denied *domain.AccessDeniedError
	err = env.mappings.Delete(ctx, bob, mapping.ID)
	require.ErrorAs(t, err, &denied)

	require.NoError(t, env.mappings.Delete(ctx, alice, mapping.ID))

	var notFound *domain.NotFoundError
	err = env.mappings.Delete(ctx, alice, mapping.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestMappingCascadeOnPatientDelete(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	mapping, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{PatientID: patient.ID, DoctorID: doctor.ID})
	require.NoError(t, err)

	require.NoError(t, env.patients.Delete(ctx, alice, patient.ID))

	var notFound *domain.NotFoundError
	_, err = env.mappingRepo.GetByID(ctx, mapping.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestMappingCascadeOnDoctorDelete(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	doctor := createDoctor(t, env, alice, "house@example.com")
	patient := createPatient(t, env, alice, "Jane")

	mapping, err := env.mappings.Create(ctx, alice, &domain.CreateMappingRequest{PatientID: patient.ID, DoctorID: doctor.ID})
	require.NoError(t, err)

	require.NoError(t, env.doctors.Delete(ctx, alice, doctor.ID))

	var notFound *domain.NotFoundError
	_, err = env.mappingRepo.GetByID(ctx, mapping.ID)
	require.ErrorAs(t, err, &notFound)

	// The patient itself survives.
	_, err = env.patients.Get(ctx, alice, patient.ID)
	require.NoError(t, err)
}
