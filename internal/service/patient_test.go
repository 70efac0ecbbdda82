package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/domain"
)

func TestPatientOwnerAssignedFromPrincipal(t *testing.T) {
	env := setupServices(t)
	alice := registerUser(t, env, "alice")

	patient := createPatient(t, env, alice, "Jane")
	assert.Equal(t, alice.ID, patient.OwnerID)
}

func TestPatientListScopedToOwner(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	createPatient(t, env, alice, "Jane")
	createPatient(t, env, alice, "John")
	createPatient(t, env, bob, "Mallory")

	patients, total, err := env.patients.List(ctx, alice, domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range patients {
		assert.Equal(t, alice.ID, p.OwnerID)
	}
}

func TestPatientAccessDeniedForNonOwner(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	patient := createPatient(t, env, alice, "Jane")

	var denied *domain.AccessDeniedError

	_, err := env.patients.Get(ctx, bob, patient.ID)
	require.ErrorAs(t, err, &denied)

	name := "Hacked"
	_, err = env.patients.Update(ctx, bob, patient.ID, &domain.UpdatePatientRequest{FirstName: &name})
	require.ErrorAs(t, err, &denied)

	err = env.patients.Delete(ctx, bob, patient.ID)
	require.ErrorAs(t, err, &denied)

	// Still intact for the owner.
	got, err := env.patients.Get(ctx, alice, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
}

func TestPatientMissingIsNotFound(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")

	var notFound *domain.NotFoundError
	_, err := env.patients.Get(ctx, alice, "no-such-id")
	require.ErrorAs(t, err, &notFound)

	err = env.patients.Delete(ctx, alice, "no-such-id")
	require.ErrorAs(t, err, &notFound)
}

func TestPatientUpdateCannotChangeOwner(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")

	patient := createPatient(t, env, alice, "Jane")

	notes := "allergic to penicillin"
	updated, err := env.patients.Update(ctx, alice, patient.ID, &domain.UpdatePatientRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, updated.OwnerID)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, "Jane", updated.FirstName)
}

func TestPatientDOBValidation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")

	bad := "31-12-1990"
	_, err := env.patients.Create(ctx, alice, &domain.CreatePatientRequest{FirstName: "Jane", DOB: &bad})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	good := "1990-12-31"
	patient, err := env.patients.Create(ctx, alice, &domain.CreatePatientRequest{FirstName: "Jane", DOB: &good})
	require.NoError(t, err)
	require.NotNil(t, patient.DOB)
	assert.Equal(t, good, *patient.DOB)
}
