package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/domain"
)

func TestAuditTrailRecordsMutations(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	patient := createPatient(t, env, alice, "Jane")

	// A denied attempt is recorded too.
	_, err := env.patients.Get(ctx, bob, patient.ID)
	require.Error(t, err)
	err = env.patients.Delete(ctx, bob, patient.ID)
	require.Error(t, err)

	entries, total, err := env.audit.List(ctx, alice, domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, len(entries), total)

	var sawCreate, sawDenied bool
	for _, e := range entries {
		if e.Action == "CREATE_PATIENT" && e.Status == "ALLOWED" && e.Username == "alice" {
			sawCreate = true
		}
		if e.Action == "DELETE_PATIENT" && e.Status == "DENIED" && e.Username == "bob" {
			sawDenied = true
		}
	}
	assert.True(t, sawCreate)
	assert.True(t, sawDenied)
}

func TestAuditListRequiresAuth(t *testing.T) {
	env := setupServices(t)

	_, _, err := env.audit.List(context.Background(), domain.ContextPrincipal{}, domain.PageRequest{})
	var denied *domain.AccessDeniedError
	require.ErrorAs(t, err, &denied)
}
