package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carelink/internal/domain"
)

var (
	alice     = domain.ContextPrincipal{ID: "user-a", Username: "alice"}
	bob       = domain.ContextPrincipal{ID: "user-b", Username: "bob"}
	anonymous = domain.ContextPrincipal{}
)

func strPtr(s string) *string { return &s }

func TestDoctorRules(t *testing.T) {
	doc := &domain.Doctor{ID: "doc-1"}

	assert.True(t, CanReadDoctor(anonymous).Allowed)
	assert.True(t, CanReadDoctor(alice).Allowed)

	assert.False(t, CanCreateDoctor(anonymous).Allowed)
	assert.True(t, CanCreateDoctor(alice).Allowed)

	assert.False(t, CanMutateDoctor(anonymous, doc).Allowed)
	// No ownership on doctors: any authenticated user may mutate any doctor.
	assert.True(t, CanMutateDoctor(alice, doc).Allowed)
	assert.True(t, CanMutateDoctor(bob, doc).Allowed)
}

func TestPatientRules(t *testing.T) {
	patient := &domain.Patient{ID: "pat-1", OwnerID: alice.ID}

	assert.False(t, CanCreatePatient(anonymous).Allowed)
	assert.True(t, CanCreatePatient(alice).Allowed)

	assert.True(t, CanAccessPatient(alice, patient).Allowed)
	assert.False(t, CanAccessPatient(bob, patient).Allowed)
	assert.False(t, CanAccessPatient(anonymous, patient).Allowed)
}

func TestMappingCreateAndViewRules(t *testing.T) {
	patient := &domain.Patient{ID: "pat-1", OwnerID: alice.ID}

	assert.True(t, CanCreateMapping(alice, patient).Allowed)
	assert.False(t, CanCreateMapping(bob, patient).Allowed)
	assert.False(t, CanCreateMapping(anonymous, patient).Allowed)

	assert.True(t, CanViewPatientMappings(alice, patient).Allowed)
	assert.False(t, CanViewPatientMappings(bob, patient).Allowed)
}

func TestMappingDeleteRules(t *testing.T) {
	patient := &domain.Patient{ID: "pat-1", OwnerID: alice.ID}

	tests := []struct {
		name       string
		principal  domain.ContextPrincipal
		assignedBy *string
		want       bool
	}{
		{"owner may delete", alice, strPtr(bob.ID), true},
		{"assigner may delete", bob, strPtr(bob.ID), true},
		{"third party denied", domain.ContextPrincipal{ID: "user-c"}, strPtr(bob.ID), false},
		{"owner may delete when assigner removed", alice, nil, true},
		{"non-owner denied when assigner removed", bob, nil, false},
		{"anonymous denied", anonymous, strPtr(alice.ID), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.Mapping{ID: "map-1", PatientID: patient.ID, AssignedBy: tt.assignedBy}
			got := CanDeleteMapping(tt.principal, m, patient)
			assert.Equal(t, tt.want, got.Allowed)
		})
	}
}

func TestDecisionErr(t *testing.T) {
	assert.NoError(t, Allow().Err())

	err := Deny("nope").Err()
	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, "nope", denied.Message)
}
