// Package policy holds the authorization rules for the records API as pure
// functions of (principal, entity, operation). It has no storage or
// transport dependencies so every rule can be unit-tested in isolation.
//
// Callers resolve the target entity first and only then consult policy, so
// "does not exist" (NotFound) and "exists but not yours" (AccessDenied)
// stay distinguishable.
package policy

import "carelink/internal/domain"

// Decision is the tagged result of a policy check: Allow, or Deny with a
// human-readable reason.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow grants the operation.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses the operation with a reason suitable for an error message.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Err converts a Decision into a domain error, or nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return domain.ErrAccessDenied("%s", d.Reason)
}

func authenticated(p domain.ContextPrincipal) bool {
	return p.ID != ""
}

// === Doctors ===
//
// The doctor registry is shared: reads are public and any authenticated
// user may create, update, or delete any doctor. There is deliberately no
// per-doctor ownership.

// CanReadDoctor allows anyone, including anonymous callers.
func CanReadDoctor(_ domain.ContextPrincipal) Decision {
	return Allow()
}

// CanCreateDoctor requires authentication only.
func CanCreateDoctor(p domain.ContextPrincipal) Decision {
	if !authenticated(p) {
		return Deny("authentication required to create doctors")
	}
	return Allow()
}

// CanMutateDoctor requires authentication only; no ownership check.
func CanMutateDoctor(p domain.ContextPrincipal, _ *domain.Doctor) Decision {
	if !authenticated(p) {
		return Deny("authentication required to modify doctors")
	}
	return Allow()
}

// === Patients ===

// CanCreatePatient requires authentication; the creator becomes the owner.
func CanCreatePatient(p domain.ContextPrincipal) Decision {
	if !authenticated(p) {
		return Deny("authentication required to create patients")
	}
	return Allow()
}

// CanAccessPatient guards read, update, and delete on a specific patient:
// only the owner may touch it.
func CanAccessPatient(p domain.ContextPrincipal, patient *domain.Patient) Decision {
	if !authenticated(p) {
		return Deny("authentication required")
	}
	if patient.OwnerID != p.ID {
		return Deny("you do not have permission to access this patient")
	}
	return Allow()
}

// === Audit ===

// CanViewAudit requires authentication.
func CanViewAudit(p domain.ContextPrincipal) Decision {
	if !authenticated(p) {
		return Deny("authentication required to view the audit trail")
	}
	return Allow()
}

// === Mappings ===

// CanCreateMapping requires the caller to own the referenced patient.
func CanCreateMapping(p domain.ContextPrincipal, patient *domain.Patient) Decision {
	if !authenticated(p) {
		return Deny("authentication required")
	}
	if patient.OwnerID != p.ID {
		return Deny("you can only assign doctors to patients you created")
	}
	return Allow()
}

// CanViewPatientMappings requires the caller to own the referenced patient.
func CanViewPatientMappings(p domain.ContextPrincipal, patient *domain.Patient) Decision {
	if !authenticated(p) {
		return Deny("authentication required")
	}
	if patient.OwnerID != p.ID {
		return Deny("you do not have permission to view mappings for this patient")
	}
	return Allow()
}

// CanDeleteMapping allows the mapping's assigner or the owner of the
// referenced patient.
func CanDeleteMapping(p domain.ContextPrincipal, m *domain.Mapping, patient *domain.Patient) Decision {
	if !authenticated(p) {
		return Deny("authentication required")
	}
	if m.AssignedBy != nil && *m.AssignedBy == p.ID {
		return Allow()
	}
	if patient.OwnerID == p.ID {
		return Allow()
	}
	return Deny("you do not have permission to delete this mapping")
}
