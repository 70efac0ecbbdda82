package service

import (
	"context"
	"log/slog"

	"carelink/internal/domain"
	"carelink/internal/policy"
)

// PatientService manages owned patient records.
type PatientService struct {
	patients domain.PatientRepository
	logger   *slog.Logger
	audit    auditor
}

// NewPatientService creates a PatientService.
func NewPatientService(patients domain.PatientRepository, auditRepo domain.AuditRepository, logger *slog.Logger) *PatientService {
	return &PatientService{
		patients: patients,
		logger:   logger,
		audit:    auditor{repo: auditRepo, logger: logger},
	}
}

// Create registers a patient owned by the principal. The owner comes from
// the principal only; request payloads cannot set or change it.
func (s *PatientService) Create(ctx context.Context, principal domain.ContextPrincipal, req *domain.CreatePatientRequest) (*domain.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := policy.CanCreatePatient(principal).Err(); err != nil {
		s.audit.record(ctx, principal, "CREATE_PATIENT", "", auditDenied)
		return nil, err
	}

	patient, err := s.patients.Create(ctx, &domain.Patient{
		OwnerID:   principal.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DOB,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("patient created", "patient_id", patient.ID, "owner", principal.Username)
	s.audit.record(ctx, principal, "CREATE_PATIENT", patient.ID, auditAllowed)
	return patient, nil
}

// Get returns one of the principal's patients. A patient owned by someone
// else resolves but is then denied, so the caller learns it exists without
// seeing it.
func (s *PatientService) Get(ctx context.Context, principal domain.ContextPrincipal, id string) (*domain.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessPatient(principal, patient).Err(); err != nil {
		return nil, err
	}
	return patient, nil
}

// List returns a page of the principal's own patients. Other users' records
// are filtered at the storage layer, not post-hoc.
func (s *PatientService) List(ctx context.Context, principal domain.ContextPrincipal, page domain.PageRequest) ([]domain.Patient, int64, error) {
	if err := policy.CanCreatePatient(principal).Err(); err != nil {
		return nil, 0, err
	}
	return s.patients.ListByOwner(ctx, principal.ID, page)
}

// Update applies a partial update to one of the principal's patients.
func (s *PatientService) Update(ctx context.Context, principal domain.ContextPrincipal, id string, req *domain.UpdatePatientRequest) (*domain.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessPatient(principal, patient).Err(); err != nil {
		s.audit.record(ctx, principal, "UPDATE_PATIENT", id, auditDenied)
		return nil, err
	}

	req.Apply(patient)
	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}

	s.audit.record(ctx, principal, "UPDATE_PATIENT", id, auditAllowed)
	return patient, nil
}

// Delete removes one of the principal's patients; its mappings cascade.
func (s *PatientService) Delete(ctx context.Context, principal domain.ContextPrincipal, id string) error {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanAccessPatient(principal, patient).Err(); err != nil {
		s.audit.record(ctx, principal, "DELETE_PATIENT", id, auditDenied)
		return err
	}

	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("patient deleted", "patient_id", id, "owner", principal.Username)
	s.audit.record(ctx, principal, "DELETE_PATIENT", id, auditAllowed)
	return nil
}
