package service

import (
	"context"
	"log/slog"

	"carelink/internal/domain"
	"carelink/internal/policy"
)

// MappingService manages patient-doctor assignments.
type MappingService struct {
	mappings domain.MappingRepository
	patients domain.PatientRepository
	doctors  domain.DoctorRepository
	logger   *slog.Logger
	audit    auditor
}

// NewMappingService creates a MappingService.
func NewMappingService(mappings domain.MappingRepository, patients domain.PatientRepository, doctors domain.DoctorRepository, auditRepo domain.AuditRepository, logger *slog.Logger) *MappingService {
	return &MappingService{
		mappings: mappings,
		patients: patients,
		doctors:  doctors,
		logger:   logger,
		audit:    auditor{repo: auditRepo, logger: logger},
	}
}

// Create assigns a doctor to a patient. Both referents are resolved before
// policy runs: a missing patient or doctor is NotFound, a patient owned by
// someone else is AccessDenied, a duplicate pair is Conflict.
func (s *MappingService) Create(ctx context.Context, principal domain.ContextPrincipal, req *domain.CreateMappingRequest) (*domain.Mapping, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.doctors.GetByID(ctx, req.DoctorID); err != nil {
		return nil, err
	}
	if err := policy.CanCreateMapping(principal, patient).Err(); err != nil {
		s.audit.record(ctx, principal, "CREATE_MAPPING", "", auditDenied)
		return nil, err
	}

	assignedBy := principal.ID
	mapping, err := s.mappings.Create(ctx, &domain.Mapping{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		AssignedBy: &assignedBy,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("mapping created",
		"mapping_id", mapping.ID, "patient_id", mapping.PatientID,
		"doctor_id", mapping.DoctorID, "by", principal.Username)
	s.audit.record(ctx, principal, "CREATE_MAPPING", mapping.ID, auditAllowed)
	return mapping, nil
}

// ListForPrincipal returns every mapping whose patient the principal owns,
// joined with doctor and patient detail.
func (s *MappingService) ListForPrincipal(ctx context.Context, principal domain.ContextPrincipal) ([]domain.MappingDetail, error) {
	if err := policy.CanCreatePatient(principal).Err(); err != nil {
		return nil, err
	}
	return s.mappings.ListByOwner(ctx, principal.ID)
}

// ListByPatient returns all mappings for one patient the principal owns.
func (s *MappingService) ListByPatient(ctx context.Context, principal domain.ContextPrincipal, patientID string) ([]domain.MappingDetail, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanViewPatientMappings(principal, patient).Err(); err != nil {
		return nil, err
	}
	return s.mappings.ListByPatient(ctx, patientID)
}

// Delete removes a mapping. Allowed for the user who assigned it or the
// owner of the patient it references.
func (s *MappingService) Delete(ctx context.Context, principal domain.ContextPrincipal, id string) error {
	mapping, err := s.mappings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	patient, err := s.patients.GetByID(ctx, mapping.PatientID)
	if err != nil {
		return err
	}
	if err := policy.CanDeleteMapping(principal, mapping, patient).Err(); err != nil {
		s.audit.record(ctx, principal, "DELETE_MAPPING", id, auditDenied)
		return err
	}

	if err := s.mappings.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("mapping deleted", "mapping_id", id, "by", principal.Username)
	s.audit.record(ctx, principal, "DELETE_MAPPING", id, auditAllowed)
	return nil
}
