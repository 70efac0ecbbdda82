package service

import (
	"context"
	"log/slog"

	"carelink/internal/domain"
	"carelink/internal/policy"
)

// DoctorService manages the shared doctor registry.
type DoctorService struct {
	doctors domain.DoctorRepository
	logger  *slog.Logger
	audit   auditor
}

// NewDoctorService creates a DoctorService.
func NewDoctorService(doctors domain.DoctorRepository, auditRepo domain.AuditRepository, logger *slog.Logger) *DoctorService {
	return &DoctorService{
		doctors: doctors,
		logger:  logger,
		audit:   auditor{repo: auditRepo, logger: logger},
	}
}

// Create adds a doctor to the registry.
func (s *DoctorService) Create(ctx context.Context, principal domain.ContextPrincipal, req *domain.CreateDoctorRequest) (*domain.Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := policy.CanCreateDoctor(principal).Err(); err != nil {
		s.audit.record(ctx, principal, "CREATE_DOCTOR", "", auditDenied)
		return nil, err
	}

	doctor, err := s.doctors.Create(ctx, &domain.Doctor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Specialty: req.Specialty,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("doctor created", "doctor_id", doctor.ID, "by", principal.Username)
	s.audit.record(ctx, principal, "CREATE_DOCTOR", doctor.ID, auditAllowed)
	return doctor, nil
}

// Get returns one doctor. Reads are public.
func (s *DoctorService) Get(ctx context.Context, principal domain.ContextPrincipal, id string) (*domain.Doctor, error) {
	if err := policy.CanReadDoctor(principal).Err(); err != nil {
		return nil, err
	}
	return s.doctors.GetByID(ctx, id)
}

// List returns a page of the registry. Reads are public.
func (s *DoctorService) List(ctx context.Context, principal domain.ContextPrincipal, page domain.PageRequest) ([]domain.Doctor, int64, error) {
	if err := policy.CanReadDoctor(principal).Err(); err != nil {
		return nil, 0, err
	}
	return s.doctors.List(ctx, page)
}

// Update applies a partial update to a doctor. The target is resolved
// before policy runs so missing doctors stay NotFound.
func (s *DoctorService) Update(ctx context.Context, principal domain.ContextPrincipal, id string, req *domain.UpdateDoctorRequest) (*domain.Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanMutateDoctor(principal, doctor).Err(); err != nil {
		s.audit.record(ctx, principal, "UPDATE_DOCTOR", id, auditDenied)
		return nil, err
	}

	req.Apply(doctor)
	if err := s.doctors.Update(ctx, doctor); err != nil {
		return nil, err
	}

	s.audit.record(ctx, principal, "UPDATE_DOCTOR", id, auditAllowed)
	return doctor, nil
}

// Delete removes a doctor; all mappings referencing it go with it.
func (s *DoctorService) Delete(ctx context.Context, principal domain.ContextPrincipal, id string) error {
	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanMutateDoctor(principal, doctor).Err(); err != nil {
		s.audit.record(ctx, principal, "DELETE_DOCTOR", id, auditDenied)
		return err
	}

	if err := s.doctors.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("doctor deleted", "doctor_id", id, "by", principal.Username)
	s.audit.record(ctx, principal, "DELETE_DOCTOR", id, auditAllowed)
	return nil
}
