package domain

import "time"

// Mapping links one patient to one doctor. The (patient, doctor) pair is
// unique. AssignedBy records the user who created the mapping and becomes
// nil if that account is later removed.
type Mapping struct {
	ID         string
	PatientID  string
	DoctorID   string
	AssignedBy *string
	AssignedAt time.Time
}

// MappingDetail is a mapping joined with its doctor and patient rows for
// list responses.
type MappingDetail struct {
	Mapping
	Doctor  Doctor
	Patient Patient
}

// CreateMappingRequest holds parameters for assigning a doctor to a patient.
type CreateMappingRequest struct {
	PatientID string `json:"patient"`
	DoctorID  string `json:"doctor"`
}

// Validate checks that the request is well-formed.
func (r *CreateMappingRequest) Validate() error {
	if r.PatientID == "" {
		return ErrValidation("patient is required")
	}
	if r.DoctorID == "" {
		return ErrValidation("doctor is required")
	}
	return nil
}
