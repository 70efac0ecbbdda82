package domain

import "context"

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// DoctorRepository persists the shared doctor registry.
type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) (*Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
	List(ctx context.Context, page PageRequest) ([]Doctor, int64, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id string) error
}

// PatientRepository persists owned patient records.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) (*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	ListByOwner(ctx context.Context, ownerID string, page PageRequest) ([]Patient, int64, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id string) error
}

// MappingRepository persists patient-doctor mappings.
type MappingRepository interface {
	Create(ctx context.Context, m *Mapping) (*Mapping, error)
	GetByID(ctx context.Context, id string) (*Mapping, error)
	ListByOwner(ctx context.Context, ownerID string) ([]MappingDetail, error)
	ListByPatient(ctx context.Context, patientID string) ([]MappingDetail, error)
	Delete(ctx context.Context, id string) error
}

// AuditRepository records the audit trail for mutating operations.
type AuditRepository interface {
	Insert(ctx context.Context, e *AuditEntry) error
	List(ctx context.Context, page PageRequest) ([]AuditEntry, int64, error)
}
