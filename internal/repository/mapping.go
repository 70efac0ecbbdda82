package repository

import (
	"context"
	"database/sql"
	"time"

	"carelink/internal/domain"
)

var _ domain.MappingRepository = (*MappingRepo)(nil)

// MappingRepo implements domain.MappingRepository using SQLite.
type MappingRepo struct {
	db *sql.DB
}

// NewMappingRepo creates a new MappingRepo.
func NewMappingRepo(db *sql.DB) *MappingRepo {
	return &MappingRepo{db: db}
}

// Create inserts a new mapping. The UNIQUE(patient_id, doctor_id)
// constraint turns a duplicate pair into ConflictError, including when two
// concurrent requests race on the same pair.
func (r *MappingRepo) Create(ctx context.Context, m *domain.Mapping) (*domain.Mapping, error) {
	created := *m
	if created.ID == "" {
		created.ID = domain.NewID()
	}
	created.AssignedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mappings (id, patient_id, doctor_id, assigned_by, assigned_at)
		 VALUES (?, ?, ?, ?, ?)`,
		created.ID, created.PatientID, created.DoctorID, nullStr(created.AssignedBy), created.AssignedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &created, nil
}

// GetByID returns a mapping by ID.
func (r *MappingRepo) GetByID(ctx context.Context, id string) (*domain.Mapping, error) {
	var m domain.Mapping
	var assignedBy sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, patient_id, doctor_id, assigned_by, assigned_at
		 FROM mappings WHERE id = ?`, id).
		Scan(&m.ID, &m.PatientID, &m.DoctorID, &assignedBy, &m.AssignedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	m.AssignedBy = strFromNull(assignedBy)
	return &m, nil
}

const mappingDetailQuery = `
	SELECT m.id, m.patient_id, m.doctor_id, m.assigned_by, m.assigned_at,
	       d.id, d.first_name, d.last_name, d.email, d.specialty, d.phone, d.created_at,
	       p.id, p.owner_id, p.first_name, p.last_name, p.dob, p.email, p.phone, p.address, p.notes, p.created_at
	FROM mappings m
	JOIN doctors d ON d.id = m.doctor_id
	JOIN patients p ON p.id = m.patient_id`

// ListByOwner returns all mappings whose patient belongs to ownerID, joined
// with doctor and patient detail.
func (r *MappingRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.MappingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		mappingDetailQuery+` WHERE p.owner_id = ? ORDER BY m.assigned_at DESC, m.id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMappingDetails(rows)
}

// ListByPatient returns all mappings for one patient, joined with detail.
func (r *MappingRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.MappingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		mappingDetailQuery+` WHERE m.patient_id = ? ORDER BY m.assigned_at DESC, m.id DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMappingDetails(rows)
}

// Delete removes a mapping by ID.
func (r *MappingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mappings WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	return requireRow(res)
}

func scanMappingDetails(rows *sql.Rows) ([]domain.MappingDetail, error) {
	var details []domain.MappingDetail
	for rows.Next() {
		var md domain.MappingDetail
		var assignedBy, dob sql.NullString
		err := rows.Scan(
			&md.ID, &md.PatientID, &md.DoctorID, &assignedBy, &md.AssignedAt,
			&md.Doctor.ID, &md.Doctor.FirstName, &md.Doctor.LastName, &md.Doctor.Email,
			&md.Doctor.Specialty, &md.Doctor.Phone, &md.Doctor.CreatedAt,
			&md.Patient.ID, &md.Patient.OwnerID, &md.Patient.FirstName, &md.Patient.LastName,
			&dob, &md.Patient.Email, &md.Patient.Phone, &md.Patient.Address,
			&md.Patient.Notes, &md.Patient.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		md.AssignedBy = strFromNull(assignedBy)
		md.Patient.DOB = strFromNull(dob)
		details = append(details, md)
	}
	return details, rows.Err()
}
