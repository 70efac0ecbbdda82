package repository

import (
	"context"
	"database/sql"
	"time"

	"carelink/internal/domain"
)

var _ domain.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implements domain.PatientRepository using SQLite.
type PatientRepo struct {
	db *sql.DB
}

// NewPatientRepo creates a new PatientRepo.
func NewPatientRepo(db *sql.DB) *PatientRepo {
	return &PatientRepo{db: db}
}

// Create inserts a new patient with its server-assigned owner.
func (r *PatientRepo) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	created := *p
	if created.ID == "" {
		created.ID = domain.NewID()
	}
	created.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO patients (id, owner_id, first_name, last_name, dob, email, phone, address, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.OwnerID, created.FirstName, created.LastName,
		nullStr(created.DOB), created.Email, created.Phone, created.Address, created.Notes, created.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &created, nil
}

// GetByID returns a patient by ID.
func (r *PatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	var p domain.Patient
	var dob sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, first_name, last_name, dob, email, phone, address, notes, created_at
		 FROM patients WHERE id = ?`, id).
		Scan(&p.ID, &p.OwnerID, &p.FirstName, &p.LastName, &dob, &p.Email, &p.Phone, &p.Address, &p.Notes, &p.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	p.DOB = strFromNull(dob)
	return &p, nil
}

// ListByOwner returns a paginated list of the owner's patients, newest first.
// Scoping happens here so non-owned rows never leave the storage layer.
func (r *PatientRepo) ListByOwner(ctx context.Context, ownerID string, page domain.PageRequest) ([]domain.Patient, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM patients WHERE owner_id = ?`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, first_name, last_name, dob, email, phone, address, notes, created_at
		 FROM patients WHERE owner_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var p domain.Patient
		var dob sql.NullString
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.FirstName, &p.LastName, &dob,
			&p.Email, &p.Phone, &p.Address, &p.Notes, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		p.DOB = strFromNull(dob)
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

// Update persists the mutable fields of a patient. owner_id is deliberately
// absent from the statement: ownership never changes.
func (r *PatientRepo) Update(ctx context.Context, p *domain.Patient) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE patients SET first_name = ?, last_name = ?, dob = ?, email = ?, phone = ?, address = ?, notes = ?
		 WHERE id = ?`,
		p.FirstName, p.LastName, nullStr(p.DOB), p.Email, p.Phone, p.Address, p.Notes, p.ID)
	if err != nil {
		return mapDBError(err)
	}
	return requireRow(res)
}

// Delete removes a patient; its mappings are removed by the FK cascade.
func (r *PatientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	return requireRow(res)
}
