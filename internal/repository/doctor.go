package repository

import (
	"context"
	"database/sql"
	"time"

	"carelink/internal/domain"
)

var _ domain.DoctorRepository = (*DoctorRepo)(nil)

// DoctorRepo implements domain.DoctorRepository using SQLite.
type DoctorRepo struct {
	db *sql.DB
}

// NewDoctorRepo creates a new DoctorRepo.
func NewDoctorRepo(db *sql.DB) *DoctorRepo {
	return &DoctorRepo{db: db}
}

// Create inserts a new doctor. Duplicate emails surface as ConflictError.
func (r *DoctorRepo) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	created := *d
	if created.ID == "" {
		created.ID = domain.NewID()
	}
	created.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO doctors (id, first_name, last_name, email, specialty, phone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.FirstName, created.LastName,
		created.Email, created.Specialty, created.Phone, created.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &created, nil
}

// GetByID returns a doctor by ID.
func (r *DoctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	var d domain.Doctor
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email, specialty, phone, created_at
		 FROM doctors WHERE id = ?`, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.Specialty, &d.Phone, &d.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &d, nil
}

// List returns a paginated list of doctors, newest first.
func (r *DoctorRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Doctor, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, email, specialty, phone, created_at
		 FROM doctors ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.Specialty, &d.Phone, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, d)
	}
	return doctors, total, rows.Err()
}

// Update persists the mutable fields of a doctor.
func (r *DoctorRepo) Update(ctx context.Context, d *domain.Doctor) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE doctors SET first_name = ?, last_name = ?, email = ?, specialty = ?, phone = ?
		 WHERE id = ?`,
		d.FirstName, d.LastName, d.Email, d.Specialty, d.Phone, d.ID)
	if err != nil {
		return mapDBError(err)
	}
	return requireRow(res)
}

// Delete removes a doctor; its mappings are removed by the FK cascade.
func (r *DoctorRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	return requireRow(res)
}

// requireRow converts a zero-row result into NotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Message: "resource not found"}
	}
	return nil
}
