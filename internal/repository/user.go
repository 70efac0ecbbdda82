package repository

import (
	"context"
	"database/sql"
	"time"

	"carelink/internal/domain"
)

var _ domain.UserRepository = (*UserRepo)(nil)

// UserRepo implements domain.UserRepository using SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user account. Duplicate usernames or emails surface
// as ConflictError via the UNIQUE constraints.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	created := *u
	if created.ID == "" {
		created.ID = domain.NewID()
	}
	created.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, first_name, last_name, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.Username, created.Email,
		created.FirstName, created.LastName, created.PasswordHash, created.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &created, nil
}

// GetByID returns a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, first_name, last_name, password_hash, created_at
		 FROM users WHERE id = ?`, id))
}

// GetByUsername returns a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, first_name, last_name, password_hash, created_at
		 FROM users WHERE username = ?`, username))
}

func (r *UserRepo) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &u, nil
}
