package domain

import (
	"strings"
	"time"
)

// Doctor is a profile in the shared doctor registry. Doctors have no
// per-record owner: the registry is globally readable and any
// authenticated user may maintain it.
type Doctor struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Specialty string
	Phone     string
	CreatedAt time.Time
}

// CreateDoctorRequest holds parameters for adding a doctor to the registry.
type CreateDoctorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

// Validate checks that the request is well-formed.
func (r *CreateDoctorRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return ErrValidation("first_name is required")
	}
	if !ValidEmail(r.Email) {
		return ErrValidation("a valid email is required")
	}
	return nil
}

// UpdateDoctorRequest holds a partial update for a doctor. Nil fields are
// left unchanged so the same request serves PUT and PATCH.
type UpdateDoctorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
}

// Validate checks that the supplied fields are well-formed.
func (r *UpdateDoctorRequest) Validate() error {
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		return ErrValidation("first_name must not be empty")
	}
	if r.Email != nil && !ValidEmail(*r.Email) {
		return ErrValidation("email must be a valid address")
	}
	return nil
}

// Apply copies the supplied fields onto the doctor.
func (r *UpdateDoctorRequest) Apply(d *Doctor) {
	if r.FirstName != nil {
		d.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		d.LastName = *r.LastName
	}
	if r.Email != nil {
		d.Email = *r.Email
	}
	if r.Specialty != nil {
		d.Specialty = *r.Specialty
	}
	if r.Phone != nil {
		d.Phone = *r.Phone
	}
}
