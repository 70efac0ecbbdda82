package domain

import (
	"strings"
	"time"
)

// Patient is an owned record. OwnerID is assigned from the authenticated
// principal at creation and never changes through the public contract;
// no request struct carries an owner field.
type Patient struct {
	ID        string
	OwnerID   string
	FirstName string
	LastName  string
	DOB       *string // YYYY-MM-DD, optional
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
}

// CreatePatientRequest holds parameters for registering a patient.
type CreatePatientRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	DOB       *string `json:"dob"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Notes     string  `json:"notes"`
}

// Validate checks that the request is well-formed.
func (r *CreatePatientRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return ErrValidation("first_name is required")
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		return ErrValidation("email must be a valid address")
	}
	if r.DOB != nil {
		if _, err := time.Parse("2006-01-02", *r.DOB); err != nil {
			return ErrValidation("dob must use YYYY-MM-DD format")
		}
	}
	return nil
}

// UpdatePatientRequest holds a partial update for a patient. Nil fields are
// left unchanged so the same request serves PUT and PATCH.
type UpdatePatientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	DOB       *string `json:"dob"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
}

// Validate checks that the supplied fields are well-formed.
func (r *UpdatePatientRequest) Validate() error {
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		return ErrValidation("first_name must not be empty")
	}
	if r.Email != nil && *r.Email != "" && !ValidEmail(*r.Email) {
		return ErrValidation("email must be a valid address")
	}
	if r.DOB != nil && *r.DOB != "" {
		if _, err := time.Parse("2006-01-02", *r.DOB); err != nil {
			return ErrValidation("dob must use YYYY-MM-DD format")
		}
	}
	return nil
}

// Apply copies the supplied fields onto the patient. OwnerID is never
// touched here.
func (r *UpdatePatientRequest) Apply(p *Patient) {
	if r.FirstName != nil {
		p.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		p.LastName = *r.LastName
	}
	if r.DOB != nil {
		if *r.DOB == "" {
			p.DOB = nil
		} else {
			dob := *r.DOB
			p.DOB = &dob
		}
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}
