package api

import (
	"time"

	"carelink/internal/domain"
	"carelink/internal/token"
)

// Wire representations of domain entities. Kept separate from the domain
// structs so storage fields like password hashes can never marshal out.

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type authResponse struct {
	User   userResponse `json:"user"`
	Tokens *token.Pair  `json:"tokens"`
}

type doctorResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type patientResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DOB       *string   `json:"dob"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type mappingResponse struct {
	ID         string    `json:"id"`
	Patient    string    `json:"patient"`
	Doctor     string    `json:"doctor"`
	AssignedBy *string   `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

type mappingDetailResponse struct {
	mappingResponse
	DoctorDetail  doctorResponse  `json:"doctor_detail"`
	PatientDetail patientResponse `json:"patient_detail"`
}

type auditResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entity_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type listResponse[T any] struct {
	Results       []T    `json:"results"`
	Total         int64  `json:"total"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toDoctorResponse(d *domain.Doctor) doctorResponse {
	return doctorResponse{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Specialty: d.Specialty,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
	}
}

func toPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{
		ID:        p.ID,
		Owner:     p.OwnerID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		DOB:       p.DOB,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

func toMappingResponse(m *domain.Mapping) mappingResponse {
	return mappingResponse{
		ID:         m.ID,
		Patient:    m.PatientID,
		Doctor:     m.DoctorID,
		AssignedBy: m.AssignedBy,
		AssignedAt: m.AssignedAt,
	}
}

func toAuditResponse(e *domain.AuditEntry) auditResponse {
	return auditResponse{
		ID:        e.ID,
		Username:  e.Username,
		Action:    e.Action,
		EntityID:  e.EntityID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

func toMappingDetailResponse(md *domain.MappingDetail) mappingDetailResponse {
	return mappingDetailResponse{
		mappingResponse: toMappingResponse(&md.Mapping),
		DoctorDetail:    toDoctorResponse(&md.Doctor),
		PatientDetail:   toPatientResponse(&md.Patient),
	}
}
