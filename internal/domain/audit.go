package domain

import "time"

// AuditEntry records who did what to which entity. Written best-effort on
// every mutating operation.
type AuditEntry struct {
	ID        string
	Username  string
	Action    string // e.g. "CREATE_PATIENT"
	EntityID  string
	Status    string // "ALLOWED" or "DENIED"
	CreatedAt time.Time
}
