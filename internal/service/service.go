// Package service implements the application use cases of the records API.
//
// Every operation takes the acting principal as an explicit argument;
// nothing here reads identity from ambient state. Mutating operations
// follow the same shape: validate input, resolve the target, consult
// policy, act, then write a best-effort audit entry.
package service

import (
	"context"
	"log/slog"

	"carelink/internal/domain"
)

// auditor writes audit entries without letting audit failures affect the
// outcome of the operation being audited.
type auditor struct {
	repo   domain.AuditRepository
	logger *slog.Logger
}

func (a *auditor) record(ctx context.Context, principal domain.ContextPrincipal, action, entityID, status string) {
	if a.repo == nil {
		return
	}
	entry := &domain.AuditEntry{
		Username: principal.Username,
		Action:   action,
		EntityID: entityID,
		Status:   status,
	}
	if err := a.repo.Insert(ctx, entry); err != nil {
		a.logger.Warn("audit write failed", "action", action, "error", err)
	}
}

const (
	auditAllowed = "ALLOWED"
	auditDenied  = "DENIED"
)
