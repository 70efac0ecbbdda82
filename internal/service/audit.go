package service

import (
	"context"
	"log/slog"

	"carelink/internal/domain"
	"carelink/internal/policy"
)

// AuditService exposes the audit trail for review.
type AuditService struct {
	repo   domain.AuditRepository
	logger *slog.Logger
}

// NewAuditService creates an AuditService.
func NewAuditService(repo domain.AuditRepository, logger *slog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// List returns a page of the audit trail, newest first. Requires an
// authenticated principal.
func (s *AuditService) List(ctx context.Context, principal domain.ContextPrincipal, page domain.PageRequest) ([]domain.AuditEntry, int64, error) {
	if err := policy.CanViewAudit(principal).Err(); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, page)
}
