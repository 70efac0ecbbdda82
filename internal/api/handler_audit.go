package api

import (
	"net/http"

	"carelink/internal/domain"
)

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	page := pageRequest(r)
	entries, total, err := h.audit.List(r.Context(), principal(r), page)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	results := make([]auditResponse, 0, len(entries))
	for i := range entries {
		results = append(results, toAuditResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[auditResponse]{
		Results:       results,
		Total:         total,
		NextPageToken: domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}
