package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelink/internal/domain"
)

func (h *Handler) handleCreateMapping(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMappingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	mapping, err := h.mappings.Create(r.Context(), principal(r), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMappingResponse(mapping))
}

func (h *Handler) handleListMappings(w http.ResponseWriter, r *http.Request) {
	details, err := h.mappings.ListForPrincipal(r.Context(), principal(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mappingDetailList(details))
}

func (h *Handler) handleListMappingsByPatient(w http.ResponseWriter, r *http.Request) {
	details, err := h.mappings.ListByPatient(r.Context(), principal(r), chi.URLParam(r, "patientId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mappingDetailList(details))
}

func (h *Handler) handleDeleteMapping(w http.ResponseWriter, r *http.Request) {
	if err := h.mappings.Delete(r.Context(), principal(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func mappingDetailList(details []domain.MappingDetail) listResponse[mappingDetailResponse] {
	results := make([]mappingDetailResponse, 0, len(details))
	for i := range details {
		results = append(results, toMappingDetailResponse(&details[i]))
	}
	return listResponse[mappingDetailResponse]{Results: results, Total: int64(len(results))}
}
