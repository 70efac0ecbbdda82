package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelink/internal/domain"
)

func (h *Handler) handleCreatePatient(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePatientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	patient, err := h.patients.Create(r.Context(), principal(r), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPatientResponse(patient))
}

func (h *Handler) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.patients.Get(r.Context(), principal(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toPatientResponse(patient))
}

func (h *Handler) handleListPatients(w http.ResponseWriter, r *http.Request) {
	page := pageRequest(r)
	patients, total, err := h.patients.List(r.Context(), principal(r), page)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	results := make([]patientResponse, 0, len(patients))
	for i := range patients {
		results = append(results, toPatientResponse(&patients[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[patientResponse]{
		Results:       results,
		Total:         total,
		NextPageToken: domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

func (h *Handler) handleUpdatePatient(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePatientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	patient, err := h.patients.Update(r.Context(), principal(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toPatientResponse(patient))
}

func (h *Handler) handleDeletePatient(w http.ResponseWriter, r *http.Request) {
	if err := h.patients.Delete(r.Context(), principal(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
