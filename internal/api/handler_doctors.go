package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelink/internal/domain"
)

func (h *Handler) handleCreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDoctorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	doctor, err := h.doctors.Create(r.Context(), principal(r), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDoctorResponse(doctor))
}

func (h *Handler) handleGetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctors.Get(r.Context(), principal(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toDoctorResponse(doctor))
}

func (h *Handler) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	page := pageRequest(r)
	doctors, total, err := h.doctors.List(r.Context(), principal(r), page)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	results := make([]doctorResponse, 0, len(doctors))
	for i := range doctors {
		results = append(results, toDoctorResponse(&doctors[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[doctorResponse]{
		Results:       results,
		Total:         total,
		NextPageToken: domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

func (h *Handler) handleUpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateDoctorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	doctor, err := h.doctors.Update(r.Context(), principal(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toDoctorResponse(doctor))
}

func (h *Handler) handleDeleteDoctor(w http.ResponseWriter, r *http.Request) {
	if err := h.doctors.Delete(r.Context(), principal(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
