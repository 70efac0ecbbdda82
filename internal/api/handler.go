// Package api exposes the records service over HTTP with JSON bodies.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"carelink/internal/domain"
	"carelink/internal/service"
)

// Handler holds the HTTP handlers for all routes.
type Handler struct {
	auth     *service.AuthService
	doctors  *service.DoctorService
	patients *service.PatientService
	mappings *service.MappingService
	audit    *service.AuditService
	logger   *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(auth *service.AuthService, doctors *service.DoctorService, patients *service.PatientService, mappings *service.MappingService, audit *service.AuditService, logger *slog.Logger) *Handler {
	return &Handler{
		auth:     auth,
		doctors:  doctors,
		patients: patients,
		mappings: mappings,
		audit:    audit,
		logger:   logger,
	}
}

// Routes mounts all endpoints. requireAuth guards everything that needs a
// principal; optionalAuth lets doctor reads work for anonymous callers
// while still attaching a principal when a token is present.
func (h *Handler) Routes(requireAuth, optionalAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.Post("/token/refresh", h.handleRefresh)
	})

	r.Route("/doctors", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/", h.handleListDoctors)
			r.Get("/{id}", h.handleGetDoctor)
		})
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.handleCreateDoctor)
			r.Put("/{id}", h.handleUpdateDoctor)
			r.Patch("/{id}", h.handleUpdateDoctor)
			r.Delete("/{id}", h.handleDeleteDoctor)
		})
	})

	r.Route("/patients", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.handleListPatients)
		r.Post("/", h.handleCreatePatient)
		r.Get("/{id}", h.handleGetPatient)
		r.Put("/{id}", h.handleUpdatePatient)
		r.Patch("/{id}", h.handleUpdatePatient)
		r.Delete("/{id}", h.handleDeletePatient)
	})

	r.Route("/audit", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.handleListAudit)
	})

	r.Route("/mappings", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.handleListMappings)
		r.Post("/", h.handleCreateMapping)
		r.Get("/{patientId}", h.handleListMappingsByPatient)
		r.Delete("/delete/{id}", h.handleDeleteMapping)
	})

	return r
}

// principal returns the authenticated principal, or the zero value for
// anonymous requests on optional-auth routes.
func principal(r *http.Request) domain.ContextPrincipal {
	p, _ := domain.PrincipalFromContext(r.Context())
	return p
}

// pageRequest parses max_results and page_token query parameters.
func pageRequest(r *http.Request) domain.PageRequest {
	var page domain.PageRequest
	if v := r.URL.Query().Get("max_results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.MaxResults = n
		}
	}
	page.PageToken = r.URL.Query().Get("page_token")
	return page
}
