// Package app provides application-level wiring and dependency injection
// for the carelink server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"carelink/internal/api"
	"carelink/internal/config"
	"carelink/internal/middleware"
	"carelink/internal/repository"
	"carelink/internal/service"
	"carelink/internal/token"
)

// Deps holds the external dependencies that main() must provide: database
// handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups the service pointers the API handler needs.
type Services struct {
	Auth    *service.AuthService
	Doctor  *service.DoctorService
	Patient *service.PatientService
	Mapping *service.MappingService
	Audit   *service.AuditService
}

// App holds the fully-wired application.
type App struct {
	Services Services
	Handler  *api.Handler

	// RequireAuth and OptionalAuth are the auth middlewares, wired to the
	// configured token validator.
	RequireAuth  func(http.Handler) http.Handler
	OptionalAuth func(http.Handler) http.Handler
}

// New wires repositories, services, and middleware from the provided deps.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	// Write-pool for repos that INSERT/UPDATE/DELETE, read-pool for the
	// rest. Mapping and patient repos take the write pool because their
	// reads participate in mutation flows.
	userRepo := repository.NewUserRepo(deps.WriteDB)
	doctorRepo := repository.NewDoctorRepo(deps.WriteDB)
	patientRepo := repository.NewPatientRepo(deps.WriteDB)
	mappingRepo := repository.NewMappingRepo(deps.WriteDB)
	auditRepo := repository.NewAuditRepo(deps.WriteDB)

	tokens, err := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	svcs := Services{
		Auth:    service.NewAuthService(userRepo, tokens, auditRepo, deps.Logger.With("component", "auth")),
		Doctor:  service.NewDoctorService(doctorRepo, auditRepo, deps.Logger.With("component", "doctors")),
		Patient: service.NewPatientService(patientRepo, auditRepo, deps.Logger.With("component", "patients")),
		Mapping: service.NewMappingService(mappingRepo, patientRepo, doctorRepo, auditRepo, deps.Logger.With("component", "mappings")),
		Audit:   service.NewAuditService(repository.NewAuditRepo(deps.ReadDB), deps.Logger.With("component", "audit")),
	}

	var validator middleware.JWTValidator = middleware.NewHS256Validator(tokens)
	if cfg.Auth.OIDCEnabled() {
		oidcValidator, err := middleware.NewOIDCValidator(ctx, cfg.Auth.OIDCIssuerURL, cfg.Auth.OIDCAudience, cfg.Auth.AllowedIssuers)
		if err != nil {
			return nil, fmt.Errorf("oidc validator: %w", err)
		}
		validator = oidcValidator
	}

	return &App{
		Services:     svcs,
		Handler:      api.NewHandler(svcs.Auth, svcs.Doctor, svcs.Patient, svcs.Mapping, svcs.Audit, deps.Logger.With("component", "api")),
		RequireAuth:  middleware.RequireAuth(validator, svcs.Auth.ResolvePrincipal),
		OptionalAuth: middleware.OptionalAuth(validator, svcs.Auth.ResolvePrincipal),
	}, nil
}
