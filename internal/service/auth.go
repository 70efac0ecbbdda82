package service

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"carelink/internal/domain"
	"carelink/internal/token"
)

// AuthService handles account registration, login, and token refresh.
type AuthService struct {
	users  domain.UserRepository
	tokens *token.Service
	logger *slog.Logger
	audit  auditor
}

// NewAuthService creates an AuthService.
func NewAuthService(users domain.UserRepository, tokens *token.Service, auditRepo domain.AuditRepository, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
		audit:  auditor{repo: auditRepo, logger: logger},
	}
}

// AuthResult is the response payload for register and login.
type AuthResult struct {
	User   *domain.User
	Tokens *token.Pair
}

// Register creates a new account and returns it with a fresh token pair.
// Duplicate usernames and emails surface as ConflictError from storage.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	first, last := req.SplitName()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    first,
		LastName:     last,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "username", user.Username)
	s.audit.record(ctx, domain.ContextPrincipal{ID: user.ID, Username: user.Username},
		"REGISTER", user.ID, auditAllowed)
	return &AuthResult{User: user, Tokens: pair}, nil
}

// Login verifies credentials and returns a fresh token pair. Unknown
// usernames and bad passwords produce the same error so the endpoint does
// not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, domain.ErrUnauthenticated("invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.audit.record(ctx, domain.ContextPrincipal{Username: req.Username}, "LOGIN", user.ID, auditDenied)
		return nil, domain.ErrUnauthenticated("invalid username or password")
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.ContextPrincipal{ID: user.ID, Username: user.Username},
		"LOGIN", user.ID, auditAllowed)
	return &AuthResult{User: user, Tokens: pair}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The user
// must still exist; tokens for deleted accounts stop working here.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*token.Pair, error) {
	claims, err := s.tokens.Verify(refreshToken, "refresh")
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthenticated("account no longer exists")
	}
	return s.tokens.IssuePair(user)
}

// ResolvePrincipal loads the principal for a verified access token subject.
// Used by the auth middleware after signature validation.
func (s *AuthService) ResolvePrincipal(ctx context.Context, userID string) (domain.ContextPrincipal, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.ContextPrincipal{}, domain.ErrUnauthenticated("account no longer exists")
	}
	return domain.ContextPrincipal{ID: user.ID, Username: user.Username}, nil
}
