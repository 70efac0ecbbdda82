// Package middleware provides the HTTP middleware stack: bearer-token
// authentication, request IDs, and rate limiting.
package middleware

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"carelink/internal/token"
)

// JWTClaims holds the identity extracted from a validated bearer token.
type JWTClaims struct {
	Subject  string
	Issuer   string
	Username string
}

// JWTValidator validates a bearer token and returns the parsed claims.
type JWTValidator interface {
	Validate(ctx context.Context, tokenString string) (*JWTClaims, error)
}

// HS256Validator accepts access tokens issued by the local token service.
type HS256Validator struct {
	tokens *token.Service
}

// NewHS256Validator creates a validator backed by the local token service.
func NewHS256Validator(tokens *token.Service) *HS256Validator {
	return &HS256Validator{tokens: tokens}
}

// Validate verifies an HS256 access token. Refresh tokens are rejected.
func (v *HS256Validator) Validate(_ context.Context, tokenString string) (*JWTClaims, error) {
	claims, err := v.tokens.Verify(tokenString, "access")
	if err != nil {
		return nil, err
	}
	return &JWTClaims{
		Subject:  claims.Subject,
		Issuer:   claims.Issuer,
		Username: claims.Username,
	}, nil
}

// OIDCValidator validates bearer tokens against an external identity
// provider using OIDC discovery and JWKS.
type OIDCValidator struct {
	verifier       *oidc.IDTokenVerifier
	allowedIssuers map[string]bool
}

// NewOIDCValidator creates a validator from an OIDC issuer URL.
func NewOIDCValidator(ctx context.Context, issuerURL, audience string, allowedIssuers []string) (*OIDCValidator, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc provider discovery: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: audience})

	issuers := make(map[string]bool, len(allowedIssuers))
	for _, iss := range allowedIssuers {
		issuers[iss] = true
	}
	if len(issuers) == 0 {
		issuers[issuerURL] = true
	}
	return &OIDCValidator{verifier: verifier, allowedIssuers: issuers}, nil
}

// Validate verifies the token using the provider's JWKS.
func (v *OIDCValidator) Validate(ctx context.Context, tokenString string) (*JWTClaims, error) {
	idToken, err := v.verifier.Verify(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if len(v.allowedIssuers) > 0 && !v.allowedIssuers[idToken.Issuer] {
		return nil, fmt.Errorf("issuer %q not in allowed list", idToken.Issuer)
	}

	var raw map[string]interface{}
	if err := idToken.Claims(&raw); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}

	claims := &JWTClaims{Subject: idToken.Subject, Issuer: idToken.Issuer}
	if name, ok := raw["preferred_username"].(string); ok {
		claims.Username = name
	}
	return claims, nil
}
