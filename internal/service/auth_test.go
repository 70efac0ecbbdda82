package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink/internal/domain"
)

func TestRegisterIssuesTokens(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	res, err := env.auth.Register(ctx, &domain.RegisterRequest{
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada", res.User.Username)
	assert.Equal(t, "Ada", res.User.FirstName)
	assert.Equal(t, "Lovelace", res.User.LastName)
	assert.NotEmpty(t, res.User.ID)
	assert.NotEmpty(t, res.Tokens.Access)
	assert.NotEmpty(t, res.Tokens.Refresh)
	assert.NotEqual(t, "supersecret", res.User.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  domain.RegisterRequest
	}{
		{"missing name", domain.RegisterRequest{Username: "u", Email: "u@example.com", Password: "longenough"}},
		{"missing username", domain.RegisterRequest{Name: "U", Email: "u@example.com", Password: "longenough"}},
		{"bad email", domain.RegisterRequest{Name: "U", Username: "u", Email: "not-an-email", Password: "longenough"}},
		{"short password", domain.RegisterRequest{Name: "U", Username: "u", Email: "u@example.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.auth.Register(ctx, &tc.req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	registerUser(t, env, "dupe")

	_, err := env.auth.Register(ctx, &domain.RegisterRequest{
		Name:     "Other Person",
		Username: "dupe",
		Email:    "other@example.com",
		Password: "longenough",
	})
	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestLogin(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	registerUser(t, env, "ada")

	res, err := env.auth.Login(ctx, &domain.LoginRequest{Username: "ada", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens.Access)

	_, err = env.auth.Login(ctx, &domain.LoginRequest{Username: "ada", Password: "wrong"})
	var uerr *domain.UnauthenticatedError
	require.ErrorAs(t, err, &uerr)

	// Unknown users get the same error as wrong passwords.
	_, err = env.auth.Login(ctx, &domain.LoginRequest{Username: "nobody", Password: "whatever"})
	require.ErrorAs(t, err, &uerr)
}

func TestRefresh(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	res, err := env.auth.Register(ctx, &domain.RegisterRequest{
		Name:     "Ada Lovelace",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	pair, err := env.auth.Refresh(ctx, res.Tokens.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)

	// An access token is not a refresh token.
	_, err = env.auth.Refresh(ctx, res.Tokens.Access)
	var uerr *domain.UnauthenticatedError
	require.ErrorAs(t, err, &uerr)

	_, err = env.auth.Refresh(ctx, "garbage")
	require.ErrorAs(t, err, &uerr)
}
