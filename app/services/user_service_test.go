package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/internal/testdb"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/auth"
)

func TestRegisterLoginChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUserService(repositories.NewUserRepository(testdb.New(t)))

	s, err := svc.Register(ctx, requests.Register{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", s.User.Password)

	claims, err := auth.ValidateToken(s.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)

	_, err = svc.Register(ctx, requests.Register{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = svc.Login(ctx, requests.Login{Email: "nobody@example.com", Password: "x"})
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))
	_, err = svc.Login(ctx, requests.Login{Email: "ada@example.com", Password: "wrong"})
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))

	err = svc.ChangePassword(ctx, s.User.ID, requests.ChangePassword{CurrentPassword: "wrong", NewPassword: "secret2"})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	require.NoError(t, svc.ChangePassword(ctx, s.User.ID, requests.ChangePassword{CurrentPassword: "secret1", NewPassword: "secret2"}))

	_, err = svc.Login(ctx, requests.Login{Email: "ada@example.com", Password: "secret2"})
	assert.NoError(t, err)
}
