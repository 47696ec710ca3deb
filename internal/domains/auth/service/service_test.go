package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/memstore"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	userRepository "lodge/internal/domains/user/repository"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

const (
	seededAdminEmail    = "admin@lodge.local"
	seededAdminPassword = "admin"
)

func newService(t *testing.T) (service.Auth, jwt.JWT, *memstore.Store) {
	t.Helper()

	store := memstore.NewSeeded()
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	jwtService := jwt.New(cfg)
	svc := service.New(userRepository.NewMemory(store), cfg, mockOtel, jwtService)

	return svc, jwtService, store
}

func TestAuthService_Register(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-admin-id")

	req := dto.RegisterRequest{
		Email:    "reception@lodge.local",
		Password: "long-enough-password",
		Role:     "receptionist",
	}

	require.NoError(t, svc.Register(ctx, req))

	// The new account can sign in right away.
	res, err := svc.Login(ctx, dto.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	err = svc.Register(ctx, req)
	require.Error(t, err, "registering the same email twice must fail")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "seeded administrator",
			email:    seededAdminEmail,
			password: seededAdminPassword,
		},
		{
			name:     "wrong password",
			email:    seededAdminEmail,
			password: "not-the-password",
			wantErr:  true,
		},
		{
			name:     "unknown email",
			email:    "nobody@lodge.local",
			password: seededAdminPassword,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, dto.LoginRequest{Email: tt.email, Password: tt.password})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			claims, err := jwtService.ValidateToken(res.AccessToken, jwt.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, seededAdminEmail, claims.Email)
			assert.Equal(t, "admin", claims.Role)
		})
	}
}

func TestAuthService_LoginDeactivatedUser(t *testing.T) {
	svc, _, store := newService(t)
	ctx := context.Background()

	for id, user := range store.Users {
		user.Active = false
		store.Users[id] = user
	}

	_, err := svc.Login(ctx, dto.LoginRequest{Email: seededAdminEmail, Password: seededAdminPassword})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Email: seededAdminEmail, Password: seededAdminPassword})
	require.NoError(t, err)

	res, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	_, err = svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "not-a-token"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	_, err = svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: login.AccessToken})
	require.Error(t, err, "an access token cannot be used as a refresh token")
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _, store := newService(t)
	ctx := context.Background()

	var adminID string
	for id := range store.Users {
		adminID = id
	}
	require.NotEmpty(t, adminID)

	err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "brand-new-password",
	}, adminID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	require.NoError(t, svc.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: seededAdminPassword,
		NewPassword:     "brand-new-password",
	}, adminID))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: seededAdminEmail, Password: seededAdminPassword})
	require.Error(t, err, "old password must stop working")

	_, err = svc.Login(ctx, dto.LoginRequest{Email: seededAdminEmail, Password: "brand-new-password"})
	assert.NoError(t, err)

	err = svc.ChangePassword(ctx, dto.ChangePasswordRequest{
		CurrentPassword: "brand-new-password",
		NewPassword:     "another-password-1",
	}, "nonexistent-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
