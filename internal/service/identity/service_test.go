package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/auth"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/service/identity"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

func newService(t *testing.T) (*identity.Service, *MockuserRepository, *auth.MemoryBlacklist) {
	t.Helper()
	repo := NewMockuserRepository(newCtrl(t))
	bl := auth.NewMemoryBlacklist()
	svc := identity.NewService(repo, auth.NewJWTService("test-secret", time.Hour), bl, time.Second, nil)
	return svc, repo, bl
}

func carrierRegistration() domain.Registration {
	return domain.Registration{
		Username:    " hanjin ",
		Email:       "Ops@Hanjin.example",
		Password:    "secret1",
		FullName:    "Park Ji",
		Role:        domain.RoleCarrier,
		Phone:       "+82 10 1234 5678",
		CompanyName: "Hanjin Logistics",
	}
}

func TestRegister_Carrier(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, u *domain.User, c *domain.Carrier, _ *domain.Driver) error {
			require.Equal(t, "hanjin", u.Username)
			require.Equal(t, "ops@hanjin.example", u.Email)
			require.True(t, auth.CheckPassword(u.PasswordHash, "secret1"))
			require.True(t, u.IsActive)
			require.NotNil(t, c)
			require.Equal(t, "Hanjin Logistics", c.CompanyName)
			u.ID = 42
			return nil
		})

	u, err := svc.Register(context.Background(), carrierRegistration())
	require.NoError(t, err)
	require.Equal(t, int64(42), u.ID)
}

func TestRegister_Driver(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Register(gomock.Any(), gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.User, _ *domain.Carrier, d *domain.Driver) error {
			require.Equal(t, int64(3), d.CarrierID)
			require.Equal(t, "DL-1", d.LicenseNumber)
			require.Equal(t, domain.DriverAvailable, d.Status)
			return nil
		})

	_, err := svc.Register(context.Background(), domain.Registration{
		Username:      "driver1",
		Email:         "d@example.com",
		Password:      "secret1",
		FullName:      "Choi Min",
		Role:          domain.RoleDriver,
		CarrierID:     3,
		LicenseNumber: "DL-1",
	})
	require.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		edit func(r *domain.Registration)
	}{
		{name: "blank username", edit: func(r *domain.Registration) { r.Username = " " }},
		{name: "short password", edit: func(r *domain.Registration) { r.Password = "12345" }},
		{name: "bad email", edit: func(r *domain.Registration) { r.Email = "nope" }},
		{name: "no full name", edit: func(r *domain.Registration) { r.FullName = "" }},
		{name: "unknown role", edit: func(r *domain.Registration) { r.Role = "dispatcher" }},
		{name: "admin", edit: func(r *domain.Registration) { r.Role = domain.RoleAdmin }},
		{name: "bad phone", edit: func(r *domain.Registration) { r.Phone = "call me" }},
		{name: "carrier without company", edit: func(r *domain.Registration) { r.CompanyName = "" }},
		{name: "driver without carrier", edit: func(r *domain.Registration) {
			r.Role = domain.RoleDriver
			r.LicenseNumber = "DL"
		}},
		{name: "driver without license", edit: func(r *domain.Registration) {
			r.Role = domain.RoleDriver
			r.CarrierID = 1
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, _ := newService(t)
			r := carrierRegistration()
			tt.edit(&r)
			_, err := svc.Register(context.Background(), r)
			require.ErrorIs(t, err, apperr.Invalid)
		})
	}
}

func TestRegisterAs_AdminOnly(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	r := carrierRegistration()
	r.Role = domain.RoleAdmin

	_, err := svc.RegisterAs(context.Background(), lifecycle.Actor{Role: domain.RoleCarrier, UserID: 2, CarrierID: 1}, r)
	require.ErrorIs(t, err, apperr.Unauthorized)

	repo.EXPECT().Register(gomock.Any(), gomock.Any(), nil, nil).Return(nil)
	_, err = svc.RegisterAs(context.Background(), lifecycle.Actor{Role: domain.RoleAdmin, UserID: 1}, r)
	require.NoError(t, err)
}

func TestLoginAuthenticateLogout(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	repo.EXPECT().GetByUsername(gomock.Any(), "hanjin").
		Return(&domain.User{ID: 7, Username: "hanjin", PasswordHash: hash, Role: domain.RoleCarrier, IsActive: true}, nil)
	repo.EXPECT().Profile(gomock.Any(), int64(7)).Return(int64(3), int64(0), nil)

	sess, err := svc.Login(ctx, "hanjin", "secret1")
	require.NoError(t, err)
	require.Equal(t, int64(3), sess.CarrierID)
	require.NotEmpty(t, sess.Token.Value)

	actor, claims, err := svc.Authenticate(ctx, sess.Token.Value)
	require.NoError(t, err)
	require.Equal(t, lifecycle.Actor{Role: domain.RoleCarrier, UserID: 7, CarrierID: 3}, actor)
	require.Equal(t, "hanjin", claims.Username)

	require.NoError(t, svc.Logout(ctx, sess.Token.Value))
	_, _, err = svc.Authenticate(ctx, sess.Token.Value)
	require.ErrorIs(t, err, apperr.Unauthenticated)
	require.ErrorIs(t, err, auth.ErrRevokedToken)
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
		_, err := svc.Login(ctx, "ghost", "secret1")
		require.ErrorIs(t, err, apperr.Unauthenticated)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "hanjin").
			Return(&domain.User{ID: 7, PasswordHash: hash, Role: domain.RoleCarrier, IsActive: true}, nil)
		_, err := svc.Login(ctx, "hanjin", "secret2")
		require.ErrorIs(t, err, apperr.Unauthenticated)
	})

	t.Run("inactive", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "hanjin").
			Return(&domain.User{ID: 7, PasswordHash: hash, Role: domain.RoleCarrier}, nil)
		_, err := svc.Login(ctx, "hanjin", "secret1")
		require.ErrorIs(t, err, apperr.Unauthenticated)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, apperr.Invalid)
	})
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, _, err := svc.Authenticate(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, apperr.Unauthenticated)

	err = svc.Logout(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, apperr.Unauthenticated)
}
