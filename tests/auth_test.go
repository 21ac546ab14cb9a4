package tests

import (
	"context"
	"testing"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/config"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (service.AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo
}

func TestRegister_StartsPending(t *testing.T) {
	svc, _ := buildAuthSvc()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "partner@example.com",
		FullName: "Le Thi C",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusPending, resp.Status)
	assert.Equal(t, model.RoleStaff, resp.Role)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Someone Else", Password: "other456",
	})
	assert.True(t, apierror.IsValidation(err))
}

func TestLogin_PendingAccountRejected(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "partner@example.com", Password: "secret123",
	})
	assert.True(t, apierror.IsValidation(err))
	assert.ErrorContains(t, err, "not approved")
}

func TestLogin_AfterApproval(t *testing.T) {
	svc, _ := buildAuthSvc()

	reg, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.ApproveUser(context.Background(), uuid.MustParse(reg.ID))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "partner@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.UserStatusApproved, resp.User.Status)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := buildAuthSvc()

	reg, _ := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	_, _ = svc.ApproveUser(context.Background(), uuid.MustParse(reg.ID))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "partner@example.com", Password: "wrong",
	})
	assert.True(t, apierror.IsValidation(err))
}

func TestBlockUser_LoginRejectedAfterwards(t *testing.T) {
	svc, _ := buildAuthSvc()

	reg, _ := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	id := uuid.MustParse(reg.ID)
	_, _ = svc.ApproveUser(context.Background(), id)

	blocked, err := svc.BlockUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusBlocked, blocked.Status)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "partner@example.com", Password: "secret123",
	})
	assert.True(t, apierror.IsValidation(err))
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, _ := buildAuthSvc()

	reg, _ := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	_, _ = svc.ApproveUser(context.Background(), uuid.MustParse(reg.ID))
	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "partner@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "partner@example.com", refreshed.User.Email)
}

func TestRefresh_GarbageTokenRejected(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.True(t, apierror.IsValidation(err))
}

func TestUpdateUser_RoleChange(t *testing.T) {
	svc, _ := buildAuthSvc()

	reg, _ := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "partner@example.com", FullName: "Le Thi C", Password: "secret123",
	})
	role := model.RolePartner
	resp, err := svc.UpdateUser(context.Background(), uuid.MustParse(reg.ID), dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, model.RolePartner, resp.Role)
}

func TestApproveUser_Unknown(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.ApproveUser(context.Background(), uuid.New())
	assert.True(t, apierror.IsNotFound(err))
}
