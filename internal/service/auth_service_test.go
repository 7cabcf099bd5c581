package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

type mockAuthRepo struct {
	user    *models.User
	findErr error

	gotUsername string
	gotPassword string
	gotRole     models.Role
}

func (m *mockAuthRepo) FindByCredentials(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	m.gotUsername = username
	m.gotPassword = password
	m.gotRole = role
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.user, nil
}

func TestLoginSuccess(t *testing.T) {
	repo := &mockAuthRepo{user: &models.User{ID: 4, Username: "amina", Role: models.RoleParent}}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Login(context.Background(), LoginRequest{Username: "amina", Password: "pass123", Role: "parent"})
	require.NoError(t, err)
	assert.Equal(t, 4, user.ID)
	assert.Equal(t, models.RoleParent, user.Role)
	assert.Equal(t, "pass123", repo.gotPassword)
	assert.Equal(t, models.RoleParent, repo.gotRole)
}

func TestLoginMissingFields(t *testing.T) {
	repo := &mockAuthRepo{}
	svc := NewAuthService(repo, nil, nil)

	cases := []LoginRequest{
		{Password: "x", Role: "parent"},
		{Username: "amina", Role: "parent"},
		{Username: "amina", Password: "x"},
		{Username: "amina", Password: "x", Role: "admin"},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		appErr := appErrors.FromError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "Missing required fields", appErr.Message)
	}
	assert.Empty(t, repo.gotUsername, "repository must not be hit for invalid payloads")
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := &mockAuthRepo{findErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "amina", Password: "wrong", Role: "parent"})
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestLoginRepositoryFailure(t *testing.T) {
	repo := &mockAuthRepo{findErr: errors.New("connection refused")}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "amina", Password: "pass123", Role: "teacher"})
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Internal server error", appErr.Message)
}
