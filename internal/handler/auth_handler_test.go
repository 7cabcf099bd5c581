package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsync/ptm-api/internal/models"
	"github.com/schoolsync/ptm-api/internal/service"
	"github.com/schoolsync/ptm-api/internal/session"
	"github.com/schoolsync/ptm-api/pkg/config"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

type fakeAuthService struct {
	user *models.User
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req service.LoginRequest) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func newTestSessions() *session.Codec {
	return session.NewCodec(config.SessionConfig{
		CookieName:    "user",
		MaxAge:        time.Hour,
		SigningSecret: "secret",
	}, false)
}

func writeSessionCookie(t *testing.T, sessions *session.Codec, user models.User) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, sessions.Write(c, user))
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "user" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func authTestRouter(auth authService, sessions *session.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(auth, sessions)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/check", h.Check)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func TestLoginSetsSessionCookie(t *testing.T) {
	sessions := newTestSessions()
	router := authTestRouter(&fakeAuthService{
		user: &models.User{ID: 4, Username: "amina", Role: models.RoleParent},
	}, sessions)

	body := `{"username":"amina","password":"pass123","role":"parent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success bool         `json:"success"`
		User    *models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	require.NotNil(t, payload.User)
	assert.Equal(t, "amina", payload.User.Username)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "user" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := authTestRouter(&fakeAuthService{
		err: appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials"),
	}, newTestSessions())

	body := `{"username":"amina","password":"wrong","role":"parent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "Invalid credentials", payload.Message)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginMalformedBody(t *testing.T) {
	router := authTestRouter(&fakeAuthService{}, newTestSessions())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestCheckWithoutSession(t *testing.T) {
	router := authTestRouter(&fakeAuthService{}, newTestSessions())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())
}

func TestCheckWithSession(t *testing.T) {
	sessions := newTestSessions()
	router := authTestRouter(&fakeAuthService{
		user: &models.User{ID: 2, Username: "mr_diallo", Role: models.RoleTeacher},
	}, sessions)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"mr_diallo","password":"chalk","role":"teacher"}`))
	login.Header.Set("Content-Type", "application/json")
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, login)
	require.Equal(t, http.StatusOK, loginRec.Code)

	check := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	for _, c := range loginRec.Result().Cookies() {
		check.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, check)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		User *models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotNil(t, payload.User)
	assert.Equal(t, models.RoleTeacher, payload.User.Role)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := authTestRouter(&fakeAuthService{}, newTestSessions())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "user" {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
