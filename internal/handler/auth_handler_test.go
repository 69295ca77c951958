package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-booking-api/internal/handler"
	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(svc handler.AuthServicer) *gin.Engine {
	h := handler.NewAuthHandler(svc, time.Hour, false)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", asUser("u1", models.RoleUser), h.Me)
	return r
}

func refreshCookieOf(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "refresh_token" {
			return c
		}
	}
	return nil
}

func TestLogin_SetsRefreshCookie(t *testing.T) {
	svc := &fakeAuthService{
		login: func(_ context.Context, username, password string) (*service.LoginResponse, error) {
			if password != "secret123" {
				return nil, apperrors.ErrInvalidCredentials
			}
			return &service.LoginResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         service.UserResponse{ID: "u1", Username: username, Role: models.RoleUser},
			}, nil
		},
	}
	r := authRouter(svc)

	w, env := do(t, r, http.MethodPost, "/auth/login", map[string]string{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"access_token":"access"`)
	assert.NotContains(t, string(env.Data), "refresh")
	cookie := refreshCookieOf(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	w, env = do(t, r, http.MethodPost, "/auth/login", map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(apperrors.KindUnauthorized), env.Kind)

	w, _ = do(t, r, http.MethodPost, "/auth/login", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister(t *testing.T) {
	svc := &fakeAuthService{
		register: func(_ context.Context, username, _ string) (*service.LoginResponse, error) {
			if username == "taken" {
				return nil, apperrors.ErrUsernameTaken
			}
			return &service.LoginResponse{AccessToken: "a", RefreshToken: "r", User: service.UserResponse{ID: "u2", Username: username, Role: models.RoleUser}}, nil
		},
	}
	r := authRouter(svc)

	w, _ := do(t, r, http.MethodPost, "/auth/register", map[string]string{"username": "bob", "password": "secret123", "role": "admin"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)

	w, env := do(t, r, http.MethodPost, "/auth/register", map[string]string{"username": "taken", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(apperrors.KindConflict), env.Kind)
}

func TestRefresh(t *testing.T) {
	svc := &fakeAuthService{
		refresh: func(_ context.Context, token string) (string, error) {
			if token != "good" {
				return "", apperrors.ErrInvalidToken
			}
			return "new-access", nil
		},
	}
	r := authRouter(svc)

	w, _ := do(t, r, http.MethodPost, "/auth/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "good"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestLogout_ClearsCookie(t *testing.T) {
	revoked := ""
	svc := &fakeAuthService{
		logout: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(""))
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "tok"})
	w := httptest.NewRecorder()
	authRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", revoked)
	cookie := refreshCookieOf(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestMe(t *testing.T) {
	svc := &fakeAuthService{
		me: func(_ context.Context, userID string) (*service.UserResponse, error) {
			return &service.UserResponse{ID: userID, Username: "alice", Role: models.RoleUser}, nil
		},
	}

	w, env := do(t, authRouter(svc), http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"id":"u1"`)
}
