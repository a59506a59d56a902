package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/models"
	"catalog-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	loginFn func(ctx context.Context, email, password string) (*services.TokenPair, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return nil, services.ErrInvalidCredentials
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return nil, services.ErrInvalidCredentials
}

func (f *fakeAuthService) Register(ctx context.Context, req services.RegisterRequest) (*models.User, error) {
	return nil, services.ErrEmailExists
}

func newAuthRouter(service AuthServiceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(service)
	router := gin.New()
	router.POST("/token/", controller.ObtainTokenPair)
	router.POST("/token/refresh/", controller.RefreshTokenPair)
	router.POST("/auth/register/", controller.Register)
	return router
}

func TestObtainTokenPair(t *testing.T) {
	t.Run("Wrong Password", func(t *testing.T) {
		router := newAuthRouter(&fakeAuthService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/",
			strings.NewReader(`{"email": "test@example.com", "password": "wrong"}`)))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail": "Invalid credentials."}`, rec.Body.String())
	})

	t.Run("Inactive Account", func(t *testing.T) {
		router := newAuthRouter(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (*services.TokenPair, error) {
				return nil, services.ErrInactiveAccount
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/",
			strings.NewReader(`{"email": "test@example.com", "password": "right"}`)))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail": "User account is not active."}`, rec.Body.String())
	})

	t.Run("Success Returns Pair", func(t *testing.T) {
		router := newAuthRouter(&fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (*services.TokenPair, error) {
				return &services.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/",
			strings.NewReader(`{"email": "test@example.com", "password": "right"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access": "a", "refresh": "r"}`, rec.Body.String())
	})

	t.Run("Missing Fields", func(t *testing.T) {
		router := newAuthRouter(&fakeAuthService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token/",
			strings.NewReader(`{"email": "test@example.com"}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegisterConflict(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register/",
		strings.NewReader(`{"email": "taken@example.com", "password": "strongpassword123"}`)))

	require.Equal(t, http.StatusConflict, rec.Code)
}
