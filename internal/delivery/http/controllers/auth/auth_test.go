package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app_errors"
	"github.com/elaibiton11/colman-web-development-assignments/internal/models"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAuthService struct {
	registerErr error
	loginPair   *models.TokenPair
	loginErr    error
	logoutErr   error
	refreshPair *models.TokenPair
	refreshErr  error
}

func (f *fakeAuthService) Register(_ context.Context, username, email, _ string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: primitive.NewObjectID(), Username: username, Email: email, Password: "hash"}, nil
}

func (f *fakeAuthService) Login(context.Context, string, string) (*models.TokenPair, error) {
	return f.loginPair, f.loginErr
}

func (f *fakeAuthService) Logout(context.Context, string) error {
	return f.logoutErr
}

func (f *fakeAuthService) Refresh(context.Context, string) (*models.TokenPair, error) {
	return f.refreshPair, f.refreshErr
}

func newAuthRouter(s AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(logger.New("local"), s)
	auth := r.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.POST("/refresh", h.Refresh)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterMissingField(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := post(t, r, "/auth/register", gin.H{"username": "bob", "password": "s3cret"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterSuccessOmitsPassword(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := post(t, r, "/auth/register", gin.H{"username": "bob", "email": "bob@example.com", "password": "s3cret"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bob", body["username"])
	assert.NotContains(t, body, "password")
}

func TestRegisterDuplicateConflict(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{registerErr: app_errors.ErrUserExists})

	w := post(t, r, "/auth/register", gin.H{"username": "bob", "email": "bob@example.com", "password": "s3cret"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{loginErr: app_errors.ErrInvalidCredentials})

	w := post(t, r, "/auth/login", gin.H{"email": "bob@example.com", "password": "wrong"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid email or password", body["error"])
}

func TestLoginReturnsPair(t *testing.T) {
	pair := &models.TokenPair{AccessToken: "a", RefreshToken: "r", UserID: "64f000000000000000000001"}
	r := newAuthRouter(&fakeAuthService{loginPair: pair})

	w := post(t, r, "/auth/login", gin.H{"email": "bob@example.com", "password": "s3cret"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "a", body["accessToken"])
	assert.Equal(t, "r", body["refreshToken"])
	assert.Equal(t, "64f000000000000000000001", body["_id"])
}

func TestLogoutMissingToken(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := post(t, r, "/auth/logout", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutSuccessIsEmpty(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := post(t, r, "/auth/logout", gin.H{"refreshToken": "some-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestRefreshInvalidToken(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{refreshErr: app_errors.ErrInvalidRefreshToken})

	w := post(t, r, "/auth/refresh", gin.H{"refreshToken": "replayed"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid refresh token", body["error"])
}

func TestRefreshMissingToken(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := post(t, r, "/auth/refresh", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
