package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendia_back_end/internal/middleware"
	"vendia_back_end/internal/models"
	"vendia_back_end/internal/store"
)

type fakeUserStore struct {
	byID    map[string]models.User
	byEmail map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[string]models.User{}, byEmail: map[string]models.User{}}
}

func (s *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	s.byID[u.ID] = *u
	s.byEmail[u.Email] = *u
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", middleware.AuthRequired(), h.Me)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

type authReply struct {
	Success bool `json:"success"`
	Data    struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	} `json:"data"`
}

func TestRegisterLoginMe(t *testing.T) {
	users := newFakeUserStore()
	r := newTestRouter(NewHandler(users))

	// Inscription : rôle customer par défaut
	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "motdepasse",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var reg authReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, models.RoleCustomer, reg.Data.Role)
	assert.NotEmpty(t, reg.Data.Token)

	// le mot de passe est stocké hashé
	stored := users.byEmail["alice@example.com"]
	assert.NotEqual(t, "motdepasse", stored.Password)

	// Connexion
	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "motdepasse",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login authReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)

	// Profil via le token
	w = doJSON(r, http.MethodGet, "/api/auth/me", nil, login.Data.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
	// le hash ne sort jamais dans la réponse
	assert.NotContains(t, w.Body.String(), stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	r := newTestRouter(NewHandler(users))

	payload := gin.H{"name": "Alice", "email": "alice@example.com", "password": "motdepasse"}
	w := doJSON(r, http.MethodPost, "/api/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	r := newTestRouter(NewHandler(newFakeUserStore()))

	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{"email": "x@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPasswordOrUnknownEmail(t *testing.T) {
	users := newFakeUserStore()
	r := newTestRouter(NewHandler(users))

	doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "motdepasse",
	}, "")

	// même réponse dans les deux cas
	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "alice@example.com", "password": "mauvais",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "inconnu@example.com", "password": "motdepasse",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_WithoutToken(t *testing.T) {
	r := newTestRouter(NewHandler(newFakeUserStore()))

	w := doJSON(r, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
