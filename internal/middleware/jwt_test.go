package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendia_back_end/internal/models"
	"vendia_back_end/internal/utils"
)

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthRequired()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")},
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := protectedRouter()

	// sans token
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)

	// header mal formé
	assert.Equal(t, http.StatusUnauthorized, get(r, "Token abc").Code)

	// token invalide
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer pas.un.jwt").Code)

	// token valide : l'identité est injectée dans le contexte
	token, err := utils.GenerateJWT(models.User{ID: "user-1", Email: "a@b.c", Role: models.RoleCustomer})
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), models.RoleCustomer)
}

func TestRequireAdmin(t *testing.T) {
	r := protectedRouter(RequireAdmin)

	customer, err := utils.GenerateJWT(models.User{ID: "user-1", Role: models.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+customer).Code)

	admin, err := utils.GenerateJWT(models.User{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+admin).Code)
}

func TestRequireCustomer(t *testing.T) {
	r := protectedRouter(RequireCustomer)

	admin, err := utils.GenerateJWT(models.User{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+admin).Code)

	customer, err := utils.GenerateJWT(models.User{ID: "user-1", Role: models.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+customer).Code)
}
