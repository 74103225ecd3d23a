package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendia_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "admin"
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireCustomer vérifie que l'utilisateur a le rôle "customer"
func RequireCustomer(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Accès réservé aux clients"})
		c.Abort()
		return
	}
	c.Next()
}
