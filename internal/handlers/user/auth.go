package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vendia_back_end/internal/models"
	"vendia_back_end/internal/store"
	"vendia_back_end/internal/utils"
)

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type Handler struct {
	Users UserStore
}

func NewHandler(users UserStore) *Handler {
	return &Handler{Users: users}
}

// Register crée un compte client local. Le rôle admin n'est jamais
// attribué par cette route, il est provisionné directement en base.
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nom, email et mot de passe sont obligatoires"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	// email déjà pris ?
	if _, err := h.Users.FindByEmail(ctx, input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Un compte avec cet email existe déjà"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Println("❌ Erreur lecture utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Println("❌ Erreur hash mot de passe:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	u := models.User{
		ID:       primitive.NewObjectID().Hex(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleCustomer,
	}
	if err := h.Users.Insert(ctx, &u); err != nil {
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	token, err := utils.GenerateJWT(u)
	if err != nil {
		log.Println("❌ Erreur génération token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"token":  token,
			"userId": u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"role":   u.Role,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, input.Email)
	if err != nil || !utils.CheckPassword(u.Password, input.Password) {
		// même réponse pour email inconnu et mot de passe erroné
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Email ou mot de passe incorrect"})
		return
	}

	token, err := utils.GenerateJWT(*u)
	if err != nil {
		log.Println("❌ Erreur génération token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":  token,
			"userId": u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"role":   u.Role,
		},
	})
}

// Me retourne le profil de l'utilisateur authentifié
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Utilisateur non authentifié"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Utilisateur introuvable"})
			return
		}
		log.Println("❌ Erreur lecture utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}
