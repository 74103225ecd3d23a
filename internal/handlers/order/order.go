package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vendia_back_end/internal/models"
	"vendia_back_end/internal/store"
)

type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	UpdateStock(ctx context.Context, id string, stock int) error
}

type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Save(ctx context.Context, o *models.Order) error
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type Handler struct {
	Orders   OrderStore
	Products ProductStore
	Users    UserStore
}

func NewHandler(orders OrderStore, products ProductStore, users UserStore) *Handler {
	return &Handler{Orders: orders, Products: products, Users: users}
}

type orderItemInput struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CreateOrder place une commande en trois phases : validation et calcul
// du prix, décrément du stock, puis persistance de la commande.
//
// ⚠️ Aucun verrou entre la validation et le décrément : deux commandes
// simultanées sur le même produit peuvent toutes les deux passer la
// validation avant que l'une n'écrive. Comportement historique, assumé.
func (h *Handler) CreateOrder(c *gin.Context) {
	var input struct {
		OrderItems []orderItemInput `json:"orderItems"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}
	if len(input.OrderItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Aucun article dans la commande"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	// Phase 1 — valider la disponibilité et calculer le prix total.
	// Aucune écriture tant que tous les articles ne sont pas validés.
	var totalPrice float64
	items := make([]models.OrderItem, 0, len(input.OrderItems))

	for _, item := range input.OrderItems {
		p, err := h.Products.FindByID(ctx, item.Product)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"success": false,
					"message": fmt.Sprintf("Produit introuvable avec l'id %s", item.Product),
				})
				return
			}
			log.Println("❌ Erreur lecture produit:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
			return
		}

		if p.Stock < item.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Stock insuffisant pour le produit %s", p.Name),
			})
			return
		}

		totalPrice += p.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{Product: p.ID, Quantity: item.Quantity})
	}

	// Phase 2 — décrémenter le stock. Relecture volontaire de chaque
	// produit plutôt que réutilisation des objets de la phase 1.
	// Pas de re-vérification du stock ici, et pas de rollback si une
	// écriture échoue en cours de route.
	for _, item := range input.OrderItems {
		p, err := h.Products.FindByID(ctx, item.Product)
		if err != nil {
			log.Println("❌ Erreur relecture produit:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
			return
		}

		p.Stock -= item.Quantity
		if err := h.Products.UpdateStock(ctx, p.ID.Hex(), p.Stock); err != nil {
			log.Println("❌ Erreur mise à jour stock:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
			return
		}

		if p.Stock < p.LowStockThreshold {
			log.Printf("🚨 Stock faible pour le produit %s : il reste %d", p.Name, p.Stock)
		}
	}

	// Phase 3 — persister la commande
	order := &models.Order{
		UserID:     c.GetString("user_id"),
		Items:      items,
		TotalPrice: totalPrice,
	}
	if err := h.Orders.Insert(ctx, order); err != nil {
		log.Println("❌ Erreur création commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

// GetOrders retourne toutes les commandes, enrichies des infos
// utilisateur et produit (vue admin)
func (h *Handler) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Orders.FindAll(ctx)
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	for i := range orders {
		h.resolveUser(ctx, &orders[i])
		h.resolveItems(ctx, &orders[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "data": orders})
}

// GetMyOrders retourne les commandes de l'utilisateur connecté
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Utilisateur non authentifié"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.Orders.FindByUser(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	for i := range orders {
		h.resolveItems(ctx, &orders[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "data": orders})
}

// GetOrderByID retourne une commande par id (vue admin)
func (h *Handler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("Commande introuvable avec l'id %s", id),
			})
			return
		}
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	h.resolveUser(ctx, order)
	h.resolveItems(ctx, order)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// UpdateOrderStatus écrase le statut sans contrainte de transition
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}

	// Statut vérifié avant toute lecture en base
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Statut invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("Commande introuvable avec l'id %s", id),
			})
			return
		}
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	order.Status = input.Status
	if err := h.Orders.Save(ctx, order); err != nil {
		log.Println("❌ Erreur mise à jour statut:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// resolveUser enrichit la commande avec le nom et l'email du client.
// Best-effort : une référence cassée laisse simplement les champs vides.
func (h *Handler) resolveUser(ctx context.Context, o *models.Order) {
	u, err := h.Users.FindByID(ctx, o.UserID)
	if err != nil {
		return
	}
	o.UserName = u.Name
	o.UserEmail = u.Email
}

// resolveItems enrichit chaque article avec le nom et le prix courant
// du produit référencé. Les références cassées sont ignorées : la
// suppression d'un produit ne casse pas les commandes existantes.
func (h *Handler) resolveItems(ctx context.Context, o *models.Order) {
	for j := range o.Items {
		p, err := h.Products.FindByID(ctx, o.Items[j].Product.Hex())
		if err != nil {
			continue
		}
		o.Items[j].ProductName = p.Name
		o.Items[j].ProductPrice = p.Price
	}
}
