package product

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vendia_back_end/internal/models"
	"vendia_back_end/internal/services"
	"vendia_back_end/internal/store"
)

type ProductStore interface {
	Insert(ctx context.Context, p *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Save(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Products ProductStore
}

func NewHandler(products ProductStore) *Handler {
	return &Handler{Products: products}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var input struct {
		Name              string   `json:"name"`
		Description       string   `json:"description"`
		Price             *float64 `json:"price"`
		Stock             *int     `json:"stock"`
		LowStockThreshold *int     `json:"lowStockThreshold"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Corps de requête invalide"})
		return
	}

	p := models.Product{
		Name:              input.Name,
		Description:       input.Description,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	// prix et stock obligatoires ; leur absence échoue à la
	// persistance comme n'importe quel document invalide
	if input.Price != nil {
		p.Price = *input.Price
	} else {
		p.Price = -1
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	} else {
		p.Stock = -1
	}
	if input.LowStockThreshold != nil {
		p.LowStockThreshold = *input.LowStockThreshold
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Insert(ctx, &p); err != nil {
		log.Println("❌ Erreur création produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}

func (h *Handler) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	products, err := h.Products.FindAll(ctx)
	if err != nil {
		log.Println("❌ Erreur lecture produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(products), "data": products})
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("Produit introuvable avec l'id %s", id),
			})
			return
		}
		log.Println("❌ Erreur lecture produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}
