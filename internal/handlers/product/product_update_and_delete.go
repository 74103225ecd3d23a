package product

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vendia_back_end/internal/services"
	"vendia_back_end/internal/store"
)

// UpdateProduct applique une mise à jour partielle : seuls les champs
// fournis écrasent l'existant. Un champ numérique à 0 est une vraie
// valeur ; un nom ou une description vides retombent sur la valeur
// stockée.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

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

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.LowStockThreshold != nil {
		p.LowStockThreshold = *input.LowStockThreshold
	}

	// Refus explicite avant écriture : le document stocké reste intact
	if p.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Le stock ne peut pas être négatif"})
		return
	}

	if err := h.Products.Save(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("Produit introuvable avec l'id %s", id),
			})
			return
		}
		log.Println("❌ Erreur mise à jour produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	go services.IndexProduct(*p)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// DeleteProduct supprime définitivement le produit. Les commandes qui
// le référencent ne sont pas touchées (référence faible).
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Products.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("Produit introuvable avec l'id %s", id),
			})
			return
		}
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	go services.RemoveProduct(id)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}, "message": "Produit supprimé"})
}
