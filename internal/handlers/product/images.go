package product

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendia_back_end/internal/services"
	"vendia_back_end/internal/store"
)

// UploadProductImage reçoit une image en multipart, la stocke dans
// MinIO et enregistre son URL sur le produit
func (h *Handler) UploadProductImage(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
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

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Fichier manquant"})
		return
	}
	defer file.Close()

	objectName := fmt.Sprintf("products/%s%s", uuid.New().String(), filepath.Ext(header.Filename))

	url, err := services.UploadFile(ctx, objectName, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println("❌ Erreur upload MinIO:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	p.ImageURL = url
	if err := h.Products.Save(ctx, p); err != nil {
		log.Println("❌ Erreur enregistrement URL image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}
