package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vendia_back_end/internal/config"
	"vendia_back_end/internal/database"
	"vendia_back_end/internal/handlers/order"
	"vendia_back_end/internal/handlers/product"
	"vendia_back_end/internal/handlers/user"
	"vendia_back_end/internal/routes"
	"vendia_back_end/internal/store"
)

func main() {
	config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Connect(ctx); err != nil {
		cancel()
		log.Fatalf("❌ Échec initialisation base de données: %v", err)
	}
	cancel()

	users := user.NewHandler(store.NewUserStore(database.Mongo))
	products := product.NewHandler(store.NewProductStore(database.Mongo))
	orders := order.NewHandler(
		store.NewOrderStore(database.Mongo),
		store.NewProductStore(database.Mongo),
		store.NewUserStore(database.Mongo),
	)

	r := gin.Default()
	routes.RegisterRoutes(r, users, products, orders)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Serveur Vendia lancé sur le port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erreur serveur HTTP: %v", err)
		}
	}()

	// Arrêt propre sur SIGINT/SIGTERM : on ferme le serveur HTTP
	// puis les connexions base de données
	quit, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-quit.Done()

	log.Println("🛑 Arrêt du serveur...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("⚠️ Arrêt forcé du serveur HTTP:", err)
	}
	database.Close(shutdownCtx)
}
