package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Handles partagés, initialisés par Connect, fermés par Close ---
var (
	client *mongo.Client

	Mongo   *mongo.Database
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
)

// Connect initialise toutes les connexions au démarrage.
// MongoDB est obligatoire ; Redis, Elasticsearch et MinIO sont
// optionnels et simplement signalés s'ils ne sont pas configurés.
func Connect(ctx context.Context) error {
	if err := connectMongo(ctx); err != nil {
		return err
	}

	connectRedis(ctx)
	connectElastic()
	connectMinIO(ctx)

	log.Println("✅ Connexions base de données initialisées")
	return nil
}

// Close ferme proprement les connexions à l'arrêt du serveur
func Close(ctx context.Context) {
	if Redis != nil {
		if err := Redis.Close(); err != nil {
			log.Println("⚠️ Erreur fermeture Redis:", err)
		}
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("⚠️ Erreur fermeture MongoDB:", err)
		}
	}
	log.Println("🔌 Connexions base de données fermées")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connexion MongoDB impossible: %w", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping MongoDB échoué: %w", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "vendia"
	}

	client = c
	Mongo = c.Database(dbName)
	log.Println("✅ Connecté à MongoDB :", dbName)
	return nil
}

// =============================================
// REDIS (optionnel — rate limiting)
// =============================================
func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️ REDIS_HOST absent — rate limiting désactivé")
		return
	}

	r := redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := r.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis injoignable — rate limiting désactivé:", err)
		return
	}

	Redis = r
	log.Println("✅ Connecté à Redis")
}

// =============================================
// ELASTICSEARCH (optionnel — recherche produits)
// =============================================
func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️ ELASTIC_URL absent — recherche produits désactivée")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	c, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️ Erreur création client Elasticsearch:", err)
		return
	}

	Elastic = c
	log.Println("✅ Connecté à Elasticsearch")
}

// =============================================
// MINIO (optionnel — images produits)
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT absent — upload d'images désactivé")
		return
	}

	c, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ Erreur connexion MinIO:", err)
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "vendia"
	}

	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️ Erreur vérification bucket MinIO:", err)
		return
	}
	if !exists {
		if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Erreur création bucket MinIO:", err)
			return
		}
		log.Println("🪣 Bucket créé :", bucket)
	}

	MinIO = c
	log.Println("✅ Connecté à MinIO :", endpoint)
}
