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

	"github.com/Usmantahir0707/Luxe-Bags/internal/backend"
	"github.com/Usmantahir0707/Luxe-Bags/internal/httpapi"
	"github.com/Usmantahir0707/Luxe-Bags/internal/notify"
	"github.com/Usmantahir0707/Luxe-Bags/internal/service"
	"github.com/Usmantahir0707/Luxe-Bags/internal/session"
	"github.com/Usmantahir0707/Luxe-Bags/internal/store"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	CartStore       string // file | redis | mongo
	CartFile        string
	CartOwner       string
	RedisAddr       string
	RedisPassword   string
	MongoURI        string
	MongoDBName     string
	AuthToken       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:3000"),
		CartStore:       getEnv("CART_STORE", "file"),
		CartFile:        getEnv("CART_FILE", "cart.json"),
		CartOwner:       getEnv("CART_OWNER", "default"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "shopfront"),
		AuthToken:       getEnv("AUTH_TOKEN", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	cartStore, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up cart store: %v", err)
	}
	defer cleanup()
	log.Printf("Cart store: %s", cfg.CartStore)

	notifier := notify.LogNotifier{}
	gate := session.NewGate(cfg.AuthToken)

	client := backend.NewClient(cfg.BackendBaseURL, gate)
	catalog := backend.NewCatalog(client)
	orders := backend.NewOrdersClient(client)
	auth := backend.NewAuthClient(client)
	log.Printf("Backend base URL: %s", cfg.BackendBaseURL)

	cartService := service.NewCartService(ctx, cartStore, notifier)
	log.Printf("Cart rehydrated with %d items", cartService.TotalItems())

	checkoutService := service.NewCheckoutService(cartService, orders, gate, notifier)

	router := httpapi.NewRouter(
		httpapi.NewCartHandler(cartService, catalog),
		httpapi.NewCheckoutHandler(checkoutService),
		httpapi.NewAuthHandler(auth, gate),
		httpapi.NewOrderHandler(orders, gate),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Shopfront core listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func buildStore(ctx context.Context, cfg *Config) (store.Store, func(), error) {
	switch cfg.CartStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}
		log.Printf("Redis ping succeeded")
		return store.NewRedisStore(client, cfg.CartOwner), func() { client.Close() }, nil
	case "mongo":
		db, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Connected to MongoDB at %s", cfg.MongoURI)
		cleanup := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Printf("mongo disconnect failed: %v", err)
			}
		}
		return store.NewMongoStore(db, cfg.CartOwner), cleanup, nil
	default:
		return store.NewFileStore(cfg.CartFile), func() {}, nil
	}
}
