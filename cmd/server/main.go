package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vedran77/inkwell/internal/config"
	"github.com/vedran77/inkwell/internal/database"
	"github.com/vedran77/inkwell/internal/migrate"
	postgresrepo "github.com/vedran77/inkwell/internal/repository/postgres"
	"github.com/vedran77/inkwell/internal/service"
	"github.com/vedran77/inkwell/internal/transport/http/handlers"
	"github.com/vedran77/inkwell/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Fatal("missing JWT_SECRET")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Schema
	if err := migrate.Up(ctx, database.DSN(cfg)); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// Database
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	postService := service.NewPostService(postRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	postHandler := handlers.NewPostHandler(postService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Protected - Posts
	mux.Handle("GET /api/posts", auth(http.HandlerFunc(postHandler.List)))
	mux.Handle("POST /api/posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /api/posts/{id}", auth(http.HandlerFunc(postHandler.Get)))
	mux.Handle("PUT /api/posts/{id}", auth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /api/posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))

	// Protected - Users
	mux.Handle("GET /api/users", auth(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /api/users/{id}", auth(http.HandlerFunc(userHandler.Get)))
	mux.Handle("PUT /api/users/{id}", auth(http.HandlerFunc(userHandler.Update)))

	var handler http.Handler = mux
	handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recover(logger)(handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}
}
