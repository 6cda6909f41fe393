package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-libros/apis"
	authorsAPI "github.com/supakorn-kn/go-libros/apis/authors"
	booksAPI "github.com/supakorn-kn/go-libros/apis/books"
	"github.com/supakorn-kn/go-libros/env"
	"github.com/supakorn-kn/go-libros/logger"
	"github.com/supakorn-kn/go-libros/models/authors"
	"github.com/supakorn-kn/go-libros/models/books"
	"github.com/supakorn-kn/go-libros/mongodb"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg, err := env.GetEnv()
	if err != nil {
		logger.Fatal("Load environment failed", err)
	}

	logger.Init(cfg.App.Environment)
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()

	if err != nil {
		logger.Fatal("Server stopped with error", err)
	}
}

// run returns only after the MongoDB client is disconnected.
func run(ctx context.Context, cfg *env.Env) error {

	conn, err := mongodb.InitConnection(ctx, cfg.MongoDB.URL, cfg.MongoDB.DB)
	if err != nil {
		return fmt.Errorf("create MongoDB connection: %w", err)
	}

	logger.Info("Connected to MongoDB", map[string]interface{}{"db": cfg.MongoDB.DB})

	defer func() {
		if err := conn.Disconnect(context.Background()); err != nil {
			logger.Error("Disconnect MongoDB failed", err)
		}
	}()

	booksModel, err := books.NewBooksModel(ctx, conn.GetDatabase())
	if err != nil {
		return fmt.Errorf("create books model: %w", err)
	}

	authorsModel, err := authors.NewAuthorsModel(ctx, conn.GetDatabase())
	if err != nil {
		return fmt.Errorf("create authors model: %w", err)
	}

	router := apis.NewRouter(
		booksAPI.NewBooksAPI(booksModel, authorsModel),
		authorsAPI.NewAuthorsAPI(authorsModel),
	)

	return serve(ctx, &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	})
}

// serve runs srv until ctx is done or the listener fails, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server) error {

	listenErr := make(chan error, 1)

	go func() {
		logger.Info("Server starting", map[string]interface{}{"addr": srv.Addr})

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}

		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
