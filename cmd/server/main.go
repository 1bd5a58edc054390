package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"github.com/VitaminP8/postql/graph"
	"github.com/VitaminP8/postql/internal/config"
	"github.com/VitaminP8/postql/internal/logger"
	"github.com/VitaminP8/postql/internal/post"
	"github.com/VitaminP8/postql/internal/server"
	"github.com/VitaminP8/postql/internal/storage/database"
	"github.com/VitaminP8/postql/internal/storage/memory"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	postStore, db, err := openStorage(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("could not close database", zap.Error(err))
		}
	}()

	schema, err := graph.NewSchema(graph.NewResolver(postStore, log))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.NewRouter(server.Options{
			Schema:        schema,
			Log:           log,
			AllowedOrigin: cfg.AllowedOrigin,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", cfg.Addr), zap.String("storage", cfg.Storage))
		// ListenAndServe блокирует до Shutdown или фатальной ошибки
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openStorage возвращает хранилище и соединение с базой (nil для memory).
func openStorage(cfg *config.Config, log *zap.Logger) (post.PostStorage, *gorm.DB, error) {
	var dialect, dsn string

	switch cfg.Storage {
	case config.StorageMemory:
		log.Info("using in-memory storage")
		return memory.NewPostMemoryStorage(), nil, nil
	case config.StoragePostgres:
		dialect, dsn = database.DialectPostgres, cfg.PostgresDSN
	default:
		dialect, dsn = database.DialectSQLite, cfg.DBPath
	}

	db, err := database.Open(dialect, dsn, log)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}

	log.Info("using database storage", zap.String("dialect", dialect))
	return database.NewPostDatabaseStorage(db), db, nil
}
