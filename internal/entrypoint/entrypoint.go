package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"

	"locallibrary/internal/config"
	"locallibrary/internal/database"
	"locallibrary/internal/database/authors"
	"locallibrary/internal/database/bookinstances"
	"locallibrary/internal/database/books"
	"locallibrary/internal/database/genres"
	http_controllers "locallibrary/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(handler http.Handler, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Local Library v%s", version)

	db, err := database.New(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if cfg.Genres.UniqueIndex {
		if err := db.EnsureGenreNameIndex(context.Background()); err != nil {
			log.Fatalf("Failed to create genre name index: %v", err)
		}
		log.Printf("Genre name uniqueness enforced by unique index")
	}

	routerCfg := http_controllers.RouterConfig{
		Authors:       authors.NewRepository(db),
		Genres:        genres.NewRepository(db),
		Books:         books.NewRepository(db),
		BookInstances: bookinstances.NewRepository(db),
		DB:            db,
		Version:       version,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		APIRateLimit:  cfg.RateLimit.MaxRequests,
		APIRateWindow: cfg.RateLimit.Window,
	}

	router := http_controllers.NewRouter(routerCfg)

	var handler http.Handler = router
	if cfg.CSRF.Secret != "" {
		handler = csrf.Protect([]byte(cfg.CSRF.Secret), csrf.Path("/"))(router)
		log.Printf("CSRF protection enabled")
	}

	Serve(handler, cfg)
}
