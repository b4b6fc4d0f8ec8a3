package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	// Load HTML templates
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	home := NewHomeController(cfg.Authors, cfg.Genres, cfg.Books, cfg.BookInstances)
	authorsController := NewAuthorsController(cfg.Authors, cfg.Books)
	genresController := NewGenresController(cfg.Genres, cfg.Books)
	booksController := NewBooksController(cfg.Books, cfg.Authors, cfg.Genres, cfg.BookInstances)
	instancesController := NewBookInstancesController(cfg.BookInstances, cfg.Books)
	health := NewHealthController(cfg.DB, cfg.Version)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	catalog := router.Group("/catalog")
	{
		catalog.GET("", home.Index)

		catalog.GET("/authors", authorsController.List)
		catalog.GET("/author/create", authorsController.CreateGet)
		catalog.POST("/author/create", authorsController.CreatePost)
		catalog.GET("/author/:id", authorsController.Detail)
		catalog.GET("/author/:id/delete", notImplemented("Author delete GET"))
		catalog.POST("/author/:id/delete", notImplemented("Author delete POST"))
		catalog.GET("/author/:id/update", notImplemented("Author update GET"))
		catalog.POST("/author/:id/update", notImplemented("Author update POST"))

		catalog.GET("/genres", genresController.List)
		catalog.GET("/genre/create", genresController.CreateGet)
		catalog.POST("/genre/create", genresController.CreatePost)
		catalog.GET("/genre/:id", genresController.Detail)
		catalog.GET("/genre/:id/delete", notImplemented("Genre delete GET"))
		catalog.POST("/genre/:id/delete", notImplemented("Genre delete POST"))
		catalog.GET("/genre/:id/update", notImplemented("Genre update GET"))
		catalog.POST("/genre/:id/update", notImplemented("Genre update POST"))

		catalog.GET("/books", booksController.List)
		catalog.GET("/book/create", booksController.CreateGet)
		catalog.POST("/book/create", booksController.CreatePost)
		catalog.GET("/book/:id", booksController.Detail)
		catalog.GET("/book/:id/delete", notImplemented("Book delete GET"))
		catalog.POST("/book/:id/delete", notImplemented("Book delete POST"))
		catalog.GET("/book/:id/update", notImplemented("Book update GET"))
		catalog.POST("/book/:id/update", notImplemented("Book update POST"))

		catalog.GET("/bookinstances", instancesController.List)
		catalog.GET("/bookinstance/create", instancesController.CreateGet)
		catalog.POST("/bookinstance/create", instancesController.CreatePost)
		catalog.GET("/bookinstance/:id", instancesController.Detail)
		catalog.GET("/bookinstance/:id/delete", notImplemented("BookInstance delete GET"))
		catalog.POST("/bookinstance/:id/delete", notImplemented("BookInstance delete POST"))
		catalog.GET("/bookinstance/:id/update", notImplemented("BookInstance update GET"))
		catalog.POST("/bookinstance/:id/update", notImplemented("BookInstance update POST"))
	}

	// Read-only JSON API, rate limited per client IP.
	apiController := NewAPIController(cfg.Authors, cfg.Genres, cfg.Books, cfg.BookInstances)
	limiter := NewRateLimiter(cfg.APIRateLimit, cfg.APIRateWindow)
	api := router.Group("/api")
	api.Use(limiter.Middleware())
	{
		api.GET("/authors", apiController.ListAuthors)
		api.GET("/genres", apiController.ListGenres)
		api.GET("/books", apiController.ListBooks)
		api.GET("/bookinstances", apiController.ListBookInstances)
		api.GET("/catalog/counts", apiController.Counts)
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found")
	})

	return router
}
