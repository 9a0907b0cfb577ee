// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/application/container"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/presentation/http/handlers"
	"github.com/dailystar-data/police-story-go/internal/presentation/http/middleware"
)

// Options carries the request-facing settings the router needs.
type Options struct {
	BasePath           string
	CORSAllowedOrigins string
	DefaultLocale      locale.Locale
}

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(container.Logger, container.PerfTracker))
	r.Use(middleware.CORSMiddleware(opts.CORSAllowedOrigins))

	contentHandlers := handlers.NewContentHandlers(container.ArticleService, container.Logger)
	articleHandlers := handlers.NewArticleHandlers(container.Store, container.Renderer, container.FragmentCache, opts.BasePath, opts.DefaultLocale, container.Logger, container.PerfTracker)
	systemHandlers := handlers.NewSystemHandlers(container.Store, container.FragmentCache, container.PerfTracker)

	r.GET("/health", systemHandlers.GetHealth)

	site := r.Group(opts.BasePath)
	{
		site.GET("/", articleHandlers.RedirectToPreferred)
		site.GET("/article/:locale", articleHandlers.GetArticlePage)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/locales", contentHandlers.GetLocales)
		api.GET("/integrity", contentHandlers.GetIntegrity)
		api.GET("/format", contentHandlers.GetFormat)

		localeGroup := api.Group("/content/:locale")
		{
			localeGroup.GET("", contentHandlers.GetContent)
			localeGroup.GET("/article", contentHandlers.GetArticle)
			localeGroup.GET("/components/:name", contentHandlers.GetComponent)
			localeGroup.GET("/officers", contentHandlers.GetOfficers)
			localeGroup.GET("/absconded", contentHandlers.GetAbsconded)
		}
	}

	return r
}
