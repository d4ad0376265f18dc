package router

import (
	"net/http"
	"time"

	"github.com/courselens/courselens-backend/internal/config"
	"github.com/courselens/courselens-backend/internal/handler"
	"github.com/courselens/courselens-backend/internal/middleware"
	"github.com/courselens/courselens-backend/internal/response"
	"github.com/courselens/courselens-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Review    *handler.ReviewHandler
	Community *handler.CommunityHandler
	Wiki      *handler.WikiHandler
	Chat      *handler.ChatHandler
	WS        *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Reads are public; writes sit behind RequireSession and answer 401 without
// a valid session.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireSession(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireSession(authService), handlers.Auth.Me)
	}

	// ─── 2. Catalog Group (Public) ─────────────────────────────────────
	catalog := router.Group("/api/v1/catalog")
	{
		catalog.GET("/search", handlers.Catalog.Search)
		catalog.GET("/classes/:subject/:number", handlers.Catalog.ClassSections)
		catalog.GET("/subjects", handlers.Catalog.SubjectDirectory)
		catalog.GET("/subjects/:code", handlers.Catalog.SubjectInfo)
		catalog.GET("/professors", handlers.Catalog.ProfessorStats)
		catalog.GET("/rmp", handlers.Catalog.RateMyProfessor)
		catalog.GET("/requirements", handlers.Catalog.Requirements)
	}

	// ─── 3. Reviews ────────────────────────────────────────────────────
	reviews := router.Group("/api/v1/reviews")
	{
		reviews.GET("", handlers.Review.List)
		reviews.GET("/:name", handlers.Review.ListBySubject)
		reviews.POST("", middleware.RequireSession(authService), handlers.Review.Create)
	}

	// ─── 4. Community Feed ─────────────────────────────────────────────
	feed := router.Group("/api/v1/feed")
	{
		feed.GET("", handlers.Community.List)
		feed.GET("/classes", handlers.Community.ListClasses)
		feed.GET("/:id", handlers.Community.GetPost)
		feed.POST("", middleware.RequireSession(authService), handlers.Community.CreatePost)
		feed.POST("/:id/replies", middleware.RequireSession(authService), handlers.Community.CreateReply)
	}

	// ─── 5. Course Wikis ───────────────────────────────────────────────
	wiki := router.Group("/api/v1/wiki")
	{
		wiki.GET("", handlers.Wiki.List)
		wiki.GET("/:className", handlers.Wiki.Get)
		wiki.POST("/:className", middleware.RequireSession(authService), handlers.Wiki.Upsert)
	}

	// ─── 6. Class Chat ─────────────────────────────────────────────────
	chat := router.Group("/api/v1/chat")
	{
		chat.GET("/:className", handlers.Chat.History)
		chat.POST("/:className", middleware.RequireSession(authService), handlers.Chat.Post)
	}

	// ─── 7. WebSocket Group (WS Auth via ?token=) ──────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/feed/:className/stream", handlers.WS.FeedStream)
	}

	return router
}
