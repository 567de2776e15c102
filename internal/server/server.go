package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/feeddigital/cursos-api/docs"
	"github.com/feeddigital/cursos-api/internal/config"
	"github.com/feeddigital/cursos-api/internal/constants"
	"github.com/feeddigital/cursos-api/internal/handlers"
	"github.com/feeddigital/cursos-api/internal/logger"
	"github.com/feeddigital/cursos-api/internal/metrics"
	"github.com/feeddigital/cursos-api/internal/middleware"
)

const defaultDevOrigin = "http://localhost:3000"

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Submissions handlers.SubmissionService
	Metrics     *metrics.Recorder
}

// Server owns the gin engine and the resources its middleware holds.
type Server struct {
	engine  *gin.Engine
	limiter *middleware.RateLimiter
}

// New builds the router for cfg. Call Close when the server is discarded.
func New(cfg *config.Config, deps Dependencies) *Server {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewRecorder(false)
	}

	router := gin.New()
	configureClientIP(router, cfg.Proxy)
	router.Use(gin.Recovery())
	router.Use(middleware.PreflightMiddleware())
	router.Use(configureCORS(cfg.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.EnhancedLoggingMiddleware(!cfg.IsRelease()))
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(deps.Metrics.Middleware())

	healthHandler := handlers.NewHealthHandler()
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if cfg.Stage != constants.ProdEnvironment {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Static.Dir != "" {
		router.Static(cfg.Static.Prefix, cfg.Static.Dir)
		logger.Info("Serving static files",
			zap.String("dir", cfg.Static.Dir),
			zap.String("prefix", cfg.Static.Prefix),
		)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	submissionHandler := handlers.NewSubmissionHandler(deps.Submissions)

	forms := router.Group("/", limiter.Middleware(), middleware.BodyLimitMiddleware(middleware.DefaultMaxBodySize))
	{
		forms.POST("/enviar-inscripcion", submissionHandler.SendEnrollment)
		forms.POST("/enviar-consulta", submissionHandler.SendInquiry)
		forms.POST("/clase-intro", submissionHandler.SignupIntroClass)
	}

	return &Server{engine: router, limiter: limiter}
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Engine exposes the gin engine for adapters that need it directly.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Close releases background resources held by the middleware.
func (s *Server) Close() {
	s.limiter.Stop()
}

// configureClientIP decides which forwarding headers ClientIP may honour.
// gin trusts every proxy by default, so an empty list is applied explicitly.
func configureClientIP(router *gin.Engine, cfg config.ProxyConfig) {
	switch strings.ToLower(cfg.TrustedPlatform) {
	case "":
	case "cloudflare":
		router.TrustedPlatform = gin.PlatformCloudflare
	case "google", "appengine":
		router.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		router.TrustedPlatform = cfg.TrustedPlatform
	}

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, falling back to peer address", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
}

// configureCORS applies the front-end origin policy to non-preflight requests.
func configureCORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
			"Accept",
			"Origin",
			middleware.CorrelationIDHeader,
		},
		ExposeHeaders: []string{middleware.CorrelationIDHeader, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	switch {
	case cfg.AllowAll():
		corsConfig.AllowAllOrigins = true
	case len(cfg.AllowedOrigins) == 0:
		corsConfig.AllowOrigins = []string{defaultDevOrigin}
		corsConfig.AllowCredentials = true
	default:
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	logger.Info("CORS configured",
		zap.Strings("allowed_origins", corsConfig.AllowOrigins),
		zap.Bool("allow_all_origins", corsConfig.AllowAllOrigins),
		zap.Bool("allow_credentials", corsConfig.AllowCredentials),
	)

	return cors.New(corsConfig)
}
