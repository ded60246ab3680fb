// Package router wires middleware, handlers and routes into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"esign-editor-api/internal/client"
	"esign-editor-api/internal/config"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/handler"
	"esign-editor-api/internal/metrics"
	"esign-editor-api/internal/middleware"
	"esign-editor-api/internal/renderer"
	"esign-editor-api/internal/repository"
	"esign-editor-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB           *gorm.DB
	Redis        *redis.Client
	Logger       *zap.Logger
	JWTSecret    string
	BasePath     string
	EditorConfig config.EditorConfig
	Metrics      *metrics.Metrics
	Sessions     *editor.SessionManager
	S3Client     client.S3ClientInterface
	Notifier     client.NotificationClient
	Renderer     *renderer.Service
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "esign-editor-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "esign-editor-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "esign-editor-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "esign-editor-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "esign-editor-api"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	docRepo := repository.NewDocumentRepository(cfg.DB)
	fieldRepo := repository.NewFieldRepository(cfg.DB)
	signerRepo := repository.NewSignerRepository(cfg.DB)

	// Initialize services
	documentService := service.NewDocumentService(docRepo, cfg.S3Client, cfg.Renderer, cfg.Redis, cfg.Metrics, cfg.Logger)
	editorService := service.NewEditorService(cfg.Sessions, docRepo, fieldRepo, signerRepo, cfg.Notifier, cfg.EditorConfig, cfg.Metrics, cfg.Logger)
	signerService := service.NewSignerService(signerRepo, fieldRepo, docRepo, cfg.Sessions, cfg.Logger)

	// Initialize handlers
	documentHandler := handler.NewDocumentHandler(documentService)
	editorHandler := handler.NewEditorHandler(editorService)
	signerHandler := handler.NewSignerHandler(signerService)
	wsHandler := handler.NewWSHandler(editorService, cfg.JWTSecret, cfg.Logger)

	// API routes group
	api := r.Group(cfg.BasePath)

	// Metrics is also reachable under the base path for ingress setups
	// that only expose the base path
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// ============================================================
	// Document routes (authenticated)
	// ============================================================
	documents := api.Group("/documents")
	documents.Use(authMiddleware)
	{
		documents.POST("", documentHandler.Upload)
		documents.GET("", documentHandler.List)
		documents.GET("/:documentId", documentHandler.Get)
		documents.GET("/:documentId/download", documentHandler.Download)
		documents.GET("/:documentId/render-info", documentHandler.RenderInfo)
		documents.DELETE("/:documentId", documentHandler.Delete)

		// Document signers
		documents.POST("/:documentId/signers", signerHandler.Create)
		documents.GET("/:documentId/signers", signerHandler.List)
	}

	// ============================================================
	// Signer routes (authenticated)
	// ============================================================
	signers := api.Group("/signers")
	signers.Use(authMiddleware)
	{
		signers.PATCH("/:signerId", signerHandler.Update)
		signers.DELETE("/:signerId", signerHandler.Delete)
	}

	// ============================================================
	// Editor session routes (authenticated)
	// ============================================================
	sessions := api.Group("/editor/sessions")
	sessions.Use(authMiddleware)
	{
		sessions.POST("", editorHandler.OpenSession)
		sessions.GET("/:sessionId", editorHandler.GetState)
		sessions.DELETE("/:sessionId", editorHandler.CloseSession)

		// Palette tool
		sessions.PUT("/:sessionId/tool", editorHandler.ArmTool)
		sessions.DELETE("/:sessionId/tool", editorHandler.CancelTool)

		// Placement
		sessions.POST("/:sessionId/click", editorHandler.Click)
		sessions.POST("/:sessionId/drop", editorHandler.Drop)

		// Selection and field edits
		sessions.POST("/:sessionId/fields/:fieldId/select", editorHandler.SelectField)
		sessions.DELETE("/:sessionId/selection", editorHandler.Deselect)
		sessions.PATCH("/:sessionId/fields/:fieldId", editorHandler.PatchField)
		sessions.DELETE("/:sessionId/fields/:fieldId", editorHandler.RemoveField)
		sessions.DELETE("/:sessionId/fields", editorHandler.ClearFields)

		// Value capture
		sessions.POST("/:sessionId/fields/:fieldId/capture", editorHandler.OpenCapture)
		sessions.PUT("/:sessionId/capture", editorHandler.SaveCapture)
		sessions.DELETE("/:sessionId/capture", editorHandler.CancelCapture)

		// Overlay geometry
		sessions.PUT("/:sessionId/geometry", editorHandler.ReportGeometry)

		// Review and send
		sessions.GET("/:sessionId/summary", editorHandler.Summary)
		sessions.PUT("/:sessionId/draft", editorHandler.SaveDraft)
		sessions.POST("/:sessionId/send", editorHandler.Send)
	}

	// ============================================================
	// WebSocket routes (token auth inside the handler; browsers
	// cannot set headers on websocket connections)
	// ============================================================
	api.GET("/ws/editor/:sessionId", wsHandler.HandleOverlay)

	return r
}
