package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/config"
	"github.com/polkiloo/gpsolutions/internal/server/http/handlers"
	"github.com/polkiloo/gpsolutions/internal/server/http/middleware"
)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade   handlers.QuoteFacade
	Sessions middleware.SessionIssuer
	Admin    middleware.AdminVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// multipart bodies carry several documents, each up to the per-file limit
	engine.MaxMultipartMemory = p.Config.MaxUploadBytes
	bodyLimit := 4 * p.Config.MaxUploadBytes

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.DecompressRequest(bodyLimit))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	stagingHandler := handlers.NewStagingHandler(p.Facade, p.Config.MaxUploadBytes)
	assignmentHandler := handlers.NewAssignmentHandler(p.Facade)
	checkoutHandler := handlers.NewCheckoutHandler(p.Facade)
	systemHandler := handlers.NewSystemHandler(p.Facade)

	engine.GET("/healthz", systemHandler.Health)

	api := engine.Group("/api")
	api.GET("/catalog", systemHandler.Catalog)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(p.Admin))
	admin.GET("/analytics/sales", systemHandler.Sales)
	admin.DELETE("/assignments", assignmentHandler.ClearStore)

	session := api.Group("")
	session.Use(middleware.EnsureSession(p.Sessions, p.Config.SessionTTL, p.Logger))

	session.GET("/staging", stagingHandler.List)
	session.POST("/staging/words", stagingHandler.AddWords)
	session.POST("/staging/files", stagingHandler.AddFiles)
	session.DELETE("/staging/:id", stagingHandler.Remove)
	session.DELETE("/staging", stagingHandler.Clear)

	session.GET("/assignments", assignmentHandler.List)
	session.POST("/assignments", assignmentHandler.Save)
	session.DELETE("/assignments", assignmentHandler.Delete)
	session.POST("/assignments/finalize", assignmentHandler.Finalize)
	session.GET("/cart", assignmentHandler.Cart)

	session.POST("/checkout", checkoutHandler.Checkout)
	session.POST("/stripe-session", checkoutHandler.StripeSession)

	return engine
}
