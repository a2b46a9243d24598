package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/example/artshop/gateway/docs"
	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/service"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetPendingOrders(ctx context.Context) ([]models.Order, error)
	GetCompletedOrders(ctx context.Context) ([]models.Order, error)
	GetCancelledOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	CancelOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrderStatistics(ctx context.Context) (*models.OrderStatistics, error)
}

type AuditReader interface {
	AuditTrail(ctx context.Context, orderID string, limit int64) ([]*repository.AuditLog, error)
}

type AuthService interface {
	Register(ctx context.Context, req service.RegisterRequest) (*service.LoginResponse, error)
	Login(ctx context.Context, req service.LoginRequest) (*service.LoginResponse, error)
	LoginOAuth(ctx context.Context, profile service.OAuthUser) (*service.LoginResponse, error)
	CurrentUser(ctx context.Context, token string) (*service.LoginResponse, error)
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (*service.AdminLoginResponse, error)
}

type ArtworkService interface {
	CreateArtwork(ctx context.Context, artwork *models.Artwork) (*models.Artwork, error)
	GetAllArtworks(ctx context.Context) ([]models.Artwork, error)
	GetArtworkByID(ctx context.Context, id string) (*models.Artwork, error)
	GetArtworksByCategory(ctx context.Context, category string) ([]models.Artwork, error)
	GetAvailableArtworks(ctx context.Context) ([]models.Artwork, error)
	UpdateArtwork(ctx context.Context, id string, upd service.ArtworkUpdate) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error
}

type TestimonialService interface {
	Submit(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error)
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
	ListPending(ctx context.Context) ([]models.Testimonial, error)
	ListAll(ctx context.Context) ([]models.Testimonial, error)
	Approve(ctx context.Context, id string) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// Services are the backends the gateway routes to. Audit may be nil.
type Services struct {
	Orders       OrderService
	Audit        AuditReader
	Auth         AuthService
	Admins       AdminService
	Artworks     ArtworkService
	Testimonials TestimonialService
}

type Gateway struct {
	services Services
	oauth    *googleOAuth
	metrics  *metrics.Metrics
	logger   *zap.Logger
	router   *gin.Engine
	server   *http.Server
}

func NewGateway(cfg *config.Config, services Services, m *metrics.Metrics, logger *zap.Logger) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(logger))
	router.Use(metricsMiddleware(m))

	return &Gateway{
		services: services,
		oauth:    newGoogleOAuth(&cfg.Auth),
		metrics:  m,
		logger:   logger,
		router:   router,
		server: &http.Server{
			Addr:              cfg.Gateway.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (g *Gateway) SetupRoutes() {
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	g.router.GET("/metrics", gin.WrapH(g.metrics.Handler()))

	v1 := g.router.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.POST("", g.createOrder)
			orders.GET("", g.getAllOrders)
			orders.GET("/statistics", g.getOrderStatistics)
			orders.GET("/pending", g.getPendingOrders)
			orders.GET("/completed", g.getCompletedOrders)
			orders.GET("/cancelled", g.getCancelledOrders)
			orders.GET("/customer/:email", g.getOrdersByEmail)
			orders.GET("/status/:status", g.getOrdersByStatus)
			orders.GET("/:id", g.getOrder)
			orders.GET("/:id/audit", g.getOrderAudit)
			orders.PUT("/:id/status", g.updateOrderStatus)
			orders.PUT("/:id/cancel", g.cancelOrder)
			orders.DELETE("/:id", g.deleteOrder)
		}

		auth := v1.Group("/auth")
		{
			auth.POST("/register", g.register)
			auth.POST("/signup", g.register)
			auth.POST("/login", g.login)
			auth.POST("/logout", g.logout)
			auth.GET("/me", g.currentUser)
		}

		artworks := v1.Group("/artworks")
		{
			artworks.GET("", g.getAllArtworks)
			artworks.POST("", g.createArtwork)
			artworks.GET("/available", g.getAvailableArtworks)
			artworks.GET("/category/:category", g.getArtworksByCategory)
			artworks.GET("/:id", g.getArtwork)
			artworks.PUT("/:id", g.updateArtwork)
			artworks.DELETE("/:id", g.deleteArtwork)
		}

		v1.GET("/testimonials", g.getApprovedTestimonials)
		v1.POST("/testimonials", g.submitTestimonial)

		admin := v1.Group("/admin")
		{
			admin.POST("/login", g.adminLogin)
			admin.GET("/testimonials", g.getAllTestimonials)
			admin.GET("/testimonials/pending", g.getPendingTestimonials)
			admin.PUT("/testimonials/:id/approve", g.approveTestimonial)
			admin.DELETE("/testimonials/:id", g.deleteTestimonial)
		}
	}

	g.router.GET("/oauth2/authorization/google", g.googleAuthorize)
	g.router.GET("/login/oauth2/code/google", g.googleCallback)

	g.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
}

func (g *Gateway) Handler() http.Handler {
	return g.router
}

func (g *Gateway) Start() error {
	g.logger.Info("Gateway starting", zap.String("address", g.server.Addr))
	if err := g.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (g *Gateway) Shutdown(ctx context.Context) error {
	return g.server.Shutdown(ctx)
}
