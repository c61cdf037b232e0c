package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/wishzy/wishzy-backend/cmd/docs"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/middleware"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
	"github.com/wishzy/wishzy-backend/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if posthogClient != nil && posthogClient.IsInitialized() {
		r.Use(middleware.PosthogMiddleware(posthogClient))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public routes: authentication and the payment gateway callback
	registerAuthRoutes(r, cfg, services)
	registerPaymentReturnRoute(r, cfg, services.Order)

	// Public catalog reads
	setupPublicRoutes(r, services)

	// Authenticated API
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes configures the unauthenticated catalog reads.
func setupPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/api/v1/public")

	registerPublicCategoryRoutes(public, services.Category)
	registerPublicCourseRoutes(public, services.Course)
	registerPublicChapterRoutes(public, services.Chapter)
	registerPublicLectureRoutes(public, services.Lecture)
	registerPublicDocumentRoutes(public, services.Document)
	registerPublicCommentRoutes(public, services.Comment)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	registerCategoryRoutes(v1, services.Category)
	registerCourseRoutes(v1, services.Course)
	registerChapterRoutes(v1, services.Chapter)
	registerLectureRoutes(v1, services.Lecture)
	registerDocumentRoutes(v1, services.Document)
	registerVoucherRoutes(v1, services.Voucher)
	registerOrderRoutes(v1, cfg, services.Order)
	registerEnrollmentRoutes(v1, services.Enrollment)
	registerWishlistRoutes(v1, services.Wishlist)
	registerCommentRoutes(v1, services.Comment)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
