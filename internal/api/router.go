package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/queryshape/internal/auth"
	"github.com/nekogravitycat/queryshape/internal/product"
	productHttp "github.com/nekogravitycat/queryshape/internal/product/http"
	"github.com/nekogravitycat/queryshape/pkg/response"
)

// Config holds the dependencies needed to build the router.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	ProductService product.Service
	JWTManager     *auth.JWTManager
	Logger         *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (RequestID, Logger, Recovery, CORS, Auth) and registering routes.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()

	// Global Middleware:
	// - RequestID: Tags every request and response with X-Request-ID.
	// - RequestLogger: Logs request information through zap.
	// - Recovery: Captures panics and answers with an InternalError envelope.
	r.Use(RequestID(), RequestLogger(logger), Recovery(logger))

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		config.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		config.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{RequestIDHeader, "Location"}
	r.Use(cors.New(config))

	r.NoRoute(func(c *gin.Context) {
		response.JSON(c, response.NotFound[any]("route not found", nil))
	})

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	productHandler := productHttp.NewHandler(cfg.ProductService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		productHttp.RegisterRoutes(v1, productHandler, authMiddleware)
	}

	return r
}
