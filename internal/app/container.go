package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/queryshape/internal/api"
	"github.com/nekogravitycat/queryshape/internal/auth"
	"github.com/nekogravitycat/queryshape/internal/product"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	DBPool          *pgxpool.Pool
	JWTSecret       string
	JWTTTL          time.Duration
	DefaultPageSize int
	Logger          *zap.Logger

	// ProductRepo overrides the pgx repository, e.g. with product.NewMemoryRepository.
	ProductRepo product.Repository
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Product Module
	productRepo := cfg.ProductRepo
	if productRepo == nil {
		productRepo = product.NewPgxRepository(cfg.DBPool)
	}
	productService := product.NewService(productRepo, cfg.DefaultPageSize)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		ProductService: productService,
		JWTManager:     jwtManager,
		Logger:         cfg.Logger,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
