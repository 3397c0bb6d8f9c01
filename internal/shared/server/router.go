package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hairquiz-backend/internal/results"
	"hairquiz-backend/internal/services/health"
	"hairquiz-backend/internal/shared/config"
	"hairquiz-backend/internal/shared/metrics"
	"hairquiz-backend/internal/shared/server/middleware"
	"hairquiz-backend/internal/shared/server/respond"
	"hairquiz-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/quiz-results" {
					return "SUBMIT"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 30},
				"SUBMIT":  {Rate: 2, Burst: 5},
			},
		}),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var resultsRepo results.Repo
	if sqlDB != nil {
		resultsRepo = &results.PGRepo{DB: sqlDB}
	} else {
		resultsRepo = results.NewMemoryRepo()
	}
	resultsSvc := &results.Service{Repo: resultsRepo}
	resultsHandler := results.NewHandler(resultsSvc)
	healthSvc := health.NewService()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	resultsHandler.RegisterRoutes(api)

	admin := api.Group("")
	admin.Use(middleware.AdminAuth(cfg.AdminToken))
	resultsHandler.RegisterAdminRoutes(admin)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
