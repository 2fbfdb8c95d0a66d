package app

import (
	"time"

	"go-sales-report/internal/auth"
	"go-sales-report/internal/authz"
	"go-sales-report/internal/comment"
	"go-sales-report/internal/config"
	"go-sales-report/internal/customer"
	"go-sales-report/internal/messaging/kafka"
	"go-sales-report/internal/middleware"
	"go-sales-report/internal/report"
	"go-sales-report/internal/salesperson"
	"go-sales-report/internal/shared/uow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	txManager := uow.NewManager(gormDB)

	// --- Repositories ---
	salesPersonRepo := salesperson.NewRepository(gormDB)
	customerRepo := customer.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	commentRepo := comment.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Authorization Core ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}
	authzService := authz.NewService(enforcer)

	// --- Services ---
	tokens := auth.TokenConfig{
		Secret:        cfg.JWTSecret,
		AccessExpiry:  time.Duration(cfg.JWTAccessMinutes) * time.Minute,
		RefreshExpiry: time.Duration(cfg.JWTRefreshHours) * time.Hour,
	}
	authService := auth.NewService(salesPersonRepo, rdb, tokens)
	salesPersonService := salesperson.NewService(salesPersonRepo)
	customerService := customer.NewService(customerRepo, rdb)
	reportService := report.NewServiceWithOutbox(txManager, reportRepo, outboxRepo)
	commentService := comment.NewServiceWithOutbox(txManager, commentRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	salesPersonHandler := salesperson.NewHandler(salesPersonService)
	customerHandler := customer.NewHandler(customerService)
	reportHandler := report.NewHandler(reportService)
	commentHandler := comment.NewHandler(commentService)

	// --- Middleware ---
	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	loginLimiter := middleware.RateLimitByIP(rate.Every(time.Second), 5)
	userLimiter := middleware.RateLimitByUser(rate.Every(time.Second), 20)
	idempotency := middleware.Idempotency(rdb)

	// The per-user limiter keys on the principal, so it has to run after
	// RequireAuth has resolved one.
	authn := []gin.HandlerFunc{requireAuth, userLimiter}

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, requireAuth, loginLimiter)
		salesperson.RegisterRoutes(api, salesPersonHandler, authzService, authn)
		customer.RegisterRoutes(api, customerHandler, authzService, authn)
		report.RegisterRoutes(api, reportHandler, authzService, authn, idempotency)
		comment.RegisterRoutes(api, commentHandler, authzService, authn)
	}

	zap.L().Info("modules registered", zap.Int("route_count", len(router.Routes())))
	return nil
}
