package app

import (
	"context"
	"net/http"
	"time"

	"go-workforce/internal/config"
	"go-workforce/internal/employee"
	"go-workforce/internal/leave"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/payroll"
	"go-workforce/internal/shared/connection"
	"go-workforce/internal/timesheet"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and mounts every module on router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L()

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.ConnectRetries)
	if err != nil {
		return err
	}
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.RunMigrations {
		if err := migrate(ctx, gormDB); err != nil {
			return err
		}
		logger.Info("database migrated")
	}

	// 2. Global middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Idempotent-Replay"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitPerMinute(cfg.RateLimitPerMinute))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 3. Register Modules & Routes
	mods, err := registerModules(router, cfg, db, gormDB, redisClient, logger)
	if err != nil {
		return err
	}

	if cfg.SeedManagerEmail != "" {
		if err := mods.employeeService.SeedManager(ctx, cfg.SeedManagerName, cfg.SeedManagerEmail, cfg.SeedManagerPassword); err != nil {
			return err
		}
	}

	return nil
}

func migrate(ctx context.Context, gormDB *gorm.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&employee.Employee{},
		&timesheet.TimeEntry{},
		&leave.LeaveRequest{},
		&payroll.PayrollRecord{},
	); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}
	return kafka.Migrate(ctx, db)
}
