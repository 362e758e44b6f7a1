package app

import (
	"database/sql"

	"go-workforce/internal/auth"
	"go-workforce/internal/auth/token"
	"go-workforce/internal/config"
	"go-workforce/internal/dashboard"
	"go-workforce/internal/employee"
	"go-workforce/internal/leave"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/payroll"
	"go-workforce/internal/rbac"
	"go-workforce/internal/rbac/infra"
	"go-workforce/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	employeeService employee.Service
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) (*modules, error) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return nil, err
	}
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	// --- Services ---
	authService := auth.NewService(employeeRepo, tokens, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, logger)
	timesheetService := timesheet.NewServiceWithOutbox(db, timesheetRepo, outboxRepo, logger)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, outboxRepo, logger)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, leaveService, timesheetService, rdb, cfg.StatsCacheTTL, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.Environment == "production")
	rbacHandler := rbac.NewHandler(rbacService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	timesheetHandler := timesheet.NewHandler(timesheetService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, rbacHandler, tokens)
		employee.RegisterRoutes(api, employeeHandler, rbacService, tokens, logger)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService, tokens, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, tokens, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, tokens, logger, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, tokens, logger)
	}

	return &modules{employeeService: employeeService}, nil
}
