package app

import (
	"github.com/saurav-commits/HRMS-Lite/internal/attendance"
	"github.com/saurav-commits/HRMS-Lite/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo, rdb, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		attendance.RegisterRoutes(api, attendanceHandler, logger)
	}
}
