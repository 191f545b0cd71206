package app

import (
	"fmt"
	"os"

	"github.com/saurav-commits/HRMS-Lite/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the process-wide store handles so main can close them on
// shutdown instead of leaving them as ambient globals.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func BuildApp(router *gin.Engine, logger *zap.Logger) (*App, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := connection.ConnectGORMWithRetry(dsn, 5)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	// Redis is optional; without it the summary cache is simply disabled.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection established")
	}

	registerModules(router, db, rdb, logger)

	return &App{DB: db, Redis: rdb}, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
