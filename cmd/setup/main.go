package main

import (
	"flag"
	"os"

	"github.com/saurav-commits/HRMS-Lite/internal/setup"
	"github.com/saurav-commits/HRMS-Lite/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "wipe both tables and insert sample data")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set; create a .env file or export it")
	}

	db, err := connection.ConnectGORMWithRetry(dsn, 3)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := setup.EnsureSchema(db, logger); err != nil {
		logger.Fatal("schema setup failed", zap.Error(err))
	}
	logger.Info("schema and indexes ensured")

	if *seed {
		if err := setup.Seed(db, logger); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
		logger.Info("sample data inserted")
	}
}
