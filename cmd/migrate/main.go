package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/repository"
	"github.com/folio-labs/portfolio/pkg/config"
	"github.com/folio-labs/portfolio/pkg/database"
	"github.com/folio-labs/portfolio/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn := database.NewConn(cfg.DatabaseURL, database.Options{AppEnv: cfg.AppEnv, Retries: 3})
	defer conn.Close()

	if err := repository.Migrate(ctx, conn); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
