package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/pkg/logger"
)

func main() {
	app := &cli.Command{
		Name:    "portfolio",
		Usage:   "Browse the portfolio and send a contact message from the terminal",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "Base URL of the portfolio API",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("PORTFOLIO_API"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level written to stderr",
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			_, err := logger.InitWriter(os.Stderr, cmd.String("log-level"), "console")
			return ctx, err
		},
		Commands: commands(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.L().Error("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
