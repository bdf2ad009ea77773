package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/fine-loan-simulator/internal/config"
	"github.com/cloud-ru/fine-loan-simulator/internal/session"
	"github.com/cloud-ru/fine-loan-simulator/internal/tools"
	"github.com/cloud-ru/fine-loan-simulator/internal/tracing"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	log := newLogger(cfg)

	tracer, shutdown, err := tracing.InitTracing(cfg.OTELServiceName, cfg.OTELEndpoint, log)
	if err != nil {
		log.WithError(err).Error("init tracing")
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("tracing shutdown")
		}
	}()

	deps := tools.Deps{
		Config: cfg,
		Tracer: tracer,
		Store:  session.NewStore(cfg.HistoryLimit),
		Log:    log,
	}

	app := newApp(tools.Registry(deps), os.Stdin, os.Stdout)
	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
