package main

import (
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/foliohq/folio/bus"
	"github.com/foliohq/folio/config"
	"github.com/foliohq/folio/extract"
	"github.com/foliohq/folio/fitzsource"
	"github.com/foliohq/folio/job"
	"github.com/foliohq/folio/notify"
	"github.com/foliohq/folio/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Document structural extraction service",
	Long: `Folio extracts the structure of PDF documents: markdown with detected
tables, word bounding boxes and classified vector graphics. It serves jobs
over HTTP, from queue batches, or one-shot from the command line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupLogger builds the process logger from configuration.
func setupLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// buildOrchestrator wires the configured backends into an orchestrator.
func buildOrchestrator(cfg *config.Config, logger zerolog.Logger) (*job.Orchestrator, error) {
	blobs := store.NewFS(cfg.Storage.DataDir)
	secrets := store.NewEnvSecrets("")

	var events bus.EventBus
	switch cfg.Events.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Events.Redis.Addr,
			Password: cfg.Events.Redis.Password,
			DB:       cfg.Events.Redis.DB,
		})
		events = bus.NewRedis(client, cfg.Events.Channel)
	case "log":
		events = bus.NewLog(logger)
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}

	dispatcher := notify.NewDispatcher(blobs, events, cfg.Storage.ResultsBucket, logger)
	if cfg.Webhook.RetryInterval > 0 {
		dispatcher.RetryInterval = cfg.Webhook.RetryInterval
	}

	return &job.Orchestrator{
		Blobs:    blobs,
		Secrets:  secrets,
		Notifier: dispatcher,
		Open:     fitzsource.Open,
		Limits: extract.Limits{
			MaxFileSize: cfg.Limits.MaxFileSize,
			MaxPages:    cfg.Limits.MaxPages,
		},
		AuthSecret: cfg.Auth.SecretName,
		Logger:     logger,
	}, nil
}
