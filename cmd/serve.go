// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/neetstand/admin-service/internal/config"
	"github.com/neetstand/admin-service/internal/db"
	"github.com/neetstand/admin-service/internal/kratos"
	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/mail"
	"github.com/neetstand/admin-service/internal/monitoring/prometheus"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/pkg/authentication"
	"github.com/neetstand/admin-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("admin-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		specs.KratosPublicURL,
		tracer,
		monitor,
		logger,
	)

	mailer := mail.NewClient(s, tracer, monitor, logger)

	tokens, err := authentication.NewTokenManager(specs.SessionSecret, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up session tokens: %v", err)
	}

	var mailWorker *mail.Worker
	if specs.MailQueueEnabled {
		mailWorker = mail.NewWorker(s, mailer, tracer, logger)
		if err := mailWorker.Start(specs.MailQueueSchedule); err != nil {
			return fmt.Errorf("failed to start mail queue worker: %v", err)
		}
		defer mailWorker.Stop()
	}

	router := web.NewRouter(
		s,
		dbClient,
		kratosClient,
		mailer,
		tokens,
		specs,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
