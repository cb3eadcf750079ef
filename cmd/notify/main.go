package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TraineeHub/notify/config"
	"github.com/TraineeHub/notify/internal/app"
	"github.com/TraineeHub/notify/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// For testing purposes - allows us to mock the signal channel
var signalNotify = signal.Notify

// shutdownTimeout bounds the graceful drain of consumers and in-flight
// handlers before connections are torn down.
const shutdownTimeout = 30 * time.Second

// runService contains the core service logic, extracted for testability
func runService(cfg *config.Config, appLogger logger.Logger) error {
	instance := app.NewApp(cfg, app.WithLogger(appLogger))

	if err := instance.Initialize(); err != nil {
		appLogger.WithField("error", err.Error()).Error("Failed to initialize application")
		return err
	}

	// Set up graceful shutdown - single channel for all signals
	shutdown := make(chan os.Signal, 1)
	signalNotify(shutdown, os.Interrupt, syscall.SIGTERM)

	serviceError := make(chan error, 1)
	go func() {
		appLogger.Info("Service started successfully")
		serviceError <- instance.Start()
	}()

	select {
	case err := <-serviceError:
		if err != nil {
			appLogger.WithField("error", err.Error()).Error("Service error")
		}
		return err
	case sig := <-shutdown:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received - starting graceful shutdown")
		appLogger.Info("Send signal again (Ctrl+C) to force immediate shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Create a new channel for force shutdown (after first signal received)
		forceShutdown := make(chan os.Signal, 1)
		signalNotify(forceShutdown, os.Interrupt, syscall.SIGTERM)

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- instance.Shutdown(ctx)
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				appLogger.WithField("error", err.Error()).Error("Error during graceful shutdown")
				return err
			}
			appLogger.Info("Service shut down gracefully")
			return nil
		case forceSig := <-forceShutdown:
			appLogger.WithField("signal", forceSig.String()).Warn("Force shutdown signal received - terminating immediately")
			appLogger.Warn("In-flight messages may be redelivered!")

			cancel()

			// Wait a brief moment for the shutdown to acknowledge the cancellation
			select {
			case err := <-shutdownDone:
				if err != nil {
					appLogger.WithField("error", err.Error()).Error("Error during forced shutdown")
				}
			case <-time.After(2 * time.Second):
				appLogger.Warn("Forced shutdown timeout - exiting immediately")
			}

			return fmt.Errorf("forced shutdown")
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	appLogger.Info(fmt.Sprintf("Starting notification service %s on %s:%d", cfg.Version, cfg.Server.Host, cfg.Server.Port))

	if err := runService(cfg, appLogger); err != nil {
		osExit(1)
	}
}
