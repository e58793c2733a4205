package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowpod/order-svc/internal/config"
	"github.com/glowpod/order-svc/internal/dal/postgres"
	orderrepo "github.com/glowpod/order-svc/internal/dal/repositories/order/postgres"
	"github.com/glowpod/order-svc/internal/notifier"
	"github.com/glowpod/order-svc/internal/otel"
	"github.com/glowpod/order-svc/internal/service/services/ordersvc"
	httptransport "github.com/glowpod/order-svc/internal/transport/http"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp(cfg *config.Config) *App {
	otelController := otel.MustInitOtel()
	postgresClient := postgres.MustNewClient()

	orderRepo := orderrepo.NewPostgresOrderRepository(postgresClient)
	notifyClient := notifier.NewClient(cfg.NotificationEndpointURL)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(orderRepo),
		ordersvc.WithNotifier(notifyClient),
	)

	mailer := notifier.NewResendMailer(cfg.Mail.APIKey)

	transport := httptransport.NewHTTPTransport(orderSvc, cfg.Mail, mailer)
	transport.RegisterRoutes()

	return &App{
		orderSvc:       orderSvc,
		transport:      transport,
		postgresClient: postgresClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Otel trace provider close error", "error", err)
	} else {
		slog.Info("Otel trace provider closed gracefully")
	}

	slog.Info("Application shutdown complete")
}
