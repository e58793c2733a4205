package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/glowpod/order-svc/internal/intake"
	"github.com/glowpod/order-svc/internal/notifier"
	"github.com/glowpod/order-svc/internal/service/models/order"
	createorder "github.com/glowpod/order-svc/internal/transport/http/create_order"
	sendorderemail "github.com/glowpod/order-svc/internal/transport/http/send_order_email"
	"github.com/glowpod/order-svc/pkg/http/middleware/trace"
	"github.com/glowpod/order-svc/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

type service interface {
	PlaceOrder(ctx context.Context, draft intake.Draft) (order.Order, error)
}

type HTTPTransport struct {
	server  *http.Server
	router  *chi.Mux
	service service
	mailCfg notifier.MailConfig
	mailer  notifier.Mailer
}

func NewHTTPTransport(service service, mailCfg notifier.MailConfig, mailer notifier.Mailer) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:  server,
		router:  router,
		service: service,
		mailCfg: mailCfg,
		mailer:  mailer,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.createOrder)
		r.Post("/send-order-email", h.sendOrderEmail)
	})
	h.router.Handle("/metrics", promhttp.Handler())
	h.router.Get("/health", h.health)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.service)
}

func (h *HTTPTransport) sendOrderEmail(w http.ResponseWriter, r *http.Request) {
	sendorderemail.SendOrderEmail(w, r, h.mailCfg, h.mailer)
}

func (h *HTTPTransport) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Error("Error writing health response", "error", err)
	}
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
