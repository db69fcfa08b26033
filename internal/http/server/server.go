package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gamesapi/docs"
	handlers "gamesapi/internal/http/handler"
	"gamesapi/internal/http/middleware"
	"gamesapi/internal/service"
)

// Deps are the collaborators the HTTP server is assembled from.
type Deps struct {
	Games  service.GameService
	Store  handlers.Pinger
	Logger *slog.Logger
	// Registry receives the HTTP metrics and backs /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New builds the Fiber app: global error handler, middleware chain, ops endpoints and game routes.
func New(d Deps) (*fiber.App, error) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(d.Registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "gamesapi",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(isOpsPath)))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.RequestLogger(d.Logger))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, d.Store, d.Games)

	return app, nil
}

func isOpsPath(c *fiber.Ctx) bool {
	switch c.Path() {
	case "/metrics", "/healthz", "/health":
		return true
	}
	return strings.HasPrefix(c.Path(), "/swagger/")
}

// Run listens on addr until ctx is cancelled, then shuts the app down.
func Run(ctx context.Context, app *fiber.App, addr string, shutdownTimeout time.Duration, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return Serve(ctx, app, ln, shutdownTimeout, logger)
}

// Serve serves on ln until ctx is cancelled. In-flight requests get up to
// shutdownTimeout to complete.
func Serve(ctx context.Context, app *fiber.App, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	logger.Info("server_listening", "component", "http", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server_stopping", "component", "http", "timeout", shutdownTimeout.String())
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server_stopped", "component", "http")
	return nil
}
