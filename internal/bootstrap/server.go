package bootstrap

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	dashboardHttp "revenue-dashboard/internal/dashboard/adapters/http/fiber"
	"revenue-dashboard/internal/platform/log"

	_ "revenue-dashboard/docs"
)

// NewHTTP builds the fiber app with every route mounted.
func (a *App) NewHTTP() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "revenue-dashboard",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	handler := dashboardHttp.NewDashboardHandler(a.Service, a.Renderer, a.Logger.WithComponent(log.ComponentHTTP))
	handler.Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	app := a.NewHTTP()
	httpLog := a.Logger.WithComponent(log.ComponentHTTP)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(a.Config.Addr())
	}()

	httpLog.Info("server started", "addr", a.Config.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	httpLog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		httpLog.Error("fiber shutdown error", "error", err)
		return err
	}

	httpLog.Info("server exiting")
	return nil
}
