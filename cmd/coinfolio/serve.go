package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "coinfolio/internal/docs" // swagger docs
	"coinfolio/internal/handlers"
	"coinfolio/internal/logger"
	"coinfolio/internal/middleware"
	"coinfolio/internal/services"
	"coinfolio/internal/validator"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		Long: `Serve the holdings API on HOST:PORT (127.0.0.1:8080 by default).

The market snapshot is fetched once in the background at startup; the
server accepts requests before it arrives. POST /api/v1/markets/reload
fetches it again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

func runServer(ctx context.Context) error {
	log := logger.Get()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	go func() {
		// failure is logged by the tracker; reload retries on demand
		_ = a.tracker.LoadMarkets(ctx)
	}()

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           newRouter(a.tracker),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting coinfolio API on %s", srv.Addr)
		log.Infof("Swagger documentation available at http://%s/swagger/index.html", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the HTTP API around tracker.
func newRouter(tracker services.TrackerServicer) *gin.Engine {
	holdingHandler := handlers.NewHoldingHandler(tracker)
	marketHandler := handlers.NewMarketHandler(tracker)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.NoRoute(middleware.NotFound())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"quotes":  len(tracker.Markets()),
			"version": version,
		})
	})

	v1 := router.Group("/api/v1")

	holdings := v1.Group("/holdings")
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.POST("", holdingHandler.AddHolding)
	holdings.POST("/refresh", holdingHandler.RefreshPrices)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	v1.GET("/summary", holdingHandler.GetSummary)

	markets := v1.Group("/markets")
	markets.GET("", marketHandler.ListMarkets)
	markets.GET("/:id", marketHandler.QuickSelect)
	markets.POST("/reload", marketHandler.ReloadMarkets)

	return router
}
