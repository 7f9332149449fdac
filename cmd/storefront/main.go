package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Fenny-Huy/AWE-Store/internal/cache"
	"github.com/Fenny-Huy/AWE-Store/internal/cart"
	"github.com/Fenny-Huy/AWE-Store/internal/checkout"
	"github.com/Fenny-Huy/AWE-Store/internal/gateway"
	"github.com/Fenny-Huy/AWE-Store/internal/report"
	"github.com/Fenny-Huy/AWE-Store/internal/session"
	"github.com/Fenny-Huy/AWE-Store/internal/web"
)

// Config carries the operational knobs; addresses come in as CLI flags with
// env fallbacks.
type Config struct {
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "operator storefront frontend for the AWE-Store backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "HTTP listen port",
				Value:   "8080",
				EnvVars: []string{"HTTP_PORT"},
			},
			&cli.StringFlag{
				Name:    "api-base-url",
				Usage:   "base URL of the backend REST API",
				Value:   "http://localhost:5000/api",
				EnvVars: []string{"API_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Usage:   "Redis address for the shared cart snapshot cache (empty: in-memory)",
				EnvVars: []string{"REDIS_ADDR"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("storefront exited")
	}
}

func run(c *cli.Context) error {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	client := gateway.NewClient(c.String("api-base-url"), cfg.RequestTimeout, log)

	var snapshots cache.SnapshotCache
	if addr := c.String("redis-addr"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		snapshots = cache.NewRedisCache(rdb)
		log.WithField("addr", addr).Info("using redis snapshot cache")
	} else {
		snapshots = cache.NewMemoryCache()
	}

	sessions := session.NewManager(client, log)
	synchronizer := cart.NewSynchronizer(client, snapshots, log)
	flow := checkout.NewFlow(sessions, synchronizer, client, log)
	reporter := report.NewReporter(client, client, log)

	// Customer switches refetch the cart and abandon any in-progress
	// checkout flow; the old customer's pending fetches become stale.
	sessions.OnCustomerChange(func(customerID string) {
		flow.Reset()
		synchronizer.Activate(customerID)
	})
	// The listing itself is fetched per render, scoped by the session.
	sessions.OnCatalogueChange(func(catalogueID string) {
		log.WithField("catalogue_id", catalogueID).Debug("product listing rescoped")
	})

	loadCtx, cancel := context.WithTimeout(c.Context, cfg.RequestTimeout)
	sessions.Load(loadCtx)
	cancel()

	server := web.NewServer(sessions, client, synchronizer, flow, reporter, cfg.RequestTimeout, log)

	srv := &http.Server{
		Addr:         ":" + c.String("port"),
		Handler:      server.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", c.String("port")).Info("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
