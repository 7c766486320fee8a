// Package server boots the full application: configuration, logging,
// storage backends, background machinery and the HTTP surface.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/controllers"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/graph"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/jobs"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/routes"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/views"
	"github.com/Saurav-S-Mehta-07/RetailEdge/config"
	_ "github.com/Saurav-S-Mehta-07/RetailEdge/database/migrations"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/cache"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/database"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/event"
	grpcserver "github.com/Saurav-S-Mehta-07/RetailEdge/pkg/grpc"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/logger"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/metrics"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/middleware"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/migration"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/queue"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/reqid"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/router"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/schedule"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/session"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/storage"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/ws"
)

const queueWorkers = 4

// Start boots every subsystem and blocks until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if col := config.MongoLogCollection(); col != "" {
		h, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDatabase(), col)
		if err != nil {
			logger.Warn("boot: mongo log handler unavailable", "error", err)
		} else {
			logger.Attach(h)
		}
	}

	// The storefront waits for the database forever rather than dying
	// on a cold start.
	database.ConnectWithRetry()

	runner := migration.New(database.DB)
	if err := runner.Run(); err != nil {
		return err
	}

	// Redis and object storage are optional in development. cache and
	// storage degrade gracefully when their backends are missing.
	if err := cache.Connect(); err != nil {
		logger.Warn("boot: redis unavailable, caching disabled", "error", err)
	}
	storage.Connect()

	store := sessionStore()
	sessOpts := session.DefaultOptions()
	sessOpts.CookieName = config.SessionCookie()
	sessOpts.TTL = config.SessionTTL()

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	shopkeepers := repositories.NewShopkeeperRepository(database.DB)
	listings := repositories.NewListingRepository(database.DB)
	orders := repositories.NewOrderRepository(database.DB)

	authService := services.NewAuthService(shopkeepers)
	listingService := services.NewListingService(listings)
	orderService := services.NewOrderService(orders, listings)
	dashboardMetrics := services.NewSyntheticMetrics()

	schema, err := graph.NewSchema(listingService)
	if err != nil {
		return err
	}

	hub := ws.NewHub()
	go hub.Run()

	auth := controllers.NewAuthController(authService, authService, renderer)
	listing := controllers.NewListingController(listingService, renderer)
	category := controllers.NewCategoryController(listingService, renderer)
	order := controllers.NewOrderController(orderService, listingService, renderer)
	dashboard := controllers.NewDashboardController(authService, listingService, dashboardMetrics, renderer, hub)
	api := controllers.NewAPIController(authService, listingService, schema)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startQueue(ctx, authService)
	startSchedules(store, listings, dashboard)
	schedule.Start(ctx)

	grpcSrv, _, err := grpcserver.Start(config.GRPCPort())
	if err != nil {
		return err
	}
	defer grpcserver.Stop(grpcSrv)

	r := buildRouter(store, sessOpts)
	routes.RegisterWeb(r, routes.WebControllers{
		Auth:      auth,
		Listing:   listing,
		Category:  category,
		Order:     order,
		Dashboard: dashboard,
	})
	routes.RegisterAPI(r, api)

	if config.StorageDisk() == "local" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
		r.HandleFunc("/storage/*", fs.ServeHTTP)
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http: server starting", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("http: server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// RouteTable mounts every route on a fresh router and returns the
// table. No database or backend connection is touched, only the
// handler wiring runs.
func RouteTable() ([]router.RouteInfo, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	shopkeepers := repositories.NewShopkeeperRepository(nil)
	listings := repositories.NewListingRepository(nil)
	orders := repositories.NewOrderRepository(nil)

	authService := services.NewAuthService(shopkeepers)
	listingService := services.NewListingService(listings)
	orderService := services.NewOrderService(orders, listings)

	schema, err := graph.NewSchema(listingService)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub()

	r := router.New()
	routes.RegisterWeb(r, routes.WebControllers{
		Auth:      controllers.NewAuthController(authService, authService, renderer),
		Listing:   controllers.NewListingController(listingService, renderer),
		Category:  controllers.NewCategoryController(listingService, renderer),
		Order:     controllers.NewOrderController(orderService, listingService, renderer),
		Dashboard: controllers.NewDashboardController(authService, listingService, services.NewSyntheticMetrics(), renderer, hub),
	})
	routes.RegisterAPI(r, controllers.NewAPIController(authService, listingService, schema))
	return r.Routes(), nil
}

// buildRouter assembles the global middleware stack, outermost first.
func buildRouter(store session.Store, opts session.Options) *router.Router {
	r := router.New()
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(store, opts))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))
	r.Use(middleware.MethodOverride)
	return r
}

// sessionStore picks the session backend from SESSION_DRIVER, falling
// back to memory when the configured backend cannot be reached.
func sessionStore() session.Store {
	switch config.SessionDriver() {
	case "redis":
		if cache.RDB != nil {
			return session.NewRedisStore(cache.RDB)
		}
		logger.Warn("boot: redis session store unavailable, using memory")
	case "mongo":
		s, err := session.NewMongoStore(config.MongoURI(), config.MongoDatabase(), "sessions")
		if err == nil {
			return s
		}
		logger.Warn("boot: mongo session store unavailable, using memory", "error", err)
	}
	return session.NewMemoryStore()
}

// startQueue registers job types, wires the order event to its receipt
// job and starts the workers.
func startQueue(ctx context.Context, auth *services.AuthService) {
	jobs.RegisterJobs()
	queue.UseDB(database.DB)
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	event.Listen(services.EventOrderPlaced, func(payload interface{}) {
		o, ok := payload.(models.Order)
		if !ok {
			return
		}
		sk, err := auth.Find(o.ShopkeeperID)
		if err != nil {
			logger.Error("events: order.placed lookup failed", "shopkeeper_id", o.ShopkeeperID, "error", err)
			return
		}
		if err := queue.Dispatch(jobs.OrderReceiptJob{
			Email:    sk.Email,
			Title:    o.Title,
			Quantity: o.Quantity,
			Total:    o.PriceAtPurchase * float64(o.Quantity),
		}); err != nil {
			logger.Error("events: receipt dispatch failed", "error", err)
		}
	})

	queue.StartWorkers(ctx, queueWorkers)
}

// startSchedules registers the recurring housekeeping tasks.
func startSchedules(store session.Store, listings *repositories.ListingRepository, dashboard *controllers.DashboardController) {
	if mem, ok := store.(*session.MemoryStore); ok {
		schedule.Hourly().Name("session-gc").Run(func() {
			if n := mem.GC(); n > 0 {
				logger.Info("schedule: expired sessions removed", "count", n)
			}
		})
	}
	if mongo, ok := store.(*session.MongoStore); ok {
		schedule.Hourly().Name("session-gc").Run(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			n, err := mongo.GC(ctx)
			if err != nil {
				logger.Error("schedule: session gc failed", "error", err)
				return
			}
			if n > 0 {
				logger.Info("schedule: expired sessions removed", "count", n)
			}
		})
	}

	schedule.Daily().Name("low-stock-scan").WithoutOverlapping().Run(func() {
		low, err := listings.LowStock()
		if err != nil {
			logger.Error("schedule: low stock scan failed", "error", err)
			return
		}
		for _, l := range low {
			logger.Warn("inventory: low stock", "listing_id", l.ID, "name", l.Name, "stock", l.Stock)
		}
	})

	schedule.Every(10).Seconds().Name("dashboard-broadcast").Run(dashboard.BroadcastMetrics)
}
