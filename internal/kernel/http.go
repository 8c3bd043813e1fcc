// Package kernel assembles the storefront HTTP handler: global middleware,
// operational endpoints and the API routes.
package kernel

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"github.com/shashiranjanraj/storefront/pkg/router"
	"github.com/shashiranjanraj/storefront/pkg/storage"
)

// Deps are the shared resources injected into every repository and service.
// Cache and Events may be nil.
type Deps struct {
	DB     *gorm.DB
	Cache  *cache.Store
	Events *event.Dispatcher
	Disks  *storage.Disks
}

// HTTPKernel owns the router built from Deps.
type HTTPKernel struct {
	router *router.Router
	deps   Deps
}

func NewHTTPKernel(deps Deps) *HTTPKernel {
	k := &HTTPKernel{router: router.New(), deps: deps}
	k.boot()
	return k
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

// Routes lists the registered routes.
func (k *HTTPKernel) Routes() []router.RouteInfo { return k.router.Routes() }

func (k *HTTPKernel) boot() {
	r := k.router

	// Outermost first: metrics sees total latency, recovery catches panics
	// before logging, and the request id exists before anything logs.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(config.RequestTimeout()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimit(), config.RateBurst()))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Route not found")
	})

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/health", "health", k.health)

	var disk storage.Disk
	if k.deps.Disks != nil {
		disk = k.deps.Disks.Default()
		if local, ok := k.deps.Disks.Local(); ok {
			r.Static("/uploads", local.Root())
		}
	}

	routes.RegisterAPI(r, k.controllers(disk))
}

func (k *HTTPKernel) controllers(disk storage.Disk) routes.Controllers {
	db := k.deps.DB
	users := repositories.NewUserRepository(db)

	return routes.Controllers{
		Brand:     controllers.NewBrandController(repositories.NewBrandRepository(db)),
		Category:  controllers.NewCategoryController(repositories.NewCategoryRepository(db)),
		Product:   controllers.NewProductController(services.NewProductService(db, disk)),
		Inventory: controllers.NewInventoryController(repositories.NewInventoryRepository(db), k.deps.Cache),
		Payment:   controllers.NewPaymentController(repositories.NewPaymentRepository(db)),
		Order:     controllers.NewOrderController(services.NewOrderService(db, k.deps.Cache, k.deps.Events)),
		Cart:      controllers.NewCartController(repositories.NewCartRepository(db)),
		User:      controllers.NewUserController(services.NewUserService(users), users),
	}
}

func (k *HTTPKernel) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if k.deps.DB == nil {
		response.Error(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	if err := database.Ping(ctx, k.deps.DB); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	response.Success(w, "OK", map[string]string{"status": "ok"})
}
