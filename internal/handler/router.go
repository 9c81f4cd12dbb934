package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equiprent/internal/handler/api"
	"equiprent/internal/handler/middleware"
	"equiprent/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	rentalHandler *api.RentalHandler,
	itemHandler *api.ItemHandler,
	customerHandler *api.CustomerHandler,
	dashboardHandler *api.DashboardHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, rentalHandler, itemHandler, customerHandler, dashboardHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	rentalHandler *api.RentalHandler,
	itemHandler *api.ItemHandler,
	customerHandler *api.CustomerHandler,
	dashboardHandler *api.DashboardHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		rentals := apiGroup.Group("/rentals")
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.CreateRental},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.ListOpenContracts},
				{Method: http.MethodPost, Path: "/quote", Handler: rentalHandler.Quote},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.GetContract},
				{Method: http.MethodPost, Path: "/:id/returns", Handler: rentalHandler.ReturnItem},
			})
		}

		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: itemHandler.CreateItem},
				{Method: http.MethodGet, Path: "", Handler: itemHandler.ListItems},
				{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.GetItem},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: itemHandler.ChangeItemStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: itemHandler.DeleteItem},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: customerHandler.CreateCustomer},
				{Method: http.MethodGet, Path: "", Handler: customerHandler.ListCustomers},
				{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.GetCustomer},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.UpdateCustomer},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.DeleteCustomer},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.Overview},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
