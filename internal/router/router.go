// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/restaurants-api/internal/handler"
	"github.com/deppfellow/restaurants-api/internal/middleware"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with every middleware and route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)
	registerAPIRoutes(router, h)

	return router
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	restaurants := r.Group("/restaurants")
	restaurants.GET("", handler.Handle(h.Restaurants.Handler, h.Restaurants.ListRestaurants, http.StatusOK))
	restaurants.GET("/details/:id", handler.Handle(h.Restaurants.Handler, h.Restaurants.GetRestaurant, http.StatusOK))
	restaurants.GET("/cuisine/:cuisine", handler.Handle(h.Restaurants.Handler, h.Restaurants.ListByCuisine, http.StatusOK))
	restaurants.GET("/filter", handler.Handle(h.Restaurants.Handler, h.Restaurants.FilterRestaurants, http.StatusOK))
	restaurants.GET("/sort-by-rating", handler.Handle(h.Restaurants.Handler, h.Restaurants.SortByRating, http.StatusOK))

	dishes := r.Group("/dishes")
	dishes.GET("", handler.Handle(h.Dishes.Handler, h.Dishes.ListDishes, http.StatusOK))
	dishes.GET("/details/:id", handler.Handle(h.Dishes.Handler, h.Dishes.GetDish, http.StatusOK))
	dishes.GET("/filter", handler.Handle(h.Dishes.Handler, h.Dishes.FilterDishes, http.StatusOK))
	dishes.GET("/sort-by-price", handler.Handle(h.Dishes.Handler, h.Dishes.SortByPrice, http.StatusOK))
}
