// Package handler is the first layer after the router.
//
// It binds and validates request parameters, calls the service layer, and
// shapes the JSON response. Errors are returned to echo and formatted by
// the global error handler.
package handler

import (
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/deppfellow/restaurants-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Restaurants *RestaurantHandler
	Dishes      *DishHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Restaurants: NewRestaurantHandler(s, services.Restaurants),
		Dishes:      NewDishHandler(s, services.Dishes),
	}
}
