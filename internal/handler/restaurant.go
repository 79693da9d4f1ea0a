package handler

import (
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/deppfellow/restaurants-api/internal/service"
	"github.com/labstack/echo/v4"
)

type RestaurantHandler struct {
	Handler
	restaurantService *service.RestaurantService
}

func NewRestaurantHandler(s *server.Server, restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		Handler:           NewHandler(s),
		restaurantService: restaurantService,
	}
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context, _ *ListRequest) (*RestaurantsResponse, error) {
	restaurants, err := h.restaurantService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &RestaurantsResponse{Restaurants: restaurants}, nil
}

func (h *RestaurantHandler) GetRestaurant(c echo.Context, req *GetRestaurantRequest) (*RestaurantResponse, error) {
	restaurant, err := h.restaurantService.GetByID(c.Request().Context(), req.id)
	if err != nil {
		return nil, err
	}
	return &RestaurantResponse{Restaurant: restaurant}, nil
}

func (h *RestaurantHandler) ListByCuisine(c echo.Context, req *CuisineRequest) (*RestaurantsResponse, error) {
	restaurants, err := h.restaurantService.ListByCuisine(c.Request().Context(), req.Cuisine)
	if err != nil {
		return nil, err
	}
	return &RestaurantsResponse{Restaurants: restaurants}, nil
}

func (h *RestaurantHandler) FilterRestaurants(c echo.Context, req *RestaurantFilterRequest) (*RestaurantsResponse, error) {
	restaurants, err := h.restaurantService.ListFiltered(c.Request().Context(), req.Filter())
	if err != nil {
		return nil, err
	}
	return &RestaurantsResponse{Restaurants: restaurants}, nil
}

func (h *RestaurantHandler) SortByRating(c echo.Context, _ *ListRequest) (*RestaurantsResponse, error) {
	restaurants, err := h.restaurantService.ListSortedByRating(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &RestaurantsResponse{Restaurants: restaurants}, nil
}
