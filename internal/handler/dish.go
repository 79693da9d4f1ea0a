package handler

import (
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/deppfellow/restaurants-api/internal/service"
	"github.com/labstack/echo/v4"
)

type DishHandler struct {
	Handler
	dishService *service.DishService
}

func NewDishHandler(s *server.Server, dishService *service.DishService) *DishHandler {
	return &DishHandler{
		Handler:     NewHandler(s),
		dishService: dishService,
	}
}

func (h *DishHandler) ListDishes(c echo.Context, _ *ListRequest) (*DishesResponse, error) {
	dishes, err := h.dishService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &DishesResponse{Dishes: dishes}, nil
}

func (h *DishHandler) GetDish(c echo.Context, req *GetDishRequest) (*DishResponse, error) {
	dish, err := h.dishService.GetByID(c.Request().Context(), req.id)
	if err != nil {
		return nil, err
	}
	return &DishResponse{Dish: dish}, nil
}

// FilterDishes answers 200 even when nothing matches.
func (h *DishHandler) FilterDishes(c echo.Context, req *DishFilterRequest) (*DishFilterResponse, error) {
	dishes, err := h.dishService.ListFiltered(c.Request().Context(), req.Filter())
	if err != nil {
		return nil, err
	}
	return &DishFilterResponse{Dish: dishes}, nil
}

func (h *DishHandler) SortByPrice(c echo.Context, _ *ListRequest) (*DishesResponse, error) {
	dishes, err := h.dishService.ListSortedByPrice(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &DishesResponse{Dishes: dishes}, nil
}
