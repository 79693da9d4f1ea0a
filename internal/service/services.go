package service

import (
	"github.com/deppfellow/restaurants-api/internal/repository"
	"github.com/deppfellow/restaurants-api/internal/server"
)

type Services struct {
	Restaurants *RestaurantService
	Dishes      *DishService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Restaurants: NewRestaurantService(s, repos.Restaurants),
		Dishes:      NewDishService(s, repos.Dishes),
	}, nil
}
