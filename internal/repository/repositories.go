package repository

import (
	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/deppfellow/restaurants-api/internal/sqlerr"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Restaurants *RestaurantRepository
	Dishes      *DishRepository
}

// NewRepositories builds every repository on top of the server's store.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Restaurants: NewRestaurantRepository(s),
		Dishes:      NewDishRepository(s),
	}
}

// notFound tags sql.ErrNoRows with the table so the error handler can
// name the missing entity.
func notFound(table query.Table) error {
	return sqlerr.NotFoundTable(string(table))
}
