package repository

import (
	"context"

	"github.com/deppfellow/restaurants-api/internal/model"
	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/pkg/errors"
)

// RestaurantRepository reads the restaurants table.
type RestaurantRepository struct {
	server *server.Server
}

func NewRestaurantRepository(s *server.Server) *RestaurantRepository {
	return &RestaurantRepository{server: s}
}

func selectRestaurants() query.SelectBuilder {
	return query.Select(query.Restaurants, query.RestaurantColumns...)
}

func scanRestaurant(row rowScanner) (model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Cuisine,
		&r.Rating,
		&r.IsVeg,
		&r.HasOutdoorSeating,
		&r.IsLuxury,
	)
	return r, err
}

// List returns every restaurant in store order.
func (r *RestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := selectAll(ctx, r.server, selectRestaurants(), scanRestaurant)
	if err != nil {
		return nil, errors.Wrap(err, "list restaurants")
	}
	return restaurants, nil
}

// GetByID returns the restaurant with id. A missing row yields an error
// matching sql.ErrNoRows.
func (r *RestaurantRepository) GetByID(ctx context.Context, id int) (*model.Restaurant, error) {
	stmt := selectRestaurants().Where(query.Predicate{}.Eq(query.ID, id))

	restaurant, err := selectOne(ctx, r.server, query.Restaurants, stmt, scanRestaurant)
	if err != nil {
		return nil, errors.Wrapf(err, "get restaurant %d", id)
	}
	return &restaurant, nil
}

// ListByCuisine returns restaurants whose cuisine equals cuisine exactly.
// The comparison is case-sensitive.
func (r *RestaurantRepository) ListByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	stmt := selectRestaurants().Where(query.Predicate{}.Eq(query.Cuisine, cuisine))

	restaurants, err := selectAll(ctx, r.server, stmt, scanRestaurant)
	if err != nil {
		return nil, errors.Wrapf(err, "list restaurants by cuisine %q", cuisine)
	}
	return restaurants, nil
}

// ListFiltered returns restaurants matching filter. An empty filter
// matches every restaurant.
func (r *RestaurantRepository) ListFiltered(ctx context.Context, filter query.RestaurantFilter) ([]model.Restaurant, error) {
	stmt := selectRestaurants().Where(filter.Predicate())

	restaurants, err := selectAll(ctx, r.server, stmt, scanRestaurant)
	if err != nil {
		return nil, errors.Wrap(err, "list filtered restaurants")
	}
	return restaurants, nil
}

// ListSortedByRating returns every restaurant, highest rating first. Equal
// ratings keep ascending id order.
func (r *RestaurantRepository) ListSortedByRating(ctx context.Context) ([]model.Restaurant, error) {
	stmt := selectRestaurants().
		OrderBy(query.Rating, query.Desc).
		OrderBy(query.ID, query.Asc)

	restaurants, err := selectAll(ctx, r.server, stmt, scanRestaurant)
	if err != nil {
		return nil, errors.Wrap(err, "list restaurants by rating")
	}
	return restaurants, nil
}
