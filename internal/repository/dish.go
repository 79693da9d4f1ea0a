package repository

import (
	"context"

	"github.com/deppfellow/restaurants-api/internal/model"
	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/pkg/errors"
)

// DishRepository reads the dishes table.
type DishRepository struct {
	server *server.Server
}

func NewDishRepository(s *server.Server) *DishRepository {
	return &DishRepository{server: s}
}

func selectDishes() query.SelectBuilder {
	return query.Select(query.Dishes, query.DishColumns...)
}

func scanDish(row rowScanner) (model.Dish, error) {
	var d model.Dish
	err := row.Scan(&d.ID, &d.Name, &d.Price, &d.IsVeg)
	return d, err
}

func (r *DishRepository) List(ctx context.Context) ([]model.Dish, error) {
	dishes, err := selectAll(ctx, r.server, selectDishes(), scanDish)
	if err != nil {
		return nil, errors.Wrap(err, "list dishes")
	}
	return dishes, nil
}

func (r *DishRepository) GetByID(ctx context.Context, id int) (*model.Dish, error) {
	stmt := selectDishes().Where(query.Predicate{}.Eq(query.ID, id))

	dish, err := selectOne(ctx, r.server, query.Dishes, stmt, scanDish)
	if err != nil {
		return nil, errors.Wrapf(err, "get dish %d", id)
	}
	return &dish, nil
}

func (r *DishRepository) ListFiltered(ctx context.Context, filter query.DishFilter) ([]model.Dish, error) {
	dishes, err := selectAll(ctx, r.server, selectDishes().Where(filter.Predicate()), scanDish)
	if err != nil {
		return nil, errors.Wrap(err, "list filtered dishes")
	}
	return dishes, nil
}

// ListSortedByPrice returns every dish, cheapest first, ties by id.
func (r *DishRepository) ListSortedByPrice(ctx context.Context) ([]model.Dish, error) {
	stmt := selectDishes().
		OrderBy(query.Price, query.Asc).
		OrderBy(query.ID, query.Asc)

	dishes, err := selectAll(ctx, r.server, stmt, scanDish)
	if err != nil {
		return nil, errors.Wrap(err, "list dishes by price")
	}
	return dishes, nil
}
