package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/deppfellow/restaurants-api/internal/errs"
	"github.com/deppfellow/restaurants-api/internal/model"
	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/server"
	"github.com/pkg/errors"
)

// DishStore is the data access the dish service needs.
type DishStore interface {
	List(ctx context.Context) ([]model.Dish, error)
	GetByID(ctx context.Context, id int) (*model.Dish, error)
	ListFiltered(ctx context.Context, filter query.DishFilter) ([]model.Dish, error)
	ListSortedByPrice(ctx context.Context) ([]model.Dish, error)
}

const msgNoDishes = "No dishes found"

type DishService struct {
	server *server.Server
	repo   DishStore
}

func NewDishService(s *server.Server, repo DishStore) *DishService {
	return &DishService{
		server: s,
		repo:   repo,
	}
}

func (s *DishService) List(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	logResult(ctx, "list dishes", len(dishes))
	if len(dishes) == 0 {
		return nil, errs.NewNotFoundError(msgNoDishes, true, nil)
	}
	return dishes, nil
}

func (s *DishService) GetByID(ctx context.Context, id int) (*model.Dish, error) {
	dish, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No dish found with id %d", id), true, nil)
	}
	if err != nil {
		return nil, err
	}
	return dish, nil
}

// ListFiltered returns the matching dishes. Unlike the other listings an
// empty result is not an error; clients get an empty list.
func (s *DishService) ListFiltered(ctx context.Context, filter query.DishFilter) ([]model.Dish, error) {
	dishes, err := s.repo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	logResult(ctx, "list filtered dishes", len(dishes))
	return dishes, nil
}

func (s *DishService) ListSortedByPrice(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.repo.ListSortedByPrice(ctx)
	if err != nil {
		return nil, err
	}

	logResult(ctx, "list dishes by price", len(dishes))
	if len(dishes) == 0 {
		return nil, errs.NewNotFoundError(msgNoDishes, true, nil)
	}
	return dishes, nil
}
