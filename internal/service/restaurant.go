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

// RestaurantStore is the data access the restaurant service needs.
type RestaurantStore interface {
	List(ctx context.Context) ([]model.Restaurant, error)
	GetByID(ctx context.Context, id int) (*model.Restaurant, error)
	ListByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error)
	ListFiltered(ctx context.Context, filter query.RestaurantFilter) ([]model.Restaurant, error)
	ListSortedByRating(ctx context.Context) ([]model.Restaurant, error)
}

const msgNoRestaurants = "No restaurants found"

type RestaurantService struct {
	server *server.Server
	repo   RestaurantStore
}

func NewRestaurantService(s *server.Server, repo RestaurantStore) *RestaurantService {
	return &RestaurantService{
		server: s,
		repo:   repo,
	}
}

// nonEmpty turns an empty listing into a 404 carrying message.
func nonEmpty(ctx context.Context, operation string, restaurants []model.Restaurant, err error, message string) ([]model.Restaurant, error) {
	if err != nil {
		return nil, err
	}

	logResult(ctx, operation, len(restaurants))
	if len(restaurants) == 0 {
		return nil, errs.NewNotFoundError(message, true, nil)
	}
	return restaurants, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := s.repo.List(ctx)
	return nonEmpty(ctx, "list restaurants", restaurants, err, msgNoRestaurants)
}

func (s *RestaurantService) GetByID(ctx context.Context, id int) (*model.Restaurant, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No restaurant exists with id %d", id), true, nil)
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) ListByCuisine(ctx context.Context, cuisine string) ([]model.Restaurant, error) {
	restaurants, err := s.repo.ListByCuisine(ctx, cuisine)
	return nonEmpty(ctx, "list restaurants by cuisine", restaurants, err,
		fmt.Sprintf("No restaurants found with cuisine %s", cuisine))
}

func (s *RestaurantService) ListFiltered(ctx context.Context, filter query.RestaurantFilter) ([]model.Restaurant, error) {
	restaurants, err := s.repo.ListFiltered(ctx, filter)
	return nonEmpty(ctx, "list filtered restaurants", restaurants, err, msgNoRestaurants)
}

func (s *RestaurantService) ListSortedByRating(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := s.repo.ListSortedByRating(ctx)
	return nonEmpty(ctx, "list restaurants by rating", restaurants, err, msgNoRestaurants)
}
