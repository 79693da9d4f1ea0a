package handler

import "github.com/deppfellow/restaurants-api/internal/model"

type RestaurantsResponse struct {
	Restaurants []model.Restaurant `json:"restaurants"`
}

func (r *RestaurantsResponse) Count() int { return len(r.Restaurants) }

type RestaurantResponse struct {
	Restaurant *model.Restaurant `json:"restaurant"`
}

type DishesResponse struct {
	Dishes []model.Dish `json:"dishes"`
}

func (r *DishesResponse) Count() int { return len(r.Dishes) }

type DishResponse struct {
	Dish *model.Dish `json:"dish"`
}

// DishFilterResponse keeps the singular "dish" key existing clients of
// the filter endpoint read.
type DishFilterResponse struct {
	Dish []model.Dish `json:"dish"`
}

func (r *DishFilterResponse) Count() int { return len(r.Dish) }
