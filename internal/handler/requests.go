package handler

import (
	"strconv"

	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/validation"
)

// ListRequest is used by endpoints that take no parameters.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// parseID accepts only a complete base-10 integer.
func parseID(raw, message string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.Invalid("id", message)
	}
	return id, nil
}

type GetRestaurantRequest struct {
	RawID string `param:"id"`

	id int
}

func (r *GetRestaurantRequest) Validate() error {
	id, err := parseID(r.RawID, "Please provide valid restaurant id")
	if err != nil {
		return err
	}
	r.id = id
	return nil
}

type GetDishRequest struct {
	RawID string `param:"id"`

	id int
}

func (r *GetDishRequest) Validate() error {
	id, err := parseID(r.RawID, "Please provide valid dish id")
	if err != nil {
		return err
	}
	r.id = id
	return nil
}

type CuisineRequest struct {
	Cuisine string `param:"cuisine" validate:"required"`
}

func (r *CuisineRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return validation.Invalid("cuisine", "Please provide cuisine")
	}
	return nil
}

// RestaurantFilterRequest carries the optional flags. Values are passed
// to the store unchanged.
type RestaurantFilterRequest struct {
	IsVeg             string `query:"isVeg"`
	HasOutdoorSeating string `query:"hasOutdoorSeating"`
	IsLuxury          string `query:"isLuxury"`
}

func (r *RestaurantFilterRequest) Validate() error {
	return nil
}

func (r *RestaurantFilterRequest) Filter() query.RestaurantFilter {
	return query.RestaurantFilter{
		IsVeg:             r.IsVeg,
		HasOutdoorSeating: r.HasOutdoorSeating,
		IsLuxury:          r.IsLuxury,
	}
}

type DishFilterRequest struct {
	IsVeg string `query:"isVeg"`
}

func (r *DishFilterRequest) Validate() error {
	return nil
}

func (r *DishFilterRequest) Filter() query.DishFilter {
	return query.DishFilter{IsVeg: r.IsVeg}
}
