// Package model holds the read models returned by the API.
//
// JSON field names follow the column names of the store so responses keep
// the shape existing clients already consume.
package model

// Restaurant is a row of the restaurants table.
type Restaurant struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Cuisine           string  `json:"cuisine"`
	Rating            float64 `json:"rating"`
	IsVeg             bool    `json:"isVeg"`
	HasOutdoorSeating bool    `json:"hasOutdoorSeating"`
	IsLuxury          bool    `json:"isLuxury"`
}

// Dish is a row of the dishes table.
type Dish struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	IsVeg bool    `json:"isVeg"`
}
