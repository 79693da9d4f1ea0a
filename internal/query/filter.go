package query

// RestaurantFilter holds the optional flags of GET /restaurants/filter.
//
// A flag is present when it is non-empty. Values are passed to the store
// untouched, so "true", "1" or anything else the client sends is compared
// as-is against the stored column.
type RestaurantFilter struct {
	IsVeg             string
	HasOutdoorSeating string
	IsLuxury          string
}

// Predicate picks exactly one filter path:
//
//   - isVeg present: isVeg, then hasOutdoorSeating and isLuxury if present
//   - else hasOutdoorSeating present: hasOutdoorSeating, then isLuxury if present
//   - else isLuxury present: isLuxury only
//   - else: empty, every restaurant matches
//
// Each flag contributes at most one clause.
func (f RestaurantFilter) Predicate() Predicate {
	var p Predicate

	switch {
	case f.IsVeg != "":
		p = p.Eq(IsVeg, f.IsVeg)
		if f.HasOutdoorSeating != "" {
			p = p.Eq(HasOutdoorSeating, f.HasOutdoorSeating)
		}
		if f.IsLuxury != "" {
			p = p.Eq(IsLuxury, f.IsLuxury)
		}
	case f.HasOutdoorSeating != "":
		p = p.Eq(HasOutdoorSeating, f.HasOutdoorSeating)
		if f.IsLuxury != "" {
			p = p.Eq(IsLuxury, f.IsLuxury)
		}
	case f.IsLuxury != "":
		p = p.Eq(IsLuxury, f.IsLuxury)
	}

	return p
}

// DishFilter holds the optional flag of GET /dishes/filter.
type DishFilter struct {
	IsVeg string
}

// Predicate restricts to isVeg when present, otherwise matches every dish.
func (f DishFilter) Predicate() Predicate {
	var p Predicate
	if f.IsVeg != "" {
		p = p.Eq(IsVeg, f.IsVeg)
	}
	return p
}
