package query

import (
	"reflect"
	"strings"
	"testing"
)

func TestRestaurantFilterPredicate(t *testing.T) {
	tests := []struct {
		name     string
		filter   RestaurantFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no flags",
			filter:  RestaurantFilter{},
			wantSQL: "",
		},
		{
			name:     "isVeg only",
			filter:   RestaurantFilter{IsVeg: "true"},
			wantSQL:  "isVeg = ?",
			wantArgs: []any{"true"},
		},
		{
			name:     "hasOutdoorSeating only",
			filter:   RestaurantFilter{HasOutdoorSeating: "false"},
			wantSQL:  "hasOutdoorSeating = ?",
			wantArgs: []any{"false"},
		},
		{
			name:     "isLuxury only",
			filter:   RestaurantFilter{IsLuxury: "1"},
			wantSQL:  "isLuxury = ?",
			wantArgs: []any{"1"},
		},
		{
			name:     "isVeg and hasOutdoorSeating",
			filter:   RestaurantFilter{IsVeg: "true", HasOutdoorSeating: "false"},
			wantSQL:  "isVeg = ? AND hasOutdoorSeating = ?",
			wantArgs: []any{"true", "false"},
		},
		{
			name:     "isVeg and isLuxury",
			filter:   RestaurantFilter{IsVeg: "true", IsLuxury: "true"},
			wantSQL:  "isVeg = ? AND isLuxury = ?",
			wantArgs: []any{"true", "true"},
		},
		{
			name:     "hasOutdoorSeating and isLuxury",
			filter:   RestaurantFilter{HasOutdoorSeating: "true", IsLuxury: "false"},
			wantSQL:  "hasOutdoorSeating = ? AND isLuxury = ?",
			wantArgs: []any{"true", "false"},
		},
		{
			name:     "all three flags",
			filter:   RestaurantFilter{IsVeg: "1", HasOutdoorSeating: "0", IsLuxury: "true"},
			wantSQL:  "isVeg = ? AND hasOutdoorSeating = ? AND isLuxury = ?",
			wantArgs: []any{"1", "0", "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.Predicate().ToSQL(Question)
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
			if got := strings.Count(sql, "?"); got != len(args) {
				t.Errorf("%d placeholders for %d args", got, len(args))
			}
		})
	}
}

func TestRestaurantFilterIsLuxuryOnce(t *testing.T) {
	filters := []RestaurantFilter{
		{IsVeg: "true", HasOutdoorSeating: "true", IsLuxury: "true"},
		{HasOutdoorSeating: "true", IsLuxury: "true"},
		{IsLuxury: "true"},
	}

	for _, f := range filters {
		sql, _ := f.Predicate().ToSQL(Question)
		if got := strings.Count(sql, string(IsLuxury)); got != 1 {
			t.Errorf("%+v: isLuxury appears %d times in %q", f, got, sql)
		}
	}
}

func TestFilterValuesAreNotInterpolated(t *testing.T) {
	injection := "1 OR 1=1; DROP TABLE restaurants; --"
	sql, args := RestaurantFilter{IsVeg: injection}.Predicate().ToSQL(Question)

	if strings.Contains(sql, "DROP") {
		t.Fatalf("value leaked into SQL text: %q", sql)
	}
	if len(args) != 1 || args[0] != injection {
		t.Fatalf("args = %v, want the raw value as the only bind", args)
	}
}

func TestDishFilterPredicate(t *testing.T) {
	if p := (DishFilter{}).Predicate(); !p.Empty() {
		t.Errorf("empty filter produced %d clauses", len(p.Clauses()))
	}

	sql, args := DishFilter{IsVeg: "true"}.Predicate().ToSQL(Dollar)
	if sql != "isVeg = $1" {
		t.Errorf("sql = %q, want %q", sql, "isVeg = $1")
	}
	if !reflect.DeepEqual(args, []any{"true"}) {
		t.Errorf("args = %v", args)
	}
}

func TestPredicateEqIgnoresRepeatedColumn(t *testing.T) {
	p := Predicate{}.Eq(IsVeg, "true").Eq(IsLuxury, "true").Eq(IsVeg, "false")

	clauses := p.Clauses()
	want := []Clause{{Column: IsVeg, Value: "true"}, {Column: IsLuxury, Value: "true"}}
	if !reflect.DeepEqual(clauses, want) {
		t.Errorf("clauses = %v, want %v", clauses, want)
	}
}

func TestPredicateEqDoesNotAlias(t *testing.T) {
	base := Predicate{}.Eq(IsVeg, "true")
	a := base.Eq(IsLuxury, "true")
	b := base.Eq(HasOutdoorSeating, "true")

	if a.Has(HasOutdoorSeating) || b.Has(IsLuxury) {
		t.Fatal("derived predicates share state")
	}
	if len(base.Clauses()) != 1 {
		t.Fatalf("base mutated: %v", base.Clauses())
	}
}

func TestSelectToSQL(t *testing.T) {
	tests := []struct {
		name     string
		builder  SelectBuilder
		format   PlaceholderFormat
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "all restaurants",
			builder: Select(Restaurants, RestaurantColumns...),
			format:  Question,
			wantSQL: "SELECT id, name, cuisine, rating, isVeg, hasOutdoorSeating, isLuxury FROM restaurants",
		},
		{
			name:     "dish by id",
			builder:  Select(Dishes, DishColumns...).Where(Predicate{}.Eq(ID, 3)),
			format:   Question,
			wantSQL:  "SELECT id, name, price, isVeg FROM dishes WHERE id = ?",
			wantArgs: []any{3},
		},
		{
			name: "filtered and sorted with dollar placeholders",
			builder: Select(Restaurants, ID, Name).
				Where(RestaurantFilter{IsVeg: "true", IsLuxury: "false"}.Predicate()).
				OrderBy(Rating, Desc).
				OrderBy(ID, Asc),
			format:   Dollar,
			wantSQL:  "SELECT id, name FROM restaurants WHERE isVeg = $1 AND isLuxury = $2 ORDER BY rating DESC, id ASC",
			wantArgs: []any{"true", "false"},
		},
		{
			name:    "no columns selects star",
			builder: Select(Dishes).OrderBy(Price, Asc),
			format:  Question,
			wantSQL: "SELECT * FROM dishes ORDER BY price ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.builder.ToSQL(tt.format)
			if sql != tt.wantSQL {
				t.Errorf("sql = %q\nwant  %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestSelectOrderByDoesNotAlias(t *testing.T) {
	base := Select(Dishes, DishColumns...).OrderBy(Price, Asc)
	a := base.OrderBy(ID, Asc)
	b := base.OrderBy(Name, Desc)

	sqlA, _ := a.ToSQL(Question)
	sqlB, _ := b.ToSQL(Question)
	if !strings.HasSuffix(sqlA, "ORDER BY price ASC, id ASC") {
		t.Errorf("a = %q", sqlA)
	}
	if !strings.HasSuffix(sqlB, "ORDER BY price ASC, name DESC") {
		t.Errorf("b = %q", sqlB)
	}
}
