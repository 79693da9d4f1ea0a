package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"

	"github.com/deppfellow/restaurants-api/internal/model"
	"github.com/deppfellow/restaurants-api/internal/query"
	"github.com/deppfellow/restaurants-api/internal/repository"
	"github.com/deppfellow/restaurants-api/internal/sqlerr"
	"github.com/deppfellow/restaurants-api/internal/testutil"
)

func restaurantIDs(rs []model.Restaurant) []int64 {
	ids := make([]int64, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

func sortedIDs(rs []model.Restaurant) []int64 {
	ids := restaurantIDs(rs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRestaurantRepository(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutil.NewServer(t, testutil.DefaultSeed()))

	t.Run("list returns every row", func(t *testing.T) {
		got, err := repos.Restaurants.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if ids := sortedIDs(got); !equalIDs(ids, []int64{1, 2, 3, 4}) {
			t.Errorf("ids = %v", ids)
		}
	})

	t.Run("get by id scans every column", func(t *testing.T) {
		got, err := repos.Restaurants.GetByID(ctx, 3)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		want := testutil.DefaultSeed().Restaurants[2]
		if *got != want {
			t.Errorf("GetByID() = %+v, want %+v", *got, want)
		}
	})

	t.Run("get by missing id is not found", func(t *testing.T) {
		_, err := repos.Restaurants.GetByID(ctx, 99)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Fatalf("GetByID() error = %v, want sql.ErrNoRows", err)
		}
	})

	t.Run("cuisine matches exactly", func(t *testing.T) {
		got, err := repos.Restaurants.ListByCuisine(ctx, "Italian")
		if err != nil {
			t.Fatalf("ListByCuisine() error = %v", err)
		}
		if ids := sortedIDs(got); !equalIDs(ids, []int64{1, 2}) {
			t.Errorf("ids = %v, want [1 2]", ids)
		}

		got, err = repos.Restaurants.ListByCuisine(ctx, "italian")
		if err != nil {
			t.Fatalf("ListByCuisine() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("lowercase cuisine matched %v", restaurantIDs(got))
		}
	})

	t.Run("sorted by rating", func(t *testing.T) {
		got, err := repos.Restaurants.ListSortedByRating(ctx)
		if err != nil {
			t.Fatalf("ListSortedByRating() error = %v", err)
		}
		// 4.8, 4.5 (id 1), 4.5 (id 4), 3.0
		if ids := restaurantIDs(got); !equalIDs(ids, []int64{3, 1, 4, 2}) {
			t.Errorf("ids = %v, want [3 1 4 2]", ids)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Rating > got[i-1].Rating {
				t.Errorf("rating increases at %d: %v > %v", i, got[i].Rating, got[i-1].Rating)
			}
		}
	})
}

func TestRestaurantRepositoryListFiltered(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutil.NewServer(t, testutil.DefaultSeed()))

	tests := []struct {
		name   string
		filter query.RestaurantFilter
		want   []int64
	}{
		{"no flags", query.RestaurantFilter{}, []int64{1, 2, 3, 4}},
		{"veg", query.RestaurantFilter{IsVeg: "1"}, []int64{2, 3}},
		{"veg and outdoor", query.RestaurantFilter{IsVeg: "1", HasOutdoorSeating: "1"}, []int64{3}},
		{"veg and not luxury", query.RestaurantFilter{IsVeg: "1", IsLuxury: "0"}, []int64{2}},
		{"outdoor", query.RestaurantFilter{HasOutdoorSeating: "1"}, []int64{1, 3}},
		{"outdoor and luxury", query.RestaurantFilter{HasOutdoorSeating: "1", IsLuxury: "1"}, []int64{3}},
		{"luxury", query.RestaurantFilter{IsLuxury: "1"}, []int64{3, 4}},
		{"all three", query.RestaurantFilter{IsVeg: "0", HasOutdoorSeating: "0", IsLuxury: "1"}, []int64{4}},
		{"unmatched value", query.RestaurantFilter{IsVeg: "maybe"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repos.Restaurants.ListFiltered(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListFiltered() error = %v", err)
			}
			if ids := sortedIDs(got); !equalIDs(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestRestaurantRepositoryTextBooleans(t *testing.T) {
	seed := testutil.Seed{
		Statements: []string{
			`INSERT INTO restaurants (id, name, cuisine, rating, isVeg, hasOutdoorSeating, isLuxury)
			 VALUES (10, 'Green Leaf', 'Vegan', 4.1, 'true', 'false', 'false')`,
		},
	}
	repos := repository.NewRepositories(testutil.NewServer(t, seed))

	got, err := repos.Restaurants.GetByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsVeg || got.HasOutdoorSeating || got.IsLuxury {
		t.Errorf("flags = %v/%v/%v, want true/false/false", got.IsVeg, got.HasOutdoorSeating, got.IsLuxury)
	}

	filtered, err := repos.Restaurants.ListFiltered(context.Background(), query.RestaurantFilter{IsVeg: "true"})
	if err != nil {
		t.Fatalf("ListFiltered() error = %v", err)
	}
	if ids := restaurantIDs(filtered); !equalIDs(ids, []int64{10}) {
		t.Errorf("ids = %v, want [10]", ids)
	}
}

func TestDishRepository(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutil.NewServer(t, testutil.DefaultSeed()))

	t.Run("list", func(t *testing.T) {
		got, err := repos.Dishes.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 4 {
			t.Errorf("len = %d, want 4", len(got))
		}
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repos.Dishes.GetByID(ctx, 3)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		want := testutil.DefaultSeed().Dishes[2]
		if *got != want {
			t.Errorf("GetByID() = %+v, want %+v", *got, want)
		}
	})

	t.Run("missing id names the table", func(t *testing.T) {
		_, err := repos.Dishes.GetByID(ctx, 42)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Fatalf("GetByID() error = %v, want sql.ErrNoRows", err)
		}
		if got := sqlerr.HandleError(err).Error(); got != "Dish not found" {
			t.Errorf("HandleError() = %q, want %q", got, "Dish not found")
		}
	})

	t.Run("filtered", func(t *testing.T) {
		veg, err := repos.Dishes.ListFiltered(ctx, query.DishFilter{IsVeg: "1"})
		if err != nil {
			t.Fatalf("ListFiltered() error = %v", err)
		}
		for _, d := range veg {
			if !d.IsVeg {
				t.Errorf("non-veg dish %d in veg filter", d.ID)
			}
		}
		if len(veg) != 2 {
			t.Errorf("len = %d, want 2", len(veg))
		}

		all, err := repos.Dishes.ListFiltered(ctx, query.DishFilter{})
		if err != nil {
			t.Fatalf("ListFiltered() error = %v", err)
		}
		if len(all) != 4 {
			t.Errorf("empty filter len = %d, want 4", len(all))
		}
	})

	t.Run("sorted by price", func(t *testing.T) {
		got, err := repos.Dishes.ListSortedByPrice(ctx)
		if err != nil {
			t.Fatalf("ListSortedByPrice() error = %v", err)
		}
		want := []int64{3, 1, 2, 4}
		for i, d := range got {
			if d.ID != want[i] {
				t.Fatalf("order = %+v, want ids %v", got, want)
			}
		}
	})
}

func TestDishRepositoryEmptyTable(t *testing.T) {
	repos := repository.NewRepositories(testutil.NewServer(t, testutil.Seed{}))

	got, err := repos.Dishes.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %#v, want empty non-nil slice", got)
	}
}

func TestRepositoryCanceledContext(t *testing.T) {
	repos := repository.NewRepositories(testutil.NewServer(t, testutil.DefaultSeed()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repos.Restaurants.List(ctx)
	if err == nil {
		t.Fatal("List() succeeded with a canceled context")
	}
	if got := sqlerr.ErrCode(err); got != sqlerr.Canceled {
		t.Errorf("ErrCode() = %q, want %q", got, sqlerr.Canceled)
	}
}
