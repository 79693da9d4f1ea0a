// Package testutil provides store fixtures for tests.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/deppfellow/restaurants-api/internal/config"
	"github.com/deppfellow/restaurants-api/internal/database"
	"github.com/deppfellow/restaurants-api/internal/model"
	"github.com/rs/zerolog"
)

// Seed is the data a fixture store starts with.
type Seed struct {
	Restaurants []model.Restaurant
	Dishes      []model.Dish

	// Statements run after the rows above, for data the model cannot
	// express, like booleans stored as text.
	Statements []string
}

// DefaultSeed is a small, hand-checked data set. Rating and price are
// deliberately out of id order so sorting is observable.
func DefaultSeed() Seed {
	return Seed{
		Restaurants: []model.Restaurant{
			{ID: 1, Name: "Trattoria Roma", Cuisine: "Italian", Rating: 4.5, IsVeg: false, HasOutdoorSeating: true, IsLuxury: false},
			{ID: 2, Name: "Pasta Corner", Cuisine: "Italian", Rating: 3.0, IsVeg: true, HasOutdoorSeating: false, IsLuxury: false},
			{ID: 3, Name: "Spice Route", Cuisine: "Indian", Rating: 4.8, IsVeg: true, HasOutdoorSeating: true, IsLuxury: true},
			{ID: 4, Name: "Golden Dragon", Cuisine: "Chinese", Rating: 4.5, IsVeg: false, HasOutdoorSeating: false, IsLuxury: true},
		},
		Dishes: []model.Dish{
			{ID: 1, Name: "Margherita", Price: 12.5, IsVeg: true},
			{ID: 2, Name: "Butter Chicken", Price: 15, IsVeg: false},
			{ID: 3, Name: "Dal Tadka", Price: 9.75, IsVeg: true},
			{ID: 4, Name: "Peking Duck", Price: 32, IsVeg: false},
		},
	}
}

// Config returns a config pointing at a fresh SQLite file in a temp dir.
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"
	cfg.Database.Path = filepath.Join(t.TempDir(), "restaurants.sqlite")
	cfg.Observability.ServiceName = config.ServiceName
	cfg.Observability.Environment = cfg.Primary.Env
	return cfg
}

// Logger discards everything.
func Logger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

// NewDB migrates a temp SQLite file, inserts seed, and opens it read-only
// the same way the server does. The store is closed when the test ends.
func NewDB(t *testing.T, seed Seed) *database.Database {
	t.Helper()

	ctx := context.Background()
	cfg := Config(t)
	cfg.Database.ReadOnly = false

	if err := database.Migrate(ctx, Logger(), cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	insert(t, cfg.Database.Path, seed)

	cfg.Database.ReadOnly = true
	db, err := database.New(cfg, Logger(), nil)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func insert(t *testing.T, path string, seed Seed) {
	t.Helper()

	db, err := sql.Open("sqlite", database.SQLiteDSN(path, false))
	if err != nil {
		t.Fatalf("open seed connection: %v", err)
	}
	defer db.Close()

	for _, r := range seed.Restaurants {
		_, err := db.Exec(
			"INSERT INTO restaurants (id, name, cuisine, rating, isVeg, hasOutdoorSeating, isLuxury) VALUES (?, ?, ?, ?, ?, ?, ?)",
			r.ID, r.Name, r.Cuisine, r.Rating, r.IsVeg, r.HasOutdoorSeating, r.IsLuxury,
		)
		if err != nil {
			t.Fatalf("insert restaurant %d: %v", r.ID, err)
		}
	}

	for _, d := range seed.Dishes {
		_, err := db.Exec(
			"INSERT INTO dishes (id, name, price, isVeg) VALUES (?, ?, ?, ?)",
			d.ID, d.Name, d.Price, d.IsVeg,
		)
		if err != nil {
			t.Fatalf("insert dish %d: %v", d.ID, err)
		}
	}

	for _, stmt := range seed.Statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}
