package testutil

import (
	"testing"

	"github.com/deppfellow/restaurants-api/internal/server"
)

// NewServer returns an application container around a seeded fixture
// store. No HTTP listener is set up.
func NewServer(t *testing.T, seed Seed) *server.Server {
	t.Helper()

	cfg := Config(t)
	return &server.Server{
		Config: cfg,
		Logger: Logger(),
		DB:     NewDB(t, seed),
	}
}
