// A shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"database/sql"
	"testing"

	"github.com/nurania/nurania-go/internal/api"
	"github.com/nurania/nurania-go/internal/config"
	"github.com/nurania/nurania-go/internal/core"
	"github.com/nurania/nurania-go/internal/websocket"
)

// SetupTestApp assembles a core.App around an in-memory database.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()
	database := SetupTestDB(t)

	cfg := &config.Config{}
	hub := websocket.NewHub()
	go hub.Run()
	return core.NewForTest(cfg, database, hub)
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *sql.DB) {
	t.Helper()
	app := SetupTestApp(t)
	server := api.NewServer(app)
	return server, app.DB()
}

// SetupTestServerWithConfig builds a server over the given config, for
// tests that point a provider at a local fixture server.
func SetupTestServerWithConfig(t *testing.T, cfg *config.Config) (*api.Server, *sql.DB) {
	t.Helper()
	database := SetupTestDB(t)

	hub := websocket.NewHub()
	go hub.Run()
	app := core.NewForTest(cfg, database, hub)
	server := api.NewServer(app)
	return server, app.DB()
}
