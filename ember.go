package ember

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/ember-web/ember/config"
	"github.com/ember-web/ember/internal/pool"
	httpserver "github.com/ember-web/ember/internal/server/http"
	"github.com/ember-web/ember/internal/server/tcp"
	"github.com/ember-web/ember/router"
)

// App wires the listener, the worker pool and the connection dispatcher
// together. Construct with New, optionally Tune, then Serve.
type App struct {
	cfg    config.Config
	mu     sync.Mutex
	server *tcp.Server
}

func New() *App {
	return &App{
		cfg: config.Default(),
	}
}

// Tune replaces default settings. Zero values keep their defaults.
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// Serve binds the configured address and serves it until Stop is called or
// the listener fails at startup. Bind failures are the only unrecoverable
// ones: once the loop is running, per-connection errors never stop it.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.cfg.NET.Addr)
	if err != nil {
		return fmt.Errorf("ember: listen %s: %w", a.cfg.NET.Addr, err)
	}

	return a.ServeOn(sock, r)
}

// ServeOn serves an already bound listener. Useful for tests binding to an
// ephemeral port.
func (a *App) ServeOn(sock net.Listener, r router.Router) error {
	workers, err := pool.NewWithDepth(a.cfg.Pool.Workers, a.cfg.Pool.QueueDepth)
	if err != nil {
		return fmt.Errorf("ember: %w", err)
	}

	handler := httpserver.NewServer(r)
	server := tcp.NewServer(sock, workers, handler.ServeConn)

	a.mu.Lock()
	a.server = server
	a.mu.Unlock()

	log.Printf("ember: serving on %s with %d workers", sock.Addr(), a.cfg.Pool.Workers)

	return server.Start()
}

// Stop closes the listener and drains the worker pool: already-accepted
// connections are served to completion, no new ones are admitted.
func (a *App) Stop() {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()

	if server != nil {
		if err := server.Stop(); err != nil {
			log.Printf("ember: stop: %s", err)
		}
	}
}
