package tcp

import (
	"errors"
	"log"
	"net"
	"sync/atomic"

	"github.com/ember-web/ember/internal/pool"
)

type onConnection func(net.Conn)

// Server owns the accept loop. It never handles a connection itself: every
// accepted connection is wrapped into a job and handed to the worker pool,
// decoupling acceptance from handling.
type Server struct {
	sock     net.Listener
	workers  *pool.Pool
	onConn   onConnection
	shutdown atomic.Bool
	done     chan struct{}
}

func NewServer(sock net.Listener, workers *pool.Pool, onConn onConnection) *Server {
	return &Server{
		sock:    sock,
		workers: workers,
		onConn:  onConn,
		done:    make(chan struct{}),
	}
}

// Start runs the accept loop until the listener is closed. A single failed
// accept must never stop the server, so ordinary accept errors are logged
// and the loop carries on.
func (s *Server) Start() error {
	defer close(s.done)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}

			log.Printf("tcp: accept: %s", err)
			continue
		}

		// the job exclusively owns the connection from here on; the
		// dispatcher never touches it again
		s.workers.Execute(func() {
			s.onConn(conn)
		})
	}
}

// Stop closes the listener and waits until every already-accepted connection
// has been fully served. No submitted job is dropped. Must not be called
// before Start.
func (s *Server) Stop() error {
	s.shutdown.Store(true)
	err := s.sock.Close()

	// the queue may be closed only once the accept loop is no longer
	// submitting to it
	<-s.done
	s.workers.Shutdown()

	return err
}
