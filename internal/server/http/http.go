package http

import (
	"bufio"
	"net"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/internal/parser"
	"github.com/ember-web/ember/internal/render"
	"github.com/ember-web/ember/router"
)

// Server executes a single request/response cycle per connection: decode,
// route, encode, write, close. There is no keep-alive, no pipelining and no
// read deadline: a slow client ties up exactly one worker.
type Server struct {
	router router.Router
}

func NewServer(r router.Router) *Server {
	return &Server{
		router: r,
	}
}

// ServeConn handles one connection start-to-finish. All failures are
// contained here: a framing error still gets a response while the socket is
// writable, and write errors are swallowed, merely freeing the worker for
// the next job. Nothing ever propagates across connection boundaries.
func (s *Server) ServeConn(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	serializer := render.NewSerializer()

	request, err := parser.Parse(bufio.NewReader(conn))
	if err != nil {
		_, _ = conn.Write(serializer.ErrorFallback(err))
		return
	}

	response := s.router.OnRequest(request)
	if response == nil {
		response = http.NewResponse().Code(status.NotFound)
	}

	raw, err := serializer.Render(request, response)
	if err != nil {
		// compression failures are recoverable: degrade to a plain 500
		// instead of dropping the connection
		raw = serializer.ErrorFallback(status.ErrInternalServerError)
	}

	_, _ = conn.Write(raw)
}
