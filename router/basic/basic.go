package basic

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/method"
	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/router"
)

const (
	mimePlain       = "text/plain"
	mimeOctetStream = "application/octet-stream"
)

var _ router.Router = Router{}

// Router implements the stock route set: echo, user-agent reflection and a
// file store rooted at a base directory. The directory is captured by value
// at construction and never mutated, making the router trivially safe for
// concurrent use.
type Router struct {
	dir string
}

// New returns a router serving files from dir. An empty dir disables nothing
// by itself: file routes simply resolve relative to it.
func New(dir string) Router {
	return Router{dir: dir}
}

func (r Router) OnRequest(request *http.Request) *http.Response {
	switch {
	case request.Path == "/":
		return http.NewResponse()
	case strings.HasPrefix(request.Path, "/echo/"):
		return r.echo(request)
	case request.Path == "/user-agent":
		return r.userAgent(request)
	case strings.HasPrefix(request.Path, "/files/"):
		return r.files(request)
	default:
		return http.NewResponse().Code(status.NotFound)
	}
}

func (r Router) echo(request *http.Request) *http.Response {
	return http.NewResponse().
		ContentType(mimePlain).
		String(strings.TrimPrefix(request.Path, "/echo/"))
}

func (r Router) userAgent(request *http.Request) *http.Response {
	agent, found := request.Headers.Get("User-Agent")
	if !found {
		return http.NewResponse().Code(status.NotFound)
	}

	return http.NewResponse().
		ContentType(mimePlain).
		String(agent)
}

func (r Router) files(request *http.Request) *http.Response {
	path := filepath.Join(r.dir, strings.TrimPrefix(request.Path, "/files/"))

	switch request.Method {
	case method.GET:
		return r.readFile(path)
	case method.POST:
		return r.writeFile(path, request)
	default:
		return http.NewResponse().Code(status.MethodNotAllowed)
	}
}

func (r Router) readFile(path string) *http.Response {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return http.NewResponse().Code(status.NotFound)
		}

		log.Printf("router: read %s: %s", path, err)

		return http.NewResponse().Code(status.InternalServerError)
	}

	return http.NewResponse().
		ContentType(mimeOctetStream).
		Bytes(content)
}

func (r Router) writeFile(path string, request *http.Request) *http.Response {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return http.NewResponse().Code(status.NotFound)
	}

	if err := os.WriteFile(path, request.Body.Bytes(), 0644); err != nil {
		log.Printf("router: write %s: %s", path, err)

		return http.NewResponse().Code(status.InternalServerError)
	}

	return http.NewResponse().Code(status.Created)
}
