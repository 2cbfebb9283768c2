package router

import "github.com/ember-web/ember/http"

// Router decides the response for a parsed request. The core prescribes no
// route semantics whatsoever: it merely calls OnRequest from whichever worker
// owns the connection, so implementations must be safe for concurrent use.
type Router interface {
	OnRequest(request *http.Request) *http.Response
}

// Func adapts a plain function to the Router interface.
type Func func(request *http.Request) *http.Response

func (f Func) OnRequest(request *http.Request) *http.Response {
	return f(request)
}
