package http

import (
	"strings"

	"github.com/ember-web/ember/http/method"
	"github.com/ember-web/ember/http/proto"
	"github.com/ember-web/ember/kv"
)

// Request carries a single parsed HTTP request. Header order is preserved as
// received, lookups through kv.Storage are case-insensitive.
type Request struct {
	Method  method.Method
	Path    string
	Proto   proto.Proto
	Headers *kv.Storage
	// ContentLength is the parsed Content-Length value. Zero means the body
	// is absent; streamed bodies without a declared length aren't supported.
	ContentLength int
	Body          Body
}

func NewRequest() *Request {
	return &Request{
		Proto:   proto.HTTP11,
		Headers: kv.New(),
	}
}

// AcceptsEncoding reports whether the client listed the token among its
// comma-separated Accept-Encoding values. Elements are trimmed of surrounding
// whitespace, the token match itself is case-sensitive. Unknown tokens are
// simply skipped.
func (r *Request) AcceptsEncoding(token string) bool {
	raw, found := r.Headers.Get("Accept-Encoding")
	if !found {
		return false
	}

	for _, element := range strings.Split(raw, ",") {
		if strings.TrimSpace(element) == token {
			return true
		}
	}

	return false
}
