package http

import (
	"errors"

	json "github.com/json-iterator/go"

	"github.com/ember-web/ember/http/proto"
	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/kv"
)

// why 5? Content-Type plus a couple of custom entries covers the vast
// majority of responses without growing
const preallocRespHeaders = 5

// Response is a builder for an HTTP response. Content-Length and
// Content-Encoding are never stored here: they are derived by the serializer
// from the actual (post-compression) payload, so they cannot go stale.
type Response struct {
	code    status.Code
	status  status.Status
	proto   proto.Proto
	headers *kv.Storage
	body    Body
}

// NewResponse returns a new instance of the Response object with status code
// set to 200 OK and no body.
func NewResponse() *Response {
	return &Response{
		code:    status.OK,
		proto:   proto.HTTP11,
		headers: kv.NewPrealloc(preallocRespHeaders),
	}
}

// Code sets a response code. The corresponding status text is picked up at
// serialization time, unless overridden via Status.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// Status sets a custom status text. Clients practically always ignore it, so
// there's rarely a reason to call this explicitly.
func (r *Response) Status(s status.Status) *Response {
	r.status = s
	return r
}

// ContentType sets a Content-Type header value.
func (r *Response) ContentType(value string) *Response {
	return r.Header("Content-Type", value)
}

// Header appends a header entry. Entries are serialized in the order they
// were added.
func (r *Response) Header(key, value string) *Response {
	r.headers.Add(key, value)
	return r
}

// String sets a string as the response body.
func (r *Response) String(body string) *Response {
	r.body = TextBody(body)
	return r
}

// Bytes sets a byte slice as the response body. The slice isn't copied, so
// it must stay untouched until the response is written.
func (r *Response) Bytes(body []byte) *Response {
	r.body = BytesBody(body)
	return r
}

// TryJSON serializes the model and sets it as the response body along with
// the application/json content type.
func (r *Response) TryJSON(model any) (*Response, error) {
	body, err := json.Marshal(model)
	if err != nil {
		return r, err
	}

	return r.ContentType("application/json").Bytes(body), nil
}

// JSON does the same as TryJSON, except it degrades to a 500 response on a
// serialization error.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return resp.Error(err)
	}

	return resp
}

// Error sets the response to reflect the passed error. status.HTTPError
// carries the code itself, any other error is treated as internal. The error
// message is deliberately not leaked into the body.
func (r *Response) Error(err error) *Response {
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return r.Code(httpErr.Code)
	}

	return r.Code(status.InternalServerError)
}

// Reveal grants access to the accumulated fields. Used by the serializer.
func (r *Response) Reveal() (code status.Code, text status.Status, headers *kv.Storage, body Body) {
	text = r.status
	if len(text) == 0 {
		text = status.Text(r.code)
	}

	return r.code, text, r.headers, r.body
}

// Proto returns the protocol version the response will be serialized as.
func (r *Response) Proto() proto.Proto {
	return r.proto
}

// Body exposes the payload as accumulated so far.
func (r *Response) Body() Body {
	return r.body
}

// ReplaceBody swaps the payload, keeping everything else intact. Used by the
// serializer when compression is applied.
func (r *Response) ReplaceBody(body Body) *Response {
	r.body = body
	return r
}

// Clear resets the response builder for reuse.
func (r *Response) Clear() *Response {
	r.code = status.OK
	r.status = ""
	r.proto = proto.HTTP11
	r.headers.Clear()
	r.body = NoBody()

	return r
}
