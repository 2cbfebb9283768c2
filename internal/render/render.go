package render

import (
	"strconv"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/codec"
)

const (
	crlf            = "\r\n"
	contentLength   = "Content-Length: "
	contentEncoding = "Content-Encoding: "
)

// Serializer renders responses into a reusable buffer. An instance belongs to
// a single connection at a time and must not be shared.
type Serializer struct {
	buff []byte
}

func NewSerializer() *Serializer {
	return &Serializer{
		buff: make([]byte, 0, 1024),
	}
}

// Render serializes the response, negotiating the content encoding against
// the request first. The request may be nil when the response is produced
// before any request could be parsed, in which case no negotiation happens.
//
// Body framing relies solely on Content-Length, which is derived from the
// payload length after compression. The returned buffer is valid until the
// next Render call.
func (s *Serializer) Render(request *http.Request, response *http.Response) ([]byte, error) {
	compressed, err := negotiate(request, response)
	if err != nil {
		return nil, err
	}

	s.buff = s.buff[:0]
	code, text, headers, body := response.Reveal()

	s.buff = append(s.buff, response.Proto().String()...)
	s.buff = append(s.buff, ' ')
	s.buff = strconv.AppendUint(s.buff, uint64(code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, text...)
	s.buff = append(s.buff, crlf...)

	for _, pair := range headers.Pairs() {
		s.buff = append(s.buff, pair.Key...)
		s.buff = append(s.buff, ':', ' ')
		s.buff = append(s.buff, pair.Value...)
		s.buff = append(s.buff, crlf...)
	}

	if compressed {
		s.buff = append(s.buff, contentEncoding...)
		s.buff = append(s.buff, codec.Token...)
		s.buff = append(s.buff, crlf...)
	}

	s.buff = append(s.buff, contentLength...)
	s.buff = strconv.AppendInt(s.buff, int64(body.Len()), 10)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, crlf...)

	// the raw payload goes as-is, whatever the tag holds. No trailing CRLF:
	// framing is carried entirely by Content-Length
	s.buff = append(s.buff, body.Bytes()...)

	return s.buff, nil
}

// negotiate replaces a plain payload with its gzipped form when the client
// asked for it. Reports whether the swap actually happened: Content-Encoding
// must not be emitted otherwise.
func negotiate(request *http.Request, response *http.Response) (compressed bool, err error) {
	if request == nil || !request.AcceptsEncoding(codec.Token) {
		return false, nil
	}

	body := response.Body()
	if body.Kind() != http.BodyText || body.Len() == 0 {
		return false, nil
	}

	raw, err := codec.Compress(body.Bytes())
	if err != nil {
		return false, err
	}

	response.ReplaceBody(http.GzipBody(raw))

	return true, nil
}

// ErrorFallback renders a bare response for the given error, used when the
// original response itself cannot be serialized.
func (s *Serializer) ErrorFallback(err error) []byte {
	resp := http.NewResponse().Error(err)
	raw, renderErr := s.Render(nil, resp)
	if renderErr != nil {
		// unreachable: a bodyless response never negotiates an encoding
		return nil
	}

	return raw
}
