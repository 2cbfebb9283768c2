package status

// HTTPError is an error carrying the status code a response should be
// answered with, in case the error reaches the response writer.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// framing errors. All of them are fatal to the request they occurred in,
	// but never to the server itself
	ErrMissingCRLF        = NewError(BadRequest, "line is not terminated with CRLF")
	ErrInvalidRequestLine = NewError(BadRequest, "malformed request line")
	ErrInvalidHeader      = NewError(BadRequest, "malformed header line")
	ErrBadContentLength   = NewError(BadRequest, "malformed Content-Length value")
	ErrBodyNotUTF8        = NewError(BadRequest, "request body is not valid UTF-8")
	ErrUnexpectedEOF      = NewError(BadRequest, "peer closed the connection prematurely")

	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
	ErrUnsupportedProtocol  = NewError(BadRequest, "protocol version is not supported")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
	ErrCanNotCompress       = NewError(InternalServerError, "cannot compress response body")
	ErrShutdown             = NewError(ServiceUnavailable, "graceful shutdown")
)
