package status

import "strconv"

type (
	Code   uint16
	Status string
)

// Status codes actually used across the server. The set is intentionally
// not exhaustive and may be freely extended.
const (
	OK        Code = 200
	Created   Code = 201
	NoContent Code = 204

	MovedPermanently Code = 301
	Found            Code = 302

	BadRequest            Code = 400
	NotFound              Code = 404
	MethodNotAllowed      Code = 405
	RequestEntityTooLarge Code = 413

	InternalServerError Code = 500
	NotImplemented      Code = 501
	ServiceUnavailable  Code = 503
)

// Text returns a status text corresponding to the code, or an empty string
// in case the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case ServiceUnavailable:
		return "Service Unavailable"
	}

	return ""
}

// CodeStatus returns the whole status line entry, e.g. "200 OK". Unknown
// codes are rendered as the bare decimal value.
func CodeStatus(code Code) string {
	text := Text(code)
	if len(text) == 0 {
		return strconv.Itoa(int(code))
	}

	return strconv.Itoa(int(code)) + " " + string(text)
}
