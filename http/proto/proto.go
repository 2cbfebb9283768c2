package proto

import "github.com/indigo-web/utils/strcomp"

type Proto uint8

const (
	Unknown Proto = iota
	HTTP11
)

// Parse recognizes a protocol token case-insensitively. Everything besides
// HTTP/1.1 is explicitly rejected as Unknown.
func Parse(str string) Proto {
	if strcomp.EqualFold(str, "HTTP/1.1") {
		return HTTP11
	}

	return Unknown
}

func (p Proto) String() string {
	switch p {
	case HTTP11:
		return "HTTP/1.1"
	default:
		return "unknown"
	}
}
