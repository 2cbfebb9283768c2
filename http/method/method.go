package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	Unknown Method = iota
	GET
	POST

	// Count is the greatest integer value among the methods, so the real
	// number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods, sorted by their integer value.
// Unknown is not included.
var List = []Method{GET, POST}

// Parse recognizes a method token case-insensitively. Tokens outside of the
// supported set are reported as Unknown rather than defaulted.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST
		}
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return "UNKNOWN"
	}
}
