package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/strcomp"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/method"
	"github.com/ember-web/ember/http/proto"
	"github.com/ember-web/ember/http/status"
)

// Parse reads exactly one request off the reader. The parse is a straight
// state machine: request line, then headers until a blank line, then an
// optional body of exactly Content-Length bytes. The first violation
// terminates the parse with a typed framing error.
func Parse(r *bufio.Reader) (*http.Request, error) {
	request := http.NewRequest()

	line, err := readLine(r)
	if err != nil {
		return nil, err
	}

	if err = parseRequestLine(request, line); err != nil {
		return nil, err
	}

	contentLength := 0

	for {
		raw, err := readRawLine(r)
		if err != nil {
			return nil, err
		}

		// a bare CRLF terminates the headers section
		if len(raw) <= 2 {
			break
		}

		if !strings.HasSuffix(raw, "\r\n") {
			return nil, status.ErrMissingCRLF
		}

		key, value, found := strings.Cut(raw[:len(raw)-2], ":")
		if !found {
			return nil, status.ErrInvalidHeader
		}

		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		if strcomp.EqualFold(key, "content-length") {
			// repeated occurrences override each other, the last one wins
			contentLength, err = parseContentLength(value)
			if err != nil {
				return nil, err
			}
		}

		request.Headers.Add(key, value)
	}

	request.ContentLength = contentLength

	if contentLength > 0 {
		body := make([]byte, contentLength)
		if _, err = io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("%w: %s", status.ErrUnexpectedEOF, err)
		}

		if !utf8.Valid(body) {
			return nil, status.ErrBodyNotUTF8
		}

		request.Body = http.BytesBody(body)
	}

	return request, nil
}

func parseRequestLine(request *http.Request, line string) error {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return fmt.Errorf("%w: %q", status.ErrInvalidRequestLine, line)
	}

	if request.Method = method.Parse(parts[0]); request.Method == method.Unknown {
		return fmt.Errorf("%w: %q", status.ErrMethodNotImplemented, parts[0])
	}

	request.Path = parts[1]

	if request.Proto = proto.Parse(parts[2]); request.Proto == proto.Unknown {
		return fmt.Errorf("%w: %q", status.ErrUnsupportedProtocol, parts[2])
	}

	return nil
}

func parseContentLength(value string) (int, error) {
	length, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", status.ErrBadContentLength, err)
	}

	if length < 0 {
		return 0, fmt.Errorf("%w: negative length", status.ErrBadContentLength)
	}

	return length, nil
}

// readLine returns the next line with the CRLF already stripped.
func readLine(r *bufio.Reader) (string, error) {
	raw, err := readRawLine(r)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(raw, "\r\n") {
		return "", status.ErrMissingCRLF
	}

	return raw[:len(raw)-2], nil
}

// readRawLine returns the next line including its line terminator. A stream
// that ends mid-line is a framing violation, not an empty value.
func readRawLine(r *bufio.Reader) (string, error) {
	raw, err := r.ReadString('\n')
	switch err {
	case nil:
		return raw, nil
	case io.EOF:
		return "", status.ErrMissingCRLF
	default:
		return "", err
	}
}
