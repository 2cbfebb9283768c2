package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/ember-web/ember/http/status"
)

// Token is the coding token the codec negotiates on.
const Token = "gzip"

var writers = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// Compress gzips the payload in one shot. Any failure is reported as
// status.ErrCanNotCompress, which the response layer maps to a 500 instead
// of tearing the connection down.
func Compress(b []byte) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	w := writers.Get().(*gzip.Writer)
	defer writers.Put(w)
	w.Reset(buff)

	if _, err := w.Write(b); err != nil {
		return nil, fmt.Errorf("%w: %s", status.ErrCanNotCompress, err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s", status.ErrCanNotCompress, err)
	}

	return buff.Bytes(), nil
}

// Decompress reverses Compress. Mostly of use for tests and clients.
func Decompress(b []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()

	return io.ReadAll(r)
}
