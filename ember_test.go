package ember_test

import (
	"bufio"
	"io"
	"net"
	stdhttp "net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"

	"github.com/ember-web/ember"
	"github.com/ember-web/ember/config"
	"github.com/ember-web/ember/http/codec"
	"github.com/ember-web/ember/router/basic"
)

// exchange performs a full single-request connection cycle over a raw TCP
// socket, parsing whatever comes back with net/http.
func exchange(t *testing.T, addr, raw string) (*stdhttp.Response, []byte) {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	stdreq, err := stdhttp.NewRequest(stdhttp.MethodGet, "/", nil)
	require.NoError(t, err)

	resp, err := stdhttp.ReadResponse(bufio.NewReader(conn), stdreq)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func startServer(t *testing.T, dir string) (addr string) {
	t.Helper()

	sock, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := ember.New().Tune(config.Config{
		Pool: config.Pool{Workers: 4},
	})

	finished := make(chan error, 1)
	go func() {
		finished <- app.ServeOn(sock, basic.New(dir))
	}()

	t.Cleanup(func() {
		app.Stop()

		select {
		case err := <-finished:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not shut down in time")
		}
	})

	return sock.Addr().String()
}

func TestServer(t *testing.T) {
	dir := t.TempDir()
	addr := startServer(t, dir)

	t.Run("root", func(t *testing.T) {
		resp, body := exchange(t, addr, "GET / HTTP/1.1\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Empty(t, body)
	})

	t.Run("echo without compression", func(t *testing.T) {
		resp, body := exchange(t, addr, "GET /echo/abc HTTP/1.1\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, "abc", string(body))
		require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
		require.Equal(t, "3", resp.Header.Get("Content-Length"))
		require.Empty(t, resp.Header.Get("Content-Encoding"))
	})

	t.Run("echo with gzip", func(t *testing.T) {
		payload := uniuri.NewLen(256)
		resp, body := exchange(t, addr,
			"GET /echo/"+payload+" HTTP/1.1\r\nAccept-Encoding: gzip\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
		require.Equal(t, strconv.Itoa(len(body)), resp.Header.Get("Content-Length"))

		decompressed, err := codec.Decompress(body)
		require.NoError(t, err)
		require.Equal(t, payload, string(decompressed))
	})

	t.Run("unknown encodings are ignored", func(t *testing.T) {
		resp, body := exchange(t, addr,
			"GET /echo/abc HTTP/1.1\r\nAccept-Encoding: zstd, br\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, "abc", string(body))
		require.Empty(t, resp.Header.Get("Content-Encoding"))
	})

	t.Run("user-agent", func(t *testing.T) {
		resp, body := exchange(t, addr,
			"GET /user-agent HTTP/1.1\r\nUser-Agent: foobar/1.2.3\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, "foobar/1.2.3", string(body))
	})

	t.Run("not found", func(t *testing.T) {
		resp, body := exchange(t, addr, "GET /nonexistent HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, resp.StatusCode)
		require.Empty(t, body)
	})

	t.Run("file upload and download", func(t *testing.T) {
		resp, _ := exchange(t, addr,
			"POST /files/test.txt HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello")
		require.Equal(t, 201, resp.StatusCode)

		resp, body := exchange(t, addr, "GET /files/test.txt HTTP/1.1\r\n\r\n")
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, "hello", string(body))
		require.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	})

	t.Run("malformed request still gets an answer", func(t *testing.T) {
		resp, _ := exchange(t, addr, "GET / HTTP/1.1 extra\r\n\r\n")
		require.Equal(t, 400, resp.StatusCode)
	})

	t.Run("concurrent connections", func(t *testing.T) {
		var wg sync.WaitGroup

		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				payload := uniuri.New()
				resp, body := exchange(t, addr, "GET /echo/"+payload+" HTTP/1.1\r\n\r\n")
				require.Equal(t, 200, resp.StatusCode)
				require.Equal(t, payload, string(body))
			}()
		}

		wg.Wait()
	})
}
