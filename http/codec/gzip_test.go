package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ember-web/ember/http/status"
)

func TestCompress(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		text := strings.Repeat("Hello, world! Lorem ipsum! ", 100)

		compressed, err := Compress([]byte(text))
		require.NoError(t, err)
		require.Less(t, len(compressed), len(text))

		decompressed, err := Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, text, string(decompressed))
	})

	t.Run("empty payload", func(t *testing.T) {
		compressed, err := Compress(nil)
		require.NoError(t, err)

		decompressed, err := Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	})
}

func TestDecompressGarbage(t *testing.T) {
	_, err := Decompress([]byte("clearly not a gzip stream"))
	require.Error(t, err)
	require.NotErrorIs(t, err, status.ErrCanNotCompress)
}
