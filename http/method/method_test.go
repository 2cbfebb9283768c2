package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("exact tokens", func(t *testing.T) {
		require.Equal(t, GET, Parse("GET"))
		require.Equal(t, POST, Parse("POST"))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		require.Equal(t, GET, Parse("get"))
		require.Equal(t, GET, Parse("GeT"))
		require.Equal(t, POST, Parse("post"))
	})

	t.Run("unknown tokens are rejected", func(t *testing.T) {
		for _, token := range []string{"", "PUT", "DELETE", "G", "GETT", "PATCH"} {
			require.Equal(t, Unknown, Parse(token), token)
		}
	})
}

func TestString(t *testing.T) {
	for _, m := range List {
		require.Equal(t, m, Parse(m.String()))
	}
}
