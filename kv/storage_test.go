package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("case-insensitive lookup", func(t *testing.T) {
		s := New()
		s.Add("Hello", "world")

		value, found := s.Get("hELLO")
		require.True(t, found)
		require.Equal(t, "world", value)
		require.True(t, s.Has("HELLO"))
		require.False(t, s.Has("random"))
	})

	t.Run("duplicates preserved in order", func(t *testing.T) {
		s := New()
		s.Add("Some", "multiple")
		s.Add("Other", "entry")
		s.Add("sOME", "values")

		require.Equal(t, []string{"multiple", "values"}, s.Values("some"))
		require.Equal(t, 3, s.Len())

		pairs := s.Pairs()
		require.Equal(t, Pair{"Some", "multiple"}, pairs[0])
		require.Equal(t, Pair{"Other", "entry"}, pairs[1])
		require.Equal(t, Pair{"sOME", "values"}, pairs[2])
	})

	t.Run("first and last occurrence", func(t *testing.T) {
		s := New()
		s.Add("Content-Length", "5")
		s.Add("content-length", "13")

		require.Equal(t, "5", s.Value("Content-Length"))

		last, found := s.Last("CONTENT-LENGTH")
		require.True(t, found)
		require.Equal(t, "13", last)
	})

	t.Run("fallbacks", func(t *testing.T) {
		s := New()
		require.Equal(t, "", s.Value("missing"))
		require.Equal(t, "or", s.ValueOr("missing", "or"))
		require.Nil(t, s.Values("missing"))

		_, found := s.Last("missing")
		require.False(t, found)
	})

	t.Run("clone is deep", func(t *testing.T) {
		s := New()
		s.Add("Hello", "world")

		clone := s.Clone()
		s.Add("Hello", "nether")

		require.Equal(t, 1, clone.Len())
		require.Equal(t, 2, s.Len())
	})

	t.Run("clear keeps nothing", func(t *testing.T) {
		s := New()
		s.Add("Hello", "world").Clear()
		require.Equal(t, 0, s.Len())
		require.False(t, s.Has("Hello"))
	})
}
