package kit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 120))
	require.Equal(t, "abc", Truncate("abcdef", 3))
	require.Equal(t, "", Truncate("abc", 0))

	// A cut landing inside a multi-byte rune backs off to the boundary.
	s := "connexion échouée" // "é" is two bytes; byte 11 is mid-rune
	for max := 0; max <= len(s); max++ {
		got := Truncate(s, max)
		require.True(t, utf8.ValidString(got), "max=%d got=%q", max, got)
		require.LessOrEqual(t, len(got), max)
		require.True(t, strings.HasPrefix(s, got))
	}
}
