// internal/glyph/glyph_test.go
package glyph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func goRegular(t *testing.T) *Face {
	t.Helper()
	faces, err := Parse("Go Regular", goregular.TTF)
	require.NoError(t, err)
	require.Len(t, faces, 1)
	return faces[0]
}

func TestFaceHasGlyph(t *testing.T) {
	f := goRegular(t)
	for _, r := range []rune{'A', 'z', '0', 'é', 'ß', 'Ω', 'ж'} {
		require.True(t, f.HasGlyph(r), "%U should be present", r)
	}
	for _, r := range []rune{'😀', '中', '\U0001F784', '\U0010FFFF'} {
		require.False(t, f.HasGlyph(r), "%U should be absent", r)
	}
}

func TestFaceIsPure(t *testing.T) {
	f := goRegular(t)
	for _, r := range []rune{'A', '😀', 'é', 0x0378 /* unassigned */} {
		first := f.HasGlyph(r)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, f.HasGlyph(r), "%U", r)
		}
	}
	require.False(t, f.HasGlyph(0x0378))
}

func TestFaceMetadata(t *testing.T) {
	f := goRegular(t)
	require.Equal(t, "Go Regular", f.Name())
	require.Equal(t, "Go", f.Family())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not a font"), goregular.TTF[:64]} {
		_, err := Parse("broken.ttf", data)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrParse))

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, "broken.ttf", pe.Name)
		require.Contains(t, err.Error(), "broken.ttf")
	}
}

func TestSetShortCircuits(t *testing.T) {
	var calls []string
	mk := func(name string, has bool) Checker {
		return Func(func(rune) bool { calls = append(calls, name); return has })
	}

	s := Set{mk("a", false), mk("b", true), mk("c", true)}
	require.True(t, s.HasGlyph('x'))
	require.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	require.False(t, Set{mk("a", false), mk("b", false)}.HasGlyph('x'))
	require.Equal(t, []string{"a", "b"}, calls)
}

func TestEmptySet(t *testing.T) {
	require.False(t, Set(nil).HasGlyph('A'))
	require.False(t, Set{}.HasGlyph('😀'))
}

func TestSetFallback(t *testing.T) {
	emoji := Func(func(r rune) bool { return r == '😀' })
	s := Set{goRegular(t), emoji}
	require.True(t, s.HasGlyph('A'))
	require.True(t, s.HasGlyph('😀'))
	require.False(t, s.HasGlyph('中'))
}
