package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/blocks/pkg/block"
	"tableflip.dev/blocks/pkg/surface"
	"tableflip.dev/blocks/pkg/surface/surfacetest"
)

func TestResolveTodoUsesNestedText(t *testing.T) {
	s := surfacetest.New("buy milk", true)

	h, ok := surface.Resolve(s, block.FocusTarget(block.Todo))
	require.True(t, ok)
	surface.Focus(h, surface.CaretEnd)

	assert.Equal(t, "text", s.Active())
	assert.Equal(t, len("buy milk"), s.Caret())
}

func TestResolvePlainUsesSurface(t *testing.T) {
	s := surfacetest.New("hello", false)

	h, ok := surface.Resolve(s, block.FocusTarget(block.Heading1))
	require.True(t, ok)
	surface.Focus(h, surface.CaretStart)

	assert.Equal(t, "surface", s.Active())
	assert.Equal(t, []surfacetest.Call{
		{Element: "surface", Op: "focus"},
		{Element: "surface", Op: "caret-start"},
	}, s.Calls)
}

func TestResolveMissingTextElement(t *testing.T) {
	s := surfacetest.New("plain", false)
	_, ok := surface.Resolve(s, block.TargetText)
	assert.False(t, ok)

	_, ok = surface.Resolve(nil, block.TargetSurface)
	assert.False(t, ok)
}

func TestReadText(t *testing.T) {
	text, ok := surface.ReadText(surfacetest.New("/todo", true), block.Todo)
	require.True(t, ok)
	assert.Equal(t, "/todo", text)

	_, ok = surface.ReadText(surfacetest.New("x", false), block.Todo)
	assert.False(t, ok)
}

func TestMapRegistry(t *testing.T) {
	r := surface.NewRegistry()
	s := surfacetest.New("", false)

	r.Register("a", s)
	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, []string{"a"}, r.IDs())

	r.Unregister("a")
	_, ok = r.Get("a")
	assert.False(t, ok)
	r.Unregister("a")
}
