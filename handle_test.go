package scopestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_CopiesAliasOneScope(t *testing.T) {
	t.Parallel()
	root := New[int]()
	alias := root

	alias.SetLocal("x", 1)
	v, ok := root.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v, "a write through one copy is visible through the other")

	root.SetLocal("x", 2)
	v, _ = alias.Get("x")
	assert.Equal(t, 2, v)
}

func TestChild_SeesAncestorBindings(t *testing.T) {
	t.Parallel()
	root := New[string]()
	root.SetLocal("greeting", "hello")

	child := root.Child()
	v, ok := child.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestChild_RootCachedAtEveryDepth(t *testing.T) {
	t.Parallel()
	root := New[int]()
	h := root
	for i := 0; i < 10; i++ {
		h = h.Child()
	}

	h.SetGlobal("deep", 1)

	v, ok := root.Get("deep")
	require.True(t, ok)
	assert.Equal(t, 1, v, "a deep descendant's global write lands at the true root")
	assert.Equal(t, 1, root.Len())
}

func TestRoot_FromAnyDepth(t *testing.T) {
	t.Parallel()
	root := New[int]()
	h := root.Child().Child().Child()

	top := h.Root()
	top.SetLocal("x", 1)

	v, ok := root.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, root.Root().IsRoot(), "a root's Root is itself")
}

func TestIsRoot(t *testing.T) {
	t.Parallel()
	root := New[int]()
	assert.True(t, root.IsRoot())
	assert.False(t, root.Child().IsRoot())
	assert.False(t, root.Child().Child().IsRoot())
}

func TestLen_CountsLocalBindingsOnly(t *testing.T) {
	t.Parallel()
	root := New[int]()
	root.SetLocal("a", 1)
	root.SetLocal("b", 2)
	child := root.Child()

	assert.Equal(t, 2, root.Len())
	assert.Equal(t, 0, child.Len(), "ancestor bindings are visible but not local")

	child.SetLocal("c", 3)
	assert.Equal(t, 1, child.Len())
}

// A child keeps its ancestor chain reachable even when the caller stops
// holding handles to the outer scopes.
func TestChild_KeepsAncestorsAlive(t *testing.T) {
	t.Parallel()
	leaf := func() Handle[int] {
		root := New[int]()
		root.SetLocal("captured", 42)
		return root.Child().Child()
	}()

	v, ok := leaf.Get("captured")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	leaf.SetGlobal("g", 1)
	v, _ = leaf.Get("g")
	assert.Equal(t, 1, v)
}

func TestHandle_StructValues(t *testing.T) {
	t.Parallel()
	type point struct{ X, Y int }

	root := New[point]()
	child := root.Child()
	child.SetGlobal("p", point{X: 1, Y: 2})

	got, ok := Update(child, "p", func(p *point) int {
		p.X += 10
		return p.X
	})
	require.True(t, ok)
	assert.Equal(t, 11, got)

	v, _ := root.Get("p")
	assert.Equal(t, point{X: 11, Y: 2}, v)
}
