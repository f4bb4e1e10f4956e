package scopestore

// Handle is a shared reference to one scope in a tree. It is a small value
// meant to be copied freely: every copy aliases the same scope, and a
// mutation through any copy is immediately visible through all the others.
// The scope — and, through its parent and root references, its whole
// ancestor chain — stays live while any Handle or descendant scope can
// reach it.
//
// The zero Handle is not usable; obtain one from [New] or [Handle.Child].
type Handle[T any] struct {
	n *node[T]
}

// New creates the root scope of a fresh tree and returns a Handle to it.
// A root has no parent and no cached root reference.
func New[T any]() Handle[T] {
	return Handle[T]{n: newNode[T](nil, nil)}
}

// SetLocal unconditionally inserts or overwrites the binding in this scope,
// regardless of whether an ancestor already binds id. The local binding
// shadows any same-named ancestor binding for lookups from this scope and
// its descendants.
func (h Handle[T]) SetLocal(id string, val T) {
	h.n.setLocal(id, val)
}

// SetGlobal inserts or overwrites the binding at the tree's root, making it
// visible to every scope in the tree that does not shadow it. The root is
// reached through the reference cached at child creation, so the cost does
// not grow with depth.
func (h Handle[T]) SetGlobal(id string, val T) {
	h.n.setGlobal(id, val)
}

// Set assigns to the nearest existing binding for id: locally when this
// scope binds it, otherwise in place at the first ancestor that does. When
// no scope in the chain binds id, Set declares it in this scope — the
// original caller's scope, not wherever the upward search ended.
func (h Handle[T]) Set(id string, val T) {
	h.n.set(id, val)
}

// Get resolves id lexically from this scope outward to the root and returns
// a copy of the nearest bound value. The second result reports whether any
// scope in the chain binds id.
func (h Handle[T]) Get(id string) (T, bool) {
	return h.n.get(id)
}

// Child creates a scope nested inside this one and returns a Handle to it.
// The child's parent is this scope; its cached root is this scope's cached
// root, or this scope itself when it has none (a root spawning its first
// level, or a node serving as the effective root of a subtree).
func (h Handle[T]) Child() Handle[T] {
	root := h.n.root
	if root == nil {
		root = h.n
	}
	return Handle[T]{n: newNode(h.n, root)}
}

// Root returns a Handle to the tree's root: the cached root reference, or
// the receiver itself when it is the root.
func (h Handle[T]) Root() Handle[T] {
	if h.n.root == nil {
		return h
	}
	return Handle[T]{n: h.n.root}
}

// IsRoot reports whether this scope is its tree's root.
func (h Handle[T]) IsRoot() bool {
	return h.n.parent == nil
}

// Len returns the number of bindings held locally by this scope, not
// counting anything visible only through ancestors.
func (h Handle[T]) Len() int {
	return len(h.n.bindings)
}

// Update applies f to the value of the nearest existing binding for id,
// writing the transformed value back where it was found, and returns f's
// result. When no scope in the chain binds id, Update returns the zero A
// and false, mutating nothing and declaring nothing.
//
// Update is a function rather than a Handle method because the transform's
// result type A is a second type parameter, which Go methods cannot declare.
//
// f receives exclusive access to the binding for the duration of the call
// and must not operate on the same tree: the value is copied out,
// transformed, and written back, so a re-entrant write to the same binding
// would be lost.
func Update[T, A any](h Handle[T], id string, f func(*T) A) (A, bool) {
	for n := h.n; n != nil; n = n.parent {
		if v, ok := n.bindings[id]; ok {
			out := f(&v)
			n.bindings[id] = v
			return out, true
		}
	}
	var zero A
	return zero, false
}
