package scopestore

// node is one scope: its local bindings plus two fixed links upward. parent
// and root never change after creation; only bindings mutates over the
// node's life. Both links are nil exactly when the node is its tree's root.
type node[T any] struct {
	bindings map[string]T
	parent   *node[T]
	root     *node[T]
}

func newNode[T any](parent, root *node[T]) *node[T] {
	return &node[T]{
		bindings: make(map[string]T),
		parent:   parent,
		root:     root,
	}
}

// setLocal inserts or overwrites the binding in this node, shadowing any
// same-named ancestor binding for this node and its descendants.
func (n *node[T]) setLocal(id string, val T) {
	n.bindings[id] = val
}

// setGlobal inserts or overwrites the binding at the tree's root. The cached
// root reference makes this O(1) at any depth; a root node writes to itself.
// The root's own bindings are written directly, with no ancestor search.
func (n *node[T]) setGlobal(id string, val T) {
	if n.root != nil {
		n.root.bindings[id] = val
		return
	}
	n.bindings[id] = val
}

// set implements lexical assignment: overwrite a local binding if one
// exists, otherwise overwrite the nearest ancestor binding in place where it
// was found, otherwise declare the binding here.
//
// The fallback inserts at this node, the original caller's scope, never at
// the point where the upward search ran out of ancestors. tryReplace hands
// the unconsumed value back down to make that explicit.
func (n *node[T]) set(id string, val T) {
	if _, ok := n.bindings[id]; ok {
		n.bindings[id] = val
		return
	}
	if n.parent == nil {
		n.bindings[id] = val
		return
	}
	if rest, unplaced := n.parent.tryReplace(id, val); unplaced {
		n.bindings[id] = rest
	}
}

// tryReplace overwrites the binding at the nearest node in the chain that
// already holds one. When no node from here to the root binds id, the value
// comes back with unplaced=true so the originating set can insert it locally.
func (n *node[T]) tryReplace(id string, val T) (T, bool) {
	if _, ok := n.bindings[id]; ok {
		n.bindings[id] = val
		var zero T
		return zero, false
	}
	if n.parent == nil {
		return val, true
	}
	return n.parent.tryReplace(id, val)
}

// get resolves id lexically: the nearest binding among this node and its
// ancestors wins. The second result is false when no node in the chain
// binds id.
func (n *node[T]) get(id string) (T, bool) {
	if v, ok := n.bindings[id]; ok {
		return v, true
	}
	if n.parent == nil {
		var zero T
		return zero, false
	}
	return n.parent.get(id)
}
