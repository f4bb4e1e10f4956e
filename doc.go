// Package scopestore provides hierarchical, shared, mutable binding
// environments: a tree of scopes in which each scope holds named values and
// delegates lookups and certain writes to its ancestors. It is the structure
// an evaluator uses to represent nested lexical environments — a global
// scope, function-call frames, block scopes — where inner frames read outer
// bindings, shadow them locally, or mutate the outer binding in place
// depending on the operation requested.
//
// # Usage
//
// Create a root scope, spawn children for nested lexical regions, and write
// through whichever discipline the language construct calls for:
//
//	root := scopestore.New[int]()
//	frame := root.Child()
//
//	frame.SetLocal("x", 1)  // declare here, shadowing any outer "x"
//	frame.SetGlobal("y", 2) // write at the tree's root
//	frame.Set("x", 3)       // assign to the nearest existing "x"
//
//	v, ok := frame.Get("x") // lexical lookup, nearest binding wins
//
// # Operations
//
//   - [Handle.SetLocal] — insert or overwrite in this scope, unconditionally.
//   - [Handle.SetGlobal] — insert or overwrite at the tree's root, reached in
//     O(1) through a root reference cached at child creation.
//   - [Handle.Set] — lexical assignment: overwrite the nearest existing
//     binding wherever it lives, or declare locally when the whole ancestor
//     chain lacks one.
//   - [Update] — transform the nearest existing binding in place and return a
//     derived result; never creates a binding.
//   - [Handle.Get] — lexical lookup from this scope outward to the root.
//   - [Handle.Child] — spawn a nested scope whose parent is this one.
//
// # Sharing
//
// A [Handle] is a small copyable value aliasing one scope; every copy
// observes and mutates the same bindings. A scope stays live as long as any
// Handle — or any descendant scope, through its parent and root references —
// can still reach it, so a closure's frame keeps its enclosing scopes alive
// after the caller's own handles are gone.
//
// Handles are not safe for concurrent use by multiple goroutines.
package scopestore
