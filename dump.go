package scopestore

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumpConf renders binding values compactly and deterministically.
var dumpConf = spew.ConfigState{Indent: " ", SortKeys: true}

// Dump writes a debug rendering of the chain from this scope outward to the
// root, one block per level, innermost first, each level indented one step
// further. Keys are sorted, so the output is deterministic even though map
// order is not semantically significant.
func (h Handle[T]) Dump(w io.Writer) {
	depth := 0
	for n := h.n; n != nil; n = n.parent {
		label := "scope"
		if n.parent == nil {
			label = "root scope"
		}
		indent := strings.Repeat(" ", depth*4)
		fmt.Fprintf(w, "%s%s\n", indent, label)
		if len(n.bindings) == 0 {
			fmt.Fprintf(w, "%s    empty scope: no bindings\n", indent)
		} else {
			for _, id := range sortedKeys(n.bindings) {
				fmt.Fprintf(w, "%s    %s -> %s\n", indent, id, dumpConf.Sprintf("%#v", n.bindings[id]))
			}
		}
		depth++
	}
}

// String renders this scope's local bindings on one line, keys sorted.
// Ancestors are not included; use [Handle.Dump] for the whole chain.
func (h Handle[T]) String() string {
	var sb strings.Builder
	sb.WriteString("scope{")
	for i, id := range sortedKeys(h.n.bindings) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s -> %s", id, dumpConf.Sprintf("%#v", h.n.bindings[id]))
	}
	sb.WriteString("}")
	return sb.String()
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
