package selection

import "strings"

// maxAncestorDepth bounds the editable-surface walk so a pathological
// chain can't stall evaluation.
const maxAncestorDepth = 20

// Node is one element in a selection anchor's ancestor chain, as reported
// by the capturing client. Fields mirror the attributes that mark a
// surface as editable; all are optional.
type Node struct {
	Tag             string
	Role            string
	Type            string
	ContentEditable bool
	Classes         []string
	Parent          *Node
}

func (n *Node) editable() bool {
	switch strings.ToLower(n.Tag) {
	case "input", "textarea", "search":
		return true
	}
	if n.ContentEditable {
		return true
	}
	switch strings.ToLower(n.Role) {
	case "textbox", "search":
		return true
	}
	switch strings.ToLower(n.Type) {
	case "search", "text":
		return true
	}
	for _, c := range n.Classes {
		lower := strings.ToLower(c)
		if strings.Contains(lower, "input") || strings.Contains(lower, "search") || strings.Contains(lower, "textarea") {
			return true
		}
	}
	return false
}

// insideEditable walks the ancestor chain looking for an editable
// surface, giving up after maxAncestorDepth levels.
func insideEditable(n *Node) bool {
	for depth := 0; n != nil && depth < maxAncestorDepth; depth++ {
		if n.editable() {
			return true
		}
		n = n.Parent
	}
	return false
}
