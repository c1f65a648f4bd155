package core

import "strings"

// Render draws the subtree at path in the style of the tree command:
// depth-first, pre-order, "├── " for a non-last sibling and "└── " for the
// last, with the indent under a last sibling collapsing to spaces and a
// "│" continuation bar otherwise. Directories carry a trailing "/" and the
// root prints as "/" instead of its literal name. An empty path renders
// from the current directory.
func (t *Tree) Render(path string) (string, error) {
	node, err := t.Resolve(path)
	if err != nil {
		return "", pathErr("tree", path, err)
	}

	var b strings.Builder
	b.WriteString(t.label(node))
	b.WriteByte('\n')
	if dir, ok := node.(*Dir); ok {
		renderChildren(&b, dir, "")
	}
	return b.String(), nil
}

func (t *Tree) label(n Node) string {
	if n == Node(t.root) {
		return "/"
	}
	if n.IsDir() {
		return n.Name() + "/"
	}
	return n.Name()
}

func renderChildren(b *strings.Builder, d *Dir, prefix string) {
	for i, child := range d.children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(d.children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		if child.IsDir() {
			b.WriteString(child.Name() + "/")
		} else {
			b.WriteString(child.Name())
		}
		b.WriteByte('\n')

		if cd, ok := child.(*Dir); ok {
			renderChildren(b, cd, childPrefix)
		}
	}
}
