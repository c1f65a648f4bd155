package core

// Node is a single element of the virtual filesystem: a directory or a file.
// Identity is pointer identity; two nodes with the same name are distinct.
type Node interface {
	Name() string
	IsDir() bool
}

// File is a leaf node with string content. It holds no children by
// construction; the dir back-pointer is non-owning and exists only for
// upward traversal.
type File struct {
	name    string
	content string
	dir     *Dir
}

// Dir is a directory node. The children slice is the sole owning
// relationship in the tree and preserves insertion order; parent is a
// non-owning back-pointer, nil only for the root.
type Dir struct {
	name     string
	parent   *Dir
	children []Node
}

func NewFile(name, content string) *File {
	return &File{name: name, content: content}
}

func NewDir(name string) *Dir {
	return &Dir{name: name}
}

func (f *File) Name() string { return f.name }

func (f *File) IsDir() bool { return false }

// Content returns the file's payload.
func (f *File) Content() string { return f.content }

// Parent returns the directory containing the file, or nil if the file
// has been unlinked.
func (f *File) Parent() *Dir { return f.dir }

func (d *Dir) Name() string { return d.name }

func (d *Dir) IsDir() bool { return true }

// Parent returns the owning directory, or nil for the root.
func (d *Dir) Parent() *Dir { return d.parent }

// Children returns the directory's children in insertion order.
// The returned slice must not be mutated by callers.
func (d *Dir) Children() []Node { return d.children }

// Child looks up a direct child by name.
func (d *Dir) Child(name string) (Node, bool) {
	for _, c := range d.children {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// addChild appends child and sets its parent back-pointer. Callers are
// responsible for checking name uniqueness first.
func (d *Dir) addChild(child Node) {
	switch n := child.(type) {
	case *Dir:
		n.parent = d
	case *File:
		n.dir = d
	}
	d.children = append(d.children, child)
}

// removeChild unlinks the named child and returns it. The removed node's
// back-pointer is cleared so it cannot be used to reach the tree again.
func (d *Dir) removeChild(name string) (Node, bool) {
	for i, c := range d.children {
		if c.Name() != name {
			continue
		}
		d.children = append(d.children[:i], d.children[i+1:]...)
		switch n := c.(type) {
		case *Dir:
			n.parent = nil
		case *File:
			n.dir = nil
		}
		return c, true
	}
	return nil, false
}

// parentOf returns the parent of any node, nil at the root.
func parentOf(n Node) *Dir {
	switch v := n.(type) {
	case *Dir:
		return v.parent
	case *File:
		return v.dir
	}
	return nil
}
