package core

import "strings"

// Tree is an in-memory virtual filesystem: a root directory plus a
// current-directory cursor. One Tree serves one session; instances share
// nothing with each other.
type Tree struct {
	root *Dir
	cwd  *Dir
}

// NewTree creates an empty tree with the cursor at the root.
func NewTree() *Tree {
	root := NewDir("/")
	return &Tree{root: root, cwd: root}
}

// Root returns the root directory. It is never deleted or renamed.
func (t *Tree) Root() *Dir { return t.root }

// Current returns the directory the cursor points at.
func (t *Tree) Current() *Dir { return t.cwd }

// splitPath splits on "/" discarding empty segments, so "a//b" walks the
// same as "a/b" and leading/trailing slashes are inert.
func splitPath(path string) []string {
	var segs []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

// start picks the walk origin: root for absolute paths, cursor otherwise.
func (t *Tree) start(path string) Node {
	if strings.HasPrefix(path, "/") {
		return t.root
	}
	return t.cwd
}

// walk applies path segments to a start node. "." stays put, ".." moves
// to the parent (a no-op at the root), anything else must name a child of
// the current walk node. A file mid-walk makes the rest unresolvable.
func walk(start Node, segs []string) (Node, error) {
	node := start
	for _, seg := range segs {
		switch seg {
		case ".":
		case "..":
			if p := parentOf(node); p != nil {
				node = p
			}
		default:
			dir, ok := node.(*Dir)
			if !ok {
				return nil, ErrNotFound
			}
			child, ok := dir.Child(seg)
			if !ok {
				return nil, ErrNotFound
			}
			node = child
		}
	}
	return node, nil
}

// Resolve translates a path into its target node. An empty path resolves
// to the current directory. The result may be a file or a directory;
// callers decide whether that suits their operation.
func (t *Tree) Resolve(path string) (Node, error) {
	return walk(t.start(path), splitPath(path))
}

// ChangeDirectory moves the cursor to the directory at path.
func (t *Tree) ChangeDirectory(path string) error {
	if path == "/" {
		t.cwd = t.root
		return nil
	}
	node, err := t.Resolve(path)
	if err != nil {
		return pathErr("cd", path, err)
	}
	dir, ok := node.(*Dir)
	if !ok {
		return pathErr("cd", path, ErrNotADirectory)
	}
	t.cwd = dir
	return nil
}

// WorkingDirectory returns the absolute path of the cursor, "/" at root.
func (t *Tree) WorkingDirectory() string {
	if t.cwd == t.root {
		return "/"
	}
	var parts []string
	for d := t.cwd; d.parent != nil; d = d.parent {
		parts = append(parts, d.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// List returns child names at path in insertion order, or the target's own
// name when path points at a file. An empty path lists the current
// directory; an empty directory yields an empty list, not an error.
func (t *Tree) List(path string) ([]string, error) {
	node, err := t.Resolve(path)
	if err != nil {
		return nil, pathErr("ls", path, err)
	}
	dir, ok := node.(*Dir)
	if !ok {
		return []string{node.Name()}, nil
	}
	names := make([]string, 0, len(dir.children))
	for _, c := range dir.children {
		names = append(names, c.Name())
	}
	return names, nil
}

// MakeDirectory creates a directory named name in the current directory.
func (t *Tree) MakeDirectory(name string) error {
	if name == "" {
		return pathErr("mkdir", name, ErrMissingOperand)
	}
	if _, ok := t.cwd.Child(name); ok {
		return pathErr("mkdir", name, ErrExists)
	}
	t.cwd.addChild(NewDir(name))
	return nil
}

// CreateFile creates an empty file named name in the current directory.
func (t *Tree) CreateFile(name string) error {
	if name == "" {
		return pathErr("touch", name, ErrMissingOperand)
	}
	if _, ok := t.cwd.Child(name); ok {
		return pathErr("touch", name, ErrExists)
	}
	t.cwd.addChild(NewFile(name, ""))
	return nil
}

// MakeDirectoryPath creates every missing directory along path, reusing
// segments that already exist (mkdir -p). Absolute paths build from the
// root, relative ones from the cursor. An existing file along the way
// fails with not-a-directory since files cannot hold children.
func (t *Tree) MakeDirectoryPath(path string) error {
	if path == "" {
		return pathErr("mkdir", path, ErrMissingOperand)
	}
	dir, _ := t.start(path).(*Dir)
	for _, seg := range splitPath(path) {
		switch seg {
		case ".":
			continue
		case "..":
			if dir.parent != nil {
				dir = dir.parent
			}
			continue
		}
		child, ok := dir.Child(seg)
		if !ok {
			next := NewDir(seg)
			dir.addChild(next)
			dir = next
			continue
		}
		next, ok := child.(*Dir)
		if !ok {
			return pathErr("mkdir", path, ErrNotADirectory)
		}
		dir = next
	}
	return nil
}

// target splits path into the parent directory and the final segment name
// for removal operations. The parent defaults to the cursor when the
// prefix is empty.
func (t *Tree) target(op, path string) (*Dir, string, error) {
	if path == "" {
		return nil, "", pathErr(op, path, ErrMissingOperand)
	}
	segs := splitPath(path)
	if len(segs) == 0 {
		// "/" and friends: the root itself is never removable.
		return nil, "", pathErr(op, path, ErrNotFound)
	}
	name := segs[len(segs)-1]
	node, err := walk(t.start(path), segs[:len(segs)-1])
	if err != nil {
		return nil, "", pathErr(op, path, err)
	}
	parent, ok := node.(*Dir)
	if !ok {
		return nil, "", pathErr(op, path, ErrNotFound)
	}
	return parent, name, nil
}

// RemoveFile unlinks the file at path. Directories are rejected.
func (t *Tree) RemoveFile(path string) error {
	parent, name, err := t.target("rm", path)
	if err != nil {
		return err
	}
	child, ok := parent.Child(name)
	if !ok {
		return pathErr("rm", path, ErrNotFound)
	}
	if child.IsDir() {
		return pathErr("rm", path, ErrIsADirectory)
	}
	parent.removeChild(name)
	return nil
}

// RemoveDirectory unlinks the directory at path, subtree included. If the
// cursor was inside the removed subtree it is reset to the surviving
// parent so it can never dangle.
func (t *Tree) RemoveDirectory(path string) error {
	parent, name, err := t.target("rmdir", path)
	if err != nil {
		return err
	}
	child, ok := parent.Child(name)
	if !ok {
		return pathErr("rmdir", path, ErrNotFound)
	}
	dir, ok := child.(*Dir)
	if !ok {
		return pathErr("rmdir", path, ErrNotADirectory)
	}
	parent.removeChild(name)
	if t.cwdWithin(dir) {
		t.cwd = parent
	}
	return nil
}

// cwdWithin reports whether the cursor sits at or below dir. Called after
// unlinking, when dir's own parent pointer is already nil, so the upward
// walk terminates at the detached subtree's top.
func (t *Tree) cwdWithin(dir *Dir) bool {
	for d := t.cwd; d != nil; d = d.parent {
		if d == dir {
			return true
		}
	}
	return false
}

// ReadFile returns the content of the file at path.
func (t *Tree) ReadFile(path string) (string, error) {
	if path == "" {
		return "", pathErr("cat", path, ErrMissingOperand)
	}
	node, err := t.Resolve(path)
	if err != nil {
		return "", pathErr("cat", path, err)
	}
	file, ok := node.(*File)
	if !ok {
		return "", pathErr("cat", path, ErrIsADirectory)
	}
	return file.Content(), nil
}

// Flatten returns every node below the root in depth-first pre-order.
func (t *Tree) Flatten() []Node {
	var nodes []Node
	var visit func(d *Dir)
	visit = func(d *Dir) {
		for _, c := range d.children {
			nodes = append(nodes, c)
			if cd, ok := c.(*Dir); ok {
				visit(cd)
			}
		}
	}
	visit(t.root)
	return nodes
}
