package core

import "fmt"

// Seed describes the initial contents of a directory. Entry order is
// preserved, so seeded children list in exactly the order given here.
type Seed []SeedEntry

// SeedEntry is one seeded node: a file with content, or a directory with
// its own nested seed.
type SeedEntry struct {
	Name     string
	IsDir    bool
	Content  string
	Children Seed
}

// SeedFile builds a file entry.
func SeedFile(name, content string) SeedEntry {
	return SeedEntry{Name: name, Content: content}
}

// SeedDir builds a directory entry.
func SeedDir(name string, children ...SeedEntry) SeedEntry {
	return SeedEntry{Name: name, IsDir: true, Children: children}
}

// NewTreeFromSeed builds a tree by walking the seed once. The seed payload
// is opaque to the tree; duplicate sibling names are the only way it can
// be invalid.
func NewTreeFromSeed(seed Seed) (*Tree, error) {
	t := NewTree()
	if err := plant(t.root, seed); err != nil {
		return nil, err
	}
	return t, nil
}

func plant(d *Dir, seed Seed) error {
	for _, e := range seed {
		if e.Name == "" {
			return fmt.Errorf("seed: empty entry name under %q", d.Name())
		}
		if _, ok := d.Child(e.Name); ok {
			return pathErr("seed", e.Name, ErrExists)
		}
		if e.IsDir {
			child := NewDir(e.Name)
			d.addChild(child)
			if err := plant(child, e.Children); err != nil {
				return err
			}
			continue
		}
		d.addChild(NewFile(e.Name, e.Content))
	}
	return nil
}
