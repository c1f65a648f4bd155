package challenge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"questfs/internal/core"
)

// challengeFile is the on-disk JSON shape. The seed uses arrays, not
// objects, so listing order survives decoding.
type challengeFile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Hint        string      `json:"hint"`
	Start       string      `json:"start"`
	Secret      string      `json:"secret"`
	Seed        []seedEntry `json:"seed"`
}

type seedEntry struct {
	Name     string      `json:"name"`
	Dir      bool        `json:"dir"`
	Content  string      `json:"content,omitempty"`
	Children []seedEntry `json:"children,omitempty"`
}

// LoadDir reads every *.json challenge definition in dir, in filename
// order. The files hold plaintext secrets; they are hashed on load and
// never kept.
func LoadDir(dir string) ([]*Challenge, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read challenge directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var challenges []*Challenge
	for _, name := range names {
		path := filepath.Join(dir, name)
		c, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}
	return challenges, nil
}

func loadFile(path string) (*Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read challenge file %s: %w", path, err)
	}

	var cf challengeFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse challenge file %s: %w", path, err)
	}

	c, err := New(cf.ID, cf.Name, cf.Description, cf.Hint, cf.Start, cf.Secret, convertSeed(cf.Seed))
	if err != nil {
		return nil, fmt.Errorf("challenge file %s: %w", path, err)
	}
	return c, nil
}

func convertSeed(entries []seedEntry) core.Seed {
	seed := make(core.Seed, 0, len(entries))
	for _, e := range entries {
		if e.Dir || e.Children != nil {
			seed = append(seed, core.SeedDir(e.Name, convertSeed(e.Children)...))
			continue
		}
		seed = append(seed, core.SeedFile(e.Name, e.Content))
	}
	return seed
}
