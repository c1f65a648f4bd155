// Package challenge defines the exploration challenges the server hosts:
// a seeded virtual filesystem, a starting directory, and a secret hidden
// somewhere in the tree. Secrets are stored only as bcrypt hashes so a
// challenge definition can be shared without spoiling itself.
package challenge

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"questfs/internal/core"
)

// Challenge is one playable scenario.
type Challenge struct {
	ID          string
	Name        string
	Description string
	Hint        string
	// Start is the working directory a fresh session begins in ("" for root).
	Start string
	Seed  core.Seed

	secretHash []byte
}

// New builds a challenge, hashing the secret.
func New(id, name, description, hint, start, secret string, seed core.Seed) (*Challenge, error) {
	if id == "" {
		return nil, fmt.Errorf("challenge id is required")
	}
	if secret == "" {
		return nil, fmt.Errorf("challenge %s: secret is required", id)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("challenge %s: failed to hash secret: %w", id, err)
	}
	return &Challenge{
		ID:          id,
		Name:        name,
		Description: description,
		Hint:        hint,
		Start:       start,
		Seed:        seed,
		secretHash:  hash,
	}, nil
}

// VerifySecret reports whether secret is the challenge's answer.
func (c *Challenge) VerifySecret(secret string) bool {
	return bcrypt.CompareHashAndPassword(c.secretHash, []byte(secret)) == nil
}

// NewTree seeds a fresh tree for one session and positions the cursor at
// the challenge's starting directory.
func (c *Challenge) NewTree() (*core.Tree, error) {
	tree, err := core.NewTreeFromSeed(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("challenge %s: bad seed: %w", c.ID, err)
	}
	if c.Start != "" {
		if err := tree.ChangeDirectory(c.Start); err != nil {
			return nil, fmt.Errorf("challenge %s: bad start directory: %w", c.ID, err)
		}
	}
	return tree, nil
}

// Registry holds the loaded challenges in registration order.
type Registry struct {
	order []string
	byID  map[string]*Challenge
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Challenge)}
}

func (r *Registry) Register(c *Challenge) error {
	if _, ok := r.byID[c.ID]; ok {
		return fmt.Errorf("challenge %s already registered", c.ID)
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *Registry) Get(id string) (*Challenge, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// List returns all challenges in registration order.
func (r *Registry) List() []*Challenge {
	out := make([]*Challenge, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Default returns the first registered challenge, nil when empty.
func (r *Registry) Default() *Challenge {
	if len(r.order) == 0 {
		return nil
	}
	return r.byID[r.order[0]]
}

func (r *Registry) Len() int { return len(r.order) }
