package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gowebpki/jcs"
)

// Snapshot is a deterministic, hashable representation of one catalog
// release. The hash is computed over RFC 8785 canonical JSON so two
// processes holding the same catalog always agree on it.
type Snapshot struct {
	Framework Framework `json:"framework"`
	Version   string    `json:"version"`
	Count     int       `json:"count"`
	Hash      string    `json:"hash"` // "sha256:<hex>"
}

// Snapshot returns the deterministic snapshot of the catalog.
func (c *Catalog) Snapshot() (*Snapshot, error) {
	reqs := make([]Requirement, len(c.Requirements))
	copy(reqs, c.Requirements)
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].ID < reqs[j].ID })

	data, err := json.Marshal(struct {
		Framework    Framework     `json:"framework"`
		Version      string        `json:"version"`
		Requirements []Requirement `json:"requirements"`
	}{c.Framework, c.Version, reqs})
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	canonical, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("canonicalize snapshot: %w", err)
	}

	h := sha256.Sum256(canonical)
	return &Snapshot{
		Framework: c.Framework,
		Version:   c.Version,
		Count:     len(c.Requirements),
		Hash:      "sha256:" + hex.EncodeToString(h[:]),
	}, nil
}
