package species

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var embeddedCatalog []byte

// RegionAll is the filter value that matches every entry.
const RegionAll = "all"

// Entry is one species record. Entries are created at load time and never
// mutated; media refs are opaque identifiers resolved by the presentation layer.
type Entry struct {
	CommonName     string   `yaml:"common_name"`
	ScientificName string   `yaml:"scientific_name"`
	AudioRef       string   `yaml:"audio"`
	PhotoRef       string   `yaml:"photo"`
	SpectrogramRef string   `yaml:"spectrogram"`
	Fact           string   `yaml:"fact"`
	Regions        []string `yaml:"regions"`
	AudioCredit    string   `yaml:"audio_credit"`
	PhotoCredit    string   `yaml:"photo_credit"`
}

type catalogFile struct {
	Species []Entry `yaml:"species"`
}

// Catalog is the immutable species dataset for one process lifetime.
type Catalog struct {
	entries []Entry
}

// Load builds a catalog from the YAML file at path, or from the embedded
// dataset when path is empty or unreadable. An empty result is not an error
// here; callers decide whether to refuse to start a game.
func Load(path string) (*Catalog, error) {
	raw := embeddedCatalog
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			raw = b
		}
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse species catalog: %w", err)
	}
	entries := make([]Entry, 0, len(file.Species))
	for _, e := range file.Species {
		if strings.TrimSpace(e.CommonName) == "" {
			continue
		}
		entries = append(entries, e)
	}
	return &Catalog{entries: entries}, nil
}

// Empty returns a catalog with no entries, for the degraded no-data state.
func Empty() *Catalog {
	return &Catalog{}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i, or a zero Entry when out of range.
func (c *Catalog) Entry(i int) Entry {
	if i < 0 || i >= len(c.entries) {
		return Entry{}
	}
	return c.entries[i]
}

// Entries returns all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// ByRegion returns the indices of entries tagged with region. RegionAll and
// the empty string match everything. An unknown region returns an empty
// slice; the caller falls back to the full catalog.
func (c *Catalog) ByRegion(region string) []int {
	region = strings.ToLower(strings.TrimSpace(region))
	all := region == "" || region == RegionAll
	var out []int
	for i, e := range c.entries {
		if all || hasRegion(e, region) {
			out = append(out, i)
		}
	}
	return out
}

func hasRegion(e Entry, region string) bool {
	for _, r := range e.Regions {
		if strings.EqualFold(strings.TrimSpace(r), region) {
			return true
		}
	}
	return false
}

// Regions returns the sorted, de-duplicated region tags across the catalog,
// for the region picker.
func (c *Catalog) Regions() []string {
	seen := make(map[string]struct{})
	for _, e := range c.entries {
		for _, r := range e.Regions {
			r = strings.ToLower(strings.TrimSpace(r))
			if r != "" {
				seen[r] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
