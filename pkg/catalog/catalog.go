package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/magpielabs/magpie/pkg/log"
	"github.com/magpielabs/magpie/pkg/types"
)

// Catalog is an in-memory read-only view over the JSON source file.
// Reload replaces the snapshot atomically; readers never observe a
// partially loaded catalog.
type Catalog struct {
	path string

	mu      sync.RWMutex
	sources []types.Source
}

// Load creates a catalog backed by the given file and reads it once.
// A missing or malformed file yields an empty catalog, never an error.
func Load(path string) *Catalog {
	c := &Catalog{path: path}
	c.Reload()
	return c
}

// Reload re-reads the backing file and swaps the snapshot. On any
// failure the catalog becomes empty and the error is logged.
func (c *Catalog) Reload() {
	logger := log.WithComponent("catalog")

	var sources []types.Source
	data, err := os.ReadFile(c.path)
	if err != nil {
		logger.Warn().Err(err).Str("path", c.path).Msg("failed to read source catalog")
	} else if err := json.Unmarshal(data, &sources); err != nil {
		logger.Warn().Err(err).Str("path", c.path).Msg("malformed source catalog")
		sources = nil
	}

	c.mu.Lock()
	c.sources = sources
	c.mu.Unlock()

	logger.Debug().Int("sources", len(sources)).Msg("catalog loaded")
}

// Sources returns a copy of the current snapshot.
func (c *Catalog) Sources() []types.Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]types.Source, len(c.sources))
	copy(out, c.sources)
	return out
}

// Lookup returns the source with the given ID.
func (c *Catalog) Lookup(id string) (types.Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, src := range c.sources {
		if src.ID == id {
			return src, true
		}
	}
	return types.Source{}, false
}

// Len returns the number of sources in the snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources)
}

// Categories returns the sorted de-duplicated union of category tags.
// Each catalog entry may itself be a comma-separated list.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set := make(map[string]struct{})
	for _, src := range c.sources {
		collectTags(set, src.Categories, false)
	}
	return sortedKeys(set)
}

// Locations returns the sorted de-duplicated union of location tags.
func (c *Catalog) Locations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set := make(map[string]struct{})
	for _, src := range c.sources {
		collectTags(set, src.Locations, false)
	}
	return sortedKeys(set)
}

// Match returns every source whose normalized category set intersects
// the requested categories AND whose location set intersects the
// requested locations. Matching is case-insensitive and ignores
// surrounding whitespace.
func (c *Catalog) Match(categories, locations []string) []types.Source {
	wantCats := normalizeSet(categories)
	wantLocs := normalizeSet(locations)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []types.Source
	for _, src := range c.sources {
		srcCats := make(map[string]struct{})
		collectTags(srcCats, src.Categories, true)
		srcLocs := make(map[string]struct{})
		collectTags(srcLocs, src.Locations, true)

		if intersects(srcCats, wantCats) && intersects(srcLocs, wantLocs) {
			matched = append(matched, src)
		}
	}
	return matched
}

// collectTags splits each entry on commas, trims whitespace, and adds
// the non-empty tokens to set, lowercased when fold is true.
func collectTags(set map[string]struct{}, entries []string, fold bool) {
	for _, entry := range entries {
		for _, tag := range strings.Split(entry, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if fold {
				tag = strings.ToLower(tag)
			}
			set[tag] = struct{}{}
		}
	}
}

func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
