package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {"id": "bbc-world", "name": "BBC World", "url": "https://feeds.bbci.co.uk/news/world/rss.xml",
   "categories": ["news, politics"], "locations": ["UK, Europe"]},
  {"id": "gdacs", "name": "GDACS", "url": "https://www.gdacs.org/xml/rss.xml", "type": "gdacs",
   "categories": ["disaster"], "locations": ["Global"]},
  {"id": "jp-tech", "name": "JP Tech", "url": "https://example.jp/feed.xml",
   "categories": ["technology"], "locations": ["Japan"]}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoad tests catalog loading and the Len/Lookup accessors
func TestLoad(t *testing.T) {
	c := Load(writeCatalog(t, testCatalog))

	assert.Equal(t, 3, c.Len())

	src, ok := c.Lookup("gdacs")
	require.True(t, ok)
	assert.Equal(t, "gdacs", src.Type)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

// TestLoadMalformed tests that a broken file yields an empty catalog
func TestLoadMalformed(t *testing.T) {
	c := Load(writeCatalog(t, "{not json"))
	assert.Equal(t, 0, c.Len())

	c = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 0, c.Len())
}

// TestTags tests category/location union with comma-splitting and dedup
func TestTags(t *testing.T) {
	c := Load(writeCatalog(t, testCatalog))

	assert.Equal(t, []string{"disaster", "news", "politics", "technology"}, c.Categories())
	assert.Equal(t, []string{"Europe", "Global", "Japan", "UK"}, c.Locations())
}

// TestMatch tests source matching on both dimensions
func TestMatch(t *testing.T) {
	c := Load(writeCatalog(t, testCatalog))

	tests := []struct {
		name       string
		categories []string
		locations  []string
		expected   []string
	}{
		{"exact match", []string{"news"}, []string{"UK"}, []string{"bbc-world"}},
		{"case insensitive", []string{"NEWS"}, []string{"uk"}, []string{"bbc-world"}},
		{"whitespace tolerated", []string{" politics "}, []string{" europe"}, []string{"bbc-world"}},
		{"category without location", []string{"news"}, []string{"Japan"}, nil},
		{"location without category", []string{"disaster"}, []string{"Japan"}, nil},
		{"multiple matches", []string{"news", "technology"}, []string{"UK", "Japan"}, []string{"bbc-world", "jp-tech"}},
		{"no match at all", []string{"sports"}, []string{"Mars"}, nil},
		{"empty request", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := c.Match(tt.categories, tt.locations)
			var ids []string
			for _, src := range matched {
				ids = append(ids, src.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

// TestReload tests that Reload swaps the snapshot
func TestReload(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	c := Load(path)
	require.Equal(t, 3, c.Len())

	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "only", "name": "Only", "url": "http://x", "categories": ["a"], "locations": ["b"]}]`), 0644))
	c.Reload()
	assert.Equal(t, 1, c.Len())

	// A reload that fails to parse empties the catalog rather than
	// keeping a stale snapshot.
	require.NoError(t, os.WriteFile(path, []byte("broken"), 0644))
	c.Reload()
	assert.Equal(t, 0, c.Len())
}
