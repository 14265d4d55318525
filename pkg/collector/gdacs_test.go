package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gdacsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:gdacs="http://www.gdacs.org" xmlns:georss="http://www.georss.org/georss">
  <channel>
    <title>GDACS</title>
    <item>
      <guid>EQ-1453299</guid>
      <title>Green earthquake alert</title>
      <link>http://example.com/eq</link>
      <pubDate>Mon, 24 Aug 2026 06:15:00 GMT</pubDate>
      <description>Magnitude 5.4M, Depth 10km.</description>
      <gdacs:eventtype>EQ</gdacs:eventtype>
      <gdacs:alertlevel>Green</gdacs:alertlevel>
      <georss:point>35.62 140.11</georss:point>
    </item>
    <item>
      <title>Plain item</title>
      <link>http://example.com/plain</link>
      <description>No annotations.</description>
    </item>
  </channel>
</rss>`

// TestFetchGDACS tests that the GDACS annotations fold into the summary
func TestFetchGDACS(t *testing.T) {
	srv := serveXML(t, gdacsFeed)

	f := NewGDACSFetcher(srv.Client())
	entries, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "EQ-1453299", entries[0].ID)
	assert.Equal(t, "Green earthquake alert", entries[0].Title)
	assert.Equal(t, "event=EQ alert=Green point=35.62 140.11 | Magnitude 5.4M, Depth 10km.", entries[0].Summary)

	// An item without annotations keeps its plain description.
	assert.Equal(t, "http://example.com/plain", entries[1].ID)
	assert.Equal(t, "No annotations.", entries[1].Summary)
}

// TestGDACSSummary tests the annotation folding cases
func TestGDACSSummary(t *testing.T) {
	tests := []struct {
		name string
		item gdacsItem
		want string
	}{
		{
			name: "all fields",
			item: gdacsItem{EventType: "TC", AlertLevel: "Red", Point: "1 2", Description: "Cyclone."},
			want: "event=TC alert=Red point=1 2 | Cyclone.",
		},
		{
			name: "tags only",
			item: gdacsItem{EventType: "FL", AlertLevel: "Orange"},
			want: "event=FL alert=Orange",
		},
		{
			name: "description only",
			item: gdacsItem{Description: "Just text."},
			want: "Just text.",
		},
		{
			name: "empty",
			item: gdacsItem{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gdacsSummary(tt.item))
		})
	}
}
