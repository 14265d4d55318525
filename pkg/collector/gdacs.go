package collector

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

// GDACSFetcher pulls the GDACS disaster feed, a GeoRSS dialect that
// annotates items with event type, alert level, and coordinates.
type GDACSFetcher struct {
	client *http.Client
}

// NewGDACSFetcher creates a fetcher sharing the given HTTP client.
func NewGDACSFetcher(client *http.Client) *GDACSFetcher {
	return &GDACSFetcher{client: client}
}

type gdacsDoc struct {
	Channel struct {
		Items []gdacsItem `xml:"item"`
	} `xml:"channel"`
}

type gdacsItem struct {
	GUID        string `xml:"guid"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
	EventType   string `xml:"http://www.gdacs.org eventtype"`
	AlertLevel  string `xml:"http://www.gdacs.org alertlevel"`
	Point       string `xml:"http://www.georss.org/georss point"`
}

// Fetch downloads the feed and folds the GDACS annotations into each
// entry's summary so downstream consumers keep a flat payload.
func (f *GDACSFetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "magpie-collector/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var doc gdacsDoc
	dec := xml.NewDecoder(resp.Body)
	dec.Strict = false
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var entries []Entry
	for _, item := range doc.Channel.Items {
		id := item.GUID
		if id == "" {
			id = item.Link
		}
		entries = append(entries, Entry{
			ID:        id,
			Title:     item.Title,
			Link:      item.Link,
			Published: item.PubDate,
			Summary:   gdacsSummary(item),
		})
	}
	return entries, nil
}

func gdacsSummary(item gdacsItem) string {
	var tags []string
	if item.EventType != "" {
		tags = append(tags, "event="+item.EventType)
	}
	if item.AlertLevel != "" {
		tags = append(tags, "alert="+item.AlertLevel)
	}
	if item.Point != "" {
		tags = append(tags, "point="+item.Point)
	}
	if len(tags) == 0 {
		return item.Description
	}
	if item.Description == "" {
		return strings.Join(tags, " ")
	}
	return strings.Join(tags, " ") + " | " + item.Description
}
