package collector

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
)

// RSSFetcher pulls RSS 2.0 and Atom feeds over HTTP.
type RSSFetcher struct {
	client *http.Client
}

// NewRSSFetcher creates a fetcher sharing the given HTTP client.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{client: client}
}

// feedDoc covers both feed dialects: RSS items live under <channel>,
// Atom entries at the document root.
type feedDoc struct {
	Channel struct {
		Items []feedItem `xml:"item"`
	} `xml:"channel"`
	Entries []atomEntry `xml:"entry"`
}

type feedItem struct {
	GUID        string `xml:"guid"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

type atomEntry struct {
	ID    string `xml:"id"`
	Title string `xml:"title"`
	Links []struct {
		Href string `xml:"href,attr"`
	} `xml:"link"`
	Updated string `xml:"updated"`
	Summary string `xml:"summary"`
}

// Fetch downloads and parses the feed. Entries without a guid fall
// back to the link as their identity.
func (f *RSSFetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
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

	var doc feedDoc
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
			Summary:   item.Description,
		})
	}
	for _, e := range doc.Entries {
		var link string
		if len(e.Links) > 0 {
			link = e.Links[0].Href
		}
		id := e.ID
		if id == "" {
			id = link
		}
		entries = append(entries, Entry{
			ID:        id,
			Title:     e.Title,
			Link:      link,
			Published: e.Updated,
			Summary:   e.Summary,
		})
	}
	return entries, nil
}
