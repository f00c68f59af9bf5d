package routes

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// SitemapEntry is one URL in the emitted sitemap
type SitemapEntry struct {
	URL        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// Priority weights fixed per page category
var categoryPriority = map[PageCategory]float64{
	CategoryHome:     1.0,
	CategoryHub:      0.8,
	CategoryLocation: 0.8,
	CategoryDetail:   0.7,
	CategoryService:  0.6,
	CategoryFAQ:      0.6,
}

var categoryChangeFreq = map[PageCategory]string{
	CategoryHome:     "weekly",
	CategoryHub:      "weekly",
	CategoryLocation: "weekly",
	CategoryDetail:   "monthly",
	CategoryService:  "monthly",
	CategoryFAQ:      "monthly",
}

// SitemapEntries maps page identities to sitemap entries. LastMod is the
// build time for every entry; the catalog has no per-entity timestamps.
func SitemapEntries(identities []PageIdentity, baseURL string, buildTime time.Time) []SitemapEntry {
	base := strings.TrimRight(baseURL, "/")

	entries := make([]SitemapEntry, 0, len(identities))
	for _, id := range identities {
		path := id.Path
		if path == "/" {
			path = ""
		}
		entries = append(entries, SitemapEntry{
			URL:        fmt.Sprintf("%s/%s%s", base, id.Locale, path),
			LastMod:    buildTime,
			ChangeFreq: categoryChangeFreq[id.Category],
			Priority:   categoryPriority[id.Category],
		})
	}
	return entries
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteXML serializes entries as a sitemap urlset
func WriteXML(w io.Writer, entries []SitemapEntry) error {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        e.URL,
			LastMod:    e.LastMod.UTC().Format("2006-01-02"),
			ChangeFreq: e.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	enc.Flush()
	_, err := io.WriteString(w, "\n")
	return err
}
