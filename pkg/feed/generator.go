// Package feed renders the public RSS feed of recent posts.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pasival14/blog/pkg/db"
)

// Generator creates RSS feeds from posts
type Generator struct {
	baseURL string
	title   string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL, title string) *Generator {
	if title == "" {
		title = "Blog"
	}
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		title:   title,
	}
}

// RSS is the top-level RSS 2.0 document
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel holds feed metadata and items
type RSSChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"atom:link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink is the self-reference link element
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem is a single feed entry
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description,omitempty"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category,omitempty"`
}

// GenerateRSS creates an RSS 2.0 feed from the given posts, newest first as
// provided by the caller
func (g *Generator) GenerateRSS(posts []db.Post) (string, error) {
	rssItems := make([]*RSSItem, 0, len(posts))
	for _, post := range posts {
		rssItems = append(rssItems, &RSSItem{
			Title:       post.Title,
			Link:        fmt.Sprintf("%s/posts/%s", g.baseURL, post.ID),
			GUID:        post.ID,
			Description: post.Description,
			PubDate:     post.CreatedAt.Format(time.RFC1123Z),
			Categories:  post.Keywords,
		})
	}

	doc := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         g.title,
			Link:          g.baseURL + "/",
			Description:   "Recent posts",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}
