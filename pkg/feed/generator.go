package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/umputun/feedwall/pkg/domain"
)

// Generator creates RSS feeds from composed snapshots
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from the snapshot items, in feed order
func (g *Generator) GenerateRSS(snap domain.Snapshot) (string, error) {
	rssItems := make([]*RSSItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		rssItems = append(rssItems, g.convertToRSSItem(item, snap.ComposedAt))
	}

	buildDate := snap.ComposedAt
	if buildDate.IsZero() {
		buildDate = time.Now()
	}

	desc := "Discovery wall, not composed yet"
	if !snap.Empty() {
		desc = fmt.Sprintf("Discovery wall, generation %s", snap.Generation)
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Feedwall",
			Link:          g.baseURL + "/",
			Description:   desc,
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: buildDate.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a feed item to an RSS item
func (g *Generator) convertToRSSItem(item domain.FeedItem, composedAt time.Time) *RSSItem {
	title, desc, link := describe(item)
	if link == "" {
		link = g.baseURL + "/#" + url.PathEscape(item.ID)
	}

	res := &RSSItem{
		Title:       title,
		Link:        link,
		GUID:        &GUID{Value: string(item.Kind) + "/" + item.ID},
		Description: desc,
		PubDate:     composedAt.Format(time.RFC1123Z),
		Categories:  []string{string(item.Kind)},
	}
	if item.Data != nil && item.Data.ImageRef() != "" {
		res.Enclosure = &Enclosure{URL: item.Data.ImageRef(), Type: imageType(item.Data.ImageRef())}
	}
	return res
}

// describe returns title, description and link for the item payload
func describe(item domain.FeedItem) (title, desc, link string) {
	switch d := item.Data.(type) {
	case domain.Ad:
		return adTitle(d), d.Alt, d.Link
	case domain.PaidAd:
		title = adTitle(d.Ad)
		if d.Sponsor != "" {
			desc = "Sponsored by " + d.Sponsor
		}
		return title, desc, d.Link
	case domain.LiveTrade:
		return d.Symbol, fmt.Sprintf("%s %.2f (%+.2f%%)", d.Symbol, d.Price, d.Change), ""
	case domain.Auction:
		desc = fmt.Sprintf("Current bid %.2f", d.CurrentBid)
		if !d.EndsAt.IsZero() {
			desc += ", ends " + d.EndsAt.Format(time.RFC1123Z)
		}
		return d.Title, desc, ""
	case domain.AiSuggestion:
		return d.Title, d.Prompt, ""
	}
	return item.ID, "", ""
}

func adTitle(a domain.Ad) string {
	if a.Alt != "" {
		return a.Alt
	}
	return "Ad " + a.ID
}

// imageType guesses the enclosure mime type from the image url extension
func imageType(imageURL string) string {
	p := imageURL
	if u, err := url.Parse(imageURL); err == nil {
		p = u.Path
	}
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(p))); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
