package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedwall/pkg/domain"
)

// fetchRSS reads an RSS/Atom feed and maps its items to ads.
// Ad image is the item image or the first image enclosure.
func (r *Reader) fetchRSS(ctx context.Context, location string) ([]domain.Ad, error) {
	body, err := r.open(ctx, location, "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	res := make([]domain.Ad, 0, len(feed.Items))
	for _, item := range feed.Items {
		ad := domain.Ad{
			ID:   item.GUID,
			Link: item.Link,
			Alt:  item.Title,
			Type: "image",
		}
		if ad.ID == "" {
			ad.ID = item.Link
		}
		if item.Image != nil {
			ad.ImageURL = item.Image.URL
		}
		if ad.ImageURL == "" {
			for _, enc := range item.Enclosures {
				if enc != nil && strings.HasPrefix(enc.Type, "image/") {
					ad.ImageURL = enc.URL
					break
				}
			}
		}
		if len(item.Categories) > 0 {
			ad.Size = item.Categories[0]
		}
		res = append(res, ad)
	}
	return res, nil
}
