package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedwall/pkg/feed"
)

// rssHandler serves the current snapshot as RSS feed
func (s *Server) rssHandler(w http.ResponseWriter, _ *http.Request) {
	generator := feed.NewGenerator(s.config.GetBaseURL())

	rss, err := generator.GenerateRSS(s.feed.Current().Snapshot)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
