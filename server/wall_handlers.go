package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedwall/pkg/domain"
	"github.com/umputun/feedwall/pkg/layout"
)

// tileView is a positioned tile ready for the html template
type tileView struct {
	domain.TileGeometry
	Kind  domain.Kind
	Image string
	Title string
	Href  string
}

type wallPage struct {
	Frame     domain.Frame
	Tiles     []tileView
	Loading   bool
	Viewport  int
	Container float64
	Size      domain.SizePreference
	Sizes     []domain.SizePreference
	Live      bool // view follows the engine, no explicit view params in the query
}

// wallHandler renders the masonry wall for the requested or default view
func (s *Server) wallHandler(w http.ResponseWriter, r *http.Request) {
	viewport, container, size, err := s.viewParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame, err := s.engine.Render(viewport, container, size)
	if err != nil && !errors.Is(err, layout.ErrLayoutPrecondition) {
		lgr.Printf("[ERROR] failed to render wall: %v", err)
		http.Error(w, "Failed to render wall", http.StatusInternalServerError)
		return
	}

	page := wallPage{
		Frame:     frame,
		Loading:   err != nil || (frame.IsLoading && len(frame.Geometries) == 0),
		Viewport:  viewport,
		Container: container,
		Size:      size,
		Sizes:     []domain.SizePreference{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge},
		Tiles:     s.tiles(frame),
		Live:      !r.URL.Query().Has("viewport") && !r.URL.Query().Has("container") && !r.URL.Query().Has("size"),
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "index.html", page); err != nil {
		lgr.Printf("[ERROR] failed to execute wall template: %v", err)
		http.Error(w, "Failed to render wall", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		lgr.Printf("[ERROR] failed to write wall response: %v", err)
	}
}

// tiles joins frame geometries with the snapshot items they were packed from
func (s *Server) tiles(frame domain.Frame) []tileView {
	items := make(map[string]domain.FeedItem)
	for _, it := range s.feed.Current().Snapshot.Items {
		items[it.ID] = it
	}

	res := make([]tileView, 0, len(frame.Geometries))
	for _, g := range frame.Geometries {
		tv := tileView{TileGeometry: g, Href: "#" + g.ID}
		if it, ok := items[g.ID]; ok {
			var link string
			tv.Kind = it.Kind
			tv.Image, tv.Title, link = tileContent(it)
			if link != "" {
				tv.Href = link
			}
		}
		res = append(res, tv)
	}
	return res
}

// tileContent extracts image, caption and link from the item payload
func tileContent(it domain.FeedItem) (image, title, link string) {
	if it.Data == nil {
		return "", "", ""
	}
	image = it.Data.ImageRef()
	switch d := it.Data.(type) {
	case domain.Ad:
		return image, d.Alt, d.Link
	case domain.PaidAd:
		return image, d.Alt, d.Link
	case domain.LiveTrade:
		return image, d.Symbol, ""
	case domain.Auction:
		return image, d.Title, ""
	case domain.AiSuggestion:
		return image, d.Title, ""
	}
	return image, "", ""
}
