package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedwall/pkg/composer"
	"github.com/umputun/feedwall/pkg/domain"
	"github.com/umputun/feedwall/pkg/layout"
	"github.com/umputun/feedwall/pkg/repository"
)

// feedResponse is the json shape of the composed feed
type feedResponse struct {
	Generation string            `json:"generation"`
	ComposedAt time.Time         `json:"composed_at"`
	Loading    bool              `json:"loading"`
	Error      string            `json:"error,omitempty"`
	Items      []domain.FeedItem `json:"items"`
}

type sizeRequest struct {
	Size string `json:"size"`
}

type viewportRequest struct {
	Width int `json:"width"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	st := s.feed.Current()
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"time":       time.Now().UTC(),
		"loading":    st.Loading,
		"generation": st.Snapshot.Generation,
		"items":      len(st.Snapshot.Items),
	}

	if len(s.checks) > 0 {
		checks := make(map[string]string, len(s.checks))
		for name, c := range s.checks {
			checks[name] = "ok"
			if err := c.Ping(r.Context()); err != nil {
				lgr.Printf("[WARN] %s health check failed: %v", name, err)
				checks[name] = err.Error()
				status["status"] = "degraded"
			}
		}
		status["checks"] = checks
	}

	if s.metrics != nil {
		count, err := s.metrics.CountMetrics(r.Context())
		if err != nil {
			lgr.Printf("[WARN] failed to count cached image metrics: %v", err)
		} else {
			status["cached_metrics"] = count
		}
	}

	renderJSON(w, r, http.StatusOK, status)
}

// feedHandler returns the current snapshot
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, toFeedResponse(s.feed.Current()))
}

// refreshHandler composes a new snapshot right away
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	st, err := s.feed.RefreshNow(r.Context())
	if err != nil {
		lgr.Printf("[WARN] on-demand refresh failed: %v", err)
		renderError(w, r, fmt.Errorf("refresh failed: %w", err), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, toFeedResponse(st))
}

// layoutHandler renders a frame for the requested view.
// Query params: viewport (px), container (px) and size (small, medium or large).
func (s *Server) layoutHandler(w http.ResponseWriter, r *http.Request) {
	viewport, container, size, err := s.viewParams(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	frame, err := s.engine.Render(viewport, container, size)
	if err != nil && !errors.Is(err, layout.ErrLayoutPrecondition) {
		lgr.Printf("[ERROR] failed to render layout: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if err != nil {
		lgr.Printf("[DEBUG] layout skipped: %v", err)
	}
	if frame.Geometries == nil {
		frame.Geometries = []domain.TileGeometry{}
	}
	renderJSON(w, r, http.StatusOK, frame)
}

// viewportHandler relayouts the live wall for the viewport width reported by the page
// and returns the new frame. Nothing to pack yet is not an error, the frame is returned without geometry.
func (s *Server) viewportHandler(w http.ResponseWriter, r *http.Request) {
	var req viewportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Width <= 0 {
		renderError(w, r, fmt.Errorf("invalid viewport width %d", req.Width), http.StatusBadRequest)
		return
	}

	frame, err := s.engine.OnViewportResize(r.Context(), req.Width)
	if err != nil && !errors.Is(err, layout.ErrLayoutPrecondition) {
		lgr.Printf("[WARN] viewport resize to %d failed: %v", req.Width, err)
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		lgr.Printf("[DEBUG] layout for viewport %d skipped: %v", req.Width, err)
	}
	if frame.Geometries == nil {
		frame.Geometries = []domain.TileGeometry{}
	}
	renderJSON(w, r, http.StatusOK, frame)
}

// hoverHandler moves hover focus of the live wall, action is enter or leave.
// Returns tweens for the tiles whose hover state changed.
func (s *Server) hoverHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var upd domain.HoverUpdate
	switch action := r.PathValue("action"); action {
	case "enter":
		upd = s.engine.OnTileEnter(id)
	case "leave":
		upd = s.engine.OnTileLeave(id)
	default:
		renderError(w, r, fmt.Errorf("unknown hover action %q", action), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, upd)
}

// getSizeHandler returns the default size preference
func (s *Server) getSizeHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]string{"size": string(s.sizePreference(r.Context()))})
}

// setSizeHandler stores the default size preference and relayouts the live frame
func (s *Server) setSizeHandler(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	size, err := domain.ParseSizePreference(req.Size)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.settings.SetSetting(r.Context(), domain.SettingSizePreference, string(size)); err != nil {
		lgr.Printf("[ERROR] failed to store size preference: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.engine.OnSizePreferenceChange(size)

	renderJSON(w, r, http.StatusOK, map[string]string{"size": string(size)})
}

// viewParams reads viewport, container and size from the query, falling back to defaults.
// The default container is the configured width capped by the viewport.
func (s *Server) viewParams(r *http.Request) (viewport int, container float64, size domain.SizePreference, err error) {
	viewport, container, _ = s.config.GetLayoutDefaults()
	q := r.URL.Query()

	if v := q.Get("viewport"); v != "" {
		if viewport, err = strconv.Atoi(v); err != nil || viewport <= 0 {
			return 0, 0, "", fmt.Errorf("invalid viewport %q", v)
		}
	}

	if v := q.Get("container"); v != "" {
		if container, err = strconv.ParseFloat(v, 64); err != nil || container <= 0 {
			return 0, 0, "", fmt.Errorf("invalid container %q", v)
		}
	} else if viewport > 0 && (container <= 0 || float64(viewport) < container) {
		container = float64(viewport)
	}

	if v := q.Get("size"); v != "" {
		if size, err = domain.ParseSizePreference(v); err != nil {
			return 0, 0, "", err
		}
		return viewport, container, size, nil
	}
	return viewport, container, s.sizePreference(r.Context()), nil
}

// sizePreference returns the stored size preference, or the configured one if nothing valid is stored
func (s *Server) sizePreference(ctx context.Context) domain.SizePreference {
	_, _, def := s.config.GetLayoutDefaults()
	setting, err := s.settings.GetSetting(ctx, domain.SettingSizePreference)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			lgr.Printf("[WARN] failed to read size preference: %v", err)
		}
		return def
	}
	size, err := domain.ParseSizePreference(setting.Value)
	if err != nil {
		lgr.Printf("[WARN] stored size preference ignored: %v", err)
		return def
	}
	return size
}

func toFeedResponse(st composer.State) feedResponse {
	res := feedResponse{
		Generation: st.Snapshot.Generation,
		ComposedAt: st.Snapshot.ComposedAt,
		Loading:    st.Loading,
		Items:      st.Snapshot.Items,
	}
	if st.LastError != nil {
		res.Error = st.LastError.Error()
	}
	if res.Items == nil {
		res.Items = []domain.FeedItem{}
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
