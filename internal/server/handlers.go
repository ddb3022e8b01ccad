package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/galaxy/pkg/buildinfo"
	gerrors "github.com/matzehuels/galaxy/pkg/errors"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/grid"
	"github.com/matzehuels/galaxy/pkg/profile"
	"github.com/matzehuels/galaxy/pkg/tooltip"
)

// DefaultSearchLimit caps /api/profiles results when no limit is given.
const DefaultSearchLimit = 100

type healthResponse struct {
	Status   string         `json:"status"`
	Build    buildinfo.Info `json:"build"`
	Sessions int            `json:"sessions"`
}

type layoutResponse struct {
	geometry.Layout
	Items       int           `json:"items"`
	Container   geometry.Size `json:"container"`
	Content     geometry.Size `json:"content"`
	Waste       float64       `json:"waste"`
	Virtualized bool          `json:"virtualized"`
}

type windowResponse struct {
	grid.Window
	Layout      geometry.Layout `json:"layout"`
	Virtualized bool            `json:"virtualized"`
}

type errorResponse struct {
	Code    gerrors.Code `json:"code"`
	Message string       `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Build:    buildinfo.Get(),
		Sessions: s.SessionCount(),
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engineFor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	size := engine.Size()
	layout := engine.Layout()
	writeJSON(w, http.StatusOK, layoutResponse{
		Layout:      layout,
		Items:       engine.ItemCount(),
		Container:   size,
		Content:     layout.ContentSize(),
		Waste:       geometry.Waste(layout, size.W, size.H),
		Virtualized: engine.Virtualized(),
	})
}

func (s *Server) handleWindow(w http.ResponseWriter, r *http.Request) {
	engine, err := s.engineFor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	q := query{r: r}
	offset := q.float("offset", 0)
	vh := q.float("vh", engine.Size().H)
	if err := q.err(); err != nil {
		writeError(w, err)
		return
	}
	if err := gerrors.ValidateDimension("offset", offset); err != nil {
		writeError(w, err)
		return
	}
	if err := gerrors.ValidateDimension("vh", vh); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, windowResponse{
		Window:      engine.Window(r.Context(), offset, vh),
		Layout:      engine.Layout(),
		Virtualized: engine.Virtualized(),
	})
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	q := query{r: r}
	target := geometry.Point{X: q.float("x", 0), Y: q.float("y", 0)}
	box := geometry.Size{W: q.float("bw", s.opts.View.Tooltip.W), H: q.float("bh", s.opts.View.Tooltip.H)}
	viewport := geometry.Size{W: q.float("vw", 0), H: q.float("vh", 0)}
	margin := q.float("margin", tooltip.DefaultMargin)
	if err := q.err(); err != nil {
		writeError(w, err)
		return
	}
	for _, err := range []error{
		gerrors.ValidateSize(box.W, box.H),
		gerrors.ValidateSize(viewport.W, viewport.H),
		gerrors.ValidateDimension("margin", margin),
	} {
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, tooltip.Place(target, box, viewport, margin))
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	q := query{r: r}
	limit := q.int("limit", DefaultSearchLimit)
	if err := q.err(); err != nil {
		writeError(w, err)
		return
	}
	items, err := s.store.Items(r.Context())
	if err != nil {
		s.logger.Error("list profiles", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile.Search(items, r.URL.Query().Get("q"), limit))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := gerrors.ValidateProfileID(id); err != nil {
		writeError(w, err)
		return
	}
	d, err := s.store.Detail(r.Context(), id)
	if err != nil {
		s.logger.Error("load profile", "id", id, "error", err)
		writeError(w, err)
		return
	}
	if d == nil {
		writeError(w, gerrors.New(gerrors.ErrCodeProfileNotFound, "profile %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// engineFor solves the layout described by the n, w, h and gap parameters.
func (s *Server) engineFor(r *http.Request) (*grid.Engine, error) {
	q := query{r: r}
	n := q.int("n", 0)
	width := q.float("w", 0)
	height := q.float("h", 0)
	opts := s.opts.View.Grid
	opts.Gap = q.float("gap", opts.Gap)
	opts.Logger = s.logger
	if err := q.err(); err != nil {
		return nil, err
	}
	if err := gerrors.ValidateItemCount(n); err != nil {
		return nil, err
	}
	if err := gerrors.ValidateSize(width, height); err != nil {
		return nil, err
	}
	if err := gerrors.ValidateDimension("gap", opts.Gap); err != nil {
		return nil, err
	}

	engine := grid.New(opts)
	engine.SetItemCount(r.Context(), n)
	engine.Resize(r.Context(), geometry.Size{W: width, H: height})
	return engine, nil
}

// query parses numeric query parameters, remembering the first failure.
type query struct {
	r     *http.Request
	first error
}

func (q *query) float(name string, def float64) float64 {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && q.first == nil {
		q.first = gerrors.New(gerrors.ErrCodeInvalidInput, "%s must be a number, got %q", name, raw)
	}
	return v
}

func (q *query) int(name string, def int) int {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil && q.first == nil {
		q.first = gerrors.New(gerrors.ErrCodeInvalidInput, "%s must be an integer, got %q", name, raw)
	}
	return v
}

func (q *query) err() error { return q.first }

func errNotFound(path string) error {
	return gerrors.New(gerrors.ErrCodeNotFound, "no route for %s", path)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := gerrors.GetCode(err)
	if code == "" {
		code = gerrors.ErrCodeInternal
	}
	writeJSON(w, gerrors.HTTPStatus(err), errorResponse{Code: code, Message: gerrors.UserMessage(err)})
}
