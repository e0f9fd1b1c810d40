package cities

import (
	"errors"
	"net/http"
	"strconv"

	customHTTP "github.com/clear-route/cityinfo-api/pkg/http"
	"github.com/go-chi/chi/v5"
)

// Handler exposes a Store over HTTP.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// List handles GET /cities.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	return customHTTP.WriteJSON(w, http.StatusOK, h.store.List(r.URL.Query().Get("name")))
}

// Get handles GET /cities/{id}. Points of interest are only included when
// includePointsOfInterest=true.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := intParam(r, "id")
	if err != nil {
		return err
	}

	c, err := h.store.Get(id)
	if err != nil {
		return notFound(err)
	}

	include, _ := strconv.ParseBool(r.URL.Query().Get("includePointsOfInterest"))
	if !include {
		c.PointsOfInterest = nil
	}

	return customHTTP.WriteJSON(w, http.StatusOK, c)
}

// PointsOfInterest handles GET /cities/{id}/pointsofinterest.
func (h *Handler) PointsOfInterest(w http.ResponseWriter, r *http.Request) error {
	id, err := intParam(r, "id")
	if err != nil {
		return err
	}

	pois, err := h.store.PointsOfInterest(id)
	if err != nil {
		return notFound(err)
	}

	return customHTTP.WriteJSON(w, http.StatusOK, pois)
}

// PointOfInterest handles GET /cities/{id}/pointsofinterest/{poiID}.
func (h *Handler) PointOfInterest(w http.ResponseWriter, r *http.Request) error {
	id, err := intParam(r, "id")
	if err != nil {
		return err
	}

	poiID, err := intParam(r, "poiID")
	if err != nil {
		return err
	}

	poi, err := h.store.PointOfInterest(id, poiID)
	if err != nil {
		return notFound(err)
	}

	return customHTTP.WriteJSON(w, http.StatusOK, poi)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, customHTTP.Errorf(http.StatusBadRequest, "invalid %s %q", name, raw)
	}

	return v, nil
}

func notFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return &customHTTP.StatusError{Code: http.StatusNotFound, Err: err}
	}

	return err
}
