package cities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	customHTTP "github.com/clear-route/cityinfo-api/pkg/http"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h := NewHandler(newTestStore(t))

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/cities", customHTTP.Handle(nil, h.List))
	r.Method(http.MethodGet, "/cities/{id}", customHTTP.Handle(nil, h.Get))
	r.Method(http.MethodGet, "/cities/{id}/pointsofinterest", customHTTP.Handle(nil, h.PointsOfInterest))
	r.Method(http.MethodGet, "/cities/{id}/pointsofinterest/{poiID}", customHTTP.Handle(nil, h.PointOfInterest))

	return r
}

func TestHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		expCode int
		expJSON string
	}{
		{
			name:    "list",
			path:    "/cities",
			expCode: http.StatusOK,
			expJSON: `[
				{"id":1,"name":"New York City","description":"The one with that big park.","numberOfPointsOfInterest":1},
				{"id":2,"name":"Antwerp","numberOfPointsOfInterest":0},
				{"id":3,"name":"Paris","description":"The one with that big tower.","numberOfPointsOfInterest":2}
			]`,
		},
		{
			name:    "list filtered",
			path:    "/cities?name=antwerp",
			expCode: http.StatusOK,
			expJSON: `[{"id":2,"name":"Antwerp","numberOfPointsOfInterest":0}]`,
		},
		{
			name:    "list filtered empty",
			path:    "/cities?name=Berlin",
			expCode: http.StatusOK,
			expJSON: `[]`,
		},
		{
			name:    "get",
			path:    "/cities/1",
			expCode: http.StatusOK,
			expJSON: `{"id":1,"name":"New York City","description":"The one with that big park.","numberOfPointsOfInterest":1}`,
		},
		{
			name:    "get with points of interest",
			path:    "/cities/1?includePointsOfInterest=true",
			expCode: http.StatusOK,
			expJSON: `{"id":1,"name":"New York City","description":"The one with that big park.","numberOfPointsOfInterest":1,
				"pointsOfInterest":[{"id":1,"name":"Central Park"}]}`,
		},
		{
			name:    "points of interest",
			path:    "/cities/3/pointsofinterest",
			expCode: http.StatusOK,
			expJSON: `[{"id":5,"name":"Eiffel Tower"},{"id":6,"name":"The Louvre"}]`,
		},
		{
			name:    "points of interest empty",
			path:    "/cities/2/pointsofinterest",
			expCode: http.StatusOK,
			expJSON: `[]`,
		},
		{
			name:    "point of interest",
			path:    "/cities/3/pointsofinterest/6",
			expCode: http.StatusOK,
			expJSON: `{"id":6,"name":"The Louvre"}`,
		},
		{
			name:    "unknown city",
			path:    "/cities/42",
			expCode: http.StatusNotFound,
		},
		{
			name:    "unknown point of interest",
			path:    "/cities/3/pointsofinterest/1",
			expCode: http.StatusNotFound,
		},
		{
			name:    "non numeric city",
			path:    "/cities/paris",
			expCode: http.StatusBadRequest,
		},
		{
			name:    "non numeric point of interest",
			path:    "/cities/3/pointsofinterest/tower",
			expCode: http.StatusBadRequest,
		},
	}

	router := newTestRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.expCode, rec.Code)

			if tt.expJSON == "" {
				return
			}

			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tt.expJSON, rec.Body.String())
		})
	}
}
