package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/mocks"
	"github.com/ersonp/adopt-card/internal/domain/services"
	"github.com/ersonp/adopt-card/internal/infrastructure/clock"
)

var today = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

type cardBody struct {
	Image string `json:"image"`
	Name  string `json:"name"`
	Age   string `json:"age"`
	Fee   string `json:"fee"`
}

func newTestServer(t *testing.T) (*Server, *mocks.ListingStore) {
	t.Helper()
	store := mocks.NewListingStore()
	listingService := services.NewListingService(store)
	presenter := services.NewPresenterService(clock.Fixed(today, time.UTC))

	ctx := context.Background()
	_, err := listingService.Add(ctx, "Stuart", today.AddDate(0, 0, -2*366), entities.CategoryVeryRare, "stuart.png")
	require.NoError(t, err)
	_, err = listingService.Add(ctx, "Pip", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), entities.CategoryCommon, "")
	require.NoError(t, err)

	return NewServer(
		handlers.NewCardHandler(presenter, listingService),
		handlers.NewListingHandler(listingService),
	), store
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Card(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/listings/stuart/card", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body cardBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, cardBody{Image: "stuart.png", Name: "Stuart", Age: "2 years old", Fee: "$500.00"}, body)
}

func TestServer_Card_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/listings/ghost/card", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "listing not found")
}

func TestServer_List(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("all", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/listings", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Listings []json.RawMessage `json:"listings"`
			Total    int               `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Total)
		assert.Len(t, body.Listings, 2)
	})

	t.Run("by category", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/listings?category=very_rare", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":1`)
		assert.Contains(t, rec.Body.String(), `"Stuart"`)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/listings?category=mythic", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		for _, limit := range []string{"-3", "0", "ten"} {
			rec := do(t, s, http.MethodGet, "/listings?limit="+limit, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
		}
	})

	t.Run("limit and offset", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/listings?limit=1&offset=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":2`)
		assert.Contains(t, rec.Body.String(), `"Stuart"`)
		assert.NotContains(t, rec.Body.String(), `"Pip"`)
	})
}

func TestServer_Get(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/listings/pip", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var listing entities.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, "Pip", listing.Record.Name())
	assert.Equal(t, entities.CategoryCommon, listing.Record.Category())
}

func TestServer_Preview(t *testing.T) {
	s, store := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/preview", `{"name":"Moss","birth_date":"2023-10-20","category":"rare","image":"moss.png"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body cardBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, cardBody{Image: "moss.png", Name: "Moss", Age: "2 years old", Fee: "$150.00"}, body)
	assert.Len(t, store.Listings, 2, "preview does not store anything")
}

func TestServer_Preview_BadRequest(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"name":`},
		{name: "unknown category", body: `{"name":"Moss","birth_date":"2023-10-20","category":"mythic"}`},
		{name: "missing category", body: `{"name":"Moss","birth_date":"2023-10-20"}`},
		{name: "bad date", body: `{"name":"Moss","birth_date":"yesterday","category":"rare"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/preview", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
