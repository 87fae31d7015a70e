package seatgeek_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TicketCompare/internal/adapter/seatgeek"
	"TicketCompare/internal/config"
	"TicketCompare/internal/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func decodeEvent(t *testing.T, body string) model.SeatGeekEvent {
	t.Helper()
	var e model.SeatGeekEvent
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	return e
}

func TestNormalizeEvent_BothPrices(t *testing.T) {
	t.Parallel()

	e := decodeEvent(t, `{
		"id": 1, "title": "Taylor Swift: The Eras Tour", "url": "https://seatgeek.com/e/1",
		"datetime_local": "2025-06-01T19:30:00", "datetime_utc": "2025-06-01T23:30:00",
		"stats": {"lowest_price": 120.5, "highest_price": 900},
		"venue": {"name": "MetLife Stadium", "city": "East Rutherford", "state": "NJ"},
		"performers": [{"name": "Taylor Swift", "image": "https://img/ts.jpg"}]
	}`)

	ne, ok := seatgeek.NormalizeEvent(e, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "Taylor Swift: The Eras Tour", ne.Title)
	assert.Equal(t, "2025-06-01T19:30:00", ne.Datetime)
	assert.True(t, ne.StartsAt.Equal(time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)), "starts at %s", ne.StartsAt)
	assert.Equal(t, model.Venue{Name: "MetLife Stadium", City: "East Rutherford", State: "NJ"}, ne.Venue)
	assert.True(t, ne.Quote.Lowest.Equal(decimal.RequireFromString("120.5")))
	assert.True(t, ne.Quote.Highest.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, model.PlatformSeatGeek, ne.Quote.Source)
	assert.Equal(t, "https://seatgeek.com/e/1", ne.Quote.URL)
	assert.Equal(t, "https://img/ts.jpg", ne.Image)
}

func TestNormalizeEvent_MissingHighestFallsBackToLowest(t *testing.T) {
	t.Parallel()

	e := decodeEvent(t, `{"title": "A", "stats": {"lowest_price": 40, "highest_price": null}}`)

	ne, ok := seatgeek.NormalizeEvent(e, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "40", ne.Quote.Lowest.String())
	assert.Equal(t, "40", ne.Quote.Highest.String())
	// 无演出者图片时留空，由合并引擎决定占位图
	assert.Empty(t, ne.Image)
}

func TestNormalizeEvent_MissingLowestIsZero(t *testing.T) {
	t.Parallel()

	e := decodeEvent(t, `{"title": "A", "stats": {"highest_price": 75}}`)

	ne, ok := seatgeek.NormalizeEvent(e, time.UTC)
	require.True(t, ok)
	assert.True(t, ne.Quote.Lowest.IsZero())
	assert.Equal(t, "75", ne.Quote.Highest.String())
}

func TestNormalizeEvent_NoPriceStatsSkipped(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no stats":   `{"title": "A"}`,
		"null both":  `{"title": "A", "stats": {"lowest_price": null, "highest_price": null}}`,
		"zero both":  `{"title": "A", "stats": {"lowest_price": 0, "highest_price": 0}}`,
		"negative":   `{"title": "A", "stats": {"lowest_price": -5, "highest_price": 10}}`,
		"empty stat": `{"title": "A", "stats": {}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := seatgeek.NormalizeEvent(decodeEvent(t, body), time.UTC)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeEvent_HighestBelowLowestIsRaised(t *testing.T) {
	t.Parallel()

	e := decodeEvent(t, `{"title": "A", "stats": {"lowest_price": 50, "highest_price": 0}}`)

	ne, ok := seatgeek.NormalizeEvent(e, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "50", ne.Quote.Highest.String())
}

func TestNormalizeEvent_LocalTimeUsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("EDT", -4*3600)
	e := decodeEvent(t, `{"title": "A", "datetime_local": "2025-06-01T19:30:00", "stats": {"lowest_price": 10}}`)

	ne, ok := seatgeek.NormalizeEvent(e, loc)
	require.True(t, ok)
	assert.True(t, ne.StartsAt.Equal(time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)))
}

func TestAdapter_FetchEvents_SearchParams(t *testing.T) {
	t.Parallel()

	// Arrange: 模拟 SeatGeek /events
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "eras tour", r.URL.Query().Get("q"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		assert.Equal(t, "secret", r.URL.Query().Get("client_id"))
		assert.Empty(t, r.URL.Query().Get("sort"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"events": [
			{"id": 11, "title": "Eras Tour", "stats": {"lowest_price": 99}},
			{"id": 12, "title": "Eras Tour Night 2", "stats": {}}
		]}`)
	}))
	defer srv.Close()

	cfg := &config.PlatformConfig{BaseURL: srv.URL, Timeout: 2, AuthName: "client_id", AuthKey: "secret"}
	a := seatgeek.NewSeatGeekAdapter(cfg, time.UTC, quietLogger())

	// Act
	raw, err := a.FetchEvents(t.Context(), model.EventQuery{Keyword: "eras tour", Size: 50})

	// Assert
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, "11", raw[0].ID)
	assert.Equal(t, model.PlatformSeatGeek, raw[0].Platform)

	normalized := a.Normalize(raw)
	require.Len(t, normalized, 1)
	assert.Equal(t, "Eras Tour", normalized[0].Title)
}

func TestAdapter_FetchEvents_TopSortsByScore(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "score.desc", r.URL.Query().Get("sort"))
		assert.Equal(t, "6", r.URL.Query().Get("per_page"))
		assert.False(t, r.URL.Query().Has("q"))
		_, _ = io.WriteString(w, `{"events": []}`)
	}))
	defer srv.Close()

	a := seatgeek.NewSeatGeekAdapter(&config.PlatformConfig{BaseURL: srv.URL}, time.UTC, quietLogger())

	raw, err := a.FetchEvents(t.Context(), model.EventQuery{Size: 6, Top: true})
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestAdapter_FetchEvents_Non2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := seatgeek.NewSeatGeekAdapter(&config.PlatformConfig{BaseURL: srv.URL}, time.UTC, quietLogger())

	_, err := a.FetchEvents(t.Context(), model.EventQuery{Keyword: "x"})
	require.Error(t, err)
}

func TestAdapter_FetchSuggestions(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ta", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = io.WriteString(w, `{"events": [{"title": "Taylor Swift"}, {"title": "Tame Impala"}]}`)
	}))
	defer srv.Close()

	a := seatgeek.NewSeatGeekAdapter(&config.PlatformConfig{BaseURL: srv.URL}, time.UTC, quietLogger())

	titles, err := a.FetchSuggestions(t.Context(), "ta", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Taylor Swift", "Tame Impala"}, titles)
}

func TestAdapter_Normalize_SkipsForeignData(t *testing.T) {
	t.Parallel()

	a := seatgeek.NewSeatGeekAdapter(&config.PlatformConfig{}, time.UTC, quietLogger())

	out := a.Normalize([]*model.PlatformRawEvent{{Platform: model.PlatformTicketmaster, Data: model.TicketmasterEvent{}}})
	assert.Empty(t, out)
}
