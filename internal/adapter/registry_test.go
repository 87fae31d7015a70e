package adapter_test

import (
	"context"
	"io"
	"testing"
	"time"

	"TicketCompare/internal/adapter"
	"TicketCompare/internal/config"
	"TicketCompare/internal/interfaces"
	"TicketCompare/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	typ model.PlatformType
}

func (f *fakeAdapter) GetName() string             { return string(f.typ) }
func (f *fakeAdapter) GetType() model.PlatformType { return f.typ }
func (f *fakeAdapter) FetchEvents(context.Context, model.EventQuery) ([]*model.PlatformRawEvent, error) {
	return nil, nil
}
func (f *fakeAdapter) Normalize([]*model.PlatformRawEvent) []*model.NormalizedEvent { return nil }
func (f *fakeAdapter) FetchSuggestions(context.Context, string, int) ([]string, error) {
	return nil, nil
}

func fakeFactory(typ model.PlatformType) adapter.Factory {
	return func(*config.PlatformConfig, *time.Location, *logrus.Logger) interfaces.PlatformAdapter {
		return &fakeAdapter{typ: typ}
	}
}

func TestPlatformRegistry_KeepsConfiguredOrder(t *testing.T) {
	// 全局注册表，不并行
	adapter.Register(model.PlatformSeatGeek, fakeFactory(model.PlatformSeatGeek))
	adapter.Register(model.PlatformTicketmaster, fakeFactory(model.PlatformTicketmaster))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		Listing: config.ListingConfig{EnabledPlatforms: []string{"ticketmaster", "seatgeek", "ticketmaster", "unknown"}},
		Platforms: map[string]config.PlatformConfig{
			"seatgeek":     {},
			"ticketmaster": {},
			"unknown":      {},
		},
	}

	r := adapter.NewPlatformRegistry(cfg, logger)

	require.Equal(t, 2, r.GetPlatformCount())
	assert.Equal(t, []model.PlatformType{model.PlatformTicketmaster, model.PlatformSeatGeek}, r.ListRegisteredPlatforms())
}

func TestPlatformRegistry_SkipsUnknownPlatform(t *testing.T) {
	// 即使注册了工厂，未知平台也不会被实例化
	adapter.Register("stubhub", fakeFactory("stubhub"))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		Listing:   config.ListingConfig{EnabledPlatforms: []string{"stubhub"}},
		Platforms: map[string]config.PlatformConfig{"stubhub": {}},
	}

	r := adapter.NewPlatformRegistry(cfg, logger)
	assert.Equal(t, 0, r.GetPlatformCount())
}

func TestPlatformRegistry_MissingPlatformConfig(t *testing.T) {
	adapter.Register(model.PlatformSeatGeek, fakeFactory(model.PlatformSeatGeek))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		Listing:   config.ListingConfig{EnabledPlatforms: []string{"seatgeek"}},
		Platforms: map[string]config.PlatformConfig{},
	}

	r := adapter.NewPlatformRegistry(cfg, logger)
	assert.Equal(t, 0, r.GetPlatformCount())
	assert.Empty(t, r.Adapters())
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("X", 2*3600)

	got, ok := adapter.ParseTime("2025-06-01T23:30:00Z", loc)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)))

	got, ok = adapter.ParseTime("2025-06-01T19:30:00-04:00", loc)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)))

	got, ok = adapter.ParseTime("2025-06-01T19:30:00", loc)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)))

	got, ok = adapter.ParseTime("2025-06-01", nil)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))

	_, ok = adapter.ParseTime("", loc)
	assert.False(t, ok)
	_, ok = adapter.ParseTime("tomorrow", loc)
	assert.False(t, ok)
}
