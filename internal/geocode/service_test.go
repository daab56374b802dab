package geocode_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/geocode"
)

type mockProvider struct {
	mu         sync.Mutex
	callCount  int
	candidates []geocode.Candidate
	err        error
}

func (m *mockProvider) Name() string {
	return "mock"
}

func (m *mockProvider) Search(_ context.Context, _ string, limit int) ([]geocode.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++

	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.candidates) {
		return m.candidates[:limit], nil
	}
	return m.candidates, nil
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func newService(p geocode.Provider) *geocode.Service {
	return geocode.NewService(geocode.ServiceConfig{
		Provider: p,
		Logger:   zerolog.Nop(),
	})
}

func TestSuggest_ShortQueryShortCircuits(t *testing.T) {
	provider := &mockProvider{candidates: []geocode.Candidate{{Name: "Paris"}}}
	svc := newService(provider)

	for _, q := range []string{"", "p", "  p  "} {
		candidates, err := svc.Suggest(context.Background(), q, 5)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	}
	assert.Equal(t, 0, provider.calls(), "short queries must not reach the provider")
}

func TestSuggest_ReturnsProviderOrder(t *testing.T) {
	provider := &mockProvider{candidates: []geocode.Candidate{
		{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
		{Name: "Paris", AdminRegion: "Texas", Country: "United States"},
	}}
	svc := newService(provider)

	candidates, err := svc.Suggest(context.Background(), "Paris", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "France", candidates[0].Country)
	assert.Equal(t, "Texas", candidates[1].AdminRegion)
}

func TestSuggest_ZeroResultsIsNotAnError(t *testing.T) {
	svc := newService(&mockProvider{})

	candidates, err := svc.Suggest(context.Background(), "Xyzzyqq", 5)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestResolveFirst(t *testing.T) {
	provider := &mockProvider{candidates: []geocode.Candidate{
		{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
	}}
	svc := newService(provider)

	cand, err := svc.ResolveFirst(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", cand.DisplayLabel())
	assert.Equal(t, 48.8566, cand.Latitude)
	assert.Equal(t, 2.3522, cand.Longitude)
}

func TestResolveFirst_NoMatch(t *testing.T) {
	svc := newService(&mockProvider{})

	_, err := svc.ResolveFirst(context.Background(), "Xyzzyqq")
	assert.ErrorIs(t, err, geocode.ErrNoMatch)
}

func TestResolveFirst_ProviderFailureIsDistinctFromNoMatch(t *testing.T) {
	boom := errors.New("upstream down")
	svc := newService(&mockProvider{err: boom})

	_, err := svc.ResolveFirst(context.Background(), "Paris")
	require.Error(t, err)
	assert.NotErrorIs(t, err, geocode.ErrNoMatch)
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		cand geocode.Candidate
		want string
	}{
		{geocode.Candidate{Name: "Paris", AdminRegion: "Île-de-France", Country: "France"}, "Paris, Île-de-France, France"},
		{geocode.Candidate{Name: "Paris", Country: "France"}, "Paris, France"},
		{geocode.Candidate{Name: "Paris"}, "Paris"},
		{geocode.Candidate{}, ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.cand.DisplayLabel())
	}
}
