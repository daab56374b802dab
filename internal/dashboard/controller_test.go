package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/dashboard"
	"github.com/skycast/skycast/internal/forecast"
	"github.com/skycast/skycast/internal/geocode"
)

type mockGeocoder struct {
	mu         sync.Mutex
	candidates map[string]geocode.Candidate
	err        error
}

func (m *mockGeocoder) Suggest(_ context.Context, query string, _ int) ([]geocode.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if c, ok := m.candidates[query]; ok {
		return []geocode.Candidate{c}, nil
	}
	return nil, nil
}

func (m *mockGeocoder) ResolveFirst(_ context.Context, query string) (geocode.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return geocode.Candidate{}, m.err
	}
	if c, ok := m.candidates[query]; ok {
		return c, nil
	}
	return geocode.Candidate{}, geocode.ErrNoMatch
}

type mockForecaster struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{} // when set, Forecast waits for it (or ctx) before answering
	payload *forecast.Payload
}

func (m *mockForecaster) Forecast(ctx context.Context, lat, lon float64) (*forecast.Payload, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	err := m.err
	payload := m.payload
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if payload != nil {
		return payload, nil
	}
	p := testPayload()
	p.Latitude = lat
	p.Longitude = lon
	return p, nil
}

func (m *mockForecaster) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// recordingRenderer captures every state transition in order.
type recordingRenderer struct {
	mu     sync.Mutex
	states []dashboard.DisplayState
	views  []dashboard.View
}

func (r *recordingRenderer) ShowLoading() {
	r.record(dashboard.StateLoading)
}

func (r *recordingRenderer) ShowContent(view dashboard.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, dashboard.StateContent)
	r.views = append(r.views, view)
}

func (r *recordingRenderer) ShowNoResults() {
	r.record(dashboard.StateNoResults)
}

func (r *recordingRenderer) ShowError() {
	r.record(dashboard.StateError)
}

func (r *recordingRenderer) record(s dashboard.DisplayState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recordingRenderer) transitions() []dashboard.DisplayState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]dashboard.DisplayState(nil), r.states...)
}

func (r *recordingRenderer) contentRenders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *recordingRenderer) lastView() dashboard.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return dashboard.View{}
	}
	return r.views[len(r.views)-1]
}

type fixture struct {
	geocoder   *mockGeocoder
	forecaster *mockForecaster
	renderer   *recordingRenderer
	controller *dashboard.Controller
}

func newFixture(timeout time.Duration) *fixture {
	geocoder := &mockGeocoder{candidates: map[string]geocode.Candidate{
		"Paris": {Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
	}}
	forecaster := &mockForecaster{}
	renderer := &recordingRenderer{}

	controller := dashboard.NewController(dashboard.ControllerConfig{
		Geocoder:        geocoder,
		Forecaster:      forecaster,
		Renderer:        renderer,
		Logger:          zerolog.Nop(),
		UpstreamTimeout: timeout,
		Clock:           func() time.Time { return testNow },
	})

	return &fixture{geocoder: geocoder, forecaster: forecaster, renderer: renderer, controller: controller}
}

func TestBootstrap_LoadsDefaultLocation(t *testing.T) {
	f := newFixture(0)

	f.controller.Bootstrap(context.Background())

	assert.Equal(t,
		[]dashboard.DisplayState{dashboard.StateLoading, dashboard.StateContent},
		f.renderer.transitions())
	assert.Equal(t, "Berlin, Germany", f.renderer.lastView().Current.Location)
	assert.Equal(t, 1, f.forecaster.callCount())
}

func TestSearch_SuccessTransitionsLoadingToContent(t *testing.T) {
	f := newFixture(0)

	err := f.controller.Search(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t,
		[]dashboard.DisplayState{dashboard.StateLoading, dashboard.StateContent},
		f.renderer.transitions())
	assert.Equal(t, "Paris, France", f.renderer.lastView().Current.Location)
}

func TestSearch_NoMatchTransitionsToNoResults(t *testing.T) {
	f := newFixture(0)

	err := f.controller.Search(context.Background(), "Xyzzyqq")
	require.NoError(t, err)

	assert.Equal(t,
		[]dashboard.DisplayState{dashboard.StateLoading, dashboard.StateNoResults},
		f.renderer.transitions())
	assert.Equal(t, 0, f.forecaster.callCount(), "no fetch for an unresolved place")
}

func TestSearch_GeocoderFailureTransitionsToError(t *testing.T) {
	f := newFixture(0)
	f.geocoder.err = errors.New("upstream down")

	err := f.controller.Search(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t,
		[]dashboard.DisplayState{dashboard.StateLoading, dashboard.StateError},
		f.renderer.transitions())
}

func TestSearch_FetchFailureAndDeterministicRetry(t *testing.T) {
	f := newFixture(0)
	f.forecaster.err = errors.New("503")

	require.NoError(t, f.controller.Search(context.Background(), "Paris"))
	f.controller.Retry(context.Background())

	// The same transition sequence repeats deterministically.
	assert.Equal(t,
		[]dashboard.DisplayState{
			dashboard.StateLoading, dashboard.StateError,
			dashboard.StateLoading, dashboard.StateError,
		},
		f.renderer.transitions())
}

func TestSearch_BlankQueryRejected(t *testing.T) {
	f := newFixture(0)

	err := f.controller.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, dashboard.ErrEmptyQuery)
	assert.Empty(t, f.renderer.transitions(), "display state untouched")
}

func TestSetUnit_ReRendersFromCacheWithoutNetwork(t *testing.T) {
	f := newFixture(0)
	f.controller.Bootstrap(context.Background())
	require.Equal(t, 1, f.forecaster.callCount())
	require.Equal(t, "15°", f.renderer.lastView().Current.Temperature)

	err := f.controller.SetUnit("temperature", "fahrenheit")
	require.NoError(t, err)

	assert.Equal(t, 1, f.forecaster.callCount(), "unit change must not fetch")
	view := f.renderer.lastView()
	assert.Equal(t, "58°", view.Current.Temperature)
	assert.Equal(t, "58°", view.Current.FeelsLike)
	assert.Equal(t, "54°", view.Daily[0].Max)
	assert.Equal(t, "50°", view.Days[0].Hours[0].Temperature)
}

func TestSetUnit_BeforeFirstPayloadOnlyStoresPreference(t *testing.T) {
	f := newFixture(0)

	require.NoError(t, f.controller.SetUnit("wind", "mph"))
	assert.Empty(t, f.renderer.transitions())
}

func TestSetUnit_RejectsUnknownValues(t *testing.T) {
	f := newFixture(0)

	assert.ErrorIs(t, f.controller.SetUnit("temperature", "kelvin"), dashboard.ErrUnknownUnitValue)
	assert.ErrorIs(t, f.controller.SetUnit("pressure", "hpa"), dashboard.ErrUnknownUnitKind)
}

func TestStaleForecastResponseIsDiscarded(t *testing.T) {
	f := newFixture(time.Minute)

	block := make(chan struct{})
	f.forecaster.mu.Lock()
	f.forecaster.block = block
	f.forecaster.mu.Unlock()

	// First search hangs on the forecast fetch.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = f.controller.Search(context.Background(), "Paris")
	}()

	// Wait until the first fetch is in flight, then issue a newer search.
	require.Eventually(t, func() bool { return f.forecaster.callCount() == 1 },
		time.Second, time.Millisecond)

	f.forecaster.mu.Lock()
	f.forecaster.block = nil
	f.forecaster.mu.Unlock()

	require.NoError(t, f.controller.Search(context.Background(), "Paris"))
	contentRenders := f.renderer.contentRenders()

	// Release the stale response; it must not add another render.
	close(block)
	<-done

	assert.Equal(t, contentRenders, f.renderer.contentRenders(),
		"stale response must not overwrite the newer render")
}

func TestUpstreamTimeoutTransitionsToError(t *testing.T) {
	f := newFixture(10 * time.Millisecond)

	f.forecaster.mu.Lock()
	f.forecaster.block = make(chan struct{})
	f.forecaster.mu.Unlock()

	require.NoError(t, f.controller.Search(context.Background(), "Paris"))

	assert.Equal(t,
		[]dashboard.DisplayState{dashboard.StateLoading, dashboard.StateError},
		f.renderer.transitions(),
		"a hung upstream must not leave the UI in Loading")
}

func TestSuggest_DelegatesToGeocoder(t *testing.T) {
	f := newFixture(0)

	candidates, err := f.controller.Suggest(context.Background(), "Paris", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Paris, France", candidates[0].DisplayLabel())
}
