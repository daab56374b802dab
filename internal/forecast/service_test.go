package forecast_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/forecast"
)

type mockProvider struct {
	payload *forecast.Payload
	err     error
	calls   int
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Forecast(_ context.Context, lat, lon float64) (*forecast.Payload, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.payload != nil {
		return m.payload, nil
	}
	return &forecast.Payload{
		Latitude:  lat,
		Longitude: lon,
		Current:   forecast.Current{Temperature: 14.2, WindSpeed: 3.4, Code: 61},
	}, nil
}

func newService(p forecast.Provider) *forecast.Service {
	return forecast.NewService(forecast.ServiceConfig{Provider: p, Logger: zerolog.Nop()})
}

func TestService_Forecast(t *testing.T) {
	provider := &mockProvider{}
	svc := newService(provider)

	payload, err := svc.Forecast(context.Background(), 52.52, 13.405)
	require.NoError(t, err)
	assert.Equal(t, 14.2, payload.Current.Temperature)
	assert.Equal(t, 1, provider.calls)
}

func TestService_Forecast_InvalidCoordinates(t *testing.T) {
	provider := &mockProvider{}
	svc := newService(provider)

	for _, c := range []struct{ lat, lon float64 }{
		{91, 0}, {-91, 0}, {0, 181}, {0, -181},
	} {
		_, err := svc.Forecast(context.Background(), c.lat, c.lon)
		assert.ErrorIs(t, err, forecast.ErrInvalidCoordinates)
	}
	assert.Equal(t, 0, provider.calls, "invalid coordinates must not reach the provider")
}

func TestService_Forecast_ProviderError(t *testing.T) {
	boom := errors.New("upstream down")
	svc := newService(&mockProvider{err: boom})

	_, err := svc.Forecast(context.Background(), 52.52, 13.405)
	assert.ErrorIs(t, err, boom)
}
