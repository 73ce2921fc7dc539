package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(`{"main":{"temp":74.6,"humidity":61},"weather":[{"main":"Clouds"}]}`))
		case "/forecast":
			// Two readings on the same day collapse into one entry.
			w.Write([]byte(`{"list":[
				{"dt":86400,"main":{"temp":70.2},"weather":[{"main":"Rain"}]},
				{"dt":97200,"main":{"temp":72.0},"weather":[{"main":"Clear"}]},
				{"dt":172800,"main":{"temp":65.7},"weather":[{"main":"Clear"}]}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	data, err := client.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 75, data.Temperature)
	assert.Equal(t, 61, data.Humidity)
	assert.Equal(t, "Clouds", data.Condition)
	require.Len(t, data.Forecast, 2)
	assert.Equal(t, "Rain", data.Forecast[0].Condition)
	assert.Equal(t, "fas fa-cloud-rain", data.Forecast[0].Icon)
	assert.Equal(t, 66, data.Forecast[1].Temp)
}

func TestCurrentUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	_, err := client.Current(context.Background())
	require.Error(t, err)
}

func TestCurrentForecastFailureDegrades(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/weather" {
			w.Write([]byte(`{"main":{"temp":80.0,"humidity":55},"weather":[{"main":"Clear"}]}`))
			return
		}
		http.Error(w, "forecast down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	data, err := client.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 80, data.Temperature)
	assert.Empty(t, data.Forecast)
}

func TestDefaultSnapshot(t *testing.T) {
	t.Parallel()

	data := Default()
	assert.Equal(t, 75, data.Temperature)
	assert.Equal(t, "Clear", data.Condition)
	assert.Len(t, data.Forecast, 7)
}
