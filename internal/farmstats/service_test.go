package farmstats

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

type stubProvider struct {
	data models.WeatherData
	err  error
}

func (s stubProvider) Current(context.Context) (models.WeatherData, error) {
	return s.data, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
}

func TestCurrentWeatherFallsBack(t *testing.T) {
	t.Parallel()

	svc := NewService(NewMemoryRepository(), stubProvider{err: errors.New("upstream down")}, testLogger())

	data := svc.CurrentWeather(context.Background())
	assert.Equal(t, 75, data.Temperature)
	assert.Equal(t, 65, data.Humidity)
	assert.Equal(t, "Clear", data.Condition)
	assert.Len(t, data.Forecast, 7)
}

func TestCurrentWeatherNilProviderFallsBack(t *testing.T) {
	t.Parallel()

	svc := NewService(NewMemoryRepository(), nil, testLogger())

	data := svc.CurrentWeather(context.Background())
	assert.Equal(t, "Clear", data.Condition)
}

func TestGrowingConditionsFormulas(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   models.WeatherData
		want models.GrowingConditions
	}{
		{
			name: "mild clear day",
			in:   models.WeatherData{Temperature: 75, Humidity: 65, Condition: "Clear"},
			want: models.GrowingConditions{SoilMoisture: 75, SunlightHours: 8.5, GrowthRate: 86.5},
		},
		{
			name: "heat clamps moisture low",
			in:   models.WeatherData{Temperature: 100, Humidity: 50, Condition: "Clouds"},
			want: models.GrowingConditions{SoilMoisture: 50, SunlightHours: 6.0, GrowthRate: 85},
		},
		{
			name: "cold clamps moisture high",
			in:   models.WeatherData{Temperature: 50, Humidity: 0, Condition: "Rain"},
			want: models.GrowingConditions{SoilMoisture: 90, SunlightHours: 4.0, GrowthRate: 80},
		},
		{
			name: "humidity clamps growth high",
			in:   models.WeatherData{Temperature: 70, Humidity: 200, Condition: "Clear"},
			want: models.GrowingConditions{SoilMoisture: 85, SunlightHours: 8.5, GrowthRate: 95},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := deriveConditions(tc.in)
			assert.InDelta(t, tc.want.SoilMoisture, got.SoilMoisture, 1e-9)
			assert.InDelta(t, tc.want.SunlightHours, got.SunlightHours, 1e-9)
			assert.InDelta(t, tc.want.GrowthRate, got.GrowthRate, 1e-9)
		})
	}
}

func TestMemoryRepositorySeedsFarms(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()

	farms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, farms, 4)
	assert.Equal(t, "Valley Green Farm", farms[0].FarmName)
	assert.Equal(t, "Sunset Orchard", farms[3].FarmName)

	herbs, err := repo.ListByCropType(context.Background(), "Herbs")
	require.NoError(t, err)
	require.Len(t, herbs, 1)
	assert.Equal(t, "Garden Farm", herbs[0].FarmName)
}

func TestMemoryRepositoryUpdateMergesPatch(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()

	freshness := 88.0
	updated, err := repo.Update(context.Background(), 2, models.FarmStatsPatch{Freshness: &freshness})
	require.NoError(t, err)
	assert.Equal(t, 88.0, updated.Freshness)
	assert.Equal(t, "Hillside Harvest", updated.FarmName)

	_, err = repo.Update(context.Background(), 99, models.FarmStatsPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}
