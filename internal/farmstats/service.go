package farmstats

import (
	"context"

	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
	"github.com/gatera900/bite-backend/pkg/weather"
)

// WeatherProvider fetches live conditions for the farm region.
type WeatherProvider interface {
	Current(ctx context.Context) (models.WeatherData, error)
}

// Service layers live weather and derived growing conditions over the
// farm store.
type Service struct {
	repo     Repository
	provider WeatherProvider
	logg     *logger.Logger
}

func NewService(repo Repository, provider WeatherProvider, logg *logger.Logger) *Service {
	return &Service{repo: repo, provider: provider, logg: logg}
}

func (s *Service) List(ctx context.Context) ([]models.FarmStats, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCropType(ctx context.Context, cropType string) ([]models.FarmStats, error) {
	return s.repo.ListByCropType(ctx, cropType)
}

func (s *Service) Create(ctx context.Context, stats models.FarmStats) (*models.FarmStats, error) {
	return s.repo.Create(ctx, stats)
}

func (s *Service) Update(ctx context.Context, id int, patch models.FarmStatsPatch) (*models.FarmStats, error) {
	return s.repo.Update(ctx, id, patch)
}

// CurrentWeather returns live conditions, falling back to a static
// snapshot when the provider is unreachable. The endpoint never fails.
func (s *Service) CurrentWeather(ctx context.Context) models.WeatherData {
	if s.provider != nil {
		data, err := s.provider.Current(ctx)
		if err == nil {
			return data
		}
		s.logg.Error(ctx, "weather provider unavailable, serving fallback", err)
	}
	return weather.Default()
}

// GrowingConditions derives field metrics from current weather.
func (s *Service) GrowingConditions(ctx context.Context) models.GrowingConditions {
	data := s.CurrentWeather(ctx)
	return deriveConditions(data)
}

// deriveConditions maps weather to soil moisture, sunlight hours, and
// growth rate. Moisture drops two points per degree above 70F, clamped
// to 50..90. Growth rate tracks humidity around a 50% baseline, clamped
// to 60..95.
func deriveConditions(data models.WeatherData) models.GrowingConditions {
	moisture := clamp(85-float64(data.Temperature-70)*2, 50, 90)

	var sunlight float64
	switch data.Condition {
	case "Clear":
		sunlight = 8.5
	case "Clouds":
		sunlight = 6.0
	default:
		sunlight = 4.0
	}

	growth := clamp(85+float64(data.Humidity-50)/10, 60, 95)

	return models.GrowingConditions{
		SoilMoisture:  moisture,
		SunlightHours: sunlight,
		GrowthRate:    growth,
	}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
