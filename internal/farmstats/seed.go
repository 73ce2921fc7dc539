package farmstats

import (
	"time"

	"github.com/gatera900/bite-backend/pkg/models"
)

// SeedFarmStats is the partner-farm sample data loaded into an empty
// store on boot. Timestamps are relative to boot time so the dashboard
// always shows recent harvests.
func SeedFarmStats() []models.FarmStats {
	now := time.Now()
	return []models.FarmStats{
		{
			ID:           1,
			FarmName:     "Valley Green Farm",
			Location:     "15 miles north",
			Distance:     15,
			CropType:     "Leafy Greens",
			Freshness:    97,
			Organic:      true,
			LastHarvest:  timePtr(now.Add(-6 * time.Hour)),
			LastDelivery: timePtr(now),
			WeatherConditions: &models.WeatherData{
				Temperature: 75,
				Humidity:    65,
				Condition:   "Clear",
				Forecast:    []models.ForecastDay{},
			},
			GrowthRate:    92,
			SoilMoisture:  78,
			SunlightHours: 8.5,
		},
		{
			ID:           2,
			FarmName:     "Hillside Harvest",
			Location:     "22 miles east",
			Distance:     22,
			CropType:     "Root Vegetables",
			Freshness:    93,
			Organic:      true,
			LastHarvest:  timePtr(now.Add(-12 * time.Hour)),
			LastDelivery: timePtr(now.Add(-24 * time.Hour)),
			WeatherConditions: &models.WeatherData{
				Temperature: 72,
				Humidity:    70,
				Condition:   "Partly Cloudy",
				Forecast:    []models.ForecastDay{},
			},
			GrowthRate:    88,
			SoilMoisture:  82,
			SunlightHours: 7.5,
		},
		{
			ID:           3,
			FarmName:     "Garden Farm",
			Location:     "8 miles south",
			Distance:     8,
			CropType:     "Herbs",
			Freshness:    99,
			Organic:      true,
			LastHarvest:  timePtr(now.Add(-2 * time.Hour)),
			LastDelivery: timePtr(now),
			WeatherConditions: &models.WeatherData{
				Temperature: 78,
				Humidity:    60,
				Condition:   "Sunny",
				Forecast:    []models.ForecastDay{},
			},
			GrowthRate:    95,
			SoilMoisture:  75,
			SunlightHours: 9.0,
		},
		{
			ID:           4,
			FarmName:     "Sunset Orchard",
			Location:     "35 miles west",
			Distance:     35,
			CropType:     "Tree Fruits",
			Freshness:    91,
			Organic:      true,
			LastHarvest:  timePtr(now.Add(-18 * time.Hour)),
			LastDelivery: timePtr(now.Add(-48 * time.Hour)),
			WeatherConditions: &models.WeatherData{
				Temperature: 73,
				Humidity:    68,
				Condition:   "Clear",
				Forecast:    []models.ForecastDay{},
			},
			GrowthRate:    85,
			SoilMoisture:  80,
			SunlightHours: 8.0,
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }
