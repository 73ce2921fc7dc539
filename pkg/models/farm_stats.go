package models

import "time"

// FarmStats is read-mostly reference data about a partner farm. The
// embedded weather snapshot is static sample data; live weather is
// served separately and never written back.
type FarmStats struct {
	ID                int          `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FarmName          string       `json:"farmName" gorm:"column:farm_name;not null"`
	Location          string       `json:"location" gorm:"column:location;not null"`
	Distance          float64      `json:"distance" gorm:"column:distance;not null"`
	CropType          string       `json:"cropType" gorm:"column:crop_type;not null"`
	Freshness         float64      `json:"freshness" gorm:"column:freshness;not null"`
	Organic           bool         `json:"organic" gorm:"column:organic;default:true"`
	LastHarvest       *time.Time   `json:"lastHarvest" gorm:"column:last_harvest"`
	LastDelivery      *time.Time   `json:"lastDelivery" gorm:"column:last_delivery"`
	WeatherConditions *WeatherData `json:"weatherConditions" gorm:"column:weather_conditions;serializer:json"`
	GrowthRate        float64      `json:"growthRate" gorm:"column:growth_rate;default:0"`
	SoilMoisture      float64      `json:"soilMoisture" gorm:"column:soil_moisture;default:0"`
	SunlightHours     float64      `json:"sunlightHours" gorm:"column:sunlight_hours;default:0"`
}

func (FarmStats) TableName() string { return "farm_stats" }

// FarmStatsPatch carries optional fields for a shallow-merge update.
type FarmStatsPatch struct {
	FarmName          *string      `json:"farmName"`
	Location          *string      `json:"location"`
	Distance          *float64     `json:"distance"`
	CropType          *string      `json:"cropType"`
	Freshness         *float64     `json:"freshness"`
	Organic           *bool        `json:"organic"`
	LastHarvest       *time.Time   `json:"lastHarvest"`
	LastDelivery      *time.Time   `json:"lastDelivery"`
	WeatherConditions *WeatherData `json:"weatherConditions"`
	GrowthRate        *float64     `json:"growthRate"`
	SoilMoisture      *float64     `json:"soilMoisture"`
	SunlightHours     *float64     `json:"sunlightHours"`
}

func (p FarmStatsPatch) Apply(stats *FarmStats) {
	if p.FarmName != nil {
		stats.FarmName = *p.FarmName
	}
	if p.Location != nil {
		stats.Location = *p.Location
	}
	if p.Distance != nil {
		stats.Distance = *p.Distance
	}
	if p.CropType != nil {
		stats.CropType = *p.CropType
	}
	if p.Freshness != nil {
		stats.Freshness = *p.Freshness
	}
	if p.Organic != nil {
		stats.Organic = *p.Organic
	}
	if p.LastHarvest != nil {
		stats.LastHarvest = p.LastHarvest
	}
	if p.LastDelivery != nil {
		stats.LastDelivery = p.LastDelivery
	}
	if p.WeatherConditions != nil {
		stats.WeatherConditions = p.WeatherConditions
	}
	if p.GrowthRate != nil {
		stats.GrowthRate = *p.GrowthRate
	}
	if p.SoilMoisture != nil {
		stats.SoilMoisture = *p.SoilMoisture
	}
	if p.SunlightHours != nil {
		stats.SunlightHours = *p.SunlightHours
	}
}
