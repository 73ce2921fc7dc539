package models

// ForecastDay is one entry of the (up to) seven-day outlook.
type ForecastDay struct {
	Day       string `json:"day"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// WeatherData is the current-conditions snapshot attached to farm
// records and returned by the weather endpoint. Temperatures are
// rounded Fahrenheit.
type WeatherData struct {
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Condition   string        `json:"condition"`
	Forecast    []ForecastDay `json:"forecast"`
}

// GrowingConditions is derived from current weather, never stored.
type GrowingConditions struct {
	SoilMoisture  float64 `json:"soilMoisture"`
	SunlightHours float64 `json:"sunlightHours"`
	GrowthRate    float64 `json:"growthRate"`
}
