package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/gatera900/bite-backend/pkg/errors"
	"github.com/gatera900/bite-backend/pkg/models"
)

const (
	defaultBaseURL             = "https://api.openweathermap.org/data/2.5"
	defaultLocation            = "Green Hills, CA"
	errorBodyReadLimit   int64 = 1024
	maxForecastDays            = 7
)

// Client wraps the OpenWeatherMap current-weather and forecast APIs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	location   string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured OpenWeatherMap base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithLocation overrides the default query location.
func WithLocation(location string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(location)
		if trimmed != "" {
			c.location = trimmed
		}
	}
}

// NewClient builds the weather client. An empty API key is accepted;
// requests will fail upstream and callers fall back to Default().
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		location:   defaultLocation,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

// Current fetches current conditions plus a daily forecast. A forecast
// failure degrades to an empty forecast; a current-conditions failure
// is returned to the caller.
func (c *Client) Current(ctx context.Context) (models.WeatherData, error) {
	if c == nil {
		return models.WeatherData{}, pkgerrors.New(pkgerrors.CodeDependency, "weather client not configured")
	}

	var current currentResponse
	if err := c.get(ctx, "weather", &current); err != nil {
		return models.WeatherData{}, err
	}

	condition := ""
	if len(current.Weather) > 0 {
		condition = current.Weather[0].Main
	}

	data := models.WeatherData{
		Temperature: int(current.Main.Temp + 0.5),
		Humidity:    current.Main.Humidity,
		Condition:   condition,
		Forecast:    []models.ForecastDay{},
	}

	var forecast forecastResponse
	if err := c.get(ctx, "forecast", &forecast); err == nil {
		data.Forecast = collapseDaily(forecast)
	}

	return data, nil
}

// collapseDaily keeps the first reading per weekday, up to seven days.
func collapseDaily(forecast forecastResponse) []models.ForecastDay {
	seen := map[string]bool{}
	days := make([]models.ForecastDay, 0, maxForecastDays)
	for _, entry := range forecast.List {
		day := time.Unix(entry.Dt, 0).UTC().Format("Mon")
		if seen[day] || len(days) >= maxForecastDays {
			continue
		}
		condition := ""
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Main
		}
		seen[day] = true
		days = append(days, models.ForecastDay{
			Day:       day,
			Temp:      int(entry.Main.Temp + 0.5),
			Condition: condition,
			Icon:      iconFor(condition),
		})
	}
	return days
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	query := url.Values{}
	query.Set("q", c.location)
	query.Set("appid", c.apiKey)
	query.Set("units", "imperial")

	endpoint := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.baseURL, "/"), path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute weather request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "weather request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode weather response")
	}
	return nil
}

var iconByCondition = map[string]string{
	"Clear":        "fas fa-sun",
	"Clouds":       "fas fa-cloud",
	"Rain":         "fas fa-cloud-rain",
	"Drizzle":      "fas fa-cloud-rain",
	"Thunderstorm": "fas fa-bolt",
	"Snow":         "fas fa-snowflake",
	"Mist":         "fas fa-smog",
	"Fog":          "fas fa-smog",
}

func iconFor(condition string) string {
	if icon, ok := iconByCondition[condition]; ok {
		return icon
	}
	return "fas fa-cloud"
}

// Default is the static snapshot served when the provider is down.
func Default() models.WeatherData {
	return models.WeatherData{
		Temperature: 75,
		Humidity:    65,
		Condition:   "Clear",
		Forecast: []models.ForecastDay{
			{Day: "Mon", Temp: 73, Condition: "Sunny", Icon: "fas fa-sun"},
			{Day: "Tue", Temp: 68, Condition: "Rain", Icon: "fas fa-cloud-rain"},
			{Day: "Wed", Temp: 76, Condition: "Sunny", Icon: "fas fa-sun"},
			{Day: "Thu", Temp: 79, Condition: "Sunny", Icon: "fas fa-sun"},
			{Day: "Fri", Temp: 72, Condition: "Cloudy", Icon: "fas fa-cloud"},
			{Day: "Sat", Temp: 77, Condition: "Sunny", Icon: "fas fa-sun"},
			{Day: "Sun", Temp: 80, Condition: "Sunny", Icon: "fas fa-sun"},
		},
	}
}
