package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// ChatClient is the completion surface the service needs, satisfied by
// pkg/openai.Client.
type ChatClient interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
	CompleteText(ctx context.Context, system, user string, maxTokens int64) (string, error)
}

// EmptyReply is sent when the model answers with no content.
const EmptyReply = "I'm sorry, I couldn't process your request. Please try again or call our restaurant at (555) 123-BITE."

const (
	chatMaxTokens    = 300
	demandOrderLimit = 50
)

// RecommendationResult is a generated menu recommendation set.
type RecommendationResult struct {
	Recommendations []models.RecommendationItem `json:"recommendations"`
	Confidence      float64                     `json:"confidence"`
}

// CropPrediction is one growth forecast inside CropInsights.
type CropPrediction struct {
	Crop       string  `json:"crop"`
	Prediction string  `json:"prediction"`
	Timeframe  string  `json:"timeframe"`
	Confidence float64 `json:"confidence"`
}

// CropInsights is the agricultural analysis payload.
type CropInsights struct {
	Insights        []string         `json:"insights"`
	Predictions     []CropPrediction `json:"predictions"`
	Recommendations []string         `json:"recommendations"`
}

// DemandPrediction is one per-category row inside a DemandForecast.
type DemandPrediction struct {
	Category        string  `json:"category"`
	PredictedDemand string  `json:"predictedDemand"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// DemandForecast is the demand forecasting payload.
type DemandForecast struct {
	Predictions []DemandPrediction `json:"predictions"`
	Insights    []string           `json:"insights"`
}

// Service wraps the completion client with restaurant prompts. Every
// method degrades to an empty result instead of failing the request;
// the storefront works without the model, just less helpfully.
type Service struct {
	client ChatClient
	logg   *logger.Logger
}

func NewService(client ChatClient, logg *logger.Logger) *Service {
	return &Service{client: client, logg: logg}
}

// RecommendMenu suggests items from the given preferences and order
// history.
func (s *Service) RecommendMenu(ctx context.Context, preferences any, orderHistory []models.Order) RecommendationResult {
	empty := RecommendationResult{Recommendations: []models.RecommendationItem{}}
	if s.client == nil {
		return empty
	}

	prompt := fmt.Sprintf(`Based on the following user preferences and order history, recommend 3-5 menu items from a farm-to-table restaurant.

User Preferences: %s
Order History: %s

Consider dietary restrictions, past orders, seasonal ingredients, and flavor preferences. Respond with JSON in this format:
{
  "recommendations": [
    {
      "itemId": number,
      "name": "string",
      "reason": "string explaining why this is recommended",
      "confidence": number between 0-1
    }
  ],
  "overallConfidence": number between 0-1
}`, mustJSON(preferences), mustJSON(orderHistory))

	raw, err := s.client.CompleteJSON(ctx, recommendSystemPrompt, prompt)
	if err != nil {
		s.logg.Error(ctx, "menu recommendation completion failed", err)
		return empty
	}

	var parsed struct {
		Recommendations   []models.RecommendationItem `json:"recommendations"`
		OverallConfidence float64                     `json:"overallConfidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logg.Error(ctx, "menu recommendation response unparseable", err)
		return empty
	}

	result := RecommendationResult{
		Recommendations: parsed.Recommendations,
		Confidence:      parsed.OverallConfidence,
	}
	if result.Recommendations == nil {
		result.Recommendations = []models.RecommendationItem{}
	}
	if result.Confidence == 0 {
		result.Confidence = 0.5
	}
	return result
}

// AnalyzeSentiment scores a review comment. Sentiment is clamped to
// -1..1 and confidence to 0..1; failures score as neutral zero.
func (s *Service) AnalyzeSentiment(ctx context.Context, comment string) (float64, float64, error) {
	if s.client == nil {
		return 0, 0, nil
	}

	raw, err := s.client.CompleteJSON(ctx, sentimentSystemPrompt, comment)
	if err != nil {
		s.logg.Error(ctx, "sentiment completion failed", err)
		return 0, 0, nil
	}

	var parsed struct {
		Sentiment  float64 `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logg.Error(ctx, "sentiment response unparseable", err)
		return 0, 0, nil
	}

	return clamp(parsed.Sentiment, -1, 1), clamp(parsed.Confidence, 0, 1), nil
}

// CropInsights analyzes farm and weather data for the dashboard.
func (s *Service) CropInsights(ctx context.Context, farms []models.FarmStats, weather models.WeatherData) CropInsights {
	empty := CropInsights{
		Insights:        []string{},
		Predictions:     []CropPrediction{},
		Recommendations: []string{},
	}
	if s.client == nil {
		return empty
	}

	prompt := fmt.Sprintf(`Analyze the following farm and weather data to provide agricultural insights, growth predictions, and recommendations:

Farm Data: %s
Weather Data: %s

Provide insights about crop health, optimal harvest times, and sustainability recommendations. Respond with JSON in this format:
{
  "insights": ["string array of key insights"],
  "predictions": [
    {
      "crop": "string",
      "prediction": "string",
      "timeframe": "string",
      "confidence": number
    }
  ],
  "recommendations": ["string array of actionable recommendations"]
}`, mustJSON(farms), mustJSON(weather))

	raw, err := s.client.CompleteJSON(ctx, cropSystemPrompt, prompt)
	if err != nil {
		s.logg.Error(ctx, "crop insights completion failed", err)
		return empty
	}

	var parsed CropInsights
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logg.Error(ctx, "crop insights response unparseable", err)
		return empty
	}

	if parsed.Insights == nil {
		parsed.Insights = []string{}
	}
	if parsed.Predictions == nil {
		parsed.Predictions = []CropPrediction{}
	}
	if parsed.Recommendations == nil {
		parsed.Recommendations = []string{}
	}
	return parsed
}

// PredictDemand forecasts category demand from recent orders and
// current weather. Only the most recent orders feed the prompt.
func (s *Service) PredictDemand(ctx context.Context, orders []models.Order, weather models.WeatherData) DemandForecast {
	empty := DemandForecast{Predictions: []DemandPrediction{}, Insights: []string{}}
	if s.client == nil {
		return empty
	}

	if len(orders) > demandOrderLimit {
		orders = orders[len(orders)-demandOrderLimit:]
	}
	seasonal := map[string]any{
		"season":      currentSeason(),
		"temperature": weather.Temperature,
	}

	prompt := fmt.Sprintf(`Analyze historical order data, weather conditions, and seasonal factors to predict future order demand:

Historical Orders: %s
Weather Data: %s
Seasonal Factors: %s

Predict demand for different menu categories and provide insights. Respond with JSON in this format:
{
  "predictions": [
    {
      "category": "string",
      "predictedDemand": "high/medium/low",
      "confidence": number,
      "reasoning": "string"
    }
  ],
  "insights": ["string array of demand insights"]
}`, mustJSON(orders), mustJSON(weather), mustJSON(seasonal))

	raw, err := s.client.CompleteJSON(ctx, demandSystemPrompt, prompt)
	if err != nil {
		s.logg.Error(ctx, "demand prediction completion failed", err)
		return empty
	}

	var parsed DemandForecast
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logg.Error(ctx, "demand prediction response unparseable", err)
		return empty
	}

	if parsed.Predictions == nil {
		parsed.Predictions = []DemandPrediction{}
	}
	if parsed.Insights == nil {
		parsed.Insights = []string{}
	}
	return parsed
}

// Respond answers a customer chat message. An empty model answer maps
// to EmptyReply; transport errors surface to the caller, which sends
// its own fallback.
func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("chat client not configured")
	}

	reply, err := s.client.CompleteText(ctx, chatSystemPrompt, message, chatMaxTokens)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return EmptyReply, nil
	}
	return reply, nil
}

func mustJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
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
