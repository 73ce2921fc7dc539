package models

import "time"

// RecommendationItem is one suggested menu item in a generated batch.
type RecommendationItem struct {
	ItemID     int     `json:"itemId"`
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// AIRecommendation is an append-only audit record of a generated batch.
type AIRecommendation struct {
	ID              int                  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID          *int                 `json:"userId" gorm:"column:user_id"`
	Type            string               `json:"type" gorm:"column:type;not null"`
	Recommendations []RecommendationItem `json:"recommendations" gorm:"column:recommendations;serializer:json;not null"`
	Confidence      float64              `json:"confidence" gorm:"column:confidence;not null"`
	CreatedAt       time.Time            `json:"createdAt" gorm:"column:created_at"`
}

func (AIRecommendation) TableName() string { return "ai_recommendations" }
