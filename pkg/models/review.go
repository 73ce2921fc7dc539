package models

import "time"

// Review holds a 1-5 star rating with an optional comment. Sentiment is
// populated after creation by the text-analysis call; nil means not yet
// analyzed (or analysis degraded to nothing).
type Review struct {
	ID                  int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID              *int      `json:"userId" gorm:"column:user_id"`
	OrderID             *int      `json:"orderId" gorm:"column:order_id"`
	Rating              int       `json:"rating" gorm:"column:rating;not null"`
	Comment             *string   `json:"comment" gorm:"column:comment"`
	Sentiment           *float64  `json:"sentiment" gorm:"column:sentiment"`
	SentimentConfidence *float64  `json:"sentimentConfidence" gorm:"column:sentiment_confidence"`
	CreatedAt           time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Review) TableName() string { return "reviews" }
