package reviews

import (
	"context"

	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/models"
)

// SentimentAnalyzer scores free-text review comments.
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, comment string) (sentiment, confidence float64, err error)
}

// Service persists reviews and enriches commented ones with a
// sentiment score.
type Service struct {
	repo     Repository
	analyzer SentimentAnalyzer
	logg     *logger.Logger
}

func NewService(repo Repository, analyzer SentimentAnalyzer, logg *logger.Logger) *Service {
	return &Service{repo: repo, analyzer: analyzer, logg: logg}
}

func (s *Service) List(ctx context.Context) ([]models.Review, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOrder(ctx context.Context, orderID int) ([]models.Review, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

// Create stores the review, then scores its comment and persists the
// sentiment. Analysis failures leave the review unscored rather than
// failing the request.
func (s *Service) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if s.analyzer == nil || created.Comment == nil || *created.Comment == "" {
		return created, nil
	}

	sentiment, confidence, err := s.analyzer.AnalyzeSentiment(ctx, *created.Comment)
	if err != nil {
		s.logg.Error(ctx, "sentiment analysis failed, storing review unscored", err)
		return created, nil
	}

	scored, err := s.repo.SetSentiment(ctx, created.ID, sentiment, confidence)
	if err != nil {
		s.logg.Error(ctx, "persisting sentiment failed", err)
		return created, nil
	}
	return scored, nil
}
