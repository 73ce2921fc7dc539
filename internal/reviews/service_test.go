package reviews

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

type stubAnalyzer struct {
	sentiment  float64
	confidence float64
	err        error
	calls      int
}

func (s *stubAnalyzer) AnalyzeSentiment(context.Context, string) (float64, float64, error) {
	s.calls++
	return s.sentiment, s.confidence, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
}

func strPtr(s string) *string { return &s }

func TestCreatePersistsSentiment(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	analyzer := &stubAnalyzer{sentiment: 0.8, confidence: 0.9}
	svc := NewService(repo, analyzer, testLogger())

	created, err := svc.Create(context.Background(), models.Review{
		Rating:  5,
		Comment: strPtr("The salmon was outstanding."),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Sentiment)
	assert.Equal(t, 0.8, *created.Sentiment)
	assert.Equal(t, 0.9, *created.SentimentConfidence)

	// The score survives a reload, not just the returned copy.
	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.NotNil(t, stored[0].Sentiment)
	assert.Equal(t, 0.8, *stored[0].Sentiment)
}

func TestCreateSkipsAnalysisWithoutComment(t *testing.T) {
	t.Parallel()

	analyzer := &stubAnalyzer{}
	svc := NewService(NewMemoryRepository(), analyzer, testLogger())

	created, err := svc.Create(context.Background(), models.Review{Rating: 4})
	require.NoError(t, err)
	assert.Nil(t, created.Sentiment)
	assert.Zero(t, analyzer.calls)
}

func TestCreateSurvivesAnalyzerFailure(t *testing.T) {
	t.Parallel()

	analyzer := &stubAnalyzer{err: errors.New("model offline")}
	svc := NewService(NewMemoryRepository(), analyzer, testLogger())

	created, err := svc.Create(context.Background(), models.Review{
		Rating:  2,
		Comment: strPtr("Soup was cold."),
	})
	require.NoError(t, err)
	assert.Nil(t, created.Sentiment)
	assert.Nil(t, created.SentimentConfidence)
}

func TestListByOrder(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	orderA, orderB := 10, 11
	_, err := repo.Create(ctx, models.Review{OrderID: &orderA, Rating: 5})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Review{OrderID: &orderB, Rating: 3})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Review{OrderID: &orderA, Rating: 4})
	require.NoError(t, err)

	got, err := repo.ListByOrder(ctx, orderA)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}
