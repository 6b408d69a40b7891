package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

func TestSaveAndGetReport(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()

	report := &domain.AnalysisReport{Title: "stored"}
	id, err := s.SaveReport(ctx, report)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.False(t, report.CreatedAt.IsZero())

	got, err := s.GetReport(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "stored", got.Title)
	assert.Equal(t, id, got.ID)
}

func TestGetReportNotFound(t *testing.T) {
	s := NewInMemStorer()

	_, err := s.GetReport(context.Background(), uuid.New())

	var nf *apperr.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestListReportsNewestFirst(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := s.SaveReport(ctx, &domain.AnalysisReport{
			Title:     "r",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	reports, err := s.ListReports(ctx, 3)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, base.Add(4*time.Hour), reports[0].CreatedAt)
	assert.Equal(t, base.Add(2*time.Hour), reports[2].CreatedAt)
}

func TestSaveFeedbackRequiresReport(t *testing.T) {
	s := NewInMemStorer()
	ctx := context.Background()

	err := s.SaveFeedback(ctx, domain.Feedback{ArticleID: uuid.New(), IsCorrect: false})
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)

	id, err := s.SaveReport(ctx, &domain.AnalysisReport{Title: "r"})
	require.NoError(t, err)
	assert.NoError(t, s.SaveFeedback(ctx, domain.Feedback{ArticleID: id, IsCorrect: true, Text: "good call"}))
}
