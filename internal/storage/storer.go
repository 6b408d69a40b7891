package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

// Storer persists analysis reports and user feedback.
type Storer interface {
	SaveReport(ctx context.Context, report *domain.AnalysisReport) (uuid.UUID, error)
	GetReport(ctx context.Context, id uuid.UUID) (*domain.AnalysisReport, error)
	ListReports(ctx context.Context, limit int) ([]domain.AnalysisReport, error)
	SaveFeedback(ctx context.Context, fb domain.Feedback) error
}
