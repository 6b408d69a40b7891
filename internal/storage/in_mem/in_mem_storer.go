package in_mem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

// InMemStorer keeps reports in process memory. Used when no database is
// configured; contents are lost on restart.
type InMemStorer struct {
	storageLock sync.RWMutex
	reports     map[uuid.UUID]domain.AnalysisReport
	feedback    []domain.Feedback
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		reports: make(map[uuid.UUID]domain.AnalysisReport),
	}
}

func (s *InMemStorer) SaveReport(_ context.Context, report *domain.AnalysisReport) (uuid.UUID, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.reports[report.ID] = *report
	return report.ID, nil
}

func (s *InMemStorer) GetReport(_ context.Context, id uuid.UUID) (*domain.AnalysisReport, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, apperr.NewNotFound(fmt.Sprintf("report %s not found", id))
	}
	return &report, nil
}

func (s *InMemStorer) ListReports(_ context.Context, limit int) ([]domain.AnalysisReport, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	reports := make([]domain.AnalysisReport, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID.String() > reports[j].ID.String()
	})
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (s *InMemStorer) SaveFeedback(_ context.Context, fb domain.Feedback) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.reports[fb.ArticleID]; !ok {
		return apperr.NewNotFound(fmt.Sprintf("report %s not found", fb.ArticleID))
	}
	s.feedback = append(s.feedback, fb)
	return nil
}
