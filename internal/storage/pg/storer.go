package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

// Postgres error code for foreign_key_violation.
const pgerrForeignKeyViolation = "23503"

// Storer persists analysis reports in Postgres. The report body lives in a
// JSONB column; a few fields are lifted into plain columns for listing and
// filtering without unpacking the document.
type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) SaveReport(ctx context.Context, report *domain.AnalysisReport) (uuid.UUID, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	detailJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to marshal report: %w", err)
	}

	cmd := `
        INSERT INTO analysis_reports (id, title, verdict, score, confidence, is_fake, detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		report.ID,
		report.Title,
		string(report.Verification.Verdict),
		report.Verification.Score,
		report.Verification.Confidence,
		report.Verification.IsFake,
		detailJSON,
		report.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert report: %w", err)
	}

	return id, nil
}

func (s *Storer) GetReport(ctx context.Context, id uuid.UUID) (*domain.AnalysisReport, error) {
	var detailJSON []byte
	err := s.db.QueryRow(
		ctx,
		`SELECT detail FROM analysis_reports WHERE id = $1`,
		id,
	).Scan(&detailJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound(fmt.Sprintf("report %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal(detailJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	report.ID = id
	return &report, nil
}

func (s *Storer) ListReports(ctx context.Context, limit int) ([]domain.AnalysisReport, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT detail FROM analysis_reports ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.AnalysisReport
	for rows.Next() {
		var detailJSON []byte
		if err := rows.Scan(&detailJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		var report domain.AnalysisReport
		if err := json.Unmarshal(detailJSON, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}

	return reports, nil
}

func (s *Storer) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	cmd := `
        INSERT INTO report_feedback (report_id, is_correct, feedback_text, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := s.db.Exec(ctx, cmd, fb.ArticleID, fb.IsCorrect, fb.Text, time.Now().UTC())
	if err != nil {
		return mapFeedbackError(fb.ArticleID, err)
	}
	return nil
}

// mapFeedbackError turns a report_feedback foreign-key violation into a
// not-found error, since it means the referenced report does not exist.
func mapFeedbackError(reportID uuid.UUID, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrForeignKeyViolation {
		return apperr.NewNotFound(fmt.Sprintf("report %s not found", reportID))
	}
	return fmt.Errorf("failed to insert feedback: %w", err)
}
