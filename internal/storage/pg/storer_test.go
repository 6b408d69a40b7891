package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
)

func TestMapFeedbackError_ForeignKeyViolation(t *testing.T) {
	reportID := uuid.New()
	pgErr := &pgconn.PgError{Code: pgerrForeignKeyViolation, ConstraintName: "report_feedback_report_id_fkey"}

	err := mapFeedbackError(reportID, fmt.Errorf("exec: %w", pgErr))

	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, reportID.String())
}

func TestMapFeedbackError_OtherErrorsPassThrough(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "plain error", err: errors.New("connection reset")},
		{name: "other pg code", err: &pgconn.PgError{Code: "23505"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapFeedbackError(uuid.New(), tc.err)

			require.Error(t, err)
			var notFound *apperr.NotFoundError
			assert.False(t, errors.As(err, &notFound))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
