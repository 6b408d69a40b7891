package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
	"github.com/DjordjeVuckovic/news-verifier/internal/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Analyzer runs the verification pipeline for one request.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.VerificationRequest) (*domain.AnalysisReport, error)
}

// PageExtractor turns an article URL into a verification request.
type PageExtractor interface {
	Extract(ctx context.Context, url string) (domain.VerificationRequest, error)
}

// ReportCache memoizes reports by request content.
type ReportCache interface {
	Get(ctx context.Context, title, content string) *domain.AnalysisReport
	Set(ctx context.Context, title, content string, report *domain.AnalysisReport)
}

type VerifyRouter struct {
	e         *echo.Echo
	analyzer  Analyzer
	extractor PageExtractor
	cache     ReportCache
	storage   storage.Storer
}

func NewVerifyRouter(
	e *echo.Echo,
	analyzer Analyzer,
	extractor PageExtractor,
	cache ReportCache,
	store storage.Storer,
) *VerifyRouter {
	return &VerifyRouter{
		e:         e,
		analyzer:  analyzer,
		extractor: extractor,
		cache:     cache,
		storage:   store,
	}
}

func (r *VerifyRouter) Bind() {
	r.e.GET("/health", r.healthHandler)
	r.e.POST("/api/verify", r.verifyHandler)
	r.e.POST("/api/verify/url", r.verifyURLHandler)
	r.e.GET("/api/articles", r.listArticlesHandler)
	r.e.GET("/api/articles/:id", r.getArticleHandler)
	r.e.POST("/api/feedback", r.feedbackHandler)
}

func (r *VerifyRouter) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (r *VerifyRouter) verifyHandler(c echo.Context) error {
	var req domain.VerificationRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}
	return r.verify(c, req)
}

func (r *VerifyRouter) verifyURLHandler(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if body.URL == "" {
		return apperr.NewValidation("url is required")
	}

	req, err := r.extractor.Extract(c.Request().Context(), body.URL)
	if err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		return err
	}
	return r.verify(c, req)
}

func (r *VerifyRouter) verify(c echo.Context, req domain.VerificationRequest) error {
	ctx := c.Request().Context()

	if cached := r.cache.Get(ctx, req.Title, req.Content); cached != nil {
		slog.Info("returning cached report", "title", req.Title)
		return c.JSON(http.StatusOK, cached)
	}

	report, err := r.analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}

	if _, err := r.storage.SaveReport(ctx, report); err != nil {
		// Persistence failure does not discard the analysis.
		slog.Error("failed to persist report", "title", req.Title, "error", err)
	}
	r.cache.Set(ctx, req.Title, req.Content, report)

	return c.JSON(http.StatusOK, report)
}

func (r *VerifyRouter) listArticlesHandler(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	reports, err := r.storage.ListReports(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if reports == nil {
		reports = []domain.AnalysisReport{}
	}
	return c.JSON(http.StatusOK, reports)
}

func (r *VerifyRouter) getArticleHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid article id", err)
	}

	report, err := r.storage.GetReport(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func (r *VerifyRouter) feedbackHandler(c echo.Context) error {
	var fb domain.Feedback
	if err := c.Bind(&fb); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if fb.ArticleID == uuid.Nil {
		return apperr.NewValidation("articleId is required")
	}

	if err := r.storage.SaveFeedback(c.Request().Context(), fb); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "feedback recorded"})
}

func validateRequest(req domain.VerificationRequest) error {
	titleLen := len([]rune(req.Title))
	if titleLen < domain.TitleMinLen || titleLen > domain.TitleMaxLen {
		return apperr.NewValidation(fmt.Sprintf(
			"title must be between %d and %d characters", domain.TitleMinLen, domain.TitleMaxLen))
	}

	contentLen := len([]rune(req.Content))
	if contentLen < domain.ContentMinLen || contentLen > domain.ContentMaxLen {
		return apperr.NewValidation(fmt.Sprintf(
			"content must be between %d and %d characters", domain.ContentMinLen, domain.ContentMaxLen))
	}

	if req.PublicationDate != "" {
		if _, err := time.Parse(domain.PublicationDateLayout, req.PublicationDate); err != nil {
			return apperr.NewValidationWrap("publicationDate must use YYYY-MM-DD", err)
		}
	}
	return nil
}
