package collector

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/wikipedia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEncyclopedia struct {
	titles    []string
	searchErr error

	// fetch outcomes per title, consumed in order
	outcomes map[string][]fetchOutcome
	fetches  []string
}

type fetchOutcome struct {
	page *wikipedia.Page
	err  error
}

func (f *fakeEncyclopedia) Search(_ context.Context, _ string, _ int) ([]string, error) {
	return f.titles, f.searchErr
}

func (f *fakeEncyclopedia) Fetch(_ context.Context, title string) (*wikipedia.Page, error) {
	f.fetches = append(f.fetches, title)

	outcomes := f.outcomes[title]
	if len(outcomes) == 0 {
		return nil, &wikipedia.NotFoundError{Title: title}
	}
	outcome := outcomes[0]
	f.outcomes[title] = outcomes[1:]
	return outcome.page, outcome.err
}

func newTestCollector(source ReferenceSource) *ReferenceCollector {
	c := NewReferenceCollector(source, 5, 3, 1)
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return c
}

func TestReferenceCollector_HappyPath(t *testing.T) {
	source := &fakeEncyclopedia{
		titles: []string{"Alpha", "Beta"},
		outcomes: map[string][]fetchOutcome{
			"Alpha": {{page: &wikipedia.Page{Title: "Alpha", Summary: "a"}}},
			"Beta":  {{page: &wikipedia.Page{Title: "Beta", Summary: "b"}}},
		},
	}

	articles := newTestCollector(source).FindRelated(context.Background(), "topic")

	require.Len(t, articles, 2)
	assert.Equal(t, "Alpha", articles[0].Title)
	assert.Equal(t, "Beta", articles[1].Title)
}

func TestReferenceCollector_DisambiguationFollowsFirstOption(t *testing.T) {
	source := &fakeEncyclopedia{
		titles: []string{"Mercury"},
		outcomes: map[string][]fetchOutcome{
			"Mercury": {{err: &wikipedia.DisambiguationError{
				Title:   "Mercury",
				Options: []string{"Mercury (planet)", "Mercury (element)"},
			}}},
			"Mercury (planet)": {{page: &wikipedia.Page{Title: "Mercury (planet)"}}},
		},
	}

	articles := newTestCollector(source).FindRelated(context.Background(), "mercury")

	require.Len(t, articles, 1)
	assert.Equal(t, "Mercury (planet)", articles[0].Title)
	assert.Equal(t, []string{"Mercury", "Mercury (planet)"}, source.fetches)
}

func TestReferenceCollector_DisambiguationHopLimit(t *testing.T) {
	disambig := func(title string, opt string) fetchOutcome {
		return fetchOutcome{err: &wikipedia.DisambiguationError{Title: title, Options: []string{opt}}}
	}

	source := &fakeEncyclopedia{
		titles: []string{"A"},
		outcomes: map[string][]fetchOutcome{
			"A": {disambig("A", "B")},
			"B": {disambig("B", "C")},
			"C": {{page: &wikipedia.Page{Title: "C"}}},
		},
	}

	// One redirect hop allowed: A -> B is followed, B's second
	// disambiguation drops the candidate.
	articles := newTestCollector(source).FindRelated(context.Background(), "a")

	assert.Empty(t, articles)
	assert.Equal(t, []string{"A", "B"}, source.fetches)
}

func TestReferenceCollector_NotFoundDropsSilently(t *testing.T) {
	source := &fakeEncyclopedia{
		titles: []string{"Ghost", "Real"},
		outcomes: map[string][]fetchOutcome{
			"Real": {{page: &wikipedia.Page{Title: "Real"}}},
		},
	}

	articles := newTestCollector(source).FindRelated(context.Background(), "topic")

	require.Len(t, articles, 1)
	assert.Equal(t, "Real", articles[0].Title)
}

func TestReferenceCollector_TransientRetriesThenDrops(t *testing.T) {
	transient := fetchOutcome{err: apperr.NewTransient("timeout", nil)}

	source := &fakeEncyclopedia{
		titles: []string{"Flaky"},
		outcomes: map[string][]fetchOutcome{
			"Flaky": {transient, transient, transient, transient},
		},
	}

	articles := newTestCollector(source).FindRelated(context.Background(), "topic")

	assert.Empty(t, articles)
	// maxRetries=3 bounds the attempts.
	assert.Len(t, source.fetches, 3)
}

func TestReferenceCollector_TransientRecovers(t *testing.T) {
	source := &fakeEncyclopedia{
		titles: []string{"Flaky"},
		outcomes: map[string][]fetchOutcome{
			"Flaky": {
				{err: apperr.NewTransient("timeout", nil)},
				{page: &wikipedia.Page{Title: "Flaky"}},
			},
		},
	}

	articles := newTestCollector(source).FindRelated(context.Background(), "topic")

	require.Len(t, articles, 1)
	assert.Equal(t, "Flaky", articles[0].Title)
}

func TestReferenceCollector_SearchErrorYieldsEmpty(t *testing.T) {
	source := &fakeEncyclopedia{searchErr: apperr.NewTransient("down", nil)}

	articles := newTestCollector(source).FindRelated(context.Background(), "topic")

	assert.Empty(t, articles)
}
