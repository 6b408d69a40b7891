package domain

// ReferenceArticle is one encyclopedic article related to the analyzed topic,
// most relevant first in collector output.
type ReferenceArticle struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
}

// NewsArticle is one article returned by an independent news provider.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Content     string `json:"content,omitempty"`
	Provider    string `json:"provider,omitempty"`
}

// NewsCoverage is the merged output of all enabled news providers.
// SourcesCount counts distinct Source names; Articles is capped by the
// collector, concatenated in stable provider order without cross-provider
// de-duplication.
type NewsCoverage struct {
	ArticlesCount int           `json:"articlesCount"`
	SourcesCount  int           `json:"sourcesCount"`
	Articles      []NewsArticle `json:"articles,omitempty"`
}
