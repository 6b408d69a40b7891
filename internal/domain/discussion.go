package domain

import "time"

// DiscussionPost is a single forum post referencing the analyzed topic.
type DiscussionPost struct {
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Community string    `json:"community"`
	Score     int       `json:"score"`
	Comments  int       `json:"comments"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Excerpt   string    `json:"excerpt,omitempty"`
}

type CommunityCount struct {
	Community string `json:"community"`
	Count     int    `json:"count"`
}

// DiscussionStats summarizes forum discussion volume for a topic. A failed
// or empty search yields HasResults=false with all counters zero; callers
// treat that the same as a quiet topic.
type DiscussionStats struct {
	HasResults      bool             `json:"hasResults"`
	DiscussionCount int              `json:"discussionCount"`
	AverageScore    float64          `json:"averageScore"`
	AverageComments float64          `json:"averageComments"`
	TopCommunities  []CommunityCount `json:"topCommunities,omitempty"`
	SamplePosts     []DiscussionPost `json:"samplePosts,omitempty"`
}
