package domain

import "time"

const (
	TitleMinLen   = 3
	TitleMaxLen   = 300
	ContentMinLen = 10
	ContentMaxLen = 5000

	// PublicationDateLayout is the accepted wire format for publication dates.
	PublicationDateLayout = "2006-01-02"

	// OldNewsCutoffDays separates RECENT from OLD articles. Articles older
	// than this get a subcategory pre-analysis before fact checking.
	OldNewsCutoffDays = 180
)

// VerificationRequest is the immutable input to one analysis run. Length
// bounds are enforced at the API boundary, not here.
type VerificationRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	PublicationDate string `json:"publicationDate,omitempty"`
}

type AgeClass string

const (
	AgeRecent AgeClass = "RECENT"
	AgeOld    AgeClass = "OLD"
)

// ClassifyAge parses the optional publication date and classifies the article
// age relative to now. An unparseable or missing date counts as RECENT.
func (r VerificationRequest) ClassifyAge(now time.Time) (AgeClass, int, bool) {
	if r.PublicationDate == "" {
		return AgeRecent, 0, false
	}

	pub, err := time.Parse(PublicationDateLayout, r.PublicationDate)
	if err != nil {
		return AgeRecent, 0, false
	}

	ageDays := int(now.Sub(pub).Hours() / 24)
	if ageDays > OldNewsCutoffDays {
		return AgeOld, ageDays, true
	}
	return AgeRecent, ageDays, true
}
