package llm

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

// Documented fallback defaults for fields that cannot be confidently
// extracted from the model's free-text response.
const (
	DefaultFactualScore = 50
	DefaultConfidence   = 70
)

const (
	scoreMarker      = "factual accuracy score:"
	verdictMarker    = "overall verdict:"
	confidenceMarker = "confidence in your assessment:"
)

// ParseFactCheck extracts a structured judgment from a free-text fact-check
// response. Every field falls back to its documented default when the
// expected phrase is absent or malformed; parsing never fails the request.
func ParseFactCheck(raw string) domain.FactCheck {
	fc := domain.FactCheck{
		FactualScore:     DefaultFactualScore,
		Verdict:          domain.VerdictUncertain,
		Confidence:       DefaultConfidence,
		DetailedAnalysis: raw,
	}

	lower := strings.ToLower(raw)

	if score, ok := extractPercent(lower, scoreMarker); ok {
		fc.FactualScore = clamp(score, 0, 100)
	}

	if line, ok := extractLine(lower, verdictMarker); ok {
		fc.IsFake = strings.Contains(line, "fake") || strings.Contains(line, "misleading")
		switch {
		case fc.IsFake:
			fc.Verdict = domain.VerdictFake
		case strings.Contains(line, "real"):
			fc.Verdict = domain.VerdictReal
		default:
			fc.Verdict = domain.VerdictUncertain
		}
	} else {
		// No verdict heading: fall back to keyword presence in the
		// whole response, verdict stays UNCERTAIN.
		fc.IsFake = strings.Contains(lower, "fake news") || strings.Contains(lower, "misleading news")
	}

	if conf, ok := extractPercent(lower, confidenceMarker); ok {
		fc.Confidence = clamp(conf, 0, 100)
	}

	return fc
}

// extractPercent finds marker and parses the number between it and the next
// "%" on the same line. Markdown emphasis around the number is tolerated.
func extractPercent(text, marker string) (int, bool) {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return 0, false
	}

	rest := text[idx+len(marker):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	pct := strings.IndexByte(rest, '%')
	if pct < 0 {
		return 0, false
	}

	numStr := strings.TrimSpace(rest[:pct])
	numStr = strings.Trim(numStr, "*_ ")
	if numStr == "" {
		return 0, false
	}

	val, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, false
	}

	return int(val), true
}

// extractLine returns the remainder of the line following marker.
func extractLine(text, marker string) (string, bool) {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}

	rest := text[idx+len(marker):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	return strings.TrimSpace(rest), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
