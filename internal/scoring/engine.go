package scoring

import (
	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

// Sub-score caps and reconciliation thresholds. These are product
// heuristics; they are contracts, not tunables.
const (
	sourceCredibilityMax  = 30
	contentConsistencyMax = 30
	factVerificationMax   = 40

	// aiFakeOverrideThreshold: an AI "fake" call stands unless the
	// corroboration total reaches this score.
	aiFakeOverrideThreshold = 60

	// independentFakeThreshold: with an AI "not fake" call, the engine
	// still flags fake below this total.
	independentFakeThreshold = 40

	agreementConfidenceFloor = 75
	disagreementConfidenceCap = 60
	highScoreConfidenceBar    = 70
	lowScoreConfidenceBar     = 30
)

// Inputs are the four collectors' completed, immutable outputs.
type Inputs struct {
	Discussion domain.DiscussionStats
	References []domain.ReferenceArticle
	News       domain.NewsCoverage
	FactCheck  domain.FactCheck
}

// Score converts collector outputs into the final verification result.
// Pure and deterministic: identical inputs give bit-identical results.
func Score(in Inputs) domain.VerificationResult {
	sourceCredibility := discussionTier(in.Discussion) + newsSourcesScore(in.News.SourcesCount)
	contentConsistency := articlesTier(in.News.ArticlesCount)
	factVerification := factualScorePart(in.FactCheck.FactualScore) + referenceTier(len(in.References))

	total := sourceCredibility + contentConsistency + factVerification

	aiSaysFake := !in.FactCheck.Unavailable && in.FactCheck.IsFake

	// Asymmetric reconciliation: an AI "fake" call needs a strong
	// corroboration total to be overridden, while an AI "not fake" call is
	// independently overridden at a much lower total.
	isFake := false
	if aiSaysFake {
		if total < aiFakeOverrideThreshold {
			isFake = true
		}
	} else if total < independentFakeThreshold {
		isFake = true
	}

	verdict := domain.VerdictReal
	if isFake {
		verdict = domain.VerdictFake
	}

	confidence := reconcileConfidence(total, isFake, aiSaysFake, in.FactCheck.Confidence)

	return domain.VerificationResult{
		Verdict:            verdict,
		IsFake:             isFake,
		Score:              total,
		Confidence:         confidence,
		SourceCredibility:  sourceCredibility,
		ContentConsistency: contentConsistency,
		FactVerification:   factVerification,
	}
}

func discussionTier(stats domain.DiscussionStats) int {
	if !stats.HasResults {
		return 0
	}
	switch {
	case stats.DiscussionCount > 20:
		return 15
	case stats.DiscussionCount > 10:
		return 10
	case stats.DiscussionCount > 0:
		return 5
	default:
		return 0
	}
}

func newsSourcesScore(sources int) int {
	score := 3 * sources
	if score > 15 {
		return 15
	}
	return score
}

// articlesTier is a step function, not linear: it rewards crossing
// corroboration thresholds over raw article volume.
func articlesTier(count int) int {
	switch {
	case count >= 5:
		return 30
	case count >= 3:
		return 20
	case count >= 1:
		return 10
	default:
		return 0
	}
}

func factualScorePart(factualScore int) int {
	return factualScore * 3 / 10
}

func referenceTier(count int) int {
	switch {
	case count >= 3:
		return 10
	case count >= 1:
		return 5
	default:
		return 0
	}
}

func reconcileConfidence(total int, isFake, aiSaysFake bool, aiConfidence int) int {
	var confidence int
	switch {
	case isFake == aiSaysFake:
		confidence = max(aiConfidence, agreementConfidenceFloor)
	case total > highScoreConfidenceBar && !isFake:
		confidence = max(total, aiConfidence)
	case total < lowScoreConfidenceBar && isFake:
		confidence = max(100-total, aiConfidence)
	default:
		confidence = min(aiConfidence, disagreementConfidenceCap)
	}

	return clamp(confidence, 0, 100)
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
