package evaluation

import (
	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/textmatch"
	"github.com/sirupsen/logrus"
)

// RequirementEvaluator scores a single requirement against a normalized
// document and derives its verdict.
type RequirementEvaluator interface {
	Evaluate(requirement compliance.Requirement, document string) compliance.MatchResult
}

type requirementEvaluator struct {
	thresholds config.ThresholdsConfig
	logger     *logrus.Logger
}

func NewRequirementEvaluator(thresholds config.ThresholdsConfig, logger *logrus.Logger) RequirementEvaluator {
	return &requirementEvaluator{
		thresholds: thresholds,
		logger:     logger,
	}
}

// Evaluate takes the best similarity across all accepted phrasings as the
// requirement score, then checks disallowed phrasings. A disallowed hit
// forces MISSING regardless of score: a document cannot be compliant by
// accident while also carrying a disqualifying claim.
func (e *requirementEvaluator) Evaluate(requirement compliance.Requirement, document string) compliance.MatchResult {
	score := 0.0
	for _, phrase := range requirement.AcceptedPhrasings {
		if s := textmatch.Similarity(textmatch.Normalize(phrase), document); s > score {
			score = s
		}
	}

	violation := false
	for _, phrase := range requirement.DisallowedPhrasings {
		if textmatch.Similarity(textmatch.Normalize(phrase), document) >= e.thresholds.Violation {
			violation = true
			e.logger.WithFields(logrus.Fields{
				"requirement_id": requirement.ID,
				"phrase":         phrase,
			}).Warn("disallowed phrasing detected")
			break
		}
	}

	verdict := compliance.Missing
	switch {
	case violation:
		verdict = compliance.Missing
	case score >= e.thresholds.Satisfied:
		verdict = compliance.Satisfied
	case score >= e.thresholds.Partial:
		verdict = compliance.Partial
	}

	return compliance.MatchResult{
		RequirementID: requirement.ID,
		Score:         score,
		ViolationHit:  violation,
		Verdict:       verdict,
	}
}
