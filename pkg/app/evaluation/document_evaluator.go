package evaluation

import (
	"fmt"
	"math"

	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/rulesets"
	"github.com/MessageComply/ComplyGate/pkg/textmatch"
	"github.com/sirupsen/logrus"
)

// DocumentEvaluator runs every requirement of the applicable rule set
// against one submitted document and aggregates the results.
type DocumentEvaluator interface {
	Evaluate(request compliance.EvaluationRequest) (compliance.DocumentVerdict, error)
}

type documentEvaluator struct {
	registry     *rulesets.Registry
	requirements RequirementEvaluator
	logger       *logrus.Logger
}

func NewDocumentEvaluator(
	registry *rulesets.Registry,
	requirements RequirementEvaluator,
	logger *logrus.Logger,
) DocumentEvaluator {
	return &documentEvaluator{
		registry:     registry,
		requirements: requirements,
		logger:       logger,
	}
}

func (e *documentEvaluator) Evaluate(request compliance.EvaluationRequest) (compliance.DocumentVerdict, error) {
	ruleSet, ok := e.registry.Get(request.DocumentType)
	if !ok {
		return compliance.DocumentVerdict{}, fmt.Errorf("no rule set for document type %q", request.DocumentType)
	}

	document := textmatch.Normalize(request.RawText)
	if document == "" {
		// nothing submitted is not the same thing as non-compliant
		return compliance.DocumentVerdict{
			DocumentType: request.DocumentType,
			Overall:      compliance.NotSubmitted,
		}, nil
	}

	results := make([]compliance.MatchResult, 0, len(ruleSet.Requirements))
	satisfied, notSatisfied, scoreable := 0, 0, 0
	scoreSum := 0.0

	for _, requirement := range ruleSet.Requirements {
		result := e.requirements.Evaluate(requirement, document)
		results = append(results, result)

		if requirement.Optional {
			continue
		}
		scoreable++
		scoreSum += result.Score
		switch result.Verdict {
		case compliance.Satisfied:
			satisfied++
		default:
			notSatisfied++
		}
	}

	verdict := compliance.DocumentVerdict{
		DocumentType:  request.DocumentType,
		Results:       results,
		Overall:       overall(results, ruleSet, satisfied, notSatisfied),
		Confidence:    confidence(scoreSum, scoreable),
		StyleWarnings: CheckStyle(request.RawText),
	}

	e.logger.WithFields(logrus.Fields{
		"document_type": verdict.DocumentType,
		"overall":       verdict.Overall,
		"confidence":    verdict.Confidence,
	}).Debug("document evaluated")

	return verdict, nil
}

func overall(results []compliance.MatchResult, ruleSet compliance.RuleSet, satisfied, notSatisfied int) compliance.Overall {
	if notSatisfied == 0 {
		return compliance.Compliant
	}
	if satisfied > 0 {
		return compliance.PartiallyCompliant
	}
	for i, result := range results {
		if !ruleSet.Requirements[i].Optional && result.Verdict == compliance.Partial {
			return compliance.PartiallyCompliant
		}
	}
	return compliance.NonCompliant
}

func confidence(scoreSum float64, scoreable int) int {
	if scoreable == 0 {
		return 0
	}
	return int(math.Round(scoreSum / float64(scoreable) * 100))
}
