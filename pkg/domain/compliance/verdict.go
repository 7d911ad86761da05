package compliance

// Verdict is the per-requirement outcome.
type Verdict string

const (
	Satisfied Verdict = "SATISFIED"
	Partial   Verdict = "PARTIAL"
	Missing   Verdict = "MISSING"
)

// Overall is the aggregate outcome for one submitted document.
//
// NotSubmitted is distinct from NonCompliant on purpose: "no input provided"
// and "input provided but non-compliant" must never be conflated.
type Overall string

const (
	Compliant          Overall = "COMPLIANT"
	PartiallyCompliant Overall = "PARTIALLY_COMPLIANT"
	NonCompliant       Overall = "NON_COMPLIANT"
	NotSubmitted       Overall = "NOT_SUBMITTED"
)

// MatchResult is the outcome of evaluating a single requirement against one
// document. Created fresh per evaluation call, never persisted.
type MatchResult struct {
	RequirementID string  `json:"requirement_id"`
	Score         float64 `json:"score"`
	ViolationHit  bool    `json:"violation_hit"`
	Verdict       Verdict `json:"verdict"`
}

// DocumentVerdict aggregates the match results for one submitted document.
// Confidence is the mean per-requirement score as a 0-100 percentage.
// StyleWarnings carry typo and spelling findings; they are informational
// and never factor into any verdict.
type DocumentVerdict struct {
	DocumentType  DocumentType  `json:"document_type"`
	Results       []MatchResult `json:"results"`
	Overall       Overall       `json:"overall"`
	Confidence    int           `json:"confidence"`
	StyleWarnings []string      `json:"style_warnings,omitempty"`
}
