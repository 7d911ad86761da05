package compliance

import "fmt"

// DocumentType identifies which rule set applies to a submission.
type DocumentType string

const (
	OptIn         DocumentType = "opt_in"
	PrivacyPolicy DocumentType = "privacy_policy"
)

// ParseDocumentType validates a wire-level document type string.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case OptIn, PrivacyPolicy:
		return DocumentType(s), nil
	default:
		return "", fmt.Errorf("unknown document type: %q", s)
	}
}

// EvaluationRequest is the request-scoped input to the document evaluator.
// RawText has already been resolved from whichever input mode the caller
// used (typed text, OCR output, URL extraction); the evaluator never does
// I/O itself.
type EvaluationRequest struct {
	DocumentType DocumentType `json:"document_type"`
	RawText      string       `json:"raw_text"`
}
