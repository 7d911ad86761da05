package types

// EvaluateDocumentRequest checks a single document that the caller already
// has as plain text.
type EvaluateDocumentRequest struct {
	DocumentType string `json:"document_type"`
	RawText      string `json:"raw_text"`
}

// EvaluateSubmissionRequest carries a full campaign submission. The opt-in
// flow arrives either as text or as a base64 screenshot for OCR; the privacy
// policy arrives either as text or as a public URL to fetch.
type EvaluateSubmissionRequest struct {
	OptInText         string `json:"opt_in_text,omitempty"`
	OptInImageBase64  string `json:"opt_in_image_base64,omitempty"`
	PrivacyPolicyText string `json:"privacy_policy_text,omitempty"`
	PrivacyPolicyURL  string `json:"privacy_policy_url,omitempty"`
}
