package compliance

// MissingItem describes one unmet requirement in a report.
type MissingItem struct {
	DocumentType DocumentType `json:"document_type"`
	Label        string       `json:"label"`
	Explanation  string       `json:"explanation"`
	FixTemplate  string       `json:"fix_template"`
}

// Remediation is the single consolidated fix block for the non-compliant
// document(s): every missing item, one combined how-to-address message, and
// a copy-paste-ready customer-facing summary. Fix templates are never
// interleaved per bullet.
type Remediation struct {
	Items           []MissingItem `json:"items"`
	Message         string        `json:"message"`
	CustomerMessage string        `json:"customer_message"`
}

// Report is the user-facing result for one document.
type Report struct {
	DocumentType   DocumentType  `json:"document_type"`
	Overall        Overall       `json:"overall,omitempty"`
	Confidence     int           `json:"confidence"`
	Satisfied      []string      `json:"satisfied"`
	Missing        []MissingItem `json:"missing"`
	Congratulation string        `json:"congratulation,omitempty"`
	Remediation    *Remediation  `json:"remediation,omitempty"`
	Prompt         string        `json:"prompt,omitempty"`
	AnalysisError  string        `json:"analysis_error,omitempty"`
	StyleWarnings  []string      `json:"style_warnings,omitempty"`
}

// SubmissionReport is the side-by-side result for an opt-in flow and a
// privacy policy reviewed together. Its remediation block covers only the
// documents that actually need fixes.
type SubmissionReport struct {
	OptIn          *Report      `json:"opt_in,omitempty"`
	PrivacyPolicy  *Report      `json:"privacy_policy,omitempty"`
	Congratulation string       `json:"congratulation,omitempty"`
	Remediation    *Remediation `json:"remediation,omitempty"`
}
