package compliance

// Requirement is one named, independently evaluated compliance rule.
//
// AcceptedPhrasings lists semantically valid ways to satisfy the rule; the
// evaluator scores the document against each and keeps the best. A single
// canonical sentence is deliberately not enough here: rigid one-phrase rules
// are the main source of false negatives on paraphrased but compliant copy.
type Requirement struct {
	ID                  string   `json:"id" mapstructure:"id"`
	Label               string   `json:"label" mapstructure:"label"`
	AcceptedPhrasings   []string `json:"accepted_phrasings" mapstructure:"accepted_phrasings"`
	DisallowedPhrasings []string `json:"disallowed_phrasings,omitempty" mapstructure:"disallowed_phrasings"`
	Explanation         string   `json:"explanation" mapstructure:"explanation"`
	FixTemplate         string   `json:"fix_template" mapstructure:"fix_template"`

	// Optional requirements (e.g. the unchecked consent checkbox when the
	// submission describes a UI flow) are reported when satisfied but never
	// block an otherwise compliant document.
	Optional bool `json:"optional,omitempty" mapstructure:"optional"`
}

// RuleSet groups the requirements for one document type. Requirement order
// is significant for display only, not for evaluation.
type RuleSet struct {
	DocumentType DocumentType  `json:"document_type"`
	Requirements []Requirement `json:"requirements"`
}
