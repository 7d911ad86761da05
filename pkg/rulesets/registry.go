package rulesets

import (
	"fmt"

	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/mitchellh/mapstructure"
)

// Registry holds the static rule sets for every supported document type.
// Built once at process start and immutable during evaluation.
type Registry struct {
	sets map[compliance.DocumentType]compliance.RuleSet
}

func NewRegistry() *Registry {
	return &Registry{
		sets: map[compliance.DocumentType]compliance.RuleSet{
			compliance.OptIn:         optInRuleSet(),
			compliance.PrivacyPolicy: privacyPolicyRuleSet(),
		},
	}
}

func (r *Registry) Get(documentType compliance.DocumentType) (compliance.RuleSet, bool) {
	set, ok := r.sets[documentType]
	return set, ok
}

// All returns the rule sets in display order: opt-in flow first, then
// privacy policy.
func (r *Registry) All() []compliance.RuleSet {
	ordered := make([]compliance.RuleSet, 0, len(r.sets))
	for _, dt := range []compliance.DocumentType{compliance.OptIn, compliance.PrivacyPolicy} {
		if set, ok := r.sets[dt]; ok {
			ordered = append(ordered, set)
		}
	}
	return ordered
}

// Validate checks the rule table invariants: unique requirement ids within
// each set and non-empty accepted phrasings. A broken table is a
// configuration error and fatal at startup.
func (r *Registry) Validate() error {
	for _, set := range r.sets {
		seen := make(map[string]struct{}, len(set.Requirements))
		for _, req := range set.Requirements {
			if req.ID == "" {
				return fmt.Errorf("rule set %s: requirement with empty id", set.DocumentType)
			}
			if _, dup := seen[req.ID]; dup {
				return fmt.Errorf("rule set %s: duplicate requirement id %q", set.DocumentType, req.ID)
			}
			seen[req.ID] = struct{}{}
			if len(req.AcceptedPhrasings) == 0 {
				return fmt.Errorf("rule set %s: requirement %q has no accepted phrasings", set.DocumentType, req.ID)
			}
			for _, phrase := range req.AcceptedPhrasings {
				if phrase == "" {
					return fmt.Errorf("rule set %s: requirement %q has an empty accepted phrasing", set.DocumentType, req.ID)
				}
			}
		}
	}
	return nil
}

// Overrides extends the built-in rule tables from the rulesets section of
// the config file. Phrasing lists were the main tuning surface in practice,
// so operators can add accepted phrasings without a rebuild.
type Overrides struct {
	ExtraPhrasings map[string][]string `mapstructure:"extra_phrasings"`
}

// ApplyOverrides decodes the raw config section and appends any extra
// accepted phrasings to the matching requirements. Unknown requirement ids
// are rejected so a typo in the config surfaces at startup.
func (r *Registry) ApplyOverrides(settings map[string]interface{}) error {
	if len(settings) == 0 {
		return nil
	}

	var overrides Overrides
	if err := mapstructure.Decode(settings, &overrides); err != nil {
		return fmt.Errorf("failed to decode ruleset overrides: %w", err)
	}

	for id, phrases := range overrides.ExtraPhrasings {
		if !r.appendPhrasings(id, phrases) {
			return fmt.Errorf("ruleset override references unknown requirement id %q", id)
		}
	}
	return nil
}

// appendPhrasings extends every requirement with the given id. Some ids
// (message_frequency, data_rates) appear in both rule sets and an override
// applies to each occurrence.
func (r *Registry) appendPhrasings(id string, phrases []string) bool {
	found := false
	for dt, set := range r.sets {
		for i := range set.Requirements {
			if set.Requirements[i].ID == id {
				set.Requirements[i].AcceptedPhrasings = append(set.Requirements[i].AcceptedPhrasings, phrases...)
				r.sets[dt] = set
				found = true
			}
		}
	}
	return found
}
