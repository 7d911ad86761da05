package report

import (
	"fmt"
	"strings"

	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/rulesets"
)

const notSubmittedPrompt = "Nothing submitted yet. Paste your opt-in flow copy or privacy policy text to run a compliance check."

// Composer turns document verdicts into user-facing reports.
type Composer interface {
	Compose(verdict compliance.DocumentVerdict) compliance.Report
	Combine(reports ...compliance.Report) compliance.SubmissionReport
}

type composer struct {
	registry *rulesets.Registry
}

func NewComposer(registry *rulesets.Registry) Composer {
	return &composer{registry: registry}
}

// Compose builds the per-requirement breakdown for one document. A fully
// compliant document gets a congratulatory block and no fix templates; a
// non-compliant one gets a single consolidated remediation block.
func (c *composer) Compose(verdict compliance.DocumentVerdict) compliance.Report {
	rep := compliance.Report{
		DocumentType:  verdict.DocumentType,
		Overall:       verdict.Overall,
		Confidence:    verdict.Confidence,
		Satisfied:     []string{},
		Missing:       []compliance.MissingItem{},
		StyleWarnings: verdict.StyleWarnings,
	}

	if verdict.Overall == compliance.NotSubmitted {
		rep.Prompt = notSubmittedPrompt
		return rep
	}

	ruleSet, ok := c.registry.Get(verdict.DocumentType)
	if !ok {
		return rep
	}
	requirements := requirementIndex(ruleSet)

	for _, result := range verdict.Results {
		requirement, ok := requirements[result.RequirementID]
		if !ok {
			continue
		}
		if result.Verdict == compliance.Satisfied {
			rep.Satisfied = append(rep.Satisfied, requirement.Label)
			continue
		}
		if requirement.Optional {
			continue
		}
		rep.Missing = append(rep.Missing, compliance.MissingItem{
			DocumentType: verdict.DocumentType,
			Label:        requirement.Label,
			Explanation:  requirement.Explanation,
			FixTemplate:  requirement.FixTemplate,
		})
	}

	if verdict.Overall == compliance.Compliant {
		rep.Congratulation = congratulation(verdict.DocumentType, rep.Satisfied)
		return rep
	}

	rep.Remediation = buildRemediation(rep.Missing)
	return rep
}

// Combine merges side-by-side reports into one submission-level result. The
// consolidated remediation covers only the documents that actually need
// fixes; documents that were not submitted or could not be analyzed are
// left out of it.
func (c *composer) Combine(reports ...compliance.Report) compliance.SubmissionReport {
	combined := compliance.SubmissionReport{}

	var missing []compliance.MissingItem
	evaluated, compliant := 0, 0

	for i := range reports {
		rep := reports[i]
		switch rep.DocumentType {
		case compliance.OptIn:
			combined.OptIn = &reports[i]
		case compliance.PrivacyPolicy:
			combined.PrivacyPolicy = &reports[i]
		}

		if rep.AnalysisError != "" || rep.Overall == compliance.NotSubmitted || rep.Overall == "" {
			continue
		}
		evaluated++
		if rep.Overall == compliance.Compliant {
			compliant++
			continue
		}
		missing = append(missing, rep.Missing...)
	}

	if evaluated > 0 && evaluated == compliant {
		combined.Congratulation = "Both submissions meet every checked requirement. No further action is needed."
		if evaluated == 1 {
			combined.Congratulation = "Your submission meets every checked requirement. No further action is needed."
		}
		return combined
	}

	if len(missing) > 0 {
		combined.Remediation = buildRemediation(missing)
	}
	return combined
}

func requirementIndex(ruleSet compliance.RuleSet) map[string]compliance.Requirement {
	index := make(map[string]compliance.Requirement, len(ruleSet.Requirements))
	for _, requirement := range ruleSet.Requirements {
		index[requirement.ID] = requirement
	}
	return index
}

func congratulation(documentType compliance.DocumentType, satisfied []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your %s meets every checked requirement: %s. No further action is needed.",
		documentName(documentType), strings.Join(satisfied, "; "))
	return b.String()
}

// buildRemediation produces the one consolidated fix block: every missing
// item first, then a single combined how-to-address message, then the
// copy-paste-ready customer message. Fix templates are deliberately not
// interleaved per bullet.
func buildRemediation(missing []compliance.MissingItem) *compliance.Remediation {
	byDocument := map[compliance.DocumentType][]compliance.MissingItem{}
	var order []compliance.DocumentType
	for _, item := range missing {
		if _, seen := byDocument[item.DocumentType]; !seen {
			order = append(order, item.DocumentType)
		}
		byDocument[item.DocumentType] = append(byDocument[item.DocumentType], item)
	}

	var message strings.Builder
	message.WriteString("How to address these findings: ")
	for i, dt := range order {
		if i > 0 {
			message.WriteString(" ")
		}
		items := byDocument[dt]
		labels := make([]string, 0, len(items))
		templates := make([]string, 0, len(items))
		for _, item := range items {
			labels = append(labels, item.Label)
			templates = append(templates, item.FixTemplate)
		}
		fmt.Fprintf(&message, "update your %s to add: %s. Suggested language: %s",
			documentName(dt), strings.Join(labels, "; "), strings.Join(templates, " "))
	}

	var customer strings.Builder
	customer.WriteString("Hi! Thanks for your submission. To complete your messaging compliance review, ")
	for i, dt := range order {
		if i > 0 {
			customer.WriteString(" Additionally, ")
		}
		items := byDocument[dt]
		labels := make([]string, 0, len(items))
		for _, item := range items {
			labels = append(labels, item.Label)
		}
		fmt.Fprintf(&customer, "your %s still needs the following: %s.", documentName(dt), strings.Join(labels, "; "))
	}
	customer.WriteString(" Once updated, resubmit and we will re-run the check.")

	return &compliance.Remediation{
		Items:           missing,
		Message:         message.String(),
		CustomerMessage: customer.String(),
	}
}

func documentName(documentType compliance.DocumentType) string {
	switch documentType {
	case compliance.OptIn:
		return "opt-in flow"
	case compliance.PrivacyPolicy:
		return "privacy policy"
	default:
		return string(documentType)
	}
}
