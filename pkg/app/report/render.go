package report

import (
	"fmt"
	"strings"

	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
)

// RenderText formats one report for terminal output.
func RenderText(rep compliance.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s ===\n", strings.ToUpper(documentName(rep.DocumentType)))

	if rep.AnalysisError != "" {
		fmt.Fprintf(&b, "Could not analyze: %s\n", rep.AnalysisError)
		return b.String()
	}
	if rep.Prompt != "" {
		fmt.Fprintf(&b, "%s\n", rep.Prompt)
		return b.String()
	}

	fmt.Fprintf(&b, "Overall: %s (confidence %d%%)\n", rep.Overall, rep.Confidence)

	if len(rep.Satisfied) > 0 {
		b.WriteString("Satisfied:\n")
		for _, label := range rep.Satisfied {
			fmt.Fprintf(&b, "  + %s\n", label)
		}
	}
	if len(rep.Missing) > 0 {
		b.WriteString("Missing:\n")
		for _, item := range rep.Missing {
			fmt.Fprintf(&b, "  - %s: %s\n", item.Label, item.Explanation)
		}
	}
	if rep.Congratulation != "" {
		fmt.Fprintf(&b, "%s\n", rep.Congratulation)
	}
	if rep.Remediation != nil {
		fmt.Fprintf(&b, "\n%s\n", rep.Remediation.Message)
		fmt.Fprintf(&b, "\nCustomer message:\n%s\n", rep.Remediation.CustomerMessage)
	}
	if len(rep.StyleWarnings) > 0 {
		b.WriteString("Style notes (informational):\n")
		for _, warning := range rep.StyleWarnings {
			fmt.Fprintf(&b, "  * %s\n", warning)
		}
	}
	return b.String()
}

// RenderSubmission formats a side-by-side submission report.
func RenderSubmission(rep compliance.SubmissionReport) string {
	var b strings.Builder
	if rep.OptIn != nil {
		b.WriteString(RenderText(*rep.OptIn))
		b.WriteString("\n")
	}
	if rep.PrivacyPolicy != nil {
		b.WriteString(RenderText(*rep.PrivacyPolicy))
		b.WriteString("\n")
	}
	if rep.Congratulation != "" {
		fmt.Fprintf(&b, "%s\n", rep.Congratulation)
	}
	if rep.Remediation != nil {
		fmt.Fprintf(&b, "%s\n", rep.Remediation.Message)
		fmt.Fprintf(&b, "\nCustomer message:\n%s\n", rep.Remediation.CustomerMessage)
	}
	return b.String()
}
