package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MessageComply/ComplyGate/pkg/app/evaluation"
	"github.com/MessageComply/ComplyGate/pkg/app/report"
	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/extraction"
	"github.com/MessageComply/ComplyGate/pkg/rulesets"
	"github.com/MessageComply/ComplyGate/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complyctl",
		Short: "Messaging compliance checker",
		Long: `complyctl checks SMS campaign collateral against carrier messaging
requirements without a running server.

It evaluates:
  - Opt-in flow copy (the six required consent elements)
  - Privacy policies (consent, sharing and opt-out clauses)`,
		Version: version.Version,
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(submissionCmd())
	rootCmd.AddCommand(rulesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	var (
		documentType string
		filePath     string
		pageURL      string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check one document for compliance",
		Long: `Check a single document against its rule set.

The document text comes from --file, from --url (privacy policies only),
or from stdin when neither flag is given.

Example:
  complyctl check --type opt_in --file optin.txt
  complyctl check --type privacy_policy --url https://example.com/privacy
  cat optin.txt | complyctl check --type opt-in`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := parseDocumentType(documentType)
			if err != nil {
				return err
			}

			text, err := readDocument(filePath, pageURL, dt)
			if err != nil {
				return err
			}

			rep, err := evaluateLocally(dt, text)
			if err != nil {
				return err
			}

			fmt.Print(report.RenderText(rep))
			if rep.Overall != compliance.Compliant && rep.Overall != compliance.NotSubmitted {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&documentType, "type", "", "document type: opt_in or privacy_policy (required)")
	cmd.Flags().StringVar(&filePath, "file", "", "read the document from a file")
	cmd.Flags().StringVar(&pageURL, "url", "", "fetch a privacy policy from a public URL")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func submissionCmd() *cobra.Command {
	var (
		optInFile   string
		privacyFile string
		privacyURL  string
	)

	cmd := &cobra.Command{
		Use:   "submission",
		Short: "Check an opt-in flow and a privacy policy side by side",
		Long: `Check a full campaign submission: the opt-in flow copy and the
privacy policy, reviewed together with one combined result.

Example:
  complyctl submission --opt-in-file optin.txt --privacy-file policy.txt
  complyctl submission --opt-in-file optin.txt --privacy-url https://example.com/privacy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if privacyFile != "" && privacyURL != "" {
				return fmt.Errorf("--privacy-file and --privacy-url are mutually exclusive")
			}

			registry := rulesets.NewRegistry()
			if err := registry.Validate(); err != nil {
				return err
			}
			composer := report.NewComposer(registry)

			optIn, err := checkFromFile(compliance.OptIn, optInFile)
			if err != nil {
				return err
			}

			var privacy compliance.Report
			if privacyURL != "" {
				privacy, err = checkFromURL(privacyURL)
			} else {
				privacy, err = checkFromFile(compliance.PrivacyPolicy, privacyFile)
			}
			if err != nil {
				return err
			}

			combined := composer.Combine(optIn, privacy)
			fmt.Print(report.RenderSubmission(combined))
			if combined.Remediation != nil {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&optInFile, "opt-in-file", "", "read the opt-in flow copy from a file")
	cmd.Flags().StringVar(&privacyFile, "privacy-file", "", "read the privacy policy from a file")
	cmd.Flags().StringVar(&privacyURL, "privacy-url", "", "fetch the privacy policy from a public URL")
	return cmd
}

func checkFromFile(dt compliance.DocumentType, path string) (compliance.Report, error) {
	text := ""
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return compliance.Report{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		text = string(raw)
	}
	return evaluateLocally(dt, text)
}

func checkFromURL(pageURL string) (compliance.Report, error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	extractor := extraction.NewURLExtractor(config.Default().Extraction, logger)

	text, err := extractor.Extract(context.Background(), pageURL)
	if err != nil {
		return compliance.Report{
			DocumentType:  compliance.PrivacyPolicy,
			AnalysisError: fmt.Sprintf("could not fetch the policy page: %v", err),
		}, nil
	}
	return evaluateLocally(compliance.PrivacyPolicy, text)
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rule sets and their requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := rulesets.NewRegistry()
			if err := registry.Validate(); err != nil {
				return err
			}
			for _, set := range registry.All() {
				fmt.Printf("%s:\n", set.DocumentType)
				for _, req := range set.Requirements {
					marker := ""
					if req.Optional {
						marker = " (optional)"
					}
					fmt.Printf("  %s%s: %s\n", req.ID, marker, req.Label)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// parseDocumentType accepts both wire spellings and the hyphenated form
// people naturally type.
func parseDocumentType(s string) (compliance.DocumentType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	return compliance.ParseDocumentType(normalized)
}

func readDocument(filePath, pageURL string, dt compliance.DocumentType) (string, error) {
	switch {
	case filePath != "" && pageURL != "":
		return "", fmt.Errorf("--file and --url are mutually exclusive")
	case filePath != "":
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(raw), nil
	case pageURL != "":
		if dt != compliance.PrivacyPolicy {
			return "", fmt.Errorf("--url is only supported for privacy policies")
		}
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		extractor := extraction.NewURLExtractor(config.Default().Extraction, logger)
		return extractor.Extract(context.Background(), pageURL)
	default:
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	}
}

func evaluateLocally(dt compliance.DocumentType, text string) (compliance.Report, error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	registry := rulesets.NewRegistry()
	if err := registry.Validate(); err != nil {
		return compliance.Report{}, err
	}

	cfg := config.Default()
	evaluator := evaluation.NewDocumentEvaluator(
		registry,
		evaluation.NewRequirementEvaluator(cfg.Thresholds, logger),
		logger,
	)

	verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{DocumentType: dt, RawText: text})
	if err != nil {
		return compliance.Report{}, err
	}
	return report.NewComposer(registry).Compose(verdict), nil
}
