package evaluation

import (
	"testing"

	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/rulesets"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePrivacyPolicy = "We will not share mobile contact information with third parties or " +
	"affiliates for marketing or promotional purposes. Information sharing to subcontractors " +
	"in support services, such as customer service, is permitted. All other categories exclude " +
	"text messaging originator opt-in data and consent; this information will not be shared with " +
	"any third parties. If you are receiving text messages from us and wish to stop receiving " +
	"them, simply reply with 'STOP' to the number from which you received the message."

const compliantOptIn = "Acme Coffee SMS Alerts: by submitting this form, you agree to receive " +
	"text messages from Acme Coffee. By providing your phone number, you agree to receive text " +
	"messages about offers and updates. Message frequency may vary. Message and data rates may " +
	"apply. Reply HELP for help or STOP to cancel. See our Privacy Policy at " +
	"acmecoffee.example/privacy and Terms of Service."

func newDocumentEvaluator(t *testing.T) DocumentEvaluator {
	t.Helper()
	logger := logrus.New()
	registry := rulesets.NewRegistry()
	require.NoError(t, registry.Validate())
	return NewDocumentEvaluator(registry, NewRequirementEvaluator(defaultThresholds(), logger), logger)
}

func resultByID(t *testing.T, verdict compliance.DocumentVerdict, id string) compliance.MatchResult {
	t.Helper()
	for _, result := range verdict.Results {
		if result.RequirementID == id {
			return result
		}
	}
	t.Fatalf("no result for requirement %q", id)
	return compliance.MatchResult{}
}

func TestEvaluate_EmptyInputIsNotSubmitted(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	for _, dt := range []compliance.DocumentType{compliance.OptIn, compliance.PrivacyPolicy} {
		for _, raw := range []string{"", "   ", "\n\t "} {
			verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{DocumentType: dt, RawText: raw})
			require.NoError(t, err)
			assert.Equal(t, compliance.NotSubmitted, verdict.Overall)
			assert.NotEqual(t, compliance.NonCompliant, verdict.Overall)
			assert.Empty(t, verdict.Results)
		}
	}
}

func TestEvaluate_UnknownDocumentType(t *testing.T) {
	evaluator := newDocumentEvaluator(t)
	_, err := evaluator.Evaluate(compliance.EvaluationRequest{DocumentType: "invoice", RawText: "text"})
	assert.Error(t, err)
}

// Paraphrased but compliant policy text must not be marked missing. The
// sample carries the no-sharing clause, the subcontractor carve-out and the
// STOP instruction in common real-world wording.
func TestEvaluate_SamplePrivacyPolicy(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.PrivacyPolicy,
		RawText:      samplePrivacyPolicy,
	})
	require.NoError(t, err)

	for _, id := range []string{"no_third_party_sharing", "subcontractor_disclosure", "stop_optout"} {
		result := resultByID(t, verdict, id)
		assert.Equalf(t, compliance.Satisfied, result.Verdict, "requirement %s", id)
		assert.False(t, result.ViolationHit)
	}
}

func TestEvaluate_FullyCompliantOptIn(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.OptIn,
		RawText:      compliantOptIn,
	})
	require.NoError(t, err)

	assert.Equal(t, compliance.Compliant, verdict.Overall)
	assert.GreaterOrEqual(t, verdict.Confidence, 90)
	assert.LessOrEqual(t, verdict.Confidence, 100)
}

// The optional consent-checkbox requirement must not block a compliant
// verdict when the submission is plain copy, not a described form.
func TestEvaluate_OptionalRequirementDoesNotBlock(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.OptIn,
		RawText:      compliantOptIn,
	})
	require.NoError(t, err)

	checkbox := resultByID(t, verdict, "consent_checkbox")
	assert.NotEqual(t, compliance.Satisfied, checkbox.Verdict)
	assert.Equal(t, compliance.Compliant, verdict.Overall)
}

// The checkbox requirement must only match copy that actually describes a
// checkbox. Plain consent language shares words with the checkbox phrasings
// and must not be mistaken for one.
func TestEvaluate_ConsentCheckboxRequiresCheckboxWording(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	plainCopy, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.OptIn,
		RawText:      compliantOptIn,
	})
	require.NoError(t, err)
	checkbox := resultByID(t, plainCopy, "consent_checkbox")
	assert.NotEqual(t, compliance.Satisfied, checkbox.Verdict)
	assert.Less(t, checkbox.Score, 0.72)

	describedForm := "Sign up form: By checking this box, you agree to receive text messages " +
		"from Acme Coffee. The box is not pre-checked. Message frequency may vary. Message and data " +
		"rates may apply. Reply HELP for help or STOP to cancel. See our Privacy Policy at " +
		"acmecoffee.example/privacy."
	withCheckbox, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.OptIn,
		RawText:      describedForm,
	})
	require.NoError(t, err)
	assert.Equal(t, compliance.Satisfied, resultByID(t, withCheckbox, "consent_checkbox").Verdict)
}

// Grammar and spelling issues are surfaced as style warnings and never
// change a verdict.
func TestEvaluate_TypoDoesNotAffectVerdict(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	withTypo := "Acme Coffee SMS Alerts: by submitting this form, you agree to receive " +
		"text messages from Acme Coffee. By providing your phone number, you agree to receive text " +
		"messages about offers and updates. Mesage frequency may vary. Message and data rates may " +
		"apply. Reply HELP for help or STOP to cancel. See our Privacy Policy at " +
		"acmecoffee.example/privacy and Terms of Service."

	verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.OptIn,
		RawText:      withTypo,
	})
	require.NoError(t, err)

	frequency := resultByID(t, verdict, "message_frequency")
	assert.Equal(t, compliance.Satisfied, frequency.Verdict)
	assert.Equal(t, compliance.Compliant, verdict.Overall)

	require.NotEmpty(t, verdict.StyleWarnings)
	assert.Contains(t, verdict.StyleWarnings[0], "mesage")
}

func TestEvaluate_NonCompliantDocument(t *testing.T) {
	evaluator := newDocumentEvaluator(t)

	verdict, err := evaluator.Evaluate(compliance.EvaluationRequest{
		DocumentType: compliance.OptIn,
		RawText:      "Grand opening this weekend! Everything half price. Come visit the store.",
	})
	require.NoError(t, err)

	assert.Equal(t, compliance.NonCompliant, verdict.Overall)
	for _, result := range verdict.Results {
		assert.Equal(t, compliance.Missing, result.Verdict)
	}
}

func TestCheckStyle(t *testing.T) {
	warnings := CheckStyle("Please repply STOP to cancel!! Mesage frequency may vary.")

	joined := ""
	for _, w := range warnings {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "repply")
	assert.Contains(t, joined, "mesage")
	assert.Contains(t, joined, "punctuation")

	assert.Empty(t, CheckStyle("Reply STOP to cancel. Message frequency may vary."))
}
