package evaluation

import (
	"testing"

	"github.com/MessageComply/ComplyGate/pkg/config"
	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/MessageComply/ComplyGate/pkg/textmatch"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func defaultThresholds() config.ThresholdsConfig {
	return config.Default().Thresholds
}

func TestRequirementEvaluator_Evaluate(t *testing.T) {
	evaluator := NewRequirementEvaluator(defaultThresholds(), logrus.New())

	requirement := compliance.Requirement{
		ID:    "data_rates",
		Label: "Message and data rates disclosure",
		AcceptedPhrasings: []string{
			"message and data rates may apply",
			"msg and data rates may apply",
		},
		DisallowedPhrasings: []string{
			"free sms, no charges ever",
		},
	}

	tests := []struct {
		name            string
		document        string
		expectedVerdict compliance.Verdict
		expectViolation bool
	}{
		{
			name:            "exact phrase satisfies",
			document:        "sign up today. message and data rates may apply. reply stop to cancel.",
			expectedVerdict: compliance.Satisfied,
		},
		{
			name:            "paraphrase satisfies",
			document:        "please note that message & data rates may apply to you",
			expectedVerdict: compliance.Satisfied,
		},
		{
			name:            "partial phrase is partial",
			document:        "data rates apply",
			expectedVerdict: compliance.Partial,
		},
		{
			name:            "unrelated text is missing",
			document:        "welcome to our grand opening sale this weekend only",
			expectedVerdict: compliance.Missing,
		},
		{
			name:            "empty document is missing",
			document:        "",
			expectedVerdict: compliance.Missing,
		},
		{
			name:            "violation forces missing despite high score",
			document:        "message and data rates may apply. but really: free sms, no charges ever!",
			expectedVerdict: compliance.Missing,
			expectViolation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluator.Evaluate(requirement, textmatch.Normalize(tt.document))
			assert.Equal(t, "data_rates", result.RequirementID)
			assert.Equal(t, tt.expectedVerdict, result.Verdict)
			assert.Equal(t, tt.expectViolation, result.ViolationHit)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
		})
	}
}

// A violation must override the accepted score even when the accepted
// phrase is present verbatim.
func TestRequirementEvaluator_ViolationOverridesScore(t *testing.T) {
	evaluator := NewRequirementEvaluator(defaultThresholds(), logrus.New())

	requirement := compliance.Requirement{
		ID: "no_third_party_sharing",
		AcceptedPhrasings: []string{
			"we will not share your phone number with third parties for marketing purposes",
		},
		DisallowedPhrasings: []string{
			"we may share your number with partners",
		},
	}

	document := textmatch.Normalize(
		"We will not share your phone number with third parties for marketing purposes. " +
			"However, we may share your number with partners.")

	result := evaluator.Evaluate(requirement, document)
	assert.True(t, result.ViolationHit)
	assert.Equal(t, compliance.Missing, result.Verdict)
	assert.GreaterOrEqual(t, result.Score, 0.72, "accepted score stays high, verdict is forced down")
}
