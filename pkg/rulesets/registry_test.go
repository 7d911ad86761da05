package rulesets

import (
	"testing"

	"github.com/MessageComply/ComplyGate/pkg/domain/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryIsValid(t *testing.T) {
	registry := NewRegistry()
	assert.NoError(t, registry.Validate())
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	optIn, ok := registry.Get(compliance.OptIn)
	require.True(t, ok)
	assert.Equal(t, compliance.OptIn, optIn.DocumentType)
	assert.NotEmpty(t, optIn.Requirements)

	privacy, ok := registry.Get(compliance.PrivacyPolicy)
	require.True(t, ok)
	assert.Equal(t, compliance.PrivacyPolicy, privacy.DocumentType)
	assert.NotEmpty(t, privacy.Requirements)

	_, ok = registry.Get(compliance.DocumentType("unknown"))
	assert.False(t, ok)
}

// One rigid template phrase per requirement was the biggest source of false
// negatives in earlier rule tables; every non-optional requirement carries
// at least two accepted wordings.
func TestRequirementsCarryMultiplePhrasings(t *testing.T) {
	registry := NewRegistry()
	for _, set := range registry.All() {
		for _, req := range set.Requirements {
			assert.GreaterOrEqualf(t, len(req.AcceptedPhrasings), 2,
				"%s/%s should list multiple accepted phrasings", set.DocumentType, req.ID)
			assert.NotEmptyf(t, req.Explanation, "%s/%s missing explanation", set.DocumentType, req.ID)
			assert.NotEmptyf(t, req.FixTemplate, "%s/%s missing fix template", set.DocumentType, req.ID)
		}
	}
}

func TestAllReturnsDisplayOrder(t *testing.T) {
	registry := NewRegistry()
	sets := registry.All()
	require.Len(t, sets, 2)
	assert.Equal(t, compliance.OptIn, sets[0].DocumentType)
	assert.Equal(t, compliance.PrivacyPolicy, sets[1].DocumentType)
}

func TestApplyOverrides(t *testing.T) {
	registry := NewRegistry()

	err := registry.ApplyOverrides(map[string]interface{}{
		"extra_phrasings": map[string]interface{}{
			"stop_optout": []string{"send stop to quit"},
		},
	})
	require.NoError(t, err)

	privacy, ok := registry.Get(compliance.PrivacyPolicy)
	require.True(t, ok)
	var stop compliance.Requirement
	for _, req := range privacy.Requirements {
		if req.ID == "stop_optout" {
			stop = req
		}
	}
	assert.Contains(t, stop.AcceptedPhrasings, "send stop to quit")
}

func TestApplyOverridesUnknownID(t *testing.T) {
	registry := NewRegistry()

	err := registry.ApplyOverrides(map[string]interface{}{
		"extra_phrasings": map[string]interface{}{
			"not_a_requirement": []string{"whatever"},
		},
	})
	assert.Error(t, err)
}

func TestApplyOverridesEmptySettings(t *testing.T) {
	registry := NewRegistry()
	assert.NoError(t, registry.ApplyOverrides(nil))
}

func TestApplyOverridesSharedID(t *testing.T) {
	registry := NewRegistry()

	err := registry.ApplyOverrides(map[string]interface{}{
		"extra_phrasings": map[string]interface{}{
			"data_rates": []string{"carrier charges may apply"},
		},
	})
	require.NoError(t, err)

	// data_rates exists in both rule sets and the override reaches each
	for _, set := range registry.All() {
		for _, req := range set.Requirements {
			if req.ID == "data_rates" {
				assert.Contains(t, req.AcceptedPhrasings, "carrier charges may apply")
			}
		}
	}
}
