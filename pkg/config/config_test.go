package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.72, cfg.Thresholds.Satisfied)
	assert.Equal(t, 0.45, cfg.Thresholds.Partial)
	assert.Equal(t, 0.85, cfg.Thresholds.Violation)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 512*1024, cfg.Extraction.MaxBodyBytes)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		thresholds ThresholdsConfig
		wantErr    bool
	}{
		{
			name:       "defaults are valid",
			thresholds: ThresholdsConfig{Satisfied: 0.72, Partial: 0.45, Violation: 0.85},
			wantErr:    false,
		},
		{
			name:       "partial above satisfied",
			thresholds: ThresholdsConfig{Satisfied: 0.45, Partial: 0.72, Violation: 0.85},
			wantErr:    true,
		},
		{
			name:       "partial equal to satisfied",
			thresholds: ThresholdsConfig{Satisfied: 0.72, Partial: 0.72, Violation: 0.85},
			wantErr:    true,
		},
		{
			name:       "satisfied above one",
			thresholds: ThresholdsConfig{Satisfied: 1.2, Partial: 0.45, Violation: 0.85},
			wantErr:    true,
		},
		{
			name:       "violation above one",
			thresholds: ThresholdsConfig{Satisfied: 0.72, Partial: 0.45, Violation: 1.5},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Thresholds = tt.thresholds
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
