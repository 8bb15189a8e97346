package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateMinutes(t *testing.T) {
	opts := DefaultEstimateOptions()
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{50, 1},
		{150, 1},   // 1.6 truncates to 1
		{300, 3},   // 3.2
		{750, 8},   // 8.0
		{1000, 10}, // 10.67
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateMinutes(tt.words, opts), "words=%d", tt.words)
	}
}

func TestEstimateMinutes_CustomSpeed(t *testing.T) {
	assert.Equal(t, 20, EstimateMinutes(1000, EstimateOptions{ReadingSpeedWPM: 100, StudyFactor: 2}))
}

func TestEstimateOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultEstimateOptions().Validate())
	assert.Error(t, EstimateOptions{ReadingSpeedWPM: 0, StudyFactor: 1.6}.Validate())
	assert.Error(t, EstimateOptions{ReadingSpeedWPM: 150, StudyFactor: 0}.Validate())
}
