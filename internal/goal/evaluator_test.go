package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTargetMet(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		goalType string
		target   float64
		reading  Reading
		want     bool
	}{
		{"weight loss reached", TypeWeightLoss, 68, Reading{Weight: 68, Date: now}, true},
		{"weight loss surpassed", TypeWeightLoss, 68, Reading{Weight: 65, Date: now}, true},
		{"weight loss not reached", TypeWeightLoss, 68, Reading{Weight: 70, Date: now}, false},
		{"muscle gain reached", TypeMuscleGain, 80, Reading{Weight: 80, Date: now}, true},
		{"muscle gain surpassed", TypeMuscleGain, 80, Reading{Weight: 82, Date: now}, true},
		{"muscle gain not reached", TypeMuscleGain, 80, Reading{Weight: 78, Date: now}, false},
		{"fitness bmi at lower bound", TypeFitness, 0, Reading{Bmi: 18.5, Date: now}, true},
		{"fitness bmi in band", TypeFitness, 0, Reading{Bmi: 22, Date: now}, true},
		{"fitness bmi at upper bound", TypeFitness, 0, Reading{Bmi: 25, Date: now}, false},
		{"fitness bmi below band", TypeFitness, 0, Reading{Bmi: 18.49, Date: now}, false},
		{"unknown type never completes", "marathon_prep", 1, Reading{Weight: 1, Bmi: 22, Date: now}, false},
		{"type is case-insensitive", "Weight_Loss", 68, Reading{Weight: 68, Date: now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetMet(tt.goalType, tt.target, tt.reading))
		})
	}
}
