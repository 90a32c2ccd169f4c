package goal

import (
	"strings"
	"time"
)

// Reading is the progress snapshot a goal is evaluated against.
type Reading struct {
	Weight float64
	Bmi    float64
	Date   time.Time
}

// TargetMet reports whether a reading satisfies a goal's target.
// Unknown goal types never auto-complete; they need explicit closure.
func TargetMet(goalType string, target float64, r Reading) bool {
	switch strings.ToLower(strings.TrimSpace(goalType)) {
	case TypeWeightLoss:
		return r.Weight <= target
	case TypeMuscleGain:
		return r.Weight >= target
	case TypeFitness:
		return r.Bmi >= 18.5 && r.Bmi < 25
	default:
		return false
	}
}
