package catalog

import (
	"strings"

	"github.com/Priyankavya/FitnessApp/internal/health"
)

// Resolver selects the plan template matching a user's normalized
// attributes. A resolution miss is not an error; callers render it as
// an empty assignment set.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// DietQuery carries the diet resolution tuple.
type DietQuery struct {
	Goal           string
	Category       health.Category
	FoodPreference string
	ConditionID    uint
}

// WorkoutQuery carries the workout resolution tuple.
type WorkoutQuery struct {
	Goal          string
	Category      health.Category
	ActivityLevel string
	ConditionID   uint
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveDiet looks up the exact tuple first, then retries with the
// condition forced to "none". Returns (nil, nil) when no plan exists.
func (r *Resolver) ResolveDiet(q DietQuery) (*DietPlan, error) {
	goal := normalize(q.Goal)
	pref := normalize(q.FoodPreference)
	category := q.Category.DietLabel()

	if goal == "" || pref == "" {
		return nil, nil
	}

	plan, err := r.repo.FindDietPlan(goal, category, pref, q.ConditionID)
	if err != nil {
		return nil, err
	}
	if plan != nil || q.ConditionID == health.ConditionNone {
		return plan, nil
	}

	return r.repo.FindDietPlan(goal, category, pref, health.ConditionNone)
}

// ResolveWorkout mirrors ResolveDiet for the workout catalog, which
// keys on activity level and the low/normal/high vocabulary.
func (r *Resolver) ResolveWorkout(q WorkoutQuery) (*WorkoutPlan, error) {
	goal := normalize(q.Goal)
	activity := normalize(q.ActivityLevel)
	category := q.Category.Label()

	if goal == "" || activity == "" {
		return nil, nil
	}

	plan, err := r.repo.FindWorkoutPlan(goal, category, activity, q.ConditionID)
	if err != nil {
		return nil, err
	}
	if plan != nil || q.ConditionID == health.ConditionNone {
		return plan, nil
	}

	return r.repo.FindWorkoutPlan(goal, category, activity, health.ConditionNone)
}
