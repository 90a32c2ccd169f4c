package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Priyankavya/FitnessApp/internal/health"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&Food{}, &Workout{},
		&DietPlan{}, &DietPlanFood{},
		&WorkoutPlan{}, &WorkoutPlanDetail{},
	))

	// fresh tables per test; the shared cache keeps one db per process
	require.NoError(t, db.Exec("DELETE FROM diet_plans").Error)
	require.NoError(t, db.Exec("DELETE FROM workout_plans").Error)
	return db
}

func seedDietPlans(t *testing.T, db *gorm.DB, plans ...DietPlan) {
	for i := range plans {
		require.NoError(t, db.Create(&plans[i]).Error)
	}
}

func TestResolveDietExactMatch(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	seedDietPlans(t, db,
		DietPlan{ID: 10, Goal: "weight_loss", WeightCategory: "overweight", FoodPreference: "veg", ConditionID: 2},
		DietPlan{ID: 11, Goal: "weight_loss", WeightCategory: "overweight", FoodPreference: "veg", ConditionID: health.ConditionNone},
	)

	plan, err := resolver.ResolveDiet(DietQuery{
		Goal:           "weight_loss",
		Category:       health.CategoryHigh,
		FoodPreference: "veg",
		ConditionID:    2,
	})
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, uint(10), plan.ID)
}

func TestResolveDietConditionFallback(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	// no plan exists for condition 2; the generic one must be chosen
	seedDietPlans(t, db,
		DietPlan{ID: 20, Goal: "muscle_gain", WeightCategory: "underweight", FoodPreference: "non-veg", ConditionID: health.ConditionNone},
	)

	plan, err := resolver.ResolveDiet(DietQuery{
		Goal:           "muscle_gain",
		Category:       health.CategoryLow,
		FoodPreference: "non-veg",
		ConditionID:    2,
	})
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, uint(20), plan.ID)
}

func TestResolveDietNoPlanIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	plan, err := resolver.ResolveDiet(DietQuery{
		Goal:           "weight_loss",
		Category:       health.CategoryNormal,
		FoodPreference: "veg",
		ConditionID:    health.ConditionNone,
	})
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestResolveDietDeterministicTieBreak(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	seedDietPlans(t, db,
		DietPlan{ID: 32, Goal: "fitness", WeightCategory: "normal", FoodPreference: "veg", ConditionID: health.ConditionNone},
		DietPlan{ID: 31, Goal: "fitness", WeightCategory: "normal", FoodPreference: "veg", ConditionID: health.ConditionNone},
	)

	for i := 0; i < 3; i++ {
		plan, err := resolver.ResolveDiet(DietQuery{
			Goal:           "fitness",
			Category:       health.CategoryNormal,
			FoodPreference: "veg",
			ConditionID:    health.ConditionNone,
		})
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.Equal(t, uint(31), plan.ID, "lowest id wins every run")
	}
}

func TestResolveDietNormalizesAttributes(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	seedDietPlans(t, db,
		DietPlan{ID: 40, Goal: "weight_loss", WeightCategory: "overweight", FoodPreference: "veg", ConditionID: health.ConditionNone},
	)

	plan, err := resolver.ResolveDiet(DietQuery{
		Goal:           "  Weight_Loss ",
		Category:       health.CategoryHigh,
		FoodPreference: "VEG",
		ConditionID:    health.ConditionNone,
	})
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, uint(40), plan.ID)
}

func TestResolveDietEmptyAttributesShortCircuit(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	plan, err := resolver.ResolveDiet(DietQuery{
		Goal:           "",
		Category:       health.CategoryNormal,
		FoodPreference: "veg",
		ConditionID:    health.ConditionNone,
	})
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestResolveWorkoutFallbackAndVocabulary(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(NewRepository(db))

	require.NoError(t, db.Create(&WorkoutPlan{
		ID: 50, Goal: "weight_loss", WeightCategory: "high",
		ActivityLevel: "moderate", HealthConditionID: health.ConditionNone,
	}).Error)

	plan, err := resolver.ResolveWorkout(WorkoutQuery{
		Goal:          "weight_loss",
		Category:      health.CategoryHigh,
		ActivityLevel: "Moderate",
		ConditionID:   3,
	})
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, uint(50), plan.ID)
}
