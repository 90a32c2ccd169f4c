package diet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Priyankavya/FitnessApp/internal/catalog"
	"github.com/Priyankavya/FitnessApp/internal/health"
	"github.com/Priyankavya/FitnessApp/internal/profile"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&health.HealthCondition{}, &health.UserHealthCondition{},
		&catalog.Food{}, &catalog.DietPlan{}, &catalog.DietPlanFood{},
		&profile.UserProfile{},
		&UserDietFood{}, &MealLog{},
	))
	for _, table := range []string{"user_health_conditions", "diet_plans", "diet_plan_foods", "user_profiles", "user_diet_foods", "meal_logs"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	catalogRepo := catalog.NewRepository(db)
	svc := NewService(
		NewRepository(db),
		profile.NewRepository(db),
		health.NewRepository(db),
		catalogRepo,
		catalog.NewResolver(catalogRepo),
	)
	return svc, db
}

func seedPlanWithFoods(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&catalog.DietPlan{
		ID: 1, Goal: "weight_loss", WeightCategory: "overweight",
		FoodPreference: "veg", ConditionID: health.ConditionNone,
	}).Error)
	require.NoError(t, db.Create(&catalog.DietPlanFood{ID: 1, DietID: 1, FoodID: 101, MealType: "breakfast"}).Error)
	require.NoError(t, db.Create(&catalog.DietPlanFood{ID: 2, DietID: 1, FoodID: 102, MealType: "lunch"}).Error)
	require.NoError(t, db.Create(&catalog.DietPlanFood{ID: 3, DietID: 1, FoodID: 103, MealType: "dinner"}).Error)
}

func countAssignments(t *testing.T, db *gorm.DB, userID uint) int {
	rows, err := NewRepository(db).ListAssignments(userID)
	require.NoError(t, err)
	return len(rows)
}

func TestSyncWithMaterializesPlanLineItems(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithFoods(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "veg"))

	rows, err := NewRepository(db).ListAssignments(7)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, uint(7), r.UserID)
	}
	assert.Equal(t, "breakfast", rows[0].MealType)
	assert.Equal(t, uint(101), rows[0].FoodID)
}

func TestSyncWithIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithFoods(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "veg"))
	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "veg"))
	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "veg"))

	assert.EqualValues(t, 3, countAssignments(t, db, 7), "re-running the same sync never duplicates rows")
}

func TestSyncWithClearsAssignmentsWhenNoPlanResolves(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithFoods(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "veg"))
	require.EqualValues(t, 3, countAssignments(t, db, 7))

	// attribute change with no matching template empties the set
	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryLow, "veg"))
	assert.EqualValues(t, 0, countAssignments(t, db, 7))
}

func TestSyncWithDoesNotTouchOtherUsers(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithFoods(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "veg"))
	require.NoError(t, svc.SyncWith(8, "weight_loss", health.CategoryHigh, "veg"))

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryLow, "veg"))

	assert.EqualValues(t, 0, countAssignments(t, db, 7))
	assert.EqualValues(t, 3, countAssignments(t, db, 8))
}

func TestDailyPlanRequiresProfile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.DailyPlan(99)
	assert.ErrorIs(t, err, ErrProfileRequired)
}
