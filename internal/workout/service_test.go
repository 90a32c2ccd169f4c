package workout

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
		&catalog.Workout{}, &catalog.WorkoutPlan{}, &catalog.WorkoutPlanDetail{},
		&profile.UserProfile{},
		&UserWorkout{},
	))
	for _, table := range []string{"user_health_conditions", "workout_plans", "workout_plan_details", "user_profiles", "user_workouts"} {
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

func seedPlanWithDays(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&catalog.WorkoutPlan{
		ID: 1, Goal: "weight_loss", WeightCategory: "high",
		ActivityLevel: "moderate", HealthConditionID: health.ConditionNone,
	}).Error)
	require.NoError(t, db.Create(&catalog.WorkoutPlanDetail{ID: 1, PlanID: 1, WorkoutID: 201, DayName: "Monday", DurationMinutes: 30}).Error)
	require.NoError(t, db.Create(&catalog.WorkoutPlanDetail{ID: 2, PlanID: 1, WorkoutID: 202, DayName: "Wednesday", DurationMinutes: 45}).Error)
}

func countAssignments(t *testing.T, db *gorm.DB, userID uint) int {
	rows, err := NewRepository(db).ListAssignments(userID)
	require.NoError(t, err)
	return len(rows)
}

func TestSyncWithMaterializesPlanLineItems(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithDays(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "moderate"))

	rows, err := NewRepository(db).ListAssignments(7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, uint(7), r.UserID)
	}
	assert.Equal(t, "Monday", rows[0].DayName)
	assert.Equal(t, 30, rows[0].DurationMinutes)
}

func TestSyncWithIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithDays(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "moderate"))
	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "moderate"))
	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "moderate"))

	assert.Equal(t, 2, countAssignments(t, db, 7), "re-running the same sync never duplicates rows")
}

func TestSyncWithClearsAssignmentsWhenNoPlanResolves(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithDays(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "moderate"))
	require.Equal(t, 2, countAssignments(t, db, 7))

	// activity change with no matching template empties the set
	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "sedentary"))
	assert.Equal(t, 0, countAssignments(t, db, 7))
}

func TestSyncWithDoesNotTouchOtherUsers(t *testing.T) {
	svc, db := newTestService(t)
	seedPlanWithDays(t, db)

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "moderate"))
	require.NoError(t, svc.SyncWith(8, "weight_loss", health.CategoryHigh, "moderate"))

	require.NoError(t, svc.SyncWith(7, "weight_loss", health.CategoryHigh, "sedentary"))

	assert.Equal(t, 0, countAssignments(t, db, 7))
	assert.Equal(t, 2, countAssignments(t, db, 8))
}

func TestWeeklyPlanRequiresProfile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.WeeklyPlan(99)
	assert.ErrorIs(t, err, ErrProfileRequired)
}
