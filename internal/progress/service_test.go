package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Priyankavya/FitnessApp/internal/auditlog"
	"github.com/Priyankavya/FitnessApp/internal/catalog"
	"github.com/Priyankavya/FitnessApp/internal/diet"
	"github.com/Priyankavya/FitnessApp/internal/goal"
	"github.com/Priyankavya/FitnessApp/internal/health"
	"github.com/Priyankavya/FitnessApp/internal/profile"
	"github.com/Priyankavya/FitnessApp/internal/workout"
)

type fixture struct {
	db          *gorm.DB
	progressSvc Service
	goalSvc     goal.Service
}

func newFixture(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&auditlog.AuditLog{},
		&health.HealthCondition{}, &health.UserHealthCondition{},
		&catalog.Food{}, &catalog.Workout{},
		&catalog.DietPlan{}, &catalog.DietPlanFood{},
		&catalog.WorkoutPlan{}, &catalog.WorkoutPlanDetail{},
		&profile.UserProfile{},
		&diet.UserDietFood{}, &diet.MealLog{},
		&workout.UserWorkout{},
		&goal.Goal{},
		&ProgressLog{},
	))
	for _, table := range []string{
		"audit_logs", "user_health_conditions", "diet_plans", "diet_plan_foods",
		"workout_plans", "workout_plan_details", "user_profiles",
		"user_diet_foods", "user_workouts", "goals", "progress_logs",
	} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	auditSvc := auditlog.NewService(auditlog.NewRepository(db))
	profileRepo := profile.NewRepository(db)
	healthRepo := health.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	resolver := catalog.NewResolver(catalogRepo)

	dietSvc := diet.NewService(diet.NewRepository(db), profileRepo, healthRepo, catalogRepo, resolver)
	workoutSvc := workout.NewService(workout.NewRepository(db), profileRepo, healthRepo, catalogRepo, resolver)
	goalSvc := goal.NewService(goal.NewRepository(db), profileRepo, auditSvc)

	progressSvc := NewService(NewRepository(db), profileRepo, goalSvc, dietSvc, workoutSvc, auditSvc)
	goalSvc.SetProgressSource(progressSvc)

	return &fixture{db: db, progressSvc: progressSvc, goalSvc: goalSvc}
}

func (f *fixture) seedProfile(t *testing.T, userID uint, heightCm, weightKg float64) {
	bmi, category := health.Classify(weightKg, heightCm)
	require.NoError(t, f.db.Create(&profile.UserProfile{
		UserID: userID, Age: 30, Gender: "female",
		Height: heightCm, Weight: weightKg,
		ActivityLevel: "moderate", Goal: "fitness", FoodPreference: "veg",
		Bmi: bmi, WeightCategory: category.Label(),
	}).Error)
}

func TestRecordRequiresProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.progressSvc.Record(context.Background(), 1, 70, "127.0.0.1")
	assert.ErrorIs(t, err, ErrProfileRequired)
}

func TestRecordClassifiesWithStoredHeight(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 75)

	entry, err := f.progressSvc.Record(context.Background(), 1, 53, "127.0.0.1")
	require.NoError(t, err)
	assert.InDelta(t, 18.34, entry.Bmi, 0.01)
	assert.Equal(t, "low", entry.Category)
}

func TestRecordSameDayUpserts(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 82)
	ctx := context.Background()

	first, err := f.progressSvc.Record(ctx, 1, 80, "127.0.0.1")
	require.NoError(t, err)

	second, err := f.progressSvc.Record(ctx, 1, 78, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same-day reading overwrites, never duplicates")
	assert.Equal(t, 78.0, second.Weight)

	var n int64
	require.NoError(t, f.db.Model(&ProgressLog{}).Where("user_id = ?", 1).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRecordUpdatesDenormalizedProfile(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 82)

	entry, err := f.progressSvc.Record(context.Background(), 1, 68, "127.0.0.1")
	require.NoError(t, err)

	var p profile.UserProfile
	require.NoError(t, f.db.Where("user_id = ?", 1).First(&p).Error)
	assert.Equal(t, 68.0, p.Weight)
	assert.Equal(t, entry.Bmi, p.Bmi)
	assert.Equal(t, entry.Category, p.WeightCategory)
}

func TestRecordDrivesGoalToCompletion(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 75)
	ctx := context.Background()

	g, err := f.goalSvc.SetGoal(ctx, 1, goal.SetGoalRequest{GoalType: "weight_loss", TargetValue: 68}, "127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, goal.StatusInProgress, g.Status)

	_, err = f.progressSvc.Record(ctx, 1, 72, "127.0.0.1")
	require.NoError(t, err)
	var stored goal.Goal
	require.NoError(t, f.db.First(&stored, g.ID).Error)
	assert.Equal(t, goal.StatusInProgress, stored.Status)

	_, err = f.progressSvc.Record(ctx, 1, 68, "127.0.0.1")
	require.NoError(t, err)
	require.NoError(t, f.db.First(&stored, g.ID).Error)
	assert.Equal(t, goal.StatusCompleted, stored.Status)

	// further readings never reopen it
	_, err = f.progressSvc.Record(ctx, 1, 65, "127.0.0.1")
	require.NoError(t, err)
	require.NoError(t, f.db.First(&stored, g.ID).Error)
	assert.Equal(t, goal.StatusCompleted, stored.Status)
}

func TestRecordOverrideResyncUsesGoalType(t *testing.T) {
	f := newFixture(t)
	// profile goal stays "fitness"; active goal is weight_loss
	f.seedProfile(t, 1, 170, 82)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&catalog.DietPlan{
		ID: 1, Goal: "weight_loss", WeightCategory: "overweight",
		FoodPreference: "veg", ConditionID: health.ConditionNone,
	}).Error)
	require.NoError(t, f.db.Create(&catalog.DietPlanFood{ID: 1, DietID: 1, FoodID: 101, MealType: "breakfast"}).Error)

	_, err := f.goalSvc.SetGoal(ctx, 1, goal.SetGoalRequest{GoalType: "weight_loss", TargetValue: 60}, "127.0.0.1")
	require.NoError(t, err)

	// force the profile goal out of step to prove resolution keys on
	// the active goal's type
	require.NoError(t, f.db.Model(&profile.UserProfile{}).Where("user_id = ?", 1).Update("goal", "fitness").Error)

	_, err = f.progressSvc.Record(ctx, 1, 80, "127.0.0.1")
	require.NoError(t, err)

	var rows []diet.UserDietFood
	require.NoError(t, f.db.Where("user_id = ?", 1).Find(&rows).Error)
	require.Len(t, rows, 1, "assignments follow the goal type, not the profile goal")
	assert.Equal(t, uint(101), rows[0].FoodID)
}

func TestRecordSkipsOverrideWhenGoalCompletesInSameWrite(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 75)
	ctx := context.Background()

	// 68kg at 170cm classifies normal; this template would match the
	// override tuple if it ran
	require.NoError(t, f.db.Create(&catalog.DietPlan{
		ID: 1, Goal: "weight_loss", WeightCategory: "normal",
		FoodPreference: "veg", ConditionID: health.ConditionNone,
	}).Error)
	require.NoError(t, f.db.Create(&catalog.DietPlanFood{ID: 1, DietID: 1, FoodID: 101, MealType: "breakfast"}).Error)

	g, err := f.goalSvc.SetGoal(ctx, 1, goal.SetGoalRequest{GoalType: "weight_loss", TargetValue: 70}, "127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, goal.StatusInProgress, g.Status)

	_, err = f.progressSvc.Record(ctx, 1, 68, "127.0.0.1")
	require.NoError(t, err)

	var stored goal.Goal
	require.NoError(t, f.db.First(&stored, g.ID).Error)
	require.Equal(t, goal.StatusCompleted, stored.Status)

	var n int64
	require.NoError(t, f.db.Model(&diet.UserDietFood{}).Where("user_id = ?", 1).Count(&n).Error)
	assert.EqualValues(t, 0, n, "a goal completed by this reading no longer drives the override")
}

func TestRecordWithoutGoalSkipsOverride(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 82)

	require.NoError(t, f.db.Create(&catalog.DietPlan{
		ID: 1, Goal: "weight_loss", WeightCategory: "overweight",
		FoodPreference: "veg", ConditionID: health.ConditionNone,
	}).Error)
	require.NoError(t, f.db.Create(&catalog.DietPlanFood{ID: 1, DietID: 1, FoodID: 101, MealType: "breakfast"}).Error)

	_, err := f.progressSvc.Record(context.Background(), 1, 80, "127.0.0.1")
	require.NoError(t, err)

	var n int64
	require.NoError(t, f.db.Model(&diet.UserDietFood{}).Where("user_id = ?", 1).Count(&n).Error)
	assert.EqualValues(t, 0, n, "no active goal, no override resolution")
}

func TestHistoryAndLatest(t *testing.T) {
	f := newFixture(t)
	f.seedProfile(t, 1, 170, 82)
	ctx := context.Background()

	_, err := f.progressSvc.Record(ctx, 1, 80, "127.0.0.1")
	require.NoError(t, err)

	history, err := f.progressSvc.History(1)
	require.NoError(t, err)
	require.Len(t, history, 1)

	latest, err := f.progressSvc.Latest(1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 80.0, latest.Weight)

	latest, err = f.progressSvc.Latest(999)
	require.NoError(t, err)
	assert.Nil(t, latest)
}
