package workout

import (
	"errors"

	"github.com/Priyankavya/FitnessApp/internal/catalog"
	"github.com/Priyankavya/FitnessApp/internal/health"
	"github.com/Priyankavya/FitnessApp/internal/profile"
)

var ErrProfileRequired = errors.New("user profile not found")

type Service interface {
	// SyncAssignments implements profile.Synchronizer for the workout kind.
	SyncAssignments(userID uint, p *profile.UserProfile) error
	// SyncWith re-materializes assignments for an explicit attribute
	// tuple (progress override path).
	SyncWith(userID uint, goal string, category health.Category, activityLevel string) error

	WeeklyPlan(userID uint) ([]catalog.WeeklyWorkoutEntry, error)
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
	healthRepo  health.Repository
	catalogRepo catalog.Repository
	resolver    *catalog.Resolver
}

func NewService(repo Repository, profileRepo profile.Repository, healthRepo health.Repository, catalogRepo catalog.Repository, resolver *catalog.Resolver) Service {
	return &service{
		repo:        repo,
		profileRepo: profileRepo,
		healthRepo:  healthRepo,
		catalogRepo: catalogRepo,
		resolver:    resolver,
	}
}

func (s *service) SyncAssignments(userID uint, p *profile.UserProfile) error {
	category := health.CategoryFromLabel(p.WeightCategory)
	return s.SyncWith(userID, p.Goal, category, p.ActivityLevel)
}

func (s *service) SyncWith(userID uint, goal string, category health.Category, activityLevel string) error {
	conditionID, err := s.healthRepo.GetConditionID(userID)
	if err != nil {
		return err
	}

	plan, err := s.resolver.ResolveWorkout(catalog.WorkoutQuery{
		Goal:          goal,
		Category:      category,
		ActivityLevel: activityLevel,
		ConditionID:   conditionID,
	})
	if err != nil {
		return err
	}

	if plan == nil {
		return s.repo.ReplaceAssignments(userID, nil)
	}

	items, err := s.catalogRepo.GetWorkoutLineItems(plan.ID)
	if err != nil {
		return err
	}

	rows := make([]UserWorkout, 0, len(items))
	for _, item := range items {
		rows = append(rows, UserWorkout{
			WorkoutID:       item.WorkoutID,
			DayName:         item.DayName,
			DurationMinutes: item.DurationMinutes,
		})
	}
	return s.repo.ReplaceAssignments(userID, rows)
}

// WeeklyPlan resolves the caller's current workout plan and renders
// its line items Monday through Sunday.
func (s *service) WeeklyPlan(userID uint) ([]catalog.WeeklyWorkoutEntry, error) {
	p, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileRequired
	}

	conditionID, err := s.healthRepo.GetConditionID(userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.resolver.ResolveWorkout(catalog.WorkoutQuery{
		Goal:          p.Goal,
		Category:      health.CategoryFromLabel(p.WeightCategory),
		ActivityLevel: p.ActivityLevel,
		ConditionID:   conditionID,
	})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return []catalog.WeeklyWorkoutEntry{}, nil
	}

	return s.catalogRepo.GetWeeklyWorkoutEntries(plan.ID)
}
