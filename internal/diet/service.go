package diet

import (
	"errors"
	"time"

	"github.com/Priyankavya/FitnessApp/internal/catalog"
	"github.com/Priyankavya/FitnessApp/internal/health"
	"github.com/Priyankavya/FitnessApp/internal/profile"
)

var ErrProfileRequired = errors.New("user profile not found")

type Service interface {
	// SyncAssignments implements profile.Synchronizer for the diet kind.
	SyncAssignments(userID uint, p *profile.UserProfile) error
	// SyncWith re-materializes assignments for an explicit attribute
	// tuple; the progress override path uses the active goal's type
	// here instead of the profile goal.
	SyncWith(userID uint, goal string, category health.Category, foodPreference string) error

	DailyPlan(userID uint) ([]catalog.DailyDietEntry, error)
	LogMeal(userID uint, req LogMealRequest) error
	TodayLogs(userID uint) ([]MealLogEntry, error)
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
	return s.SyncWith(userID, p.Goal, category, p.FoodPreference)
}

func (s *service) SyncWith(userID uint, goal string, category health.Category, foodPreference string) error {
	conditionID, err := s.healthRepo.GetConditionID(userID)
	if err != nil {
		return err
	}

	plan, err := s.resolver.ResolveDiet(catalog.DietQuery{
		Goal:           goal,
		Category:       category,
		FoodPreference: foodPreference,
		ConditionID:    conditionID,
	})
	if err != nil {
		return err
	}

	// No plan resolved: the assignment set becomes empty, not an error.
	if plan == nil {
		return s.repo.ReplaceAssignments(userID, nil)
	}

	items, err := s.catalogRepo.GetDietLineItems(plan.ID)
	if err != nil {
		return err
	}

	rows := make([]UserDietFood, 0, len(items))
	for _, item := range items {
		rows = append(rows, UserDietFood{
			FoodID:   item.FoodID,
			MealType: item.MealType,
		})
	}
	return s.repo.ReplaceAssignments(userID, rows)
}

// DailyPlan resolves the caller's current diet plan and renders its
// line items morning to night. The category is re-derived from the
// profile BMI so a stale label can never leak into resolution.
func (s *service) DailyPlan(userID uint) ([]catalog.DailyDietEntry, error) {
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

	plan, err := s.resolver.ResolveDiet(catalog.DietQuery{
		Goal:           p.Goal,
		Category:       health.ClassifyBMI(p.Bmi),
		FoodPreference: p.FoodPreference,
		ConditionID:    conditionID,
	})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return []catalog.DailyDietEntry{}, nil
	}

	return s.catalogRepo.GetDailyDietEntries(plan.ID)
}

func (s *service) LogMeal(userID uint, req LogMealRequest) error {
	return s.repo.CreateMealLog(&MealLog{
		UserID:   userID,
		FoodID:   req.FoodID,
		MealType: req.MealType,
		Quantity: req.Quantity,
		Date:     time.Now().UTC(),
	})
}

// TodayLogs uses the same UTC day boundary as progress readings.
func (s *service) TodayLogs(userID uint) ([]MealLogEntry, error) {
	return s.repo.GetMealLogsForDate(userID, time.Now().UTC())
}
