package progress

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Priyankavya/FitnessApp/internal/auditlog"
	"github.com/Priyankavya/FitnessApp/internal/diet"
	"github.com/Priyankavya/FitnessApp/internal/goal"
	"github.com/Priyankavya/FitnessApp/internal/health"
	"github.com/Priyankavya/FitnessApp/internal/profile"
	"github.com/Priyankavya/FitnessApp/internal/workout"
	"github.com/Priyankavya/FitnessApp/utils"
)

// ErrProfileRequired means a reading arrived before any profile exists,
// so there is no stored height to classify against.
var ErrProfileRequired = errors.New("profile must be submitted before recording progress")

type Service interface {
	Record(ctx context.Context, userID uint, weight float64, ip string) (*ProgressLog, error)
	History(userID uint) ([]ProgressLog, error)
	Latest(userID uint) (*ProgressLog, error)

	// goal.ProgressSource
	LatestReading(userID uint) (*goal.Reading, error)
	PurgeUser(userID uint) error
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
	goalSvc     goal.Service
	dietSvc     diet.Service
	workoutSvc  workout.Service
	auditSvc    auditlog.Service
}

func NewService(repo Repository, profileRepo profile.Repository, goalSvc goal.Service, dietSvc diet.Service, workoutSvc workout.Service, auditSvc auditlog.Service) Service {
	return &service{
		repo:        repo,
		profileRepo: profileRepo,
		goalSvc:     goalSvc,
		dietSvc:     dietSvc,
		workoutSvc:  workoutSvc,
		auditSvc:    auditSvc,
	}
}

// Record classifies the new weight against the stored height, upserts
// today's reading, refreshes the profile's derived fields, re-evaluates
// the active goal and re-synchronizes assignments keyed on the goal's
// type with the new category.
func (s *service) Record(ctx context.Context, userID uint, weight float64, ip string) (*ProgressLog, error) {
	p, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileRequired
	}

	bmi := math.Round(health.BMI(weight, p.Height)*100) / 100
	category := health.ClassifyBMI(bmi)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	entry, err := s.repo.UpsertForDate(userID, today, weight, bmi, category.Label())
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateDerived(userID, weight, bmi, category.Label()); err != nil {
		return nil, err
	}

	// Re-evaluation uses the reading just written via LatestReading.
	active, err := s.goalSvc.CheckGoal(ctx, userID, ip)
	if err != nil && !errors.Is(err, goal.ErrEventPublish) {
		return nil, err
	}

	// Override path: while a goal is active, assignments follow the
	// goal's type rather than the profile's stated goal. Preferences
	// still come from the profile. A goal that just completed during
	// this write no longer drives the override.
	if active != nil && active.Status == goal.StatusInProgress {
		if err := s.dietSvc.SyncWith(userID, active.GoalType, category, p.FoodPreference); err != nil {
			return nil, err
		}
		if err := s.workoutSvc.SyncWith(userID, active.GoalType, category, p.ActivityLevel); err != nil {
			return nil, err
		}
		detail := fmt.Sprintf("category=%s", category.Label())
		if err := utils.PublishGoalEvent(ctx, userID, "plan_resynced", active.GoalType, detail); err != nil {
			log.Printf("⚠️ plan_resynced event not delivered for user %d: %v", userID, err)
		}
	}

	details := map[string]interface{}{
		"weight":   weight,
		"bmi":      bmi,
		"category": category.Label(),
	}
	if err := s.auditSvc.LogAction(ctx, &userID, "PROGRESS_RECORDED", details, ip, "success"); err != nil {
		log.Printf("⚠️ audit log failed for PROGRESS_RECORDED: %v", err)
	}

	return entry, nil
}

func (s *service) History(userID uint) ([]ProgressLog, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Latest(userID uint) (*ProgressLog, error) {
	return s.repo.GetLatest(userID)
}

// LatestReading adapts the newest progress row for goal evaluation.
func (s *service) LatestReading(userID uint) (*goal.Reading, error) {
	entry, err := s.repo.GetLatest(userID)
	if err != nil || entry == nil {
		return nil, err
	}
	return &goal.Reading{Weight: entry.Weight, Bmi: entry.Bmi, Date: entry.Date}, nil
}

// PurgeUser removes the user's whole progress history (account reset).
func (s *service) PurgeUser(userID uint) error {
	return s.repo.DeleteAllForUser(userID)
}
