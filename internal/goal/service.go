package goal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Priyankavya/FitnessApp/internal/auditlog"
	"github.com/Priyankavya/FitnessApp/internal/profile"
	"github.com/Priyankavya/FitnessApp/utils"
)

var (
	ErrNoGoal = errors.New("no goal found")
	// ErrEventPublish wraps a kafka delivery failure. The state change
	// has already committed when this is returned.
	ErrEventPublish = errors.New("goal event publish failed")
)

// ProgressSource supplies the latest body-measurement reading and owns
// the progress rows removed on account reset. Implemented by the
// progress service and injected at route wiring; the goal package never
// imports progress.
type ProgressSource interface {
	LatestReading(userID uint) (*Reading, error)
	PurgeUser(userID uint) error
}

type Service interface {
	SetGoal(ctx context.Context, userID uint, req SetGoalRequest, ip string) (*Goal, error)
	MyGoal(userID uint) (*Goal, error)
	// CheckGoal re-evaluates the active goal against the latest
	// reading. Returns nil, nil when the user has no active goal.
	CheckGoal(ctx context.Context, userID uint, ip string) (*Goal, error)
	ResetAll(ctx context.Context, userID uint, ip string) error
	SetProgressSource(ps ProgressSource)
}

type service struct {
	repo        Repository
	profileRepo profile.Repository
	auditSvc    auditlog.Service
	progress    ProgressSource
}

func NewService(repo Repository, profileRepo profile.Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, profileRepo: profileRepo, auditSvc: auditSvc}
}

func (s *service) SetProgressSource(ps ProgressSource) {
	s.progress = ps
}

// SetGoal supersedes any active goal, records the new one and evaluates
// it immediately, so a target already met by the latest reading
// completes on the spot.
func (s *service) SetGoal(ctx context.Context, userID uint, req SetGoalRequest, ip string) (*Goal, error) {
	goalType := strings.ToLower(strings.TrimSpace(req.GoalType))

	if err := s.repo.CloseActive(userID); err != nil {
		return nil, err
	}

	g := &Goal{
		UserID:      userID,
		GoalType:    goalType,
		TargetValue: req.TargetValue,
		StartDate:   time.Now().UTC().Truncate(24 * time.Hour),
		Status:      StatusInProgress,
	}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}

	// Keep the profile's denormalized goal in step.
	if err := s.profileRepo.UpdateGoal(userID, goalType); err != nil {
		log.Printf("⚠️ failed to sync goal onto profile for user %d: %v", userID, err)
	}

	s.audit(ctx, userID, "GOAL_CREATED", map[string]interface{}{
		"goal_id":      g.ID,
		"goal_type":    g.GoalType,
		"target_value": g.TargetValue,
	}, ip)

	var pubErr error
	if err := utils.PublishGoalEvent(ctx, userID, "goal_created", g.GoalType, fmt.Sprintf("target=%.2f", g.TargetValue)); err != nil {
		pubErr = fmt.Errorf("%w: %v", ErrEventPublish, err)
	}

	if err := s.evaluate(ctx, g, ip); err != nil {
		return g, err
	}
	return g, pubErr
}

// MyGoal returns the active goal, falling back to the most recently
// created one so a freshly completed goal stays visible.
func (s *service) MyGoal(userID uint) (*Goal, error) {
	g, err := s.repo.GetActive(userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		g, err = s.repo.GetMostRecent(userID)
		if err != nil {
			return nil, err
		}
	}
	if g == nil {
		return nil, ErrNoGoal
	}
	return g, nil
}

func (s *service) CheckGoal(ctx context.Context, userID uint, ip string) (*Goal, error) {
	g, err := s.repo.GetActive(userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	if err := s.evaluate(ctx, g, ip); err != nil {
		return g, err
	}
	return g, nil
}

// evaluate completes the goal when the latest reading meets the target.
// Without a progress source or a reading it is a no-op.
func (s *service) evaluate(ctx context.Context, g *Goal, ip string) error {
	if s.progress == nil || g.Status != StatusInProgress {
		return nil
	}
	reading, err := s.progress.LatestReading(g.UserID)
	if err != nil {
		return err
	}
	if reading == nil || !TargetMet(g.GoalType, g.TargetValue, *reading) {
		return nil
	}

	if err := s.repo.SetStatus(g.ID, StatusCompleted); err != nil {
		return err
	}
	g.Status = StatusCompleted

	s.audit(ctx, g.UserID, "GOAL_COMPLETED", map[string]interface{}{
		"goal_id":   g.ID,
		"goal_type": g.GoalType,
		"weight":    reading.Weight,
		"bmi":       reading.Bmi,
	}, ip)

	if err := utils.PublishGoalEvent(ctx, g.UserID, "goal_completed", g.GoalType, fmt.Sprintf("weight=%.2f bmi=%.2f", reading.Weight, reading.Bmi)); err != nil {
		return fmt.Errorf("%w: %v", ErrEventPublish, err)
	}
	return nil
}

// ResetAll wipes the user's goals and progress history. Profile and
// assignments stay untouched.
func (s *service) ResetAll(ctx context.Context, userID uint, ip string) error {
	if err := s.repo.DeleteAllForUser(userID); err != nil {
		return err
	}
	if s.progress != nil {
		if err := s.progress.PurgeUser(userID); err != nil {
			return err
		}
	}
	s.audit(ctx, userID, "ACCOUNT_DATA_RESET", map[string]interface{}{}, ip)
	return nil
}

func (s *service) audit(ctx context.Context, userID uint, action string, details map[string]interface{}, ip string) {
	if err := s.auditSvc.LogAction(ctx, &userID, action, details, ip, "success"); err != nil {
		log.Printf("⚠️ audit log failed for %s: %v", action, err)
	}
}
