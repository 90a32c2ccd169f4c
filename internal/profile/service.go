package profile

import (
	"context"
	"errors"

	"github.com/Priyankavya/FitnessApp/internal/auditlog"
	"github.com/Priyankavya/FitnessApp/internal/health"
)

var ErrProfileNotFound = errors.New("profile not found")

// Synchronizer materializes one kind of plan assignment (diet or
// workout) for a user from their current profile. Implementations live
// in the diet and workout packages and are injected at route wiring to
// keep the dependency direction one-way.
type Synchronizer interface {
	SyncAssignments(userID uint, p *UserProfile) error
}

type Service interface {
	CreateOrUpdate(ctx context.Context, userID uint, input ProfileInput, ip string) (*UserProfile, error)
	Get(userID uint) (*UserProfile, error)
	AddSynchronizer(s Synchronizer)
}

type service struct {
	repo          Repository
	auditSvc      auditlog.Service
	synchronizers []Synchronizer
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

func (s *service) AddSynchronizer(sync Synchronizer) {
	s.synchronizers = append(s.synchronizers, sync)
}

func (s *service) Get(userID uint) (*UserProfile, error) {
	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// CreateOrUpdate writes the profile with freshly derived BMI/category
// and rebuilds the user's materialized diet and workout assignments.
func (s *service) CreateOrUpdate(ctx context.Context, userID uint, input ProfileInput, ip string) (*UserProfile, error) {
	existing, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	bmi, category := health.Classify(input.Weight, input.Height)

	p := &UserProfile{
		UserID:         userID,
		Age:            input.Age,
		Gender:         input.Gender,
		Height:         input.Height,
		Weight:         input.Weight,
		ActivityLevel:  input.ActivityLevel,
		Goal:           input.Goal,
		FoodPreference: input.FoodPreference,
		Bmi:            bmi,
		WeightCategory: category.Label(),
	}

	var action string
	if existing != nil {
		p.ID = existing.ID
		err = s.repo.Update(p)
		action = "PROFILE_UPDATED"
	} else {
		err = s.repo.Create(p)
		action = "PROFILE_CREATED"
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	auditDetails := map[string]interface{}{
		"profile_id": p.ID,
		"bmi":        p.Bmi,
		"category":   p.WeightCategory,
	}
	if auditErr := s.auditSvc.LogAction(ctx, &userID, action, auditDetails, ip, status); auditErr != nil {
		// audit failure must not fail the operation
	}
	if err != nil {
		return nil, err
	}

	// Assignments always track the current profile. A sync failure is
	// a store failure and surfaces; only a resolution miss is silent.
	for _, sync := range s.synchronizers {
		if err := sync.SyncAssignments(userID, p); err != nil {
			return nil, err
		}
	}

	return p, nil
}
