package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/repository"
	"github.com/limbo/alimentify/pkg/entity"
)

type ProfileService struct {
	repo    repository.ProfilesRepositoryI
	targets TargetsConfig
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI, targets TargetsConfig) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfileService{
		repo:    profilesRepo,
		targets: targetsOrDefault(targets),
	}
}

func (ps *ProfileService) UpsertProfile(ctx context.Context, uid uuid.UUID, req *UpsertProfileRequest) (*entity.HealthProfile, *entity.Targets, error) {
	if err := validateRequest(req, errorvalues.ErrInvalidProfile); err != nil {
		return nil, nil, err
	}
	// Parse errors are impossible after validation
	sex, _ := entity.ParseSex(req.Sex)
	activity, _ := entity.ParseActivityLevel(req.ActivityLevel)
	goal, _ := entity.ParseGoal(req.Goal)
	profile := &entity.HealthProfile{
		UserID:        uid,
		Age:           req.Age,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		Sex:           sex,
		ActivityLevel: activity,
		Goal:          goal,
	}
	targets, err := CalculateTargets(ps.targets, profile)
	if err != nil {
		return nil, nil, err
	}
	if err = ps.repo.Upsert(ctx, profile); err != nil {
		if errors.Is(err, errorvalues.ErrInvalidProfile) {
			return nil, nil, err
		}
		return nil, nil, asStoreError("storing health profile", err)
	}
	return profile, targets, nil
}

func (ps *ProfileService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.HealthProfile, error) {
	profile, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, asStoreError("reading health profile", err)
	}
	return profile, nil
}

func (ps *ProfileService) GetTargets(ctx context.Context, uid uuid.UUID) (*entity.Targets, error) {
	profile, err := ps.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	return CalculateTargets(ps.targets, profile)
}
