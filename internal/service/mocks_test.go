package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateWrongOwner
	stateInvalid
	stateTimeout
	stateGenerationError
	stateEmpty
)

// Variables for tests
var (
	userID      = uuid.New()
	otherUserID = uuid.New()
	reportID    = uuid.New()
	mealID      = uuid.New()
	fixedNow    = time.Date(2024, time.April, 3, 15, 4, 5, 123456789, time.UTC)
	testProfile = entity.HealthProfile{
		UserID:        userID,
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Sex:           entity.SexMale,
		ActivityLevel: entity.ActivityModerate,
		Goal:          entity.GoalLose,
	}
)

type profileReaderMock struct {
	state mockState
	calls int
}

func (m *profileReaderMock) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.HealthProfile, error) {
	m.calls++
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrProfileNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateInvalid:
		p := testProfile
		p.WeightKg = 0
		return &p, nil
	default:
		p := testProfile
		p.UserID = uid
		return &p, nil
	}
}

func (m *profileReaderMock) Upsert(ctx context.Context, profile *entity.HealthProfile) error {
	m.calls++
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateInvalid:
		return errorvalues.ErrInvalidProfile
	default:
		profile.UpdatedAt = fixedNow
		return nil
	}
}

type reportsRepoMock struct {
	state   mockState
	mu      sync.Mutex
	created []*entity.Report
	deleted []uuid.UUID
}

func (m *reportsRepoMock) Create(ctx context.Context, report *entity.Report) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errors.New("db error")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *report
	m.created = append(m.created, &stored)
	return reportID, nil
}

func (m *reportsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrReportNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		return &entity.Report{ID: id, UserID: otherUserID, Type: entity.ReportWeekly}, nil
	default:
		return &entity.Report{ID: id, UserID: userID, Type: entity.ReportWeekly}, nil
	}
}

func (m *reportsRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Report, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []*entity.Report{{ID: reportID, UserID: uid, Type: entity.ReportDaily}}, nil
}

func (m *reportsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type generatorMock struct {
	state     mockState
	narrative *service.Narrative
	got       service.NarrativeContext
	calls     int
}

func (m *generatorMock) Generate(ctx context.Context, nc service.NarrativeContext) (*service.Narrative, error) {
	m.calls++
	m.got = nc
	switch m.state {
	case stateTimeout:
		// ignores ctx on purpose
		time.Sleep(time.Second)
		return &service.Narrative{Text: "too late"}, nil
	case stateGenerationError:
		return nil, errors.New("quota exceeded")
	case stateEmpty:
		return &service.Narrative{}, nil
	default:
		return m.narrative, nil
	}
}

type notifierMock struct {
	state    mockState
	calls    int
	summary  entity.ReportSummary
	deadline bool
}

func (m *notifierMock) Notify(ctx context.Context, uid uuid.UUID, summary entity.ReportSummary) error {
	m.calls++
	m.summary = summary
	_, m.deadline = ctx.Deadline()
	if m.state == stateDBError {
		return errors.New("broker unreachable")
	}
	return nil
}

type mealsRepoMock struct {
	state   mockState
	meals   []entity.MealEntry
	updated *entity.MealEntry
	deleted []uuid.UUID
	created *entity.MealEntry
}

func (m *mealsRepoMock) Create(ctx context.Context, meal *entity.MealEntry) (uuid.UUID, error) {
	switch m.state {
	case stateDBError:
		return uuid.UUID{}, errors.New("db error")
	case stateInvalid:
		return uuid.UUID{}, errorvalues.ErrInvalidMeal
	}
	stored := *meal
	stored.ID = mealID
	stored.CreatedAt = fixedNow
	m.created = &stored
	return mealID, nil
}

func (m *mealsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrMealNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		return &entity.MealEntry{ID: id, UserID: otherUserID, MealType: entity.MealLunch, Date: weekStart}, nil
	}
	if m.created != nil {
		created := *m.created
		return &created, nil
	}
	return &entity.MealEntry{
		ID:       id,
		UserID:   userID,
		MealType: entity.MealLunch,
		Date:     weekStart,
		FoodName: "soup",
		Macros:   entity.Macros{Calories: 300},
	}, nil
}

func (m *mealsRepoMock) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to entity.Date) ([]entity.MealEntry, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.meals, nil
}

func (m *mealsRepoMock) Update(ctx context.Context, meal *entity.MealEntry) error {
	updated := *meal
	m.updated = &updated
	return nil
}

func (m *mealsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}
