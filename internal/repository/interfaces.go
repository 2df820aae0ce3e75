package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/alimentify/pkg/entity"
)

type MealsRepositoryI interface {
	// Creates new meal entry. ID and CreatedAt are assigned by database
	Create(ctx context.Context, meal *entity.MealEntry) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error)
	// Lists every meal of user with date in [from, to], ordered by date and creation time
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to entity.Date) ([]entity.MealEntry, error)
	// Updates meal by ID. Date is never changed
	Update(ctx context.Context, meal *entity.MealEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Creates or replaces user's profile wholesale
	Upsert(ctx context.Context, profile *entity.HealthProfile) error
	// Returns ErrProfileNotFound if user has no profile
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.HealthProfile, error)
}

type ReportsRepositoryI interface {
	// Stores the report snapshot in a single write and returns its ID
	Create(ctx context.Context, report *entity.Report) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	// Lists reports owned by user, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
