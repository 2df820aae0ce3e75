package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(cfg DBConfig) *ProfilesRepository {
	return &ProfilesRepository{
		conn: NewPool(cfg),
	}
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Upsert(ctx context.Context, profile *entity.HealthProfile) error {
	row := pr.conn.QueryRow(ctx, `INSERT INTO health_profiles (user_id, age, weight_kg, height_cm, sex, activity_level, goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET age = EXCLUDED.age, weight_kg = EXCLUDED.weight_kg, height_cm = EXCLUDED.height_cm,
		sex = EXCLUDED.sex, activity_level = EXCLUDED.activity_level, goal = EXCLUDED.goal, updated_at = NOW()
		RETURNING updated_at;`,
		profile.UserID,
		profile.Age,
		profile.WeightKg,
		profile.HeightCm,
		string(profile.Sex),
		string(profile.ActivityLevel),
		string(profile.Goal),
	)
	if err := row.Scan(&profile.UpdatedAt); err != nil {
		if pgCode(err) == pgCheckViolation {
			return errorvalues.ErrInvalidProfile
		}
		return storeError("upserting health profile", err)
	}
	return nil
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.HealthProfile, error) {
	var (
		profile                  entity.HealthProfile
		sex, activityLevel, goal string
	)
	profile.UserID = uid
	row := pr.conn.QueryRow(ctx, `SELECT age, weight_kg, height_cm, sex, activity_level, goal, updated_at FROM health_profiles WHERE user_id = $1;`, uid)
	err := row.Scan(&profile.Age, &profile.WeightKg, &profile.HeightCm, &sex, &activityLevel, &goal, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, storeError("getting health profile", err)
	}
	profile.Sex = entity.Sex(sex)
	profile.ActivityLevel = entity.ActivityLevel(activityLevel)
	profile.Goal = entity.Goal(goal)
	return &profile, nil
}
