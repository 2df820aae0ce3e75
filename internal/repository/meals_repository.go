package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
)

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(cfg DBConfig) *MealsRepository {
	return &MealsRepository{
		conn: NewPool(cfg),
	}
}

func NewMealsRepoWithConn(conn PgConnection) *MealsRepository {
	mustPing(conn, "mealsRepo")
	return &MealsRepository{
		conn: conn,
	}
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.MealEntry) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO meal_logs (user_id, meal_type, log_date, food_name, calories, protein_g, carbs_g, fat_g, fiber_g, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		meal.UserID,
		string(meal.MealType),
		meal.Date.Time,
		meal.FoodName,
		meal.Calories,
		meal.ProteinG,
		meal.CarbsG,
		meal.FatG,
		meal.FiberG,
		meal.Notes,
	)
	if err := row.Scan(&id); err != nil {
		if pgCode(err) == pgCheckViolation {
			return uuid.UUID{}, errorvalues.ErrInvalidMeal
		}
		return uuid.UUID{}, storeError("creating meal", err)
	}
	return id, nil
}

func (mr *MealsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MealEntry, error) {
	var (
		meal     entity.MealEntry
		mealType string
		logDate  time.Time
	)
	meal.ID = id
	row := mr.conn.QueryRow(ctx, `SELECT user_id, meal_type, log_date, food_name, calories, protein_g, carbs_g, fat_g, fiber_g, notes, created_at
		FROM meal_logs WHERE id = $1;`, id)
	err := row.Scan(&meal.UserID, &mealType, &logDate, &meal.FoodName,
		&meal.Calories, &meal.ProteinG, &meal.CarbsG, &meal.FatG, &meal.FiberG,
		&meal.Notes, &meal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMealNotFound
		}
		return nil, storeError("getting meal by id", err)
	}
	meal.MealType = entity.MealType(mealType)
	meal.Date = entity.DateOf(logDate)
	return &meal, nil
}

func (mr *MealsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to entity.Date) ([]entity.MealEntry, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, meal_type, log_date, food_name, calories, protein_g, carbs_g, fat_g, fiber_g, notes, created_at
		FROM meal_logs WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3 ORDER BY log_date, created_at;`,
		uid, from.Time, to.Time)
	if err != nil {
		return nil, storeError("getting meals for period", err)
	}
	defer rows.Close()
	meals := make([]entity.MealEntry, 0)
	for rows.Next() {
		var (
			m        entity.MealEntry
			mealType string
			logDate  time.Time
		)
		err = rows.Scan(&m.ID, &mealType, &logDate, &m.FoodName,
			&m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.FiberG,
			&m.Notes, &m.CreatedAt)
		if err != nil {
			return nil, storeError("meal row parsing", err)
		}
		m.UserID = uid
		m.MealType = entity.MealType(mealType)
		m.Date = entity.DateOf(logDate)
		meals = append(meals, m)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("unexpected meal rows error", err)
	}
	return meals, nil
}

func (mr *MealsRepository) Update(ctx context.Context, meal *entity.MealEntry) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE meal_logs SET meal_type = $1, food_name = $2, calories = $3, protein_g = $4, carbs_g = $5, fat_g = $6, fiber_g = $7, notes = $8 WHERE id = $9;`,
		string(meal.MealType),
		meal.FoodName,
		meal.Calories,
		meal.ProteinG,
		meal.CarbsG,
		meal.FatG,
		meal.FiberG,
		meal.Notes,
		meal.ID,
	)
	if err != nil {
		if pgCode(err) == pgCheckViolation {
			return errorvalues.ErrInvalidMeal
		}
		return storeError("updating meal", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func (mr *MealsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM meal_logs WHERE id = $1;`, id)
	if err != nil {
		return storeError("deleting meal", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}
