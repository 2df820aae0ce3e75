package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/repository"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	t.Cleanup(pool.Close)
	meals := repository.NewMealsRepoWithConn(pool)
	profiles := repository.NewProfilesRepoWithConn(pool)
	reports := repository.NewReportsRepoWithConn(pool)
	ctx := context.Background()

	t.Run("profiles", func(t *testing.T) {
		_, err := profiles.GetByUserID(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)

		profile := testProfile()
		require.NoError(t, profiles.Upsert(ctx, &profile))
		profile.WeightKg = 68.5
		profile.Goal = entity.GoalMaintain
		require.NoError(t, profiles.Upsert(ctx, &profile))

		stored, err := profiles.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 68.5, stored.WeightKg)
		assert.Equal(t, entity.GoalMaintain, stored.Goal)

		invalid := testProfile()
		invalid.UserID = uuid.New()
		invalid.Age = 200
		assert.ErrorIs(t, profiles.Upsert(ctx, &invalid), errorvalues.ErrInvalidProfile)
	})

	t.Run("meals", func(t *testing.T) {
		ids := make([]uuid.UUID, 0, 3)
		for i, day := range []int{2, 0, 6} {
			meal := testMeal()
			meal.Date = weekStart.AddDays(day)
			meal.Calories = float64(500 + i*100)
			id, err := meals.Create(ctx, &meal)
			require.NoError(t, err)
			ids = append(ids, id)
		}
		outside := testMeal()
		outside.Date = weekStart.AddDays(7)
		_, err := meals.Create(ctx, &outside)
		require.NoError(t, err)

		week, err := meals.GetByUserAndDateRange(ctx, userID, weekStart, weekStart.AddDays(6))
		require.NoError(t, err)
		require.Len(t, week, 3)
		assert.True(t, week[0].Date.Equal(weekStart))
		assert.True(t, week[2].Date.Equal(weekStart.AddDays(6)))

		stored, err := meals.GetByID(ctx, ids[0])
		require.NoError(t, err)
		stored.FoodName = "soup"
		stored.Date = weekStart.AddDays(5)
		require.NoError(t, meals.Update(ctx, stored))
		updated, err := meals.GetByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "soup", updated.FoodName)
		assert.True(t, updated.Date.Equal(weekStart.AddDays(2)), "update must keep the logged date")

		negative := testMeal()
		negative.Calories = -1
		_, err = meals.Create(ctx, &negative)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidMeal)

		require.NoError(t, meals.Delete(ctx, ids[1]))
		_, err = meals.GetByID(ctx, ids[1])
		assert.ErrorIs(t, err, errorvalues.ErrMealNotFound)
		assert.ErrorIs(t, meals.Delete(ctx, ids[1]), errorvalues.ErrMealNotFound)
	})

	t.Run("reports", func(t *testing.T) {
		older := testReport()
		older.Recommendations = append(older.Recommendations, "Log breakfast on weekends")
		older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
		newer := testReport()
		newer.AIInsights = nil
		newer.Recommendations = []string{}
		newer.Compliance = nil
		newer.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
		for _, r := range []*entity.Report{&older, &newer} {
			id, err := reports.Create(ctx, r)
			require.NoError(t, err)
			r.ID = id
		}

		stored, err := reports.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, older.Summary, stored.Summary)
		assert.Equal(t, older.Compliance, stored.Compliance)
		assert.Equal(t, *older.AIInsights, *stored.AIInsights)
		require.NotEmpty(t, older.Recommendations)
		assert.Equal(t, older.Recommendations, stored.Recommendations)
		assert.True(t, older.CreatedAt.Equal(stored.CreatedAt))

		list, err := reports.GetByUserID(ctx, userID, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.Recommendations, list[1].Recommendations)
		assert.Nil(t, list[0].AIInsights)
		assert.Nil(t, list[0].Compliance)
		assert.NotNil(t, list[0].Recommendations)

		page, err := reports.GetByUserID(ctx, userID, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, older.ID, page[0].ID)

		require.NoError(t, reports.Delete(ctx, older.ID))
		_, err = reports.GetByID(ctx, older.ID)
		assert.ErrorIs(t, err, errorvalues.ErrReportNotFound)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("alimentify"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
