package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := entity.ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, entity.NewDate(2024, time.February, 29), d)
		assert.Equal(t, "2024-02-29", d.String())
	})
	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "2024-13-01", "29.02.2024", "2023-02-29"} {
			_, err := entity.ParseDate(s)
			assert.Error(t, err, s)
		}
	})
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2024-03-10 23:30 UTC is already the 11th in UTC+9
	ts := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, entity.NewDate(2024, time.March, 11), entity.DateOf(ts))
}

func TestDaysInRange(t *testing.T) {
	start := entity.NewDate(2024, time.January, 1)
	assert.Equal(t, 1, entity.DaysInRange(start, start))
	assert.Equal(t, 7, entity.DaysInRange(start, start.AddDays(6)))
	assert.Equal(t, 366, entity.DaysInRange(start, entity.NewDate(2024, time.December, 31)))
	// range crossing a DST switch in most zones
	assert.Equal(t, 3, entity.DaysInRange(entity.NewDate(2024, time.March, 30), entity.NewDate(2024, time.April, 1)))
	assert.Equal(t, -2, start.DaysUntil(start.AddDays(-2)))
}

func TestCalendarAlignment(t *testing.T) {
	wed := entity.NewDate(2024, time.May, 15)
	assert.Equal(t, entity.NewDate(2024, time.May, 13), wed.StartOfWeek())
	sun := entity.NewDate(2024, time.May, 19)
	assert.Equal(t, entity.NewDate(2024, time.May, 13), sun.StartOfWeek())
	assert.Equal(t, entity.NewDate(2024, time.May, 1), wed.StartOfMonth())
	assert.Equal(t, entity.NewDate(2024, time.January, 1), wed.StartOfYear())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Day entity.Date `json:"day"`
	}
	body, err := sonic.Marshal(payload{Day: entity.NewDate(2024, time.June, 3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-06-03"}`, string(body))

	var p payload
	require.NoError(t, sonic.Unmarshal([]byte(`{"day":"2024-06-04"}`), &p))
	assert.Equal(t, entity.NewDate(2024, time.June, 4), p.Day)

	assert.Error(t, sonic.Unmarshal([]byte(`{"day":"04/06/2024"}`), &p))
}
