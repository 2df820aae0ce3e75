package service

import "time"

func (rs *ReportsService) SetClock(now func() time.Time) {
	rs.now = now
}

func (as *AnalyticsService) SetClock(now func() time.Time) {
	as.now = now
}

func (ms *MealsService) SetClock(now func() time.Time) {
	ms.now = now
}
