package service

import (
	"math"
	"strings"

	"github.com/limbo/alimentify/pkg/entity"
)

// NarrativeContext is everything the generator gets to see about a period.
type NarrativeContext struct {
	ReportType     entity.ReportType    `json:"report_type"`
	StartDate      entity.Date          `json:"start_date"`
	EndDate        entity.Date          `json:"end_date"`
	DayCount       int                  `json:"day_count"`
	DaysLogged     int                  `json:"days_logged"`
	AdherenceRatio float64              `json:"adherence_ratio"`
	Summary        entity.PeriodSummary `json:"summary"`
	Targets        *entity.Targets      `json:"targets,omitempty"`
	Compliance     *entity.Compliance   `json:"compliance,omitempty"`
}

type Narrative struct {
	Text            string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// NarrativeOutcome is either an available narrative or the reason there is none.
type NarrativeOutcome struct {
	narrative *Narrative
	reason    error
}

func narrativeAvailable(n *Narrative) NarrativeOutcome {
	return NarrativeOutcome{narrative: n}
}

func narrativeUnavailable(reason error) NarrativeOutcome {
	return NarrativeOutcome{reason: reason}
}

func (o NarrativeOutcome) Available() bool {
	return o.narrative != nil
}

func (o NarrativeOutcome) Reason() error {
	return o.reason
}

// Insights is nil when no narrative was produced.
func (o NarrativeOutcome) Insights() *string {
	if o.narrative == nil {
		return nil
	}
	text := o.narrative.Text
	return &text
}

// Recommendations are trimmed, blank ones dropped, at most limit kept.
func (o NarrativeOutcome) Recommendations(limit int) []string {
	recs := make([]string, 0)
	if o.narrative == nil {
		return recs
	}
	for _, r := range o.narrative.Recommendations {
		if limit > 0 && len(recs) == limit {
			break
		}
		if r = strings.TrimSpace(r); r != "" {
			recs = append(recs, r)
		}
	}
	return recs
}

const (
	onTargetTolerance   = 0.10
	goalCompliancePct   = 80
	goalAdherenceRatio  = 0.7
	maxCompliancePct    = 100
	compliancePrecision = 1
)

// BuildCompliance compares period averages with the targets. Percentages are capped at 100.
func BuildCompliance(goal entity.Goal, stats *entity.PeriodStats, targets *entity.Targets) *entity.Compliance {
	if stats == nil || targets == nil {
		return nil
	}
	s := stats.Summary
	c := &entity.Compliance{
		Goal:            goal,
		CaloriesPercent: compliancePercent(s.AvgCalories, targets.DailyCalories),
		ProteinPercent:  compliancePercent(s.AvgProtein, targets.ProteinG),
		CarbsPercent:    compliancePercent(s.AvgCarbs, targets.CarbsG),
		FatPercent:      compliancePercent(s.AvgFat, targets.FatG),
	}
	if targets.DailyCalories > 0 {
		target := float64(targets.DailyCalories)
		for _, d := range stats.DailyData {
			if d.MealCount > 0 && math.Abs(d.Calories-target) <= target*onTargetTolerance {
				c.DaysOnTarget++
			}
		}
	}
	mean := (c.CaloriesPercent + c.ProteinPercent + c.CarbsPercent + c.FatPercent) / 4
	c.GoalAchieved = mean >= goalCompliancePct && adherence(s) >= goalAdherenceRatio
	c.BestDayDate, c.BestDayCompliance = bestDay(stats.DailyData, targets)
	return c
}

// bestDay keeps the first logged day with the highest mean of its capped macro percentages.
func bestDay(days []entity.DayTotals, targets *entity.Targets) (*entity.Date, *float64) {
	var (
		best  float64
		found *entity.Date
	)
	for i := range days {
		d := days[i]
		if d.MealCount == 0 {
			continue
		}
		score := (dayPercent(d.Calories, targets.DailyCalories) +
			dayPercent(d.ProteinG, targets.ProteinG) +
			dayPercent(d.CarbsG, targets.CarbsG) +
			dayPercent(d.FatG, targets.FatG)) / 4
		if score > best {
			best = score
			date := d.Date
			found = &date
		}
	}
	if found == nil {
		return nil, nil
	}
	best = roundTo(best, compliancePrecision)
	return found, &best
}

func dayPercent(value float64, target int) float64 {
	if target <= 0 {
		return maxCompliancePct
	}
	return math.Min(maxCompliancePct, value/float64(target)*100)
}

func compliancePercent(avg float64, target int) float64 {
	if target <= 0 {
		return maxCompliancePct
	}
	return roundTo(math.Min(maxCompliancePct, avg/float64(target)*100), compliancePrecision)
}

func adherence(s entity.PeriodSummary) float64 {
	if s.TotalDays == 0 {
		return 0
	}
	return roundTo(float64(s.DaysLogged)/float64(s.TotalDays), 2)
}

func newNarrativeContext(rt entity.ReportType, stats *entity.PeriodStats, targets *entity.Targets, compliance *entity.Compliance) NarrativeContext {
	return NarrativeContext{
		ReportType:     rt,
		StartDate:      stats.StartDate,
		EndDate:        stats.EndDate,
		DayCount:       stats.Summary.TotalDays,
		DaysLogged:     stats.Summary.DaysLogged,
		AdherenceRatio: adherence(stats.Summary),
		Summary:        stats.Summary,
		Targets:        targets,
		Compliance:     compliance,
	}
}
