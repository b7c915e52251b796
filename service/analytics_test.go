package service

import (
	"testing"
	"time"

	"burnout/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsWithScores(scores ...float64) []models.PredictionRecord {
	base := time.Date(2024, 5, 1, 21, 0, 0, 0, time.Local)
	out := make([]models.PredictionRecord, len(scores))
	for i, s := range scores {
		out[i] = models.PredictionRecord{
			Timestamp:    base.Add(time.Duration(i) * 24 * time.Hour),
			TextPreview:  "记录",
			ScreenHours:  6,
			SleepHours:   7,
			BurnoutScore: s,
		}
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.False(t, s.HasTrend)
	assert.Empty(t, s.TrendLabel)
}

func TestSummarize_RisingTrend(t *testing.T) {
	s := Summarize(recordsWithScores(10, 20, 30, 80, 90, 100))

	assert.Equal(t, 6, s.Count)
	assert.InDelta(t, 55.0, s.Mean, 1e-9)
	assert.Equal(t, 100.0, s.Max)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 100.0, s.Latest)
	require.True(t, s.HasTrend)
	assert.InDelta(t, 70.0, s.Trend, 1e-9)
	assert.Equal(t, TrendRising, s.TrendLabel)
	assert.Equal(t, 3, s.HighRiskDays)
	assert.InDelta(t, 50.0, s.HighRiskPercent, 1e-9)
	assert.Equal(t, RiskDistribution{Low: 3, Moderate: 0, High: 3}, s.Distribution)
	assert.Equal(t, 21, s.MostCommonHour)
}

func TestSummarize_TwoRecordsHasNoTrend(t *testing.T) {
	s := Summarize(recordsWithScores(50, 70))
	assert.Equal(t, 2, s.Count)
	assert.False(t, s.HasTrend)
	assert.Equal(t, 1, s.HighRiskDays)
	assert.Equal(t, 70.0, s.Latest)
}

func TestTrend_ExactlyThree(t *testing.T) {
	// 首尾窗口重叠，趋势为 0
	trend, ok := Trend([]float64{40, 50, 60})
	assert.True(t, ok)
	assert.InDelta(t, 0.0, trend, 1e-9)
}

func TestTrendLabel(t *testing.T) {
	assert.Equal(t, TrendRising, TrendLabel(10.1))
	assert.Equal(t, TrendMildIncrease, TrendLabel(10))
	assert.Equal(t, TrendMildIncrease, TrendLabel(5.5))
	assert.Equal(t, TrendStable, TrendLabel(5))
	assert.Equal(t, TrendStable, TrendLabel(-5))
	assert.Equal(t, TrendImproving, TrendLabel(-5.1))
}

func TestHighRiskCount(t *testing.T) {
	assert.Equal(t, 2, HighRiskCount(recordsWithScores(69.99, 70, 85, 10)))
	assert.Equal(t, 0, HighRiskCount(nil))
}

func TestRecent(t *testing.T) {
	recs := recordsWithScores(1, 2, 3, 4)

	r := Recent(recs, 2)
	require.Len(t, r, 2)
	assert.Equal(t, 4.0, r[0].BurnoutScore)
	assert.Equal(t, 3.0, r[1].BurnoutScore)

	all := Recent(recs, 0)
	require.Len(t, all, 4)
	assert.Equal(t, 1.0, all[3].BurnoutScore)

	assert.Len(t, Recent(recs, 10), 4)
}

func TestMostCommonHour_TieTakesEarliest(t *testing.T) {
	recs := []models.PredictionRecord{
		{Timestamp: time.Date(2024, 1, 1, 22, 0, 0, 0, time.Local)},
		{Timestamp: time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)},
	}
	assert.Equal(t, 8, mostCommonHour(recs))
}

func TestSummarize_HighRiskDaysMatchesCount(t *testing.T) {
	recs := recordsWithScores(69.99, 70, 85, 10, 100)
	s := Summarize(recs)
	assert.Equal(t, HighRiskCount(recs), s.HighRiskDays)
	assert.Equal(t, 3, s.HighRiskDays)
	assert.Equal(t, s.Distribution.High, s.HighRiskDays)
}
