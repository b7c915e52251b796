package service

import (
	"burnout/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TrendWindow 计算趋势时首尾各取的记录数
const TrendWindow = 3

// 趋势标签
const (
	TrendRising       = "rising"
	TrendMildIncrease = "mild_increase"
	TrendImproving    = "improving"
	TrendStable       = "stable"
)

// RiskDistribution 各风险等级的记录数
type RiskDistribution struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// Summary 历史记录汇总
type Summary struct {
	Count           int              `json:"count" example:"6"`
	Mean            float64          `json:"mean" example:"55"`
	Max             float64          `json:"max" example:"100"`
	Min             float64          `json:"min" example:"10"`
	Latest          float64          `json:"latest" example:"100"`
	HasTrend        bool             `json:"has_trend"`
	Trend           float64          `json:"trend" example:"70"`
	TrendLabel      string           `json:"trend_label,omitempty" example:"rising"`
	HighRiskDays    int              `json:"high_risk_days" example:"3"`
	HighRiskPercent float64          `json:"high_risk_percent" example:"50"`
	Distribution    RiskDistribution `json:"distribution"`
	MostCommonHour  int              `json:"most_common_hour" example:"21"`
}

// Summarize 计算历史记录的汇总指标，记录为空时返回零值
func Summarize(records []models.PredictionRecord) Summary {
	var s Summary
	s.Count = len(records)
	if s.Count == 0 {
		return s
	}

	scores := make([]float64, len(records))
	for i, r := range records {
		scores[i] = r.BurnoutScore
		switch models.RiskLevelOf(r.BurnoutScore) {
		case models.RiskHigh:
			s.Distribution.High++
		case models.RiskModerate:
			s.Distribution.Moderate++
		default:
			s.Distribution.Low++
		}
	}

	s.Mean = stat.Mean(scores, nil)
	s.Max = floats.Max(scores)
	s.Min = floats.Min(scores)
	s.Latest = scores[len(scores)-1]
	s.HighRiskDays = HighRiskCount(records)
	s.HighRiskPercent = round(float64(s.HighRiskDays)/float64(s.Count)*100, 1)
	s.MostCommonHour = mostCommonHour(records)

	if trend, ok := Trend(scores); ok {
		s.HasTrend = true
		s.Trend = trend
		s.TrendLabel = TrendLabel(trend)
	}
	return s
}

// Trend 最近 3 条均值减去最早 3 条均值，不足 3 条时 ok 为 false
func Trend(scores []float64) (float64, bool) {
	if len(scores) < TrendWindow {
		return 0, false
	}
	first := stat.Mean(scores[:TrendWindow], nil)
	last := stat.Mean(scores[len(scores)-TrendWindow:], nil)
	return last - first, true
}

// TrendLabel 趋势分级
func TrendLabel(trend float64) string {
	switch {
	case trend > 10:
		return TrendRising
	case trend > 5:
		return TrendMildIncrease
	case trend < -5:
		return TrendImproving
	default:
		return TrendStable
	}
}

// HighRiskCount 风险值 >= 70 的记录数
func HighRiskCount(records []models.PredictionRecord) int {
	n := 0
	for _, r := range records {
		if r.BurnoutScore >= models.HighRiskThreshold {
			n++
		}
	}
	return n
}

// Recent 最近 n 条记录，按时间倒序；n <= 0 时返回全部
func Recent(records []models.PredictionRecord, n int) []models.PredictionRecord {
	if n <= 0 || n > len(records) {
		n = len(records)
	}
	out := make([]models.PredictionRecord, 0, n)
	for i := len(records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, records[i])
	}
	return out
}

// mostCommonHour 打卡最多的小时，并列时取较小的小时
func mostCommonHour(records []models.PredictionRecord) int {
	var counts [24]int
	for _, r := range records {
		counts[r.Timestamp.Hour()]++
	}
	best := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[best] {
			best = h
		}
	}
	return best
}
