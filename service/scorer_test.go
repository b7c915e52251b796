package service

import (
	"math"
	"testing"

	"burnout/models"

	"github.com/stretchr/testify/assert"
)

func TestScreenFactor(t *testing.T) {
	cases := map[float64]float64{
		-3:   0.2,
		0:    0.2,
		4:    0.2,
		4.01: 0.4,
		6:    0.4,
		7.5:  0.6,
		8:    0.6,
		10:   0.8,
		10.5: 1.0,
		16:   1.0,
		40:   1.0,
	}
	for hours, want := range cases {
		assert.Equal(t, want, ScreenFactor(hours), "screen_hours=%v", hours)
	}
}

func TestSleepFactor(t *testing.T) {
	cases := map[float64]float64{
		12:   0.1,
		8:    0.1,
		7.99: 0.3,
		7:    0.3,
		6:    0.5,
		5:    0.7,
		4.99: 0.9,
		0:    0.9,
		-1:   0.9,
	}
	for hours, want := range cases {
		assert.Equal(t, want, SleepFactor(hours), "sleep_hours=%v", hours)
	}
}

func TestFactors_Monotonic(t *testing.T) {
	prevScreen := ScreenFactor(-1)
	prevSleep := SleepFactor(-1)
	for h := -1.0; h <= 20; h += 0.25 {
		s := ScreenFactor(h)
		assert.GreaterOrEqual(t, s, prevScreen, "screen factor decreased at %v", h)
		prevScreen = s

		sl := SleepFactor(h)
		assert.LessOrEqual(t, sl, prevSleep, "sleep factor increased at %v", h)
		prevSleep = sl
	}
}

func TestScore_Examples(t *testing.T) {
	a := Score(0.5, 6, 7)
	assert.Equal(t, 0.4, a.ScreenFactor)
	assert.Equal(t, 0.3, a.SleepFactor)
	assert.InDelta(t, 42.5, a.RiskPercentage, 1e-9)
	assert.Equal(t, 0.5, a.EmotionalIntensity)
	assert.Equal(t, models.RiskModerate, a.RiskLevel)

	b := Score(0.9, 12, 4)
	assert.Equal(t, 1.0, b.ScreenFactor)
	assert.Equal(t, 0.9, b.SleepFactor)
	assert.InDelta(t, 93.5, b.RiskPercentage, 1e-9)
	assert.Equal(t, models.RiskHigh, b.RiskLevel)
	assert.Equal(t, "立即行动", b.Recommendations.Title)
}

func TestScore_Bounds(t *testing.T) {
	hours := []float64{-10, 0, 3, 5, 6.5, 8, 9, 11, 16, 100}
	for i := 0; i <= 10; i++ {
		intensity := float64(i) / 10
		for _, screen := range hours {
			for _, sleep := range hours {
				pct := Score(intensity, screen, sleep).RiskPercentage
				assert.GreaterOrEqual(t, pct, 0.0)
				assert.LessOrEqual(t, pct, 100.0)
			}
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	assert.Equal(t, Score(0.123456, 7.3, 5.5), Score(0.123456, 7.3, 5.5))
}

func TestScore_Rounding(t *testing.T) {
	a := Score(0.123456789, 3, 9)
	assert.Equal(t, 0.1235, a.EmotionalIntensity)
	// 0.45*0.123456789 + 0.35*0.2 + 0.2*0.1 = 0.145555555
	assert.InDelta(t, 14.56, a.RiskPercentage, 1e-9)
	assert.Equal(t, a.RiskPercentage, math.Round(a.RiskPercentage*100)/100)
}

func TestScore_Impacts(t *testing.T) {
	a := Score(0.2, 6, 6)
	assert.InDelta(t, 50.0, a.ScreenImpact, 1e-9)
	assert.InDelta(t, 25.0, a.SleepDeficit, 1e-9)

	b := Score(0.2, 20, 10)
	assert.InDelta(t, 100.0, b.ScreenImpact, 1e-9)
	assert.InDelta(t, 0.0, b.SleepDeficit, 1e-9)
}

func TestRecommendationsFor(t *testing.T) {
	assert.Equal(t, "保持状态", RecommendationsFor(models.RiskLow).Title)
	assert.Equal(t, "预防措施", RecommendationsFor(models.RiskModerate).Title)
	assert.Len(t, RecommendationsFor(models.RiskHigh).Actions, 5)
	assert.Equal(t, "保持状态", RecommendationsFor(models.RiskLevel("unknown")).Title)
}
