package models

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTextPreview(t *testing.T) {
	short := "最近总是加班，很累"
	assert.Equal(t, short, TextPreview(short))

	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, TextPreview(exact))

	long := strings.Repeat("b", 80)
	p := TextPreview(long)
	assert.Equal(t, strings.Repeat("b", 50)+"...", p)
	assert.Len(t, p, 53)

	// 按字符截取，不会截断多字节字符
	cn := strings.Repeat("累", 60)
	pcn := TextPreview(cn)
	assert.True(t, utf8.ValidString(pcn))
	assert.Equal(t, 53, utf8.RuneCountInString(pcn))
}

func TestNewPredictionRecord(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 15, 987654321, time.Local)
	rec := NewPredictionRecord("今天很疲惫", 6, 7, 42.5, now)

	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 15, 0, time.Local), rec.Timestamp)
	assert.Equal(t, "今天很疲惫", rec.TextPreview)
	assert.Equal(t, 6.0, rec.ScreenHours)
	assert.Equal(t, 7.0, rec.SleepHours)
	assert.Equal(t, 42.5, rec.BurnoutScore)
	assert.Zero(t, rec.ID)
}

func TestRiskLevelOf(t *testing.T) {
	assert.Equal(t, RiskLow, RiskLevelOf(0))
	assert.Equal(t, RiskLow, RiskLevelOf(39.99))
	assert.Equal(t, RiskModerate, RiskLevelOf(40))
	assert.Equal(t, RiskModerate, RiskLevelOf(69.99))
	assert.Equal(t, RiskHigh, RiskLevelOf(70))
	assert.Equal(t, RiskHigh, RiskLevelOf(100))
	assert.Equal(t, "高风险", RiskHigh.Label())
}

func TestIntensityLevelOf(t *testing.T) {
	assert.Equal(t, IntensityLow, IntensityLevelOf(0.4))
	assert.Equal(t, IntensityModerate, IntensityLevelOf(0.41))
	assert.Equal(t, IntensityModerate, IntensityLevelOf(0.7))
	assert.Equal(t, IntensityHigh, IntensityLevelOf(0.71))
}
