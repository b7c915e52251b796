package service

import (
	"math"

	"burnout/models"
)

// 风险加权系数
const (
	EmotionWeight = 0.45
	ScreenWeight  = 0.35
	SleepWeight   = 0.20
)

// factorStep 阶梯函数中的一档：满足条件时取 Value
type factorStep struct {
	Threshold float64
	Value     float64
}

// screenSteps 屏幕时长阶梯（升序，h <= Threshold 命中第一档）
var screenSteps = []factorStep{
	{Threshold: 4, Value: 0.2},
	{Threshold: 6, Value: 0.4},
	{Threshold: 8, Value: 0.6},
	{Threshold: 10, Value: 0.8},
}

const screenFactorMax = 1.0

// sleepSteps 睡眠时长阶梯（降序，h >= Threshold 命中第一档）
var sleepSteps = []factorStep{
	{Threshold: 8, Value: 0.1},
	{Threshold: 7, Value: 0.3},
	{Threshold: 6, Value: 0.5},
	{Threshold: 5, Value: 0.7},
}

const sleepFactorMax = 0.9

// ScreenFactor 屏幕时长影响因子
func ScreenFactor(hours float64) float64 {
	for _, s := range screenSteps {
		if hours <= s.Threshold {
			return s.Value
		}
	}
	return screenFactorMax
}

// SleepFactor 睡眠时长影响因子
func SleepFactor(hours float64) float64 {
	for _, s := range sleepSteps {
		if hours >= s.Threshold {
			return s.Value
		}
	}
	return sleepFactorMax
}

// Assessment 一次评估的结果
type Assessment struct {
	RiskPercentage     float64               `json:"risk_percentage" example:"42.5"`
	EmotionalIntensity float64               `json:"emotional_intensity" example:"0.5"`
	ScreenFactor       float64               `json:"screen_factor" example:"0.4"`
	SleepFactor        float64               `json:"sleep_factor" example:"0.3"`
	RiskLevel          models.RiskLevel      `json:"risk_level" example:"moderate"`
	IntensityLevel     models.IntensityLevel `json:"intensity_level" example:"moderate"`
	ScreenImpact       float64               `json:"screen_impact" example:"50"`
	SleepDeficit       float64               `json:"sleep_deficit" example:"12.5"`
	Recommendations    Recommendations       `json:"recommendations"`
}

// Score 将情绪强度、屏幕时长、睡眠时长合成为风险百分比
// 纯函数：相同输入始终得到相同输出
func Score(intensity, screenHours, sleepHours float64) Assessment {
	screen := ScreenFactor(screenHours)
	sleep := SleepFactor(sleepHours)

	risk := EmotionWeight*intensity + ScreenWeight*screen + SleepWeight*sleep
	pct := round(clamp(risk, 0, 1)*100, 2)

	level := models.RiskLevelOf(pct)
	return Assessment{
		RiskPercentage:     pct,
		EmotionalIntensity: round(intensity, 4),
		ScreenFactor:       screen,
		SleepFactor:        sleep,
		RiskLevel:          level,
		IntensityLevel:     models.IntensityLevelOf(intensity),
		ScreenImpact:       round(math.Min(math.Max(screenHours, 0)/12, 1)*100, 1),
		SleepDeficit:       round((1-math.Min(math.Max(sleepHours, 0)/8, 1))*100, 1),
		Recommendations:    RecommendationsFor(level),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
