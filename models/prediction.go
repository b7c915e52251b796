package models

import (
	"time"
	"unicode/utf8"
)

// TimeLayout 历史文件中 date 列的时间格式
const TimeLayout = "2006-01-02 15:04:05"

// PreviewLength 文本预览保留的字符数
const PreviewLength = 50

// HighRiskThreshold 高风险阈值（百分比）
const HighRiskThreshold = 70.0

// ModerateRiskThreshold 中风险阈值（百分比）
const ModerateRiskThreshold = 40.0

// PredictionRecord 一次预测的历史记录，创建后不可修改
type PredictionRecord struct {
	ID           uint      `json:"id,omitempty" gorm:"primaryKey"`
	Timestamp    time.Time `json:"date" gorm:"column:date;index;not null"`
	TextPreview  string    `json:"text_preview" gorm:"size:64;not null"`
	ScreenHours  float64   `json:"screen_hours" gorm:"not null"`
	SleepHours   float64   `json:"sleep_hours" gorm:"not null"`
	BurnoutScore float64   `json:"burnout_score" gorm:"type:decimal(5,2);not null"`
}

// TableName 设置表名
func (PredictionRecord) TableName() string {
	return "prediction_records"
}

// NewPredictionRecord 按保存时刻构建记录，时间精确到秒
func NewPredictionRecord(text string, screenHours, sleepHours, score float64, now time.Time) PredictionRecord {
	return PredictionRecord{
		Timestamp:    now.Truncate(time.Second),
		TextPreview:  TextPreview(text),
		ScreenHours:  screenHours,
		SleepHours:   sleepHours,
		BurnoutScore: score,
	}
}

// TextPreview 截取前 50 个字符，超出部分以 "..." 结尾
func TextPreview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	return string([]rune(text)[:PreviewLength]) + "..."
}

// RiskLevel 风险等级
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskLevelOf 根据风险百分比返回风险等级
func RiskLevelOf(score float64) RiskLevel {
	switch {
	case score >= HighRiskThreshold:
		return RiskHigh
	case score >= ModerateRiskThreshold:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Label 风险等级的中文名称
func (l RiskLevel) Label() string {
	switch l {
	case RiskHigh:
		return "高风险"
	case RiskModerate:
		return "中等风险"
	default:
		return "低风险"
	}
}

// IntensityLevel 情绪强度等级
type IntensityLevel string

const (
	IntensityLow      IntensityLevel = "low"
	IntensityModerate IntensityLevel = "moderate"
	IntensityHigh     IntensityLevel = "high"
)

// IntensityLevelOf 根据情绪强度（0~1）返回等级
func IntensityLevelOf(v float64) IntensityLevel {
	switch {
	case v > 0.7:
		return IntensityHigh
	case v > 0.4:
		return IntensityModerate
	default:
		return IntensityLow
	}
}
