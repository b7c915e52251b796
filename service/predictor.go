package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"burnout/history"
	"burnout/models"
)

var (
	// ErrEmptyText 描述文本为空或只有空白，不会调用情绪提取器
	ErrEmptyText = errors.New("描述文本不能为空")
	// ErrExtractorFailed 情绪提取器调用失败，不产生任何评分
	ErrExtractorFailed = errors.New("情绪强度提取失败")
	// ErrStorage 历史记录读写失败
	ErrStorage = errors.New("历史记录存储失败")
)

// Alerter 高风险提醒
type Alerter interface {
	Enabled() bool
	SendHighRiskAlert(rec models.PredictionRecord, a Assessment) error
}

// Predictor 串联情绪提取、风险评分与历史记录
type Predictor struct {
	extractor Extractor
	store     history.Store
	mailer    Alerter
	publisher *Publisher
	now       func() time.Time
}

// Option Predictor 可选项
type Option func(*Predictor)

// WithMailer 高风险时发送提醒邮件
func WithMailer(m Alerter) Option {
	return func(p *Predictor) { p.mailer = m }
}

// WithPublisher 保存后发布事件
func WithPublisher(pub *Publisher) Option {
	return func(p *Predictor) { p.publisher = pub }
}

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(p *Predictor) { p.now = now }
}

// NewPredictor 创建 Predictor
func NewPredictor(extractor Extractor, store history.Store, opts ...Option) *Predictor {
	p := &Predictor{
		extractor: extractor,
		store:     store,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict 计算风险，不写入历史
func (p *Predictor) Predict(ctx context.Context, text string, screenHours, sleepHours float64) (Assessment, error) {
	if strings.TrimSpace(text) == "" {
		predictionsFailed.WithLabelValues("empty_text").Inc()
		return Assessment{}, ErrEmptyText
	}

	start := time.Now()
	intensity, err := p.extractor.Intensity(ctx, text)
	extractorDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		predictionsFailed.WithLabelValues("extractor").Inc()
		return Assessment{}, fmt.Errorf("%w: %v", ErrExtractorFailed, err)
	}
	if math.IsNaN(intensity) || intensity < 0 || intensity > 1 {
		predictionsFailed.WithLabelValues("extractor").Inc()
		return Assessment{}, fmt.Errorf("%w: 强度 %v 超出 [0,1]", ErrExtractorFailed, intensity)
	}

	a := Score(intensity, screenHours, sleepHours)
	predictionsTotal.Inc()
	riskPercentage.Observe(a.RiskPercentage)
	return a, nil
}

// Record 以当前时间追加一条历史记录
func (p *Predictor) Record(ctx context.Context, text string, screenHours, sleepHours, risk float64) (models.PredictionRecord, error) {
	rec := models.NewPredictionRecord(text, screenHours, sleepHours, risk, p.now())
	if err := p.store.Append(ctx, &rec); err != nil {
		recordsFailed.Inc()
		log.Printf("保存历史记录失败: %v", err)
		return rec, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	recordsStored.Inc()
	return rec, nil
}

// Submission 一次提交（评估 + 保存）的结果
type Submission struct {
	Assessment Assessment              `json:"assessment"`
	Record     models.PredictionRecord `json:"record"`
	Saved      bool                    `json:"saved"`
	Warning    string                  `json:"warning,omitempty"`
}

// Submit 评估并保存；保存失败不影响评估结果，只附带警告
func (p *Predictor) Submit(ctx context.Context, text string, screenHours, sleepHours float64) (Submission, error) {
	a, err := p.Predict(ctx, text, screenHours, sleepHours)
	if err != nil {
		return Submission{}, err
	}

	rec, err := p.Record(ctx, text, screenHours, sleepHours, a.RiskPercentage)
	sub := Submission{Assessment: a, Record: rec, Saved: err == nil}
	if err != nil {
		sub.Warning = "评估结果未能保存到历史记录，请检查存储"
	}

	p.notify(ctx, sub)
	return sub, nil
}

// notify 发布事件与高风险提醒，失败只记录日志
func (p *Predictor) notify(ctx context.Context, sub Submission) {
	if p.publisher.Available() {
		ev := PredictionEvent{
			Record:     sub.Record,
			RiskLevel:  sub.Assessment.RiskLevel,
			Intensity:  sub.Assessment.EmotionalIntensity,
			Saved:      sub.Saved,
			OccurredAt: p.now(),
		}
		if err := p.publisher.Publish(ctx, ev); err != nil {
			log.Printf("发布预测事件失败: %v", err)
		}
	}

	// 邮件在后台发送，不阻塞响应
	if sub.Saved && sub.Assessment.RiskLevel == models.RiskHigh && p.mailer != nil && p.mailer.Enabled() {
		go func(rec models.PredictionRecord, a Assessment) {
			if err := p.mailer.SendHighRiskAlert(rec, a); err != nil {
				log.Printf("发送高风险提醒失败: %v", err)
			}
		}(sub.Record, sub.Assessment)
	}
}

// History 按写入顺序返回全部历史；读取失败时按空历史处理
func (p *Predictor) History(ctx context.Context) []models.PredictionRecord {
	recs, err := p.store.LoadAll(ctx)
	if err != nil {
		log.Printf("警告: 读取历史记录失败，按空历史处理: %v", err)
		return []models.PredictionRecord{}
	}
	return recs
}

// Summary 历史汇总
func (p *Predictor) Summary(ctx context.Context) Summary {
	return Summarize(p.History(ctx))
}
