package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"burnout/config"
	"burnout/models"

	"github.com/redis/go-redis/v9"
)

// PredictionEvent 发布到 Redis 的新记录事件
type PredictionEvent struct {
	Record     models.PredictionRecord `json:"record"`
	RiskLevel  models.RiskLevel        `json:"risk_level"`
	Intensity  float64                 `json:"emotional_intensity"`
	Saved      bool                    `json:"saved"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// Publisher 将新记录发布到 Redis 频道，client 为空时所有操作为空操作
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher 根据配置连接 Redis；未启用时返回空发布器
func NewPublisher(ctx context.Context, cfg config.RedisConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return &Publisher{channel: cfg.Channel}, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("无效的 redis.url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping 失败: %w", err)
	}
	return &Publisher{client: client, channel: cfg.Channel}, nil
}

// NewPublisherWithClient 使用已有客户端创建发布器
func NewPublisherWithClient(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Available 是否连接了 Redis
func (p *Publisher) Available() bool {
	return p != nil && p.client != nil
}

// Publish 发布事件
func (p *Publisher) Publish(ctx context.Context, ev PredictionEvent) error {
	if !p.Available() {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, data).Err()
}

// Close 关闭连接
func (p *Publisher) Close() error {
	if !p.Available() {
		return nil
	}
	return p.client.Close()
}
