package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"burnout/config"

	"github.com/go-resty/resty/v2"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"gonum.org/v1/gonum/stat"
)

// Extractor 情绪强度提取器：将文本映射为 [0,1] 区间的情绪强度
type Extractor interface {
	Intensity(ctx context.Context, text string) (float64, error)
}

// ExtractorFunc 函数形式的 Extractor
type ExtractorFunc func(ctx context.Context, text string) (float64, error)

// Intensity 实现 Extractor
func (f ExtractorFunc) Intensity(ctx context.Context, text string) (float64, error) {
	return f(ctx, text)
}

// 提取器类型
const (
	ProviderOpenAI  = "openai"
	ProviderSidecar = "sidecar"
	ProviderLength  = "length"
)

// NewExtractor 根据配置创建情绪强度提取器
func NewExtractor(cfg config.SentimentConfig) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, errors.New("sentiment.api_key 未配置")
		}
		return NewOpenAIExtractor(cfg), nil
	case ProviderSidecar:
		if cfg.BaseURL == "" {
			return nil, errors.New("sentiment.base_url 未配置")
		}
		return NewSidecarExtractor(cfg), nil
	case ProviderLength, "":
		return LengthExtractor{}, nil
	default:
		return nil, fmt.Errorf("未知的情绪提取器: %s", cfg.Provider)
	}
}

// EmbeddingIntensity 向量均值的绝对值，截断到 [0,1]
func EmbeddingIntensity(vec []float64) (float64, error) {
	if len(vec) == 0 {
		return 0, errors.New("向量为空")
	}
	v := math.Abs(stat.Mean(vec, nil))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("向量包含无效数值")
	}
	return clamp(v, 0, 1), nil
}

// OpenAIExtractor 通过 OpenAI 兼容的 Embeddings 接口计算情绪强度
type OpenAIExtractor struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIExtractor 创建 OpenAI 提取器，SDK 内置重试关闭，失败直接返回调用方
func NewOpenAIExtractor(cfg config.SentimentConfig) *OpenAIExtractor {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	return &OpenAIExtractor{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Intensity 实现 Extractor
func (e *OpenAIExtractor) Intensity(ctx context.Context, text string) (float64, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return 0, fmt.Errorf("调用 embeddings 接口失败: %w", err)
	}
	if len(resp.Data) == 0 {
		return 0, errors.New("embeddings 接口未返回数据")
	}
	return EmbeddingIntensity(resp.Data[0].Embedding)
}

// sidecarRequest 推理服务请求
type sidecarRequest struct {
	Text string `json:"text"`
}

// sidecarResponse 推理服务响应：返回向量或直接返回强度
type sidecarResponse struct {
	Embedding []float64 `json:"embedding"`
	Intensity *float64  `json:"intensity"`
}

// SidecarExtractor 调用本地文本向量推理服务（如 BERT pooled output）
type SidecarExtractor struct {
	client *resty.Client
}

// NewSidecarExtractor 创建推理服务提取器
func NewSidecarExtractor(cfg config.SentimentConfig) *SidecarExtractor {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &SidecarExtractor{client: client}
}

// Intensity 实现 Extractor
func (e *SidecarExtractor) Intensity(ctx context.Context, text string) (float64, error) {
	var out sidecarResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(sidecarRequest{Text: text}).
		SetResult(&out).
		Post("/embed")
	if err != nil {
		return 0, fmt.Errorf("调用推理服务失败: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("推理服务返回错误: HTTP %d", resp.StatusCode())
	}

	if out.Intensity != nil {
		v := *out.Intensity
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.New("推理服务返回无效强度")
		}
		return clamp(v, 0, 1), nil
	}
	return EmbeddingIntensity(out.Embedding)
}

// LengthExtractor 不依赖模型的备用提取器：按文本长度估计强度
// 仅用于无模型环境，结果不具备参考价值
type LengthExtractor struct{}

// Intensity 实现 Extractor
func (LengthExtractor) Intensity(_ context.Context, text string) (float64, error) {
	return math.Min(float64(utf8.RuneCountInString(text))/100, 1), nil
}
