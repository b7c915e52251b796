package history

import (
	"context"

	"burnout/models"
)

// Store 只追加的预测历史存储
//
// Append 返回即表示记录已持久化；LoadAll 按写入顺序返回全部记录，
// 尚无历史时返回空切片而不是错误。不提供修改和删除。
type Store interface {
	Append(ctx context.Context, rec *models.PredictionRecord) error
	LoadAll(ctx context.Context) ([]models.PredictionRecord, error)
}
