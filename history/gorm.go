package history

import (
	"context"
	"errors"

	"burnout/models"

	"gorm.io/gorm"
)

// GormStore 基于数据库的历史存储，按自增 ID 保持写入顺序
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库存储
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	return &GormStore{db: db}, nil
}

// Append 插入一条记录，成功后 rec.ID 被回填
func (s *GormStore) Append(ctx context.Context, rec *models.PredictionRecord) error {
	if rec == nil {
		return errors.New("append: record is nil")
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

// LoadAll 按 ID 升序返回全部记录
func (s *GormStore) LoadAll(ctx context.Context) ([]models.PredictionRecord, error) {
	recs := []models.PredictionRecord{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
