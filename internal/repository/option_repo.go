package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// OptionRepository 옵션 데이터 접근 인터페이스
type OptionRepository interface {
	ListByBrandID(ctx context.Context, brandID int64) ([]model.Option, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Option, error)
}

type optionRepo struct {
	db *gorm.DB
}

// NewOptionRepo OptionRepository 생성
func NewOptionRepo(db *gorm.DB) OptionRepository {
	return &optionRepo{db: db}
}

func (r *optionRepo) ListByBrandID(ctx context.Context, brandID int64) ([]model.Option, error) {
	var options []model.Option
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("category ASC, name ASC").
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *optionRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var options []model.Option
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
