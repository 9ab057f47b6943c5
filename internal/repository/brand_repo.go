package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// BrandRepository 브랜드 데이터 접근 인터페이스
type BrandRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Brand, error)
	List(ctx context.Context, keyword string) ([]model.Brand, error)
}

type brandRepo struct {
	db *gorm.DB
}

// NewBrandRepo BrandRepository 생성
func NewBrandRepo(db *gorm.DB) BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) GetByID(ctx context.Context, id int64) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepo) List(ctx context.Context, keyword string) ([]model.Brand, error) {
	var brands []model.Brand
	query := r.db.WithContext(ctx).Order("id ASC")
	if keyword != "" {
		query = query.Where("name ILIKE ?", "%"+keyword+"%")
	}
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
