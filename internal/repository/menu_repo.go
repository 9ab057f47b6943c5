package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// MenuRepository 메뉴 데이터 접근 인터페이스
type MenuRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Menu, error)
	ListByBrandID(ctx context.Context, brandID int64, keyword string) ([]model.Menu, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Menu, error)
}

// MenuSizeRepository 메뉴 사이즈 데이터 접근 인터페이스
type MenuSizeRepository interface {
	GetByID(ctx context.Context, id int64) (*model.MenuSize, error)
}

type menuRepo struct {
	db *gorm.DB
}

// NewMenuRepo MenuRepository 생성
func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) GetByID(ctx context.Context, id int64) (*model.Menu, error) {
	var menu model.Menu
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("id = ?", id).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) ListByBrandID(ctx context.Context, brandID int64, keyword string) ([]model.Menu, error) {
	var menus []model.Menu
	query := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("brand_id = ?", brandID).
		Order("name ASC")
	if keyword != "" {
		query = query.Where("name ILIKE ?", "%"+keyword+"%")
	}
	if err := query.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.Menu, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var menus []model.Menu
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("id IN ?", ids).
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

type menuSizeRepo struct {
	db *gorm.DB
}

// NewMenuSizeRepo MenuSizeRepository 생성
func NewMenuSizeRepo(db *gorm.DB) MenuSizeRepository {
	return &menuSizeRepo{db: db}
}

func (r *menuSizeRepo) GetByID(ctx context.Context, id int64) (*model.MenuSize, error) {
	var size model.MenuSize
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&size).Error
	if err != nil {
		return nil, err
	}
	return &size, nil
}
