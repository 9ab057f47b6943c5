package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// BrandFavoriteRepository 브랜드 즐겨찾기 데이터 접근 인터페이스
type BrandFavoriteRepository interface {
	Create(ctx context.Context, favorite *model.BrandFavorite) error
	Delete(ctx context.Context, userID, brandID int64) error
	ListBrandIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
}

// MenuFavoriteRepository 메뉴 즐겨찾기 데이터 접근 인터페이스
type MenuFavoriteRepository interface {
	Create(ctx context.Context, favorite *model.MenuFavorite) error
	Delete(ctx context.Context, userID, menuID int64) error
	ListMenuIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
}

type brandFavoriteRepo struct {
	db *gorm.DB
}

// NewBrandFavoriteRepo BrandFavoriteRepository 생성
func NewBrandFavoriteRepo(db *gorm.DB) BrandFavoriteRepository {
	return &brandFavoriteRepo{db: db}
}

func (r *brandFavoriteRepo) Create(ctx context.Context, favorite *model.BrandFavorite) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(favorite).Error)
}

func (r *brandFavoriteRepo) Delete(ctx context.Context, userID, brandID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND brand_id = ?", userID, brandID).
		Delete(&model.BrandFavorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *brandFavoriteRepo) ListBrandIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	var brandIDs []int64
	err := r.db.WithContext(ctx).
		Model(&model.BrandFavorite{}).
		Where("user_id = ?", userID).
		Pluck("brand_id", &brandIDs).Error
	if err != nil {
		return nil, err
	}
	return brandIDs, nil
}

type menuFavoriteRepo struct {
	db *gorm.DB
}

// NewMenuFavoriteRepo MenuFavoriteRepository 생성
func NewMenuFavoriteRepo(db *gorm.DB) MenuFavoriteRepository {
	return &menuFavoriteRepo{db: db}
}

func (r *menuFavoriteRepo) Create(ctx context.Context, favorite *model.MenuFavorite) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(favorite).Error)
}

func (r *menuFavoriteRepo) Delete(ctx context.Context, userID, menuID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_id = ?", userID, menuID).
		Delete(&model.MenuFavorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuFavoriteRepo) ListMenuIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	var menuIDs []int64
	err := r.db.WithContext(ctx).
		Model(&model.MenuFavorite{}).
		Where("user_id = ?", userID).
		Pluck("menu_id", &menuIDs).Error
	if err != nil {
		return nil, err
	}
	return menuIDs, nil
}
