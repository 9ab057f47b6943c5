package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var ErrFavoriteNotFound = errors.New("즐겨찾기에 없습니다")

// FavoriteService 즐겨찾기 비즈니스 인터페이스.
// 등록은 멱등하다 — 이미 있어도 성공으로 본다.
type FavoriteService interface {
	AddBrand(ctx context.Context, userID, brandID int64) error
	RemoveBrand(ctx context.Context, userID, brandID int64) error
	AddMenu(ctx context.Context, userID, menuID int64) error
	RemoveMenu(ctx context.Context, userID, menuID int64) error
}

type favoriteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFavoriteService FavoriteService 인스턴스 생성
func NewFavoriteService(repo *repository.Repository, logger *zap.Logger) FavoriteService {
	return &favoriteService{repo: repo, logger: logger}
}

func (s *favoriteService) AddBrand(ctx context.Context, userID, brandID int64) error {
	if _, err := s.repo.Brand.GetByID(ctx, brandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return err
	}

	err := s.repo.BrandFavorite.Create(ctx, &model.BrandFavorite{UserID: userID, BrandID: brandID})
	if errors.Is(err, repository.ErrDuplicateKey) {
		return nil
	}
	return err
}

func (s *favoriteService) RemoveBrand(ctx context.Context, userID, brandID int64) error {
	err := s.repo.BrandFavorite.Delete(ctx, userID, brandID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

func (s *favoriteService) AddMenu(ctx context.Context, userID, menuID int64) error {
	if _, err := s.repo.Menu.GetByID(ctx, menuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}

	err := s.repo.MenuFavorite.Create(ctx, &model.MenuFavorite{UserID: userID, MenuID: menuID})
	if errors.Is(err, repository.ErrDuplicateKey) {
		return nil
	}
	return err
}

func (s *favoriteService) RemoveMenu(ctx context.Context, userID, menuID int64) error {
	err := s.repo.MenuFavorite.Delete(ctx, userID, menuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}
