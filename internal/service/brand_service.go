package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var ErrBrandNotFound = errors.New("브랜드를 찾을 수 없습니다")

// BrandService 브랜드 비즈니스 인터페이스
type BrandService interface {
	// List 브랜드 목록. 즐겨찾기한 브랜드가 먼저 오고, 그 안에서는 ID 오름차순을 유지한다.
	List(ctx context.Context, userID int64, keyword string) ([]dto.BrandResponse, error)
}

type brandService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBrandService BrandService 인스턴스 생성
func NewBrandService(repo *repository.Repository, logger *zap.Logger) BrandService {
	return &brandService{repo: repo, logger: logger}
}

func (s *brandService) List(ctx context.Context, userID int64, keyword string) ([]dto.BrandResponse, error) {
	brands, err := s.repo.Brand.List(ctx, keyword)
	if err != nil {
		return nil, err
	}

	favoriteIDs, err := s.repo.BrandFavorite.ListBrandIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	favorites := make(map[int64]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = struct{}{}
	}

	result := make([]dto.BrandResponse, 0, len(brands))
	for _, brand := range brands {
		_, isFavorite := favorites[brand.ID]
		result = append(result, dto.BrandResponse{
			ID:         brand.ID,
			Name:       brand.Name,
			LogoURL:    brand.LogoURL,
			IsFavorite: isFavorite,
		})
	}

	// 즐겨찾기 우선, ID 오름차순 유지 (안정 정렬)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsFavorite && !result[j].IsFavorite
	})
	return result, nil
}
