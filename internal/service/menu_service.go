package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var ErrMenuNotFound = errors.New("메뉴를 찾을 수 없습니다")

// MenuService 메뉴 비즈니스 인터페이스
type MenuService interface {
	// ListByBrand 브랜드 내 메뉴 목록. 즐겨찾기 메뉴가 먼저 온다.
	ListByBrand(ctx context.Context, userID, brandID int64, keyword string) ([]dto.MenuResponse, error)
	Get(ctx context.Context, userID, menuID int64) (*dto.MenuResponse, error)
	// ListFavorites 즐겨찾기한 메뉴 목록
	ListFavorites(ctx context.Context, userID int64) ([]dto.MenuResponse, error)
}

type menuService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMenuService MenuService 인스턴스 생성
func NewMenuService(repo *repository.Repository, logger *zap.Logger) MenuService {
	return &menuService{repo: repo, logger: logger}
}

func (s *menuService) ListByBrand(ctx context.Context, userID, brandID int64, keyword string) ([]dto.MenuResponse, error) {
	if _, err := s.repo.Brand.GetByID(ctx, brandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	menus, err := s.repo.Menu.ListByBrandID(ctx, brandID, keyword)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteMenuSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		_, isFavorite := favorites[menus[i].ID]
		result = append(result, toMenuResponse(&menus[i], isFavorite))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsFavorite && !result[j].IsFavorite
	})
	return result, nil
}

func (s *menuService) Get(ctx context.Context, userID, menuID int64) (*dto.MenuResponse, error) {
	menu, err := s.repo.Menu.GetByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	favorites, err := s.favoriteMenuSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	_, isFavorite := favorites[menu.ID]
	resp := toMenuResponse(menu, isFavorite)
	return &resp, nil
}

func (s *menuService) ListFavorites(ctx context.Context, userID int64) ([]dto.MenuResponse, error) {
	menuIDs, err := s.repo.MenuFavorite.ListMenuIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(menuIDs) == 0 {
		return []dto.MenuResponse{}, nil
	}

	menus, err := s.repo.Menu.ListByIDs(ctx, menuIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		result = append(result, toMenuResponse(&menus[i], true))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *menuService) favoriteMenuSet(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	menuIDs, err := s.repo.MenuFavorite.ListMenuIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]struct{}, len(menuIDs))
	for _, id := range menuIDs {
		set[id] = struct{}{}
	}
	return set, nil
}

func toMenuResponse(menu *model.Menu, isFavorite bool) dto.MenuResponse {
	sizes := make([]dto.MenuSizeResponse, 0, len(menu.Sizes))
	for _, size := range menu.Sizes {
		sizes = append(sizes, dto.MenuSizeResponse{
			ID:          size.ID,
			Name:        size.Name,
			VolumeML:    size.VolumeML,
			CaffeineMg:  size.CaffeineMg,
			SugarG:      size.SugarG,
			CalorieKcal: size.CalorieKcal,
		})
	}
	return dto.MenuResponse{
		ID:         menu.ID,
		BrandID:    menu.BrandID,
		Name:       menu.Name,
		Category:   menu.Category,
		IsFavorite: isFavorite,
		Sizes:      sizes,
	}
}
