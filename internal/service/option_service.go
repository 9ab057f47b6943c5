package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

// OptionService 옵션 비즈니스 인터페이스
type OptionService interface {
	// ListByBrand 브랜드의 옵션 목록. category가 비어 있지 않으면 해당 분류만 남긴다.
	ListByBrand(ctx context.Context, brandID int64, category string) ([]dto.OptionResponse, error)
}

type optionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOptionService OptionService 인스턴스 생성
func NewOptionService(repo *repository.Repository, logger *zap.Logger) OptionService {
	return &optionService{repo: repo, logger: logger}
}

func (s *optionService) ListByBrand(ctx context.Context, brandID int64, category string) ([]dto.OptionResponse, error) {
	if _, err := s.repo.Brand.GetByID(ctx, brandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	options, err := s.repo.Option.ListByBrandID(ctx, brandID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.OptionResponse, 0, len(options))
	for _, option := range options {
		if category != "" && option.Category != category {
			continue
		}
		result = append(result, toOptionResponse(&option))
	}
	return result, nil
}

func toOptionResponse(option *model.Option) dto.OptionResponse {
	return dto.OptionResponse{
		ID:          option.ID,
		Category:    option.Category,
		Name:        option.Name,
		CaffeineMg:  option.CaffeineMg,
		SugarG:      option.SugarG,
		CalorieKcal: option.CalorieKcal,
	}
}
