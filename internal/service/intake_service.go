package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var (
	ErrIntakeNotFound   = errors.New("섭취 기록을 찾을 수 없습니다")
	ErrMenuSizeNotFound = errors.New("메뉴 사이즈를 찾을 수 없습니다")
	ErrOptionNotFound   = errors.New("옵션을 찾을 수 없습니다")
	ErrOptionBrandMixed = errors.New("다른 브랜드의 옵션은 함께 담을 수 없습니다")
	ErrInvalidPeriod    = errors.New("조회 기간이 올바르지 않습니다")
)

// IntakeService 섭취 기록 비즈니스 인터페이스
type IntakeService interface {
	// Create 섭취 기록 생성. 영양 수치는 (사이즈 + 옵션 합) × 수량으로
	// 기록 시점에 스냅샷한다. 이후 마스터 변경은 기록에 영향이 없다.
	Create(ctx context.Context, userID int64, req *dto.CreateIntakeRequest) (*dto.IntakeResponse, error)
	// Update 기록 수정. 옵션 목록을 전체 교체하고 스냅샷을 다시 계산한다.
	Update(ctx context.Context, userID, intakeID int64, req *dto.UpdateIntakeRequest) (*dto.IntakeResponse, error)
	Delete(ctx context.Context, userID, intakeID int64) error
	// ListByPeriod [from, to] 날짜 구간의 기록 목록
	ListByPeriod(ctx context.Context, userID int64, from, to string) ([]dto.IntakeResponse, error)
	// StatsByPeriod 기간 합산 + 일별 통계
	StatsByPeriod(ctx context.Context, userID int64, from, to string) (*dto.IntakeStatsResponse, error)
}

type intakeService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewIntakeService IntakeService 인스턴스 생성. loc은 날짜 경계의 기준 시간대.
func NewIntakeService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) IntakeService {
	return &intakeService{repo: repo, loc: loc, logger: logger, now: time.Now}
}

// drinkSnapshot 사이즈 + 옵션 1잔 기준 영양 합
type drinkSnapshot struct {
	size     *model.MenuSize
	options  []model.Option
	caffeine int
	sugar    float64
	calorie  int
}

// resolveSnapshot 사이즈/옵션을 검증하고 1잔 기준 영양 합을 계산한다.
// 옵션은 전부 존재해야 하고 메뉴와 같은 브랜드여야 한다.
func (s *intakeService) resolveSnapshot(ctx context.Context, menuSizeID int64, optionIDs []int64) (*drinkSnapshot, error) {
	size, err := s.repo.MenuSize.GetByID(ctx, menuSizeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuSizeNotFound
		}
		return nil, err
	}
	menu, err := s.repo.Menu.GetByID(ctx, size.MenuID)
	if err != nil {
		return nil, err
	}

	options, err := s.repo.Option.ListByIDs(ctx, optionIDs)
	if err != nil {
		return nil, err
	}
	if len(options) != len(uniqueIDs(optionIDs)) {
		return nil, ErrOptionNotFound
	}
	for _, option := range options {
		if option.BrandID != menu.BrandID {
			return nil, ErrOptionBrandMixed
		}
	}

	snap := &drinkSnapshot{
		size:     size,
		options:  options,
		caffeine: size.CaffeineMg,
		sugar:    size.SugarG,
		calorie:  size.CalorieKcal,
	}
	for _, option := range options {
		snap.caffeine += option.CaffeineMg
		snap.sugar += option.SugarG
		snap.calorie += option.CalorieKcal
	}
	return snap, nil
}

func (s *intakeService) Create(ctx context.Context, userID int64, req *dto.CreateIntakeRequest) (*dto.IntakeResponse, error) {
	snap, err := s.resolveSnapshot(ctx, req.MenuSizeID, req.OptionIDs)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	intakeAt := s.now()
	if req.IntakeAt != "" {
		intakeAt, err = time.Parse(time.RFC3339, req.IntakeAt)
		if err != nil {
			return nil, ErrInvalidPeriod
		}
	}

	intake := &model.Intake{
		UserID:      userID,
		MenuSizeID:  snap.size.ID,
		Quantity:    quantity,
		IntakeAt:    intakeAt,
		CaffeineMg:  snap.caffeine * quantity,
		SugarG:      snap.sugar * float64(quantity),
		CalorieKcal: snap.calorie * quantity,
	}
	if err := s.repo.Intake.Create(ctx, intake, req.OptionIDs); err != nil {
		s.logger.Error("섭취 기록 생성 실패", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	intake.MenuSize = snap.size
	intake.Options = snap.options
	resp := s.toIntakeResponse(ctx, intake)
	return &resp, nil
}

func (s *intakeService) Update(ctx context.Context, userID, intakeID int64, req *dto.UpdateIntakeRequest) (*dto.IntakeResponse, error) {
	intake, err := s.repo.Intake.GetByID(ctx, intakeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIntakeNotFound
		}
		return nil, err
	}
	if intake.UserID != userID {
		return nil, ErrIntakeNotFound
	}

	snap, err := s.resolveSnapshot(ctx, req.MenuSizeID, req.OptionIDs)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if req.IntakeAt != "" {
		intakeAt, err := time.Parse(time.RFC3339, req.IntakeAt)
		if err != nil {
			return nil, ErrInvalidPeriod
		}
		intake.IntakeAt = intakeAt
	}

	intake.MenuSizeID = snap.size.ID
	intake.Quantity = quantity
	intake.CaffeineMg = snap.caffeine * quantity
	intake.SugarG = snap.sugar * float64(quantity)
	intake.CalorieKcal = snap.calorie * quantity

	if err := s.repo.Intake.Update(ctx, intake, req.OptionIDs); err != nil {
		s.logger.Error("섭취 기록 수정 실패", zap.Int64("intake_id", intakeID), zap.Error(err))
		return nil, err
	}

	intake.MenuSize = snap.size
	intake.Options = snap.options
	resp := s.toIntakeResponse(ctx, intake)
	return &resp, nil
}

func (s *intakeService) Delete(ctx context.Context, userID, intakeID int64) error {
	intake, err := s.repo.Intake.GetByID(ctx, intakeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIntakeNotFound
		}
		return err
	}
	// 남의 기록은 존재 자체를 숨긴다
	if intake.UserID != userID {
		return ErrIntakeNotFound
	}
	return s.repo.Intake.Delete(ctx, intake)
}

func (s *intakeService) ListByPeriod(ctx context.Context, userID int64, from, to string) ([]dto.IntakeResponse, error) {
	fromTime, toTime, err := s.parsePeriod(from, to)
	if err != nil {
		return nil, err
	}

	intakes, err := s.repo.Intake.ListByUserIDAndPeriod(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}

	result := make([]dto.IntakeResponse, 0, len(intakes))
	for i := range intakes {
		result = append(result, s.toIntakeResponse(ctx, &intakes[i]))
	}
	return result, nil
}

func (s *intakeService) StatsByPeriod(ctx context.Context, userID int64, from, to string) (*dto.IntakeStatsResponse, error) {
	fromTime, toTime, err := s.parsePeriod(from, to)
	if err != nil {
		return nil, err
	}

	intakes, err := s.repo.Intake.ListByUserIDAndPeriod(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}

	stats := &dto.IntakeStatsResponse{From: from, To: to}
	byDate := make(map[string]*dto.DailyIntakeStat)
	var dates []string
	for i := range intakes {
		intake := &intakes[i]
		stats.TotalCaffeineMg += intake.CaffeineMg
		stats.TotalSugarG += intake.SugarG
		stats.TotalCalorieKcal += intake.CalorieKcal

		date := intake.IntakeAt.In(s.loc).Format("2006-01-02")
		daily, ok := byDate[date]
		if !ok {
			daily = &dto.DailyIntakeStat{Date: date}
			byDate[date] = daily
			dates = append(dates, date)
		}
		daily.CaffeineMg += intake.CaffeineMg
		daily.SugarG += intake.SugarG
		daily.CalorieKcal += intake.CalorieKcal
		daily.IntakeCount++
	}

	// 조회 결과가 시간순이므로 dates도 시간순이다
	stats.Daily = make([]dto.DailyIntakeStat, 0, len(dates))
	for _, date := range dates {
		stats.Daily = append(stats.Daily, *byDate[date])
	}

	stats.Drinks = s.groupDrinks(ctx, intakes)
	return stats, nil
}

// groupDrinks 같은 사이즈 + 같은 옵션 구성(순서 무시)끼리 묶고 수량을 합산한다.
// 결과는 수량 내림차순.
func (s *intakeService) groupDrinks(ctx context.Context, intakes []model.Intake) []dto.DrinkGroupStat {
	byKey := make(map[string]*dto.DrinkGroupStat)
	var keys []string
	for i := range intakes {
		intake := &intakes[i]

		optionIDs := make([]int64, 0, len(intake.Options))
		for _, option := range intake.Options {
			optionIDs = append(optionIDs, option.ID)
		}
		sort.Slice(optionIDs, func(a, b int) bool { return optionIDs[a] < optionIDs[b] })
		key := fmt.Sprintf("%d|%v", intake.MenuSizeID, optionIDs)

		group, ok := byKey[key]
		if !ok {
			resp := s.toIntakeResponse(ctx, intake)
			group = &dto.DrinkGroupStat{
				BrandName: resp.BrandName,
				MenuName:  resp.MenuName,
				SizeName:  resp.SizeName,
				Options:   resp.Options,
			}
			byKey[key] = group
			keys = append(keys, key)
		}
		group.Quantity += intake.Quantity
		group.CaffeineMg += intake.CaffeineMg
		group.SugarG += intake.SugarG
		group.CalorieKcal += intake.CalorieKcal
	}

	result := make([]dto.DrinkGroupStat, 0, len(keys))
	for _, key := range keys {
		result = append(result, *byKey[key])
	}
	sort.SliceStable(result, func(a, b int) bool { return result[a].Quantity > result[b].Quantity })
	return result
}

// parsePeriod "YYYY-MM-DD" 구간을 기준 시간대의 [from 00:00, to+1일 00:00) 반개구간으로 바꾼다
func (s *intakeService) parsePeriod(from, to string) (time.Time, time.Time, error) {
	fromTime, err := time.ParseInLocation("2006-01-02", from, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	toTime, err := time.ParseInLocation("2006-01-02", to, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	if toTime.Before(fromTime) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return fromTime, toTime.AddDate(0, 0, 1), nil
}

func (s *intakeService) toIntakeResponse(ctx context.Context, intake *model.Intake) dto.IntakeResponse {
	resp := dto.IntakeResponse{
		ID:          intake.ID,
		Quantity:    intake.Quantity,
		IntakeAt:    intake.IntakeAt.In(s.loc).Format(time.RFC3339),
		CaffeineMg:  intake.CaffeineMg,
		SugarG:      intake.SugarG,
		CalorieKcal: intake.CalorieKcal,
	}
	for i := range intake.Options {
		resp.Options = append(resp.Options, toOptionResponse(&intake.Options[i]))
	}

	if intake.MenuSize != nil {
		resp.SizeName = intake.MenuSize.Name
		if menu, err := s.repo.Menu.GetByID(ctx, intake.MenuSize.MenuID); err == nil {
			resp.MenuName = menu.Name
			if brand, err := s.repo.Brand.GetByID(ctx, menu.BrandID); err == nil {
				resp.BrandName = brand.Name
			}
		}
	}
	return resp
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
