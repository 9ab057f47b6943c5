package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// seedMenu 브랜드 1에 메뉴 1 + 사이즈 1(카페인 150, 당 10.5, 칼로리 120)을 심는다
func seedMenuFixture(mocks *testRepos) {
	seedBrand(mocks, 1, "메가커피")
	mocks.menu.menus[1] = &model.Menu{ID: 1, BrandID: 1, Name: "아메리카노"}
	mocks.menuSize.sizes[1] = &model.MenuSize{
		ID: 1, MenuID: 1, Name: "Grande", VolumeML: 473,
		CaffeineMg: 150, SugarG: 10.5, CalorieKcal: 120,
	}
	// 옵션: 샷 추가(카페인 75), 시럽(당 5.0, 칼로리 20)
	mocks.option.options[1] = &model.Option{ID: 1, BrandID: 1, Category: "샷", Name: "샷 추가", CaffeineMg: 75}
	mocks.option.options[2] = &model.Option{ID: 2, BrandID: 1, Category: "시럽", Name: "바닐라 시럽", SugarG: 5.0, CalorieKcal: 20}
	// 다른 브랜드의 옵션
	seedBrand(mocks, 2, "스타벅스")
	mocks.option.options[3] = &model.Option{ID: 3, BrandID: 2, Category: "샷", Name: "샷 추가", CaffeineMg: 75}
}

func TestIntake_영양스냅샷은사이즈와옵션합에수량을곱한다(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())

	result, err := svc.Create(context.Background(), 1, &dto.CreateIntakeRequest{
		MenuSizeID: 1,
		Quantity:   2,
		OptionIDs:  []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}

	// (150 + 75) × 2 = 450
	if result.CaffeineMg != 450 {
		t.Errorf("카페인: got %d, want 450", result.CaffeineMg)
	}
	// (10.5 + 5.0) × 2 = 31.0
	if result.SugarG != 31.0 {
		t.Errorf("당류: got %v, want 31.0", result.SugarG)
	}
	// (120 + 20) × 2 = 280
	if result.CalorieKcal != 280 {
		t.Errorf("칼로리: got %d, want 280", result.CalorieKcal)
	}
	if result.MenuName != "아메리카노" || result.BrandName != "메가커피" || result.SizeName != "Grande" {
		t.Errorf("스냅샷 명칭이 다릅니다: %q / %q / %q", result.BrandName, result.MenuName, result.SizeName)
	}
}

func TestIntake_수량미지정은1로간주(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())

	result, err := svc.Create(context.Background(), 1, &dto.CreateIntakeRequest{MenuSizeID: 1})
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}
	if result.Quantity != 1 || result.CaffeineMg != 150 {
		t.Errorf("수량 1 기준이어야 합니다: quantity=%d, caffeine=%d", result.Quantity, result.CaffeineMg)
	}
}

func TestIntake_다른브랜드옵션은거부(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())

	_, err := svc.Create(context.Background(), 1, &dto.CreateIntakeRequest{
		MenuSizeID: 1,
		OptionIDs:  []int64{3},
	})
	if !errors.Is(err, ErrOptionBrandMixed) {
		t.Errorf("ErrOptionBrandMixed가 나와야 합니다: got %v", err)
	}
}

func TestIntake_없는옵션은거부(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())

	_, err := svc.Create(context.Background(), 1, &dto.CreateIntakeRequest{
		MenuSizeID: 1,
		OptionIDs:  []int64{1, 999},
	})
	if !errors.Is(err, ErrOptionNotFound) {
		t.Errorf("ErrOptionNotFound가 나와야 합니다: got %v", err)
	}
}

func TestIntake_수정시옵션교체와스냅샷재계산(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateIntakeRequest{
		MenuSizeID: 1,
		Quantity:   2,
		OptionIDs:  []int64{1},
	})
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}

	// 샷 추가를 시럽으로 바꾸고 수량을 1로
	updated, err := svc.Update(ctx, 1, created.ID, &dto.UpdateIntakeRequest{
		MenuSizeID: 1,
		Quantity:   1,
		OptionIDs:  []int64{2},
	})
	if err != nil {
		t.Fatalf("수정 실패: %v", err)
	}

	if updated.CaffeineMg != 150 {
		t.Errorf("카페인: got %d, want 150", updated.CaffeineMg)
	}
	if updated.SugarG != 15.5 {
		t.Errorf("당류: got %v, want 15.5", updated.SugarG)
	}
	if len(updated.Options) != 1 || updated.Options[0].ID != 2 {
		t.Errorf("옵션이 교체되어야 합니다: got %+v", updated.Options)
	}
}

func TestIntake_남의기록은수정불가(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.CreateIntakeRequest{MenuSizeID: 1})
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}

	_, err = svc.Update(ctx, 2, created.ID, &dto.UpdateIntakeRequest{MenuSizeID: 1})
	if !errors.Is(err, ErrIntakeNotFound) {
		t.Errorf("남의 기록 수정은 ErrIntakeNotFound여야 합니다: got %v", err)
	}

	_, err = svc.Update(ctx, 1, 999, &dto.UpdateIntakeRequest{MenuSizeID: 1})
	if !errors.Is(err, ErrIntakeNotFound) {
		t.Errorf("없는 기록 수정은 ErrIntakeNotFound여야 합니다: got %v", err)
	}
}

func TestIntake_남의기록은삭제불가(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())
	ctx := context.Background()

	result, err := svc.Create(ctx, 1, &dto.CreateIntakeRequest{MenuSizeID: 1})
	if err != nil {
		t.Fatalf("생성 실패: %v", err)
	}

	if err := svc.Delete(ctx, 2, result.ID); !errors.Is(err, ErrIntakeNotFound) {
		t.Errorf("남의 기록 삭제는 ErrIntakeNotFound여야 합니다: got %v", err)
	}
	if err := svc.Delete(ctx, 1, result.ID); err != nil {
		t.Errorf("본인 기록 삭제 실패: %v", err)
	}
}

func TestIntake_기간통계는일별로합산(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop()).(*intakeService)
	ctx := context.Background()

	// 8/20에 2건, 8/21에 1건
	times := []time.Time{
		time.Date(2026, 8, 20, 9, 0, 0, 0, seoul),
		time.Date(2026, 8, 20, 15, 0, 0, 0, seoul),
		time.Date(2026, 8, 21, 10, 0, 0, 0, seoul),
	}
	for _, at := range times {
		if _, err := svc.Create(ctx, 1, &dto.CreateIntakeRequest{
			MenuSizeID: 1,
			IntakeAt:   at.Format(time.RFC3339),
		}); err != nil {
			t.Fatalf("생성 실패: %v", err)
		}
	}

	stats, err := svc.StatsByPeriod(ctx, 1, "2026-08-20", "2026-08-21")
	if err != nil {
		t.Fatalf("통계 조회 실패: %v", err)
	}

	if stats.TotalCaffeineMg != 450 {
		t.Errorf("기간 총 카페인: got %d, want 450", stats.TotalCaffeineMg)
	}
	if len(stats.Daily) != 2 {
		t.Fatalf("일별 통계 수: got %d, want 2", len(stats.Daily))
	}
	if stats.Daily[0].Date != "2026-08-20" || stats.Daily[0].IntakeCount != 2 || stats.Daily[0].CaffeineMg != 300 {
		t.Errorf("첫날 통계가 다릅니다: %+v", stats.Daily[0])
	}
	if stats.Daily[1].Date != "2026-08-21" || stats.Daily[1].IntakeCount != 1 {
		t.Errorf("둘째 날 통계가 다릅니다: %+v", stats.Daily[1])
	}
}

func TestIntake_통계는같은음료끼리묶는다(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())
	ctx := context.Background()

	at := time.Date(2026, 8, 20, 9, 0, 0, 0, seoul).Format(time.RFC3339)
	// 같은 사이즈 + 같은 옵션 구성(순서만 다름)은 하나로 묶인다
	requests := []*dto.CreateIntakeRequest{
		{MenuSizeID: 1, Quantity: 2, OptionIDs: []int64{1, 2}, IntakeAt: at},
		{MenuSizeID: 1, Quantity: 3, OptionIDs: []int64{2, 1}, IntakeAt: at},
		{MenuSizeID: 1, Quantity: 1, OptionIDs: []int64{1}, IntakeAt: at},
	}
	for _, req := range requests {
		if _, err := svc.Create(ctx, 1, req); err != nil {
			t.Fatalf("생성 실패: %v", err)
		}
	}

	stats, err := svc.StatsByPeriod(ctx, 1, "2026-08-20", "2026-08-20")
	if err != nil {
		t.Fatalf("통계 조회 실패: %v", err)
	}

	if len(stats.Drinks) != 2 {
		t.Fatalf("음료 그룹 수: got %d, want 2", len(stats.Drinks))
	}
	first, second := stats.Drinks[0], stats.Drinks[1]
	if first.Quantity != 5 || len(first.Options) != 2 {
		t.Errorf("첫 그룹: quantity=%d(want 5), options=%d(want 2)", first.Quantity, len(first.Options))
	}
	if second.Quantity != 1 || len(second.Options) != 1 {
		t.Errorf("둘째 그룹: quantity=%d(want 1), options=%d(want 1)", second.Quantity, len(second.Options))
	}
}

func TestIntake_기간이역전되면에러(t *testing.T) {
	mocks, repo := newTestRepos()
	seedMenuFixture(mocks)
	svc := NewIntakeService(repo, seoul, zap.NewNop())

	_, err := svc.ListByPeriod(context.Background(), 1, "2026-08-21", "2026-08-20")
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("ErrInvalidPeriod가 나와야 합니다: got %v", err)
	}
}
