package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

func seedBrand(mocks *testRepos, id int64, name string) {
	mocks.brand.brands[id] = &model.Brand{ID: id, Name: name}
}

func TestBrand_즐겨찾기브랜드가먼저온다(t *testing.T) {
	mocks, repo := newTestRepos()
	// 이름 역순으로 심어 이름순 정렬이 끼어들면 잡히게 한다
	seedBrand(mocks, 1, "할리스")
	seedBrand(mocks, 2, "스타벅스")
	seedBrand(mocks, 3, "메가커피")
	favoriteSvc := NewFavoriteService(repo, zap.NewNop())
	brandSvc := NewBrandService(repo, zap.NewNop())
	ctx := context.Background()

	if err := favoriteSvc.AddBrand(ctx, 1, 3); err != nil {
		t.Fatalf("즐겨찾기 등록 실패: %v", err)
	}

	result, err := brandSvc.List(ctx, 1, "")
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}

	if len(result) != 3 {
		t.Fatalf("브랜드 수: got %d, want 3", len(result))
	}
	if result[0].ID != 3 || !result[0].IsFavorite {
		t.Errorf("즐겨찾기 브랜드가 맨 앞에 와야 합니다: got ID %d", result[0].ID)
	}
	// 나머지는 ID 오름차순 유지
	if result[1].ID != 1 || result[2].ID != 2 {
		t.Errorf("나머지는 ID 오름차순이어야 합니다: got %d, %d", result[1].ID, result[2].ID)
	}
}

func TestBrand_키워드검색(t *testing.T) {
	mocks, repo := newTestRepos()
	seedBrand(mocks, 1, "메가커피")
	seedBrand(mocks, 2, "스타벅스")
	brandSvc := NewBrandService(repo, zap.NewNop())

	result, err := brandSvc.List(context.Background(), 1, "커피")
	if err != nil {
		t.Fatalf("목록 조회 실패: %v", err)
	}
	if len(result) != 1 || result[0].Name != "메가커피" {
		t.Errorf("키워드 일치 브랜드만 나와야 합니다: got %v", result)
	}
}

func TestFavorite_브랜드즐겨찾기등록은멱등(t *testing.T) {
	mocks, repo := newTestRepos()
	seedBrand(mocks, 1, "메가커피")
	svc := NewFavoriteService(repo, zap.NewNop())
	ctx := context.Background()

	if err := svc.AddBrand(ctx, 1, 1); err != nil {
		t.Fatalf("최초 등록 실패: %v", err)
	}
	if err := svc.AddBrand(ctx, 1, 1); err != nil {
		t.Errorf("중복 등록은 성공으로 처리되어야 합니다: got %v", err)
	}
	if len(mocks.brandFav.favorites) != 1 {
		t.Errorf("즐겨찾기 행은 하나여야 합니다: got %d행", len(mocks.brandFav.favorites))
	}
}

func TestFavorite_없는브랜드는등록불가(t *testing.T) {
	_, repo := newTestRepos()
	svc := NewFavoriteService(repo, zap.NewNop())

	err := svc.AddBrand(context.Background(), 1, 999)
	if !errors.Is(err, ErrBrandNotFound) {
		t.Errorf("ErrBrandNotFound가 나와야 합니다: got %v", err)
	}
}

func TestFavorite_해제후재해제는에러(t *testing.T) {
	mocks, repo := newTestRepos()
	seedBrand(mocks, 1, "메가커피")
	svc := NewFavoriteService(repo, zap.NewNop())
	ctx := context.Background()

	if err := svc.AddBrand(ctx, 1, 1); err != nil {
		t.Fatalf("등록 실패: %v", err)
	}
	if err := svc.RemoveBrand(ctx, 1, 1); err != nil {
		t.Fatalf("해제 실패: %v", err)
	}
	if err := svc.RemoveBrand(ctx, 1, 1); !errors.Is(err, ErrFavoriteNotFound) {
		t.Errorf("이미 해제된 즐겨찾기는 ErrFavoriteNotFound여야 합니다: got %v", err)
	}
}
