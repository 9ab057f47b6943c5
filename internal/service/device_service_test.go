package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

func TestDevice_신규토큰등록(t *testing.T) {
	mocks, repo := newTestRepos()
	svc := NewDeviceService(repo, zap.NewNop())

	result, err := svc.Register(context.Background(), 1, &dto.RegisterDeviceRequest{
		FCMToken: "token-a",
		Platform: model.PlatformAndroid,
	})
	if err != nil {
		t.Fatalf("등록 실패: %v", err)
	}

	if !result.IsEnabled {
		t.Error("신규 디바이스는 활성 상태여야 합니다")
	}
	device, ok := mocks.device.devices["token-a"]
	if !ok {
		t.Fatal("디바이스가 저장되지 않았습니다")
	}
	if device.UserID != 1 {
		t.Errorf("소유자: got %d, want 1", device.UserID)
	}
}

func TestDevice_같은토큰재등록시소유자이전(t *testing.T) {
	mocks, repo := newTestRepos()
	svc := NewDeviceService(repo, zap.NewNop())
	ctx := context.Background()

	// 유저 1이 등록한 토큰을 유저 2가 같은 기기에서 재등록 (기기 재로그인)
	if _, err := svc.Register(ctx, 1, &dto.RegisterDeviceRequest{
		FCMToken: "shared-token", Platform: model.PlatformIOS,
	}); err != nil {
		t.Fatalf("최초 등록 실패: %v", err)
	}
	if _, err := svc.Register(ctx, 2, &dto.RegisterDeviceRequest{
		FCMToken: "shared-token", Platform: model.PlatformIOS,
	}); err != nil {
		t.Fatalf("재등록 실패: %v", err)
	}

	device := mocks.device.devices["shared-token"]
	if device.UserID != 2 {
		t.Errorf("토큰 소유자가 이전되어야 합니다: got %d, want 2", device.UserID)
	}
	if len(mocks.device.devices) != 1 {
		t.Errorf("같은 토큰은 한 행이어야 합니다: got %d행", len(mocks.device.devices))
	}
}

func TestDevice_미등록토큰해제시에러(t *testing.T) {
	_, repo := newTestRepos()
	svc := NewDeviceService(repo, zap.NewNop())

	err := svc.Unregister(context.Background(), 1, "no-such-token")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("ErrDeviceNotFound가 나와야 합니다: got %v", err)
	}
}

func TestDevice_남의토큰은해제불가(t *testing.T) {
	_, repo := newTestRepos()
	svc := NewDeviceService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, 1, &dto.RegisterDeviceRequest{
		FCMToken: "token-a", Platform: model.PlatformAndroid,
	}); err != nil {
		t.Fatalf("등록 실패: %v", err)
	}

	err := svc.Unregister(ctx, 2, "token-a")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("남의 토큰 해제는 ErrDeviceNotFound여야 합니다: got %v", err)
	}
}
