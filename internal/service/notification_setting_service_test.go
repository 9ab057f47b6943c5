package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

func TestNotificationSetting_조회시없으면기본값생성(t *testing.T) {
	mocks, repo := newTestRepos()
	svc := NewNotificationSettingService(repo, zap.NewNop())

	result, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("조회 실패: %v", err)
	}

	if !result.IsEnabled {
		t.Error("기본 설정은 활성 상태여야 합니다")
	}
	if result.RecordRemindAt != model.DefaultRecordRemindAt {
		t.Errorf("기록 알림 기본 시각: got %q, want %q", result.RecordRemindAt, model.DefaultRecordRemindAt)
	}
	if result.DailyCloseAt != model.DefaultDailyCloseAt {
		t.Errorf("마감 알림 기본 시각: got %q, want %q", result.DailyCloseAt, model.DefaultDailyCloseAt)
	}
	if _, ok := mocks.setting.settings[1]; !ok {
		t.Error("기본 설정 행이 저장되지 않았습니다")
	}
}

func TestNotificationSetting_부분갱신(t *testing.T) {
	_, repo := newTestRepos()
	svc := NewNotificationSettingService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Get(ctx, 1); err != nil {
		t.Fatalf("초기 생성 실패: %v", err)
	}

	newTime := "09:30"
	result, err := svc.Update(ctx, 1, &dto.UpdateNotificationSettingRequest{
		RecordRemindAt: &newTime,
	})
	if err != nil {
		t.Fatalf("갱신 실패: %v", err)
	}

	if result.RecordRemindAt != "09:30" {
		t.Errorf("기록 알림 시각: got %q, want %q", result.RecordRemindAt, "09:30")
	}
	// 지정하지 않은 필드는 유지
	if result.DailyCloseAt != model.DefaultDailyCloseAt {
		t.Errorf("마감 알림 시각이 바뀌면 안 됩니다: got %q", result.DailyCloseAt)
	}
	if !result.IsEnabled {
		t.Error("활성 여부가 바뀌면 안 됩니다")
	}
}

func TestNotificationSetting_잘못된시각형식거부(t *testing.T) {
	_, repo := newTestRepos()
	svc := NewNotificationSettingService(repo, zap.NewNop())
	ctx := context.Background()

	for _, bad := range []string{"25:00", "14:60", "9:00", "14시", "1400"} {
		value := bad
		_, err := svc.Update(ctx, 1, &dto.UpdateNotificationSettingRequest{RecordRemindAt: &value})
		if !errors.Is(err, ErrInvalidTriggerTime) {
			t.Errorf("%q는 거부되어야 합니다: got %v", bad, err)
		}
	}
}

func TestNotificationSetting_알림끄면발송대상에서제외(t *testing.T) {
	mocks, repo := newTestRepos()
	svc := NewNotificationSettingService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Get(ctx, 1); err != nil {
		t.Fatalf("초기 생성 실패: %v", err)
	}

	off := false
	if _, err := svc.Update(ctx, 1, &dto.UpdateNotificationSettingRequest{IsEnabled: &off}); err != nil {
		t.Fatalf("갱신 실패: %v", err)
	}

	ids, err := mocks.setting.ListEnabledByRecordRemindAt(ctx, model.DefaultRecordRemindAt)
	if err != nil {
		t.Fatalf("대상 조회 실패: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("꺼진 설정은 발송 대상이 아니어야 합니다: got %v", ids)
	}
}
