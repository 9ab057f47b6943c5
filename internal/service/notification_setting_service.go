package service

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var ErrInvalidTriggerTime = errors.New("시각은 HH:MM 형식이어야 합니다")

// 분 단위 24시간 표기만 허용한다. 스케줄러의 문자열 일치 비교와 같은 정밀도.
var triggerTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NotificationSettingService 알림 설정 비즈니스 인터페이스
type NotificationSettingService interface {
	// Get 설정 조회. 행이 없으면 기본값으로 생성해 돌려준다.
	Get(ctx context.Context, userID int64) (*dto.NotificationSettingResponse, error)
	// Update 부분 갱신. 지정된 필드만 바꾼다.
	Update(ctx context.Context, userID int64, req *dto.UpdateNotificationSettingRequest) (*dto.NotificationSettingResponse, error)
}

type notificationSettingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationSettingService NotificationSettingService 인스턴스 생성
func NewNotificationSettingService(repo *repository.Repository, logger *zap.Logger) NotificationSettingService {
	return &notificationSettingService{repo: repo, logger: logger}
}

func (s *notificationSettingService) Get(ctx context.Context, userID int64) (*dto.NotificationSettingResponse, error) {
	setting, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

func (s *notificationSettingService) Update(ctx context.Context, userID int64, req *dto.UpdateNotificationSettingRequest) (*dto.NotificationSettingResponse, error) {
	setting, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.IsEnabled != nil {
		setting.IsEnabled = *req.IsEnabled
	}
	if req.RecordRemindAt != nil {
		if !triggerTimePattern.MatchString(*req.RecordRemindAt) {
			return nil, ErrInvalidTriggerTime
		}
		setting.RecordRemindAt = *req.RecordRemindAt
	}
	if req.DailyCloseAt != nil {
		if !triggerTimePattern.MatchString(*req.DailyCloseAt) {
			return nil, ErrInvalidTriggerTime
		}
		setting.DailyCloseAt = *req.DailyCloseAt
	}

	if err := s.repo.NotificationSetting.Update(ctx, setting); err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

func (s *notificationSettingService) findOrCreate(ctx context.Context, userID int64) (*model.UserNotificationSetting, error) {
	setting, err := s.repo.NotificationSetting.GetByUserID(ctx, userID)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	setting = model.NewDefaultNotificationSetting(userID)
	if err := s.repo.NotificationSetting.Create(ctx, setting); err != nil {
		// 동시 요청이 먼저 만들었으면 그 행을 읽는다
		if errors.Is(err, repository.ErrDuplicateKey) {
			return s.repo.NotificationSetting.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return setting, nil
}

func toSettingResponse(setting *model.UserNotificationSetting) *dto.NotificationSettingResponse {
	return &dto.NotificationSettingResponse{
		IsEnabled:      setting.IsEnabled,
		RecordRemindAt: setting.RecordRemindAt,
		DailyCloseAt:   setting.DailyCloseAt,
	}
}
