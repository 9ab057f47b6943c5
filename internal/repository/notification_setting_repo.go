package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// NotificationSettingRepository 알림 설정 데이터 접근 인터페이스
type NotificationSettingRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.UserNotificationSetting, error)
	Create(ctx context.Context, setting *model.UserNotificationSetting) error
	Update(ctx context.Context, setting *model.UserNotificationSetting) error
	// ListEnabledByRecordRemindAt 기록 알림 시각이 주어진 "HH:MM"과 일치하는 활성 설정의 유저 ID 목록
	ListEnabledByRecordRemindAt(ctx context.Context, at string) ([]int64, error)
	// ListEnabledByDailyCloseAt 마감 알림 시각이 주어진 "HH:MM"과 일치하는 활성 설정의 유저 ID 목록
	ListEnabledByDailyCloseAt(ctx context.Context, at string) ([]int64, error)
}

type notificationSettingRepo struct {
	db *gorm.DB
}

// NewNotificationSettingRepo NotificationSettingRepository 생성
func NewNotificationSettingRepo(db *gorm.DB) NotificationSettingRepository {
	return &notificationSettingRepo{db: db}
}

func (r *notificationSettingRepo) GetByUserID(ctx context.Context, userID int64) (*model.UserNotificationSetting, error) {
	var setting model.UserNotificationSetting
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *notificationSettingRepo) Create(ctx context.Context, setting *model.UserNotificationSetting) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(setting).Error)
}

func (r *notificationSettingRepo) Update(ctx context.Context, setting *model.UserNotificationSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *notificationSettingRepo) ListEnabledByRecordRemindAt(ctx context.Context, at string) ([]int64, error) {
	var userIDs []int64
	err := r.db.WithContext(ctx).
		Model(&model.UserNotificationSetting{}).
		Where("is_enabled = ? AND record_remind_at = ?", true, at).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (r *notificationSettingRepo) ListEnabledByDailyCloseAt(ctx context.Context, at string) ([]int64, error) {
	var userIDs []int64
	err := r.db.WithContext(ctx).
		Model(&model.UserNotificationSetting{}).
		Where("is_enabled = ? AND daily_close_at = ?", true, at).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}
