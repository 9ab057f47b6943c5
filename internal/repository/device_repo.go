package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// DeviceToken 발송 대상 조회용 (유저, 토큰) 투영
type DeviceToken struct {
	UserID   int64
	FCMToken string
}

// UserDeviceRepository 유저 디바이스 데이터 접근 인터페이스
type UserDeviceRepository interface {
	GetByToken(ctx context.Context, token string) (*model.UserDevice, error)
	Create(ctx context.Context, device *model.UserDevice) error
	Update(ctx context.Context, device *model.UserDevice) error
	DeleteByToken(ctx context.Context, userID int64, token string) error
	// ListEnabledTokensByUserIDs 활성 디바이스의 (유저, 토큰) 쌍을 일괄 조회한다.
	// 빈 토큰이나 중복 토큰의 정리는 호출 측(스케줄러) 책임이다.
	ListEnabledTokensByUserIDs(ctx context.Context, userIDs []int64) ([]DeviceToken, error)
}

type userDeviceRepo struct {
	db *gorm.DB
}

// NewUserDeviceRepo UserDeviceRepository 생성
func NewUserDeviceRepo(db *gorm.DB) UserDeviceRepository {
	return &userDeviceRepo{db: db}
}

func (r *userDeviceRepo) GetByToken(ctx context.Context, token string) (*model.UserDevice, error) {
	var device model.UserDevice
	err := r.db.WithContext(ctx).Where("fcm_token = ?", token).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *userDeviceRepo) Create(ctx context.Context, device *model.UserDevice) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(device).Error)
}

func (r *userDeviceRepo) Update(ctx context.Context, device *model.UserDevice) error {
	return r.db.WithContext(ctx).Save(device).Error
}

func (r *userDeviceRepo) DeleteByToken(ctx context.Context, userID int64, token string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND fcm_token = ?", userID, token).
		Delete(&model.UserDevice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userDeviceRepo) ListEnabledTokensByUserIDs(ctx context.Context, userIDs []int64) ([]DeviceToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var tokens []DeviceToken
	err := r.db.WithContext(ctx).
		Model(&model.UserDevice{}).
		Select("user_id", "fcm_token").
		Where("user_id IN ? AND is_enabled = ?", userIDs, true).
		Find(&tokens).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return tokens, nil
}
