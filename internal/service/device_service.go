package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var ErrDeviceNotFound = errors.New("등록된 디바이스가 아닙니다")

// DeviceService 디바이스(FCM 토큰) 비즈니스 인터페이스
type DeviceService interface {
	// Register 토큰 기준 업서트. 같은 토큰이 다른 유저에게 재등록되면 소유자를 옮긴다
	// (기기 재로그인 흐름). last_seen_at은 매 등록마다 갱신된다.
	Register(ctx context.Context, userID int64, req *dto.RegisterDeviceRequest) (*dto.DeviceResponse, error)
	Unregister(ctx context.Context, userID int64, fcmToken string) error
}

type deviceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewDeviceService DeviceService 인스턴스 생성
func NewDeviceService(repo *repository.Repository, logger *zap.Logger) DeviceService {
	return &deviceService{repo: repo, logger: logger, now: time.Now}
}

func (s *deviceService) Register(ctx context.Context, userID int64, req *dto.RegisterDeviceRequest) (*dto.DeviceResponse, error) {
	device, err := s.repo.Device.GetByToken(ctx, req.FCMToken)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		device = &model.UserDevice{
			UserID:     userID,
			FCMToken:   req.FCMToken,
			Platform:   req.Platform,
			IsEnabled:  true,
			LastSeenAt: s.now(),
		}
		if err := s.repo.Device.Create(ctx, device); err != nil {
			return nil, err
		}
		return toDeviceResponse(device), nil
	}

	device.UserID = userID
	device.Platform = req.Platform
	device.IsEnabled = true
	device.LastSeenAt = s.now()
	if err := s.repo.Device.Update(ctx, device); err != nil {
		return nil, err
	}
	return toDeviceResponse(device), nil
}

func (s *deviceService) Unregister(ctx context.Context, userID int64, fcmToken string) error {
	err := s.repo.Device.DeleteByToken(ctx, userID, fcmToken)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDeviceNotFound
	}
	return err
}

func toDeviceResponse(device *model.UserDevice) *dto.DeviceResponse {
	return &dto.DeviceResponse{
		ID:         device.ID,
		Platform:   device.Platform,
		IsEnabled:  device.IsEnabled,
		LastSeenAt: device.LastSeenAt.Format(time.RFC3339),
	}
}
