package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/jwt"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/oauth"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/redis"
)

// Service 모든 Service의 집약 진입점
type Service struct {
	Auth                AuthService
	PasswordReset       PasswordResetService
	User                UserService
	Device              DeviceService
	NotificationSetting NotificationSettingService
	Scheduler           NotificationScheduler
	Brand               BrandService
	Menu                MenuService
	Option              OptionService
	Favorite            FavoriteService
	Intake              IntakeService
	Export              ExportService
}

// Deps Service 구성에 필요한 외부 의존성 묶음
type Deps struct {
	Config    *config.Config
	Repo      *repository.Repository
	JWT       *jwt.Manager
	Redis     *redis.Client
	Verifiers map[string]oauth.TokenVerifier
	Push      PushSender
	Mailer    MailSender
	Uploader  ImageUploader
	Location  *time.Location
	Logger    *zap.Logger
}

// NewService Service 집약 생성
func NewService(d Deps) *Service {
	intake := NewIntakeService(d.Repo, d.Location, d.Logger)
	return &Service{
		Auth:                NewAuthService(d.Config, d.Repo, d.JWT, d.Redis, d.Verifiers, d.Logger),
		PasswordReset:       NewPasswordResetService(d.Config, d.Repo, d.Mailer, d.Logger),
		User:                NewUserService(d.Repo, d.Uploader, d.Logger),
		Device:              NewDeviceService(d.Repo, d.Logger),
		NotificationSetting: NewNotificationSettingService(d.Repo, d.Logger),
		Scheduler:           NewNotificationScheduler(d.Repo, d.Push, d.Location, d.Logger),
		Brand:               NewBrandService(d.Repo, d.Logger),
		Menu:                NewMenuService(d.Repo, d.Logger),
		Option:              NewOptionService(d.Repo, d.Logger),
		Favorite:            NewFavoriteService(d.Repo, d.Logger),
		Intake:              intake,
		Export:              NewExportService(intake, d.Repo, d.Logger),
	}
}
