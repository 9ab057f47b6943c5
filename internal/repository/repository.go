package repository

import "gorm.io/gorm"

// Repository 모든 Repository의 집약 진입점
type Repository struct {
	User                UserRepository
	LocalAuth           LocalAuthRepository
	SocialAuth          SocialAuthRepository
	PasswordReset       PasswordResetTokenRepository
	Device              UserDeviceRepository
	NotificationSetting NotificationSettingRepository
	DispatchLog         DispatchLogRepository
	Brand               BrandRepository
	BrandFavorite       BrandFavoriteRepository
	Menu                MenuRepository
	MenuSize            MenuSizeRepository
	MenuFavorite        MenuFavoriteRepository
	Option              OptionRepository
	Intake              IntakeRepository
}

// NewRepository Repository 집약 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:                NewUserRepo(db),
		LocalAuth:           NewLocalAuthRepo(db),
		SocialAuth:          NewSocialAuthRepo(db),
		PasswordReset:       NewPasswordResetTokenRepo(db),
		Device:              NewUserDeviceRepo(db),
		NotificationSetting: NewNotificationSettingRepo(db),
		DispatchLog:         NewDispatchLogRepo(db),
		Brand:               NewBrandRepo(db),
		BrandFavorite:       NewBrandFavoriteRepo(db),
		Menu:                NewMenuRepo(db),
		MenuSize:            NewMenuSizeRepo(db),
		MenuFavorite:        NewMenuFavoriteRepo(db),
		Option:              NewOptionRepo(db),
		Intake:              NewIntakeRepo(db),
	}
}
