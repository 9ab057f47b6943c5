package handler

import "github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"

// Handler 모든 Handler의 집약 진입점
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Device       *DeviceHandler
	Notification *NotificationHandler
	Brand        *BrandHandler
	Menu         *MenuHandler
	Option       *OptionHandler
	Intake       *IntakeHandler
}

// NewHandler Handler 집약 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, svc.PasswordReset),
		User:         NewUserHandler(svc.User),
		Device:       NewDeviceHandler(svc.Device),
		Notification: NewNotificationHandler(svc.NotificationSetting),
		Brand:        NewBrandHandler(svc.Brand, svc.Favorite),
		Menu:         NewMenuHandler(svc.Menu, svc.Favorite),
		Option:       NewOptionHandler(svc.Option),
		Intake:       NewIntakeHandler(svc.Intake, svc.Export),
	}
}
