package dto

// ── 디바이스 모듈 DTO ──

// RegisterDeviceRequest 디바이스(FCM 토큰) 등록 요청
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" binding:"required"`
	Platform string `json:"platform"  binding:"required,oneof=ANDROID IOS"`
}

// DeviceResponse 디바이스 응답
type DeviceResponse struct {
	ID         int64  `json:"id"`
	Platform   string `json:"platform"`
	IsEnabled  bool   `json:"is_enabled"`
	LastSeenAt string `json:"last_seen_at"`
}
