package dto

// ── 알림 설정 모듈 DTO ──

// NotificationSettingResponse 알림 설정 응답
type NotificationSettingResponse struct {
	IsEnabled      bool   `json:"is_enabled"`
	RecordRemindAt string `json:"record_remind_at"`
	DailyCloseAt   string `json:"daily_close_at"`
}

// UpdateNotificationSettingRequest 알림 설정 변경 요청.
// 포인터 필드만 부분 갱신한다. 시각은 "HH:MM" 24시간 표기.
type UpdateNotificationSettingRequest struct {
	IsEnabled      *bool   `json:"is_enabled"`
	RecordRemindAt *string `json:"record_remind_at" binding:"omitempty,len=5"`
	DailyCloseAt   *string `json:"daily_close_at"   binding:"omitempty,len=5"`
}
