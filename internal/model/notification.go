package model

import "time"

// NotificationKind 알림 종류
type NotificationKind string

const (
	// KindRecordRemind 기록 독려 알림
	KindRecordRemind NotificationKind = "RECORD_REMIND"
	// KindDailyClose 하루 섭취 마감 독려 알림
	KindDailyClose NotificationKind = "DAILY_CLOSE"
)

// 알림 설정 기본값 — 가입 시(또는 최초 조회 시) 이 값으로 생성된다
const (
	DefaultRecordRemindAt = "14:00"
	DefaultDailyCloseAt   = "21:00"
)

// UserNotificationSetting 유저별 알림 설정 — user_notification_settings
// 유저당 정확히 한 행. 트리거 시각은 분 단위 "HH:MM" 문자열로 보관한다.
type UserNotificationSetting struct {
	UserID         int64     `gorm:"primaryKey"                         json:"user_id"`
	IsEnabled      bool      `gorm:"not null;default:true"              json:"is_enabled"`
	RecordRemindAt string    `gorm:"type:varchar(5);not null"           json:"record_remind_at"`
	DailyCloseAt   string    `gorm:"type:varchar(5);not null"           json:"daily_close_at"`
	UpdatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 테이블명 지정
func (UserNotificationSetting) TableName() string { return "user_notification_settings" }

// NewDefaultNotificationSetting 기본값 설정 생성
func NewDefaultNotificationSetting(userID int64) *UserNotificationSetting {
	return &UserNotificationSetting{
		UserID:         userID,
		IsEnabled:      true,
		RecordRemindAt: DefaultRecordRemindAt,
		DailyCloseAt:   DefaultDailyCloseAt,
	}
}

// NotificationDispatchLog 발송 이력 — notification_dispatch_logs
// (kind, user_id, sent_date) 유니크 제약이 "오늘 이미 보냈는가"의 단일 기준이며,
// 스케줄러 중복 실행 시 멱등성 장벽 역할을 한다. 이 서브시스템은 행을 수정/삭제하지 않는다.
type NotificationDispatchLog struct {
	ID        int64            `gorm:"primaryKey"                         json:"id"`
	Kind      NotificationKind `gorm:"type:varchar(20);not null;uniqueIndex:uq_dispatch_kind_user_date" json:"kind"`
	UserID    int64            `gorm:"not null;uniqueIndex:uq_dispatch_kind_user_date"                  json:"user_id"`
	SentDate  string           `gorm:"type:date;not null;uniqueIndex:uq_dispatch_kind_user_date"        json:"sent_date"`
	CreatedAt time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (NotificationDispatchLog) TableName() string { return "notification_dispatch_logs" }
