package model

import "time"

// 디바이스 플랫폼
const (
	PlatformAndroid = "ANDROID"
	PlatformIOS     = "IOS"
)

// UserDevice 유저 디바이스 — user_devices
// FCM 토큰이 식별자 역할을 한다(유니크). 한 유저가 여러 디바이스를 가질 수 있다.
type UserDevice struct {
	ID         int64     `gorm:"primaryKey"                         json:"id"`
	UserID     int64     `gorm:"not null;index"                     json:"user_id"`
	FCMToken   string    `gorm:"column:fcm_token;type:varchar(512);not null;unique" json:"-"`
	Platform   string    `gorm:"type:varchar(20);not null"          json:"platform"`
	IsEnabled  bool      `gorm:"not null;default:true"              json:"is_enabled"`
	LastSeenAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"last_seen_at"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (UserDevice) TableName() string { return "user_devices" }
