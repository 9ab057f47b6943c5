package model

import "time"

// 소셜 제공자
const (
	ProviderGoogle = "GOOGLE"
	ProviderApple  = "APPLE"
)

// LocalAuth 자체 로그인 자격 — local_auths
type LocalAuth struct {
	ID           int64     `gorm:"primaryKey"                         json:"id"`
	UserID       int64     `gorm:"not null"                           json:"user_id"`
	LoginID      string    `gorm:"type:varchar(50);not null;unique"   json:"login_id"`
	PasswordHash string    `gorm:"type:varchar(255);not null"         json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (LocalAuth) TableName() string { return "local_auths" }

// SocialAuth 소셜 로그인 연결 — social_auths
// (provider, provider_user_id) 유니크: 한 소셜 계정은 한 유저에만 연결된다.
type SocialAuth struct {
	ID             int64     `gorm:"primaryKey"                         json:"id"`
	UserID         int64     `gorm:"not null"                           json:"user_id"`
	Provider       string    `gorm:"type:varchar(20);not null"          json:"provider"`
	ProviderUserID string    `gorm:"type:varchar(255);not null"         json:"-"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (SocialAuth) TableName() string { return "social_auths" }

// PasswordResetToken 비밀번호 재설정 인증 코드 — password_reset_tokens
type PasswordResetToken struct {
	ID        int64      `gorm:"primaryKey"                         json:"id"`
	UserID    int64      `gorm:"not null"                           json:"user_id"`
	Code      string     `gorm:"type:varchar(8);not null"           json:"-"`
	ExpiresAt time.Time  `gorm:"not null"                           json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

// IsExpired 기준 시각에서의 만료 여부
func (t *PasswordResetToken) IsExpired(now time.Time) bool { return now.After(t.ExpiresAt) }

// IsUsed 사용 여부
func (t *PasswordResetToken) IsUsed() bool { return t.UsedAt != nil }
