package model

import "time"

// 유저 상태
const (
	UserStatusActive  = "ACTIVE"
	UserStatusDeleted = "DELETED"
)

// User 유저 테이블 — users
// 이메일은 소셜 제공자가 주지 않을 수 있어 nullable. 탈퇴 시 비운다.
type User struct {
	ID              int64     `gorm:"primaryKey"                          json:"id"`
	Nickname        string    `gorm:"type:varchar(30);not null;unique"    json:"nickname"`
	Email           *string   `gorm:"type:varchar(255)"                   json:"email,omitempty"`
	ProfileImageURL *string   `gorm:"type:varchar(512)"                   json:"profile_image_url,omitempty"`
	Status          string    `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"-"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"updated_at"`
}

// TableName 테이블명 지정
func (User) TableName() string { return "users" }

// IsDeleted 탈퇴 여부
func (u *User) IsDeleted() bool { return u.Status == UserStatusDeleted }
