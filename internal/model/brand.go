package model

import "time"

// Brand 브랜드 테이블 — brands
type Brand struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	LogoURL   *string   `gorm:"type:varchar(512)"                  json:"logo_url,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (Brand) TableName() string { return "brands" }

// BrandFavorite 브랜드 즐겨찾기 — brand_favorites
// (user_id, brand_id) 유니크. 등록은 멱등하게 처리한다.
type BrandFavorite struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_brand_favorites" json:"user_id"`
	BrandID   int64     `gorm:"not null;uniqueIndex:uq_brand_favorites" json:"brand_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (BrandFavorite) TableName() string { return "brand_favorites" }
