package model

import "time"

// Menu 메뉴 테이블 — menus
type Menu struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	BrandID   int64     `gorm:"not null;index"                     json:"brand_id"`
	Name      string    `gorm:"type:varchar(100);not null"         json:"name"`
	Category  *string   `gorm:"type:varchar(50)"                   json:"category,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 연관
	Sizes []MenuSize `gorm:"foreignKey:MenuID" json:"sizes,omitempty"`
}

// TableName 테이블명 지정
func (Menu) TableName() string { return "menus" }

// MenuSize 메뉴 사이즈별 영양 정보 — menu_sizes
// 섭취 기록의 영양 스냅샷 계산 기준.
type MenuSize struct {
	ID          int64   `gorm:"primaryKey"                 json:"id"`
	MenuID      int64   `gorm:"not null;index"             json:"menu_id"`
	Name        string  `gorm:"type:varchar(30);not null"  json:"name"`
	VolumeML    int     `gorm:"column:volume_ml;not null"  json:"volume_ml"`
	CaffeineMg  int     `gorm:"column:caffeine_mg;not null" json:"caffeine_mg"`
	SugarG      float64 `gorm:"column:sugar_g;not null"    json:"sugar_g"`
	CalorieKcal int     `gorm:"column:calorie_kcal;not null" json:"calorie_kcal"`
}

// TableName 테이블명 지정
func (MenuSize) TableName() string { return "menu_sizes" }

// MenuFavorite 메뉴 즐겨찾기 — menu_favorites
type MenuFavorite struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_menu_favorites" json:"user_id"`
	MenuID    int64     `gorm:"not null;uniqueIndex:uq_menu_favorites" json:"menu_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (MenuFavorite) TableName() string { return "menu_favorites" }
