package model

// Option 브랜드 옵션(샷 추가, 시럽 등) — options
type Option struct {
	ID          int64   `gorm:"primaryKey"                  json:"id"`
	BrandID     int64   `gorm:"not null;index:idx_options_brand_category" json:"brand_id"`
	Category    string  `gorm:"type:varchar(50);not null;index:idx_options_brand_category" json:"category"`
	Name        string  `gorm:"type:varchar(100);not null"  json:"name"`
	CaffeineMg  int     `gorm:"column:caffeine_mg;not null" json:"caffeine_mg"`
	SugarG      float64 `gorm:"column:sugar_g;not null"     json:"sugar_g"`
	CalorieKcal int     `gorm:"column:calorie_kcal;not null" json:"calorie_kcal"`
}

// TableName 테이블명 지정
func (Option) TableName() string { return "options" }
