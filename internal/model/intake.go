package model

import "time"

// Intake 섭취 기록 — intakes
// 영양 수치는 기록 시점의 스냅샷이다. 이후 메뉴/옵션 마스터가 바뀌어도 기록은 불변.
type Intake struct {
	ID          int64     `gorm:"primaryKey"                         json:"id"`
	UserID      int64     `gorm:"not null;index:idx_intakes_user_intake_at" json:"user_id"`
	MenuSizeID  int64     `gorm:"not null"                           json:"menu_size_id"`
	Quantity    int       `gorm:"not null;default:1"                 json:"quantity"`
	IntakeAt    time.Time `gorm:"not null;index:idx_intakes_user_intake_at" json:"intake_at"`
	CaffeineMg  int       `gorm:"column:caffeine_mg;not null"        json:"caffeine_mg"`
	SugarG      float64   `gorm:"column:sugar_g;not null"            json:"sugar_g"`
	CalorieKcal int       `gorm:"column:calorie_kcal;not null"       json:"calorie_kcal"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 연관
	MenuSize *MenuSize `gorm:"foreignKey:MenuSizeID" json:"menu_size,omitempty"`
	Options  []Option  `gorm:"many2many:intake_options" json:"options,omitempty"`
}

// TableName 테이블명 지정
func (Intake) TableName() string { return "intakes" }
