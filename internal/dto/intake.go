package dto

// ── 섭취 기록 모듈 DTO ──

// CreateIntakeRequest 섭취 기록 생성 요청.
// IntakeAt은 RFC 3339 형식. 생략 시 서버 현재 시각을 쓴다.
type CreateIntakeRequest struct {
	MenuSizeID int64   `json:"menu_size_id" binding:"required"`
	Quantity   int     `json:"quantity"     binding:"omitempty,min=1,max=20"`
	OptionIDs  []int64 `json:"option_ids"`
	IntakeAt   string  `json:"intake_at"`
}

// UpdateIntakeRequest 섭취 기록 수정 요청. 옵션 목록은 전체 교체된다.
type UpdateIntakeRequest struct {
	MenuSizeID int64   `json:"menu_size_id" binding:"required"`
	Quantity   int     `json:"quantity"     binding:"omitempty,min=1,max=20"`
	OptionIDs  []int64 `json:"option_ids"`
	IntakeAt   string  `json:"intake_at"`
}

// IntakeResponse 섭취 기록 응답
type IntakeResponse struct {
	ID          int64            `json:"id"`
	MenuName    string           `json:"menu_name"`
	BrandName   string           `json:"brand_name"`
	SizeName    string           `json:"size_name"`
	Quantity    int              `json:"quantity"`
	IntakeAt    string           `json:"intake_at"`
	CaffeineMg  int              `json:"caffeine_mg"`
	SugarG      float64          `json:"sugar_g"`
	CalorieKcal int              `json:"calorie_kcal"`
	Options     []OptionResponse `json:"options,omitempty"`
}

// IntakeListRequest 기간별 섭취 기록 조회 파라미터 ("YYYY-MM-DD")
type IntakeListRequest struct {
	From string `form:"from" binding:"required,len=10"`
	To   string `form:"to"   binding:"required,len=10"`
}

// DailyIntakeStat 일별 합산 통계
type DailyIntakeStat struct {
	Date        string  `json:"date"`
	CaffeineMg  int     `json:"caffeine_mg"`
	SugarG      float64 `json:"sugar_g"`
	CalorieKcal int     `json:"calorie_kcal"`
	IntakeCount int     `json:"intake_count"`
}

// DrinkGroupStat 같은 음료(사이즈 + 옵션 구성이 동일)끼리 묶은 통계.
// 옵션 순서는 무시하고, 수량은 합산한다.
type DrinkGroupStat struct {
	BrandName   string           `json:"brand_name"`
	MenuName    string           `json:"menu_name"`
	SizeName    string           `json:"size_name"`
	Quantity    int              `json:"quantity"`
	CaffeineMg  int              `json:"caffeine_mg"`
	SugarG      float64          `json:"sugar_g"`
	CalorieKcal int              `json:"calorie_kcal"`
	Options     []OptionResponse `json:"options,omitempty"`
}

// IntakeStatsResponse 기간 통계 응답
type IntakeStatsResponse struct {
	From             string            `json:"from"`
	To               string            `json:"to"`
	TotalCaffeineMg  int               `json:"total_caffeine_mg"`
	TotalSugarG      float64           `json:"total_sugar_g"`
	TotalCalorieKcal int               `json:"total_calorie_kcal"`
	Daily            []DailyIntakeStat `json:"daily"`
	Drinks           []DrinkGroupStat  `json:"drinks"`
}
