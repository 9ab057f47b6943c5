package dto

// ── 옵션 모듈 DTO ──

// OptionListRequest 옵션 목록 조회 파라미터. category는 선택.
type OptionListRequest struct {
	BrandID  int64  `form:"brand_id" binding:"required"`
	Category string `form:"category"`
}

// OptionResponse 옵션 응답
type OptionResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	CaffeineMg  int     `json:"caffeine_mg"`
	SugarG      float64 `json:"sugar_g"`
	CalorieKcal int     `json:"calorie_kcal"`
}
