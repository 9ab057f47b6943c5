package dto

// ── 메뉴 모듈 DTO ──

// MenuListRequest 메뉴 목록 조회 파라미터
type MenuListRequest struct {
	Keyword string `form:"keyword"`
}

// MenuSizeResponse 사이즈별 영양 정보 응답
type MenuSizeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	VolumeML    int     `json:"volume_ml"`
	CaffeineMg  int     `json:"caffeine_mg"`
	SugarG      float64 `json:"sugar_g"`
	CalorieKcal int     `json:"calorie_kcal"`
}

// MenuResponse 메뉴 응답
type MenuResponse struct {
	ID         int64              `json:"id"`
	BrandID    int64              `json:"brand_id"`
	Name       string             `json:"name"`
	Category   *string            `json:"category,omitempty"`
	IsFavorite bool               `json:"is_favorite"`
	Sizes      []MenuSizeResponse `json:"sizes"`
}
