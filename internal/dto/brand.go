package dto

// ── 브랜드 모듈 DTO ──

// BrandListRequest 브랜드 목록 조회 파라미터
type BrandListRequest struct {
	Keyword string `form:"keyword"`
}

// BrandResponse 브랜드 응답
type BrandResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	LogoURL    *string `json:"logo_url,omitempty"`
	IsFavorite bool    `json:"is_favorite"`
}
