package dto

// ── 유저 모듈 DTO ──

// UserResponse 내 정보 응답
type UserResponse struct {
	ID              int64   `json:"id"`
	Nickname        string  `json:"nickname"`
	Email           *string `json:"email,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// UpdateNicknameRequest 닉네임 변경 요청
type UpdateNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=15"`
}
