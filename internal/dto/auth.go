package dto

// ── 인증 모듈 DTO ──

// SignupRequest 자체 회원가입 요청
type SignupRequest struct {
	LoginID  string `json:"login_id" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=20"`
	Email    string `json:"email"    binding:"required,email"`
	Nickname string `json:"nickname" binding:"omitempty,min=2,max=15"`
}

// LoginRequest 자체 로그인 요청
type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SocialLoginRequest 소셜 로그인 요청.
// Email은 Apple처럼 ID Token에 이메일이 없는 경우를 위한 보조값이며,
// ID Token에 이메일이 있으면 그쪽이 우선한다.
type SocialLoginRequest struct {
	Provider string `json:"provider" binding:"required,oneof=GOOGLE APPLE"`
	IDToken  string `json:"id_token" binding:"required"`
	Email    string `json:"email"    binding:"omitempty,email"`
}

// RefreshTokenRequest 토큰 재발급 요청
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse 토큰 발급 응답
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // Access Token 수명(초)
	IsNewUser    bool   `json:"is_new_user"`
}

// PasswordResetRequest 비밀번호 재설정 코드 발송 요청
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetVerifyRequest 재설정 코드 검증 요청
type PasswordResetVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code"  binding:"required,len=8"`
}

// PasswordResetConfirmRequest 새 비밀번호 확정 요청
type PasswordResetConfirmRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	Code        string `json:"code"         binding:"required,len=8"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=20"`
}
