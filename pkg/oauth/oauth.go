package oauth

import "context"

// Identity 소셜 제공자가 검증해 준 사용자 신원
type Identity struct {
	ProviderUserID string // 제공자 측 고유 식별자 (sub)
	Email          string // 제공자가 알려준 이메일 (없을 수 있음, Apple)
}

// TokenVerifier 소셜 로그인 ID 토큰 검증기
// 구현체는 제공자별 서명/발급자/대상(audience)을 검증하고 신원을 돌려준다.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
