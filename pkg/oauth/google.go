package oauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier Google ID 토큰 검증기
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier Google OAuth 클라이언트 ID로 검증기 생성
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify Google 공개키로 ID 토큰을 검증하고 신원 반환
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("Google ID 토큰 검증 실패: %w", err)
	}

	email, _ := payload.Claims["email"].(string)

	return &Identity{
		ProviderUserID: payload.Subject,
		Email:          email,
	}, nil
}
