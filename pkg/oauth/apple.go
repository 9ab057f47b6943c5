package oauth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

const (
	appleIssuer  = "https://appleid.apple.com"
	appleJWKSURL = "https://appleid.apple.com/auth/keys"
	jwksCacheTTL = time.Hour
)

// AppleVerifier Apple ID 토큰 검증기
// Apple 공개키(JWKS)를 주기적으로 캐시하며 RS256 서명을 검증한다.
type AppleVerifier struct {
	clientID   string
	httpClient *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey // kid → 공개키
	fetchedAt time.Time
}

// NewAppleVerifier Apple 서비스 ID(client_id)로 검증기 생성
func NewAppleVerifier(clientID string) *AppleVerifier {
	return &AppleVerifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify Apple 공개키로 ID 토큰을 검증하고 신원 반환
// Apple은 이메일 미제공에 동의한 유저의 경우 email 클레임을 주지 않는다.
func (v *AppleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	claims := jwtv5.MapClaims{}
	parsed, err := jwtv5.ParseWithClaims(token, claims, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("지원하지 않는 서명 방식: %v", t.Header["alg"])
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("토큰 헤더에 kid가 없습니다")
		}
		return v.publicKey(ctx, kid)
	},
		jwtv5.WithIssuer(appleIssuer),
		jwtv5.WithAudience(v.clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("Apple ID 토큰 검증 실패: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("Apple ID 토큰이 유효하지 않습니다")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("Apple ID 토큰에 sub가 없습니다")
	}
	email, _ := claims["email"].(string)

	return &Identity{ProviderUserID: sub, Email: email}, nil
}

type jwksResponse struct {
	Keys []struct {
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

// publicKey kid에 해당하는 Apple 공개키 반환 (캐시 만료 시 재조회)
func (v *AppleVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok && time.Since(v.fetchedAt) < jwksCacheTTL {
		return key, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, appleJWKSURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Apple JWKS 조회 실패: %w", err)
	}
	defer resp.Body.Close()

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("Apple JWKS 파싱 실패: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, k := range jwks.Keys {
		nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
		if err != nil {
			continue
		}
		eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = &rsa.PublicKey{
			N: new(big.Int).SetBytes(nBytes),
			E: int(new(big.Int).SetBytes(eBytes).Int64()),
		}
	}
	v.keys = keys
	v.fetchedAt = time.Now()

	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("Apple JWKS에서 kid %q를 찾을 수 없습니다", kid)
	}
	return key, nil
}
