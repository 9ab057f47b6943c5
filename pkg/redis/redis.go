package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
)

// Client Redis 클라이언트 래퍼
// 액세스/리프레시 토큰 블랙리스트와 인증 엔드포인트 레이트 리밋에 사용
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결 생성 후 Ping 헬스체크
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 토큰 블랙리스트 ──

const (
	accessBlacklistPrefix  = "blacklist:access:"
	refreshBlacklistPrefix = "blacklist:refresh:"
)

// BlacklistAccessToken 액세스 토큰의 jti를 블랙리스트에 등록
// TTL은 토큰 잔여 유효기간과 같게 준다. 이미 등록되어 있어도 에러가 아니다(멱등).
func (c *Client) BlacklistAccessToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 이미 만료된 토큰은 등록할 필요 없음
	}
	return c.rdb.Set(ctx, accessBlacklistPrefix+jti, "1", ttl).Err()
}

// IsAccessTokenBlacklisted 액세스 토큰 jti의 블랙리스트 여부 확인
func (c *Client) IsAccessTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, accessBlacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// BlacklistRefreshToken 리프레시 토큰의 jti를 블랙리스트에 등록 (멱등)
func (c *Client) BlacklistRefreshToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, refreshBlacklistPrefix+jti, "1", ttl).Err()
}

// IsRefreshTokenBlacklisted 리프레시 토큰 jti의 블랙리스트 여부 확인
func (c *Client) IsRefreshTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, refreshBlacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 레이트 리밋 ──

// CheckRateLimit 고정 윈도우 카운터 기반 레이트 리밋
// 윈도우 내 요청 수가 limit를 넘으면 false를 반환한다.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close Redis 연결 종료
func (c *Client) Close() error {
	return c.rdb.Close()
}
