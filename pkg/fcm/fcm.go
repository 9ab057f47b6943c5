package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
)

// Client FCM 푸시 발송 클라이언트
type Client struct {
	messaging *messaging.Client
	logger    *zap.Logger
}

// NewClient Firebase Admin SDK 초기화
func NewClient(ctx context.Context, cfg *config.FCMConfig, logger *zap.Logger) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("Firebase 앱 초기화 실패: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("FCM 메시징 클라이언트 초기화 실패: %w", err)
	}

	logger.Info("FCM 클라이언트 초기화 완료")

	return &Client{messaging: mc, logger: logger}, nil
}

// SendToTokens 주어진 토큰들로 동일한 제목/본문 푸시를 멀티캐스트 발송
// 일부 토큰의 실패는 에러로 취급하지 않는다. 발송 자체가 실패한 경우에만 에러를 반환한다.
func (c *Client) SendToTokens(ctx context.Context, tokens []string, title, body string) error {
	if len(tokens) == 0 {
		return nil
	}

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	resp, err := c.messaging.SendEachForMulticast(ctx, msg)
	if err != nil {
		return fmt.Errorf("FCM 발송 실패: %w", err)
	}

	if resp.FailureCount > 0 {
		c.logger.Warn("일부 토큰 발송 실패",
			zap.Int("success", resp.SuccessCount),
			zap.Int("failure", resp.FailureCount),
		)
	}

	return nil
}
