package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
)

// Client S3 업로드 클라이언트
type Client struct {
	s3      *s3.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// NewClient AWS 기본 자격 증명 체인으로 S3 클라이언트 생성
func NewClient(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}

	return &Client{
		s3:      s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}, nil
}

// Upload 파일을 지정 디렉토리에 업로드하고 공개 URL을 반환
// 키는 UUID로 생성하여 충돌을 피한다. 원본 확장자는 유지한다.
func (c *Client) Upload(ctx context.Context, dir, filename, contentType string, data []byte) (string, error) {
	key := path.Join(dir, uuid.New().String()+path.Ext(filename))

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &c.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("S3 업로드 실패: %w", err)
	}

	c.logger.Info("S3 업로드 완료", zap.String("key", key), zap.Int("size", len(data)))

	return c.baseURL + "/" + key, nil
}
