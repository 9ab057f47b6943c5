package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var (
	ErrResetCodeInvalid = errors.New("인증 코드가 올바르지 않습니다")
	ErrResetCodeExpired = errors.New("인증 코드가 만료되었습니다")
)

// 인증 코드 문자 집합. 헷갈리기 쉬운 0/O, 1/I는 뺀다.
const resetCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// MailSender 재설정 코드 메일 발송 인터페이스. pkg/mail.Sender가 구현한다.
type MailSender interface {
	SendPasswordResetCode(to, code string) error
}

// PasswordResetService 비밀번호 재설정 비즈니스 인터페이스
type PasswordResetService interface {
	// Request 인증 코드를 발급해 메일로 보낸다.
	// 가입되지 않은 이메일이어도 에러를 내지 않는다 — 이메일 존재 여부를 노출하지 않기 위함.
	Request(ctx context.Context, email string) error
	// Verify 코드 유효성만 확인한다. 대소문자는 구분하지 않는다.
	Verify(ctx context.Context, email, code string) error
	// Confirm 코드를 소모하고 새 비밀번호를 저장한다. 코드는 1회용.
	Confirm(ctx context.Context, email, code, newPassword string) error
}

type passwordResetService struct {
	cfg    *config.Config
	repo   *repository.Repository
	mailer MailSender
	logger *zap.Logger
	now    func() time.Time
}

// NewPasswordResetService PasswordResetService 인스턴스 생성
func NewPasswordResetService(
	cfg *config.Config,
	repo *repository.Repository,
	mailer MailSender,
	logger *zap.Logger,
) PasswordResetService {
	return &passwordResetService{
		cfg:    cfg,
		repo:   repo,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}
}

func (s *passwordResetService) Request(ctx context.Context, email string) error {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if user.IsDeleted() {
		return nil
	}

	code, err := generateResetCode(8)
	if err != nil {
		return err
	}

	token := &model.PasswordResetToken{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: s.now().Add(s.cfg.Auth.ResetCodeTTL),
	}
	if err := s.repo.PasswordReset.Create(ctx, token); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetCode(email, code); err != nil {
		s.logger.Error("재설정 코드 메일 발송 실패",
			zap.Int64("user_id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *passwordResetService) Verify(ctx context.Context, email, code string) error {
	_, _, err := s.findValidToken(ctx, email, code)
	return err
}

func (s *passwordResetService) Confirm(ctx context.Context, email, code, newPassword string) error {
	user, token, err := s.findValidToken(ctx, email, code)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.PasswordReset.MarkUsed(ctx, token.ID, s.now()); err != nil {
		return err
	}
	return s.repo.LocalAuth.UpdatePasswordHash(ctx, user.ID, string(hash))
}

func (s *passwordResetService) findValidToken(ctx context.Context, email, code string) (*model.User, *model.PasswordResetToken, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrResetCodeInvalid
		}
		return nil, nil, err
	}

	token, err := s.repo.PasswordReset.GetLatestByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrResetCodeInvalid
		}
		return nil, nil, err
	}

	if !strings.EqualFold(token.Code, code) || token.IsUsed() {
		return nil, nil, ErrResetCodeInvalid
	}
	if token.IsExpired(s.now()) {
		return nil, nil, ErrResetCodeExpired
	}
	return user, token, nil
}

func generateResetCode(length int) (string, error) {
	max := big.NewInt(int64(len(resetCodeCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = resetCodeCharset[n.Int64()]
	}
	return string(buf), nil
}
