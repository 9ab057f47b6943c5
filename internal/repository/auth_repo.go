package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// LocalAuthRepository 자체 로그인 자격 데이터 접근 인터페이스
type LocalAuthRepository interface {
	Create(ctx context.Context, auth *model.LocalAuth) error
	GetByLoginID(ctx context.Context, loginID string) (*model.LocalAuth, error)
	GetByUserID(ctx context.Context, userID int64) (*model.LocalAuth, error)
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
}

// SocialAuthRepository 소셜 로그인 연결 데이터 접근 인터페이스
type SocialAuthRepository interface {
	Create(ctx context.Context, auth *model.SocialAuth) error
	GetByProviderUserID(ctx context.Context, provider, providerUserID string) (*model.SocialAuth, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type localAuthRepo struct {
	db *gorm.DB
}

// NewLocalAuthRepo LocalAuthRepository 생성
func NewLocalAuthRepo(db *gorm.DB) LocalAuthRepository {
	return &localAuthRepo{db: db}
}

func (r *localAuthRepo) Create(ctx context.Context, auth *model.LocalAuth) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(auth).Error)
}

func (r *localAuthRepo) GetByLoginID(ctx context.Context, loginID string) (*model.LocalAuth, error) {
	var auth model.LocalAuth
	err := r.db.WithContext(ctx).Where("login_id = ?", loginID).First(&auth).Error
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *localAuthRepo) GetByUserID(ctx context.Context, userID int64) (*model.LocalAuth, error) {
	var auth model.LocalAuth
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&auth).Error
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *localAuthRepo) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	return r.db.WithContext(ctx).
		Model(&model.LocalAuth{}).
		Where("user_id = ?", userID).
		Update("password_hash", hash).Error
}

type socialAuthRepo struct {
	db *gorm.DB
}

// NewSocialAuthRepo SocialAuthRepository 생성
func NewSocialAuthRepo(db *gorm.DB) SocialAuthRepository {
	return &socialAuthRepo{db: db}
}

func (r *socialAuthRepo) Create(ctx context.Context, auth *model.SocialAuth) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(auth).Error)
}

func (r *socialAuthRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SocialAuth{}).Error
}

func (r *socialAuthRepo) GetByProviderUserID(ctx context.Context, provider, providerUserID string) (*model.SocialAuth, error) {
	var auth model.SocialAuth
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&auth).Error
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// PasswordResetTokenRepository 비밀번호 재설정 코드 데이터 접근 인터페이스
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	GetLatestByUserID(ctx context.Context, userID int64) (*model.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64, usedAt time.Time) error
}

type passwordResetTokenRepo struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepo PasswordResetTokenRepository 생성
func NewPasswordResetTokenRepo(db *gorm.DB) PasswordResetTokenRepository {
	return &passwordResetTokenRepo{db: db}
}

func (r *passwordResetTokenRepo) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *passwordResetTokenRepo) GetLatestByUserID(ctx context.Context, userID int64) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *passwordResetTokenRepo) MarkUsed(ctx context.Context, id int64, usedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetToken{}).
		Where("id = ?", id).
		Update("used_at", usedAt).Error
}
