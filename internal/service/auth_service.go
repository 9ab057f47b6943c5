package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/jwt"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/oauth"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/redis"
)

var (
	ErrInvalidCredentials  = errors.New("아이디 또는 비밀번호가 올바르지 않습니다")
	ErrLoginIDTaken        = errors.New("이미 사용 중인 아이디입니다")
	ErrEmailTaken          = errors.New("이미 가입된 이메일입니다")
	ErrUserDeleted         = errors.New("탈퇴한 계정입니다")
	ErrUnsupportedProvider = errors.New("지원하지 않는 소셜 제공자입니다")
	ErrTokenBlacklisted    = errors.New("무효화된 토큰입니다")
)

// AuthService 인증 비즈니스 인터페이스
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	SocialLogin(ctx context.Context, req *dto.SocialLoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	rdb       *redis.Client
	verifiers map[string]oauth.TokenVerifier
	logger    *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	verifiers map[string]oauth.TokenVerifier,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		repo:      repo,
		jwtMgr:    jwtMgr,
		rdb:       rdb,
		verifiers: verifiers,
		logger:    logger,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	// 1. 아이디/이메일 중복 확인
	if _, err := s.repo.LocalAuth.GetByLoginID(ctx, req.LoginID); err == nil {
		return nil, ErrLoginIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	taken, err := s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	// 2. 닉네임 결정 (미지정 시 자동 생성)
	nickname := req.Nickname
	if nickname == "" {
		nickname, err = s.generateNickname(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.repo.User.ExistsByNickname(ctx, nickname)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrNicknameTaken
		}
	}

	// 3. 유저 + 자격 생성
	email := req.Email
	user := &model.User{
		Nickname: nickname,
		Email:    &email,
		Status:   model.UserStatusActive,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("유저 생성 실패", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	auth := &model.LocalAuth{
		UserID:       user.ID,
		LoginID:      req.LoginID,
		PasswordHash: string(hash),
	}
	if err := s.repo.LocalAuth.Create(ctx, auth); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrLoginIDTaken
		}
		return nil, err
	}

	// 4. 기본 알림 설정 보장
	s.ensureDefaultSetting(ctx, user.ID)

	return s.issueTokens(user.ID, true)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	auth, err := s.repo.LocalAuth.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.User.GetByID(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted() {
		return nil, ErrUserDeleted
	}

	return s.issueTokens(user.ID, false)
}

func (s *authService) SocialLogin(ctx context.Context, req *dto.SocialLoginRequest) (*dto.TokenResponse, error) {
	verifier, ok := s.verifiers[req.Provider]
	if !ok {
		return nil, ErrUnsupportedProvider
	}

	// 1. ID Token 검증 → 제공자 측 유저 식별
	identity, err := verifier.Verify(ctx, req.IDToken)
	if err != nil {
		s.logger.Warn("소셜 토큰 검증 실패",
			zap.String("provider", req.Provider), zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	// 2. 기존 연결 확인
	social, err := s.repo.SocialAuth.GetByProviderUserID(ctx, req.Provider, identity.ProviderUserID)
	if err == nil {
		user, err := s.repo.User.GetByID(ctx, social.UserID)
		if err != nil {
			return nil, err
		}
		if user.IsDeleted() {
			return nil, ErrUserDeleted
		}
		// Apple은 최초 로그인 이후 이메일을 주지 않을 수 있다.
		// 비어 있던 이메일이 이번에 왔으면 보충한다.
		if user.Email == nil && identity.Email != "" {
			email := identity.Email
			user.Email = &email
			if err := s.repo.User.Update(ctx, user); err != nil {
				s.logger.Warn("이메일 보충 실패", zap.Int64("user_id", user.ID), zap.Error(err))
			}
		}
		return s.issueTokens(user.ID, false)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 3. 신규 가입. 이메일은 ID Token 값이 우선, 없으면 요청 본문의 값을 쓴다.
	email := identity.Email
	if email == "" {
		email = req.Email
	}
	if email != "" {
		taken, err := s.repo.User.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	nickname, err := s.generateNickname(ctx)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Nickname: nickname,
		Status:   model.UserStatusActive,
	}
	if email != "" {
		user.Email = &email
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("소셜 유저 생성 실패", zap.Error(err))
		return nil, err
	}

	if err := s.repo.SocialAuth.Create(ctx, &model.SocialAuth{
		UserID:         user.ID,
		Provider:       req.Provider,
		ProviderUserID: identity.ProviderUserID,
	}); err != nil {
		return nil, err
	}

	s.ensureDefaultSetting(ctx, user.ID)

	return s.issueTokens(user.ID, true)
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	blacklisted, err := s.rdb.IsRefreshTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted() {
		return nil, ErrUserDeleted
	}

	// 회전: 쓴 리프레시 토큰은 남은 수명 동안 블랙리스트에 올린다
	if err := s.rdb.BlacklistRefreshToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Warn("리프레시 토큰 블랙리스트 등록 실패", zap.Error(err))
	}

	return s.issueTokens(user.ID, false)
}

func (s *authService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	// 만료된 토큰의 로그아웃도 성공으로 처리한다 — 이미 무효이므로 올릴 것이 없다.
	if claims, err := s.jwtMgr.ParseToken(accessToken); err == nil {
		if err := s.rdb.BlacklistAccessToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if claims, err := s.jwtMgr.ParseToken(refreshToken); err == nil {
			if err := s.rdb.BlacklistRefreshToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *authService) issueTokens(userID int64, isNewUser bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtMgr.AccessTokenTTL().Seconds()),
		IsNewUser:    isNewUser,
	}, nil
}

// generateNickname "카페인러버1234" 형태의 닉네임을 생성한다. 충돌 시 재시도.
func (s *authService) generateNickname(ctx context.Context) (string, error) {
	for i := 0; i < 10; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", err
		}
		candidate := fmt.Sprintf("카페인러버%04d", n.Int64())
		exists, err := s.repo.User.ExistsByNickname(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", errors.New("닉네임 생성에 실패했습니다")
}

// ensureDefaultSetting 가입 직후 기본 알림 설정을 만든다.
// 동시 가입 흐름과의 경합으로 이미 있으면 그대로 둔다.
func (s *authService) ensureDefaultSetting(ctx context.Context, userID int64) {
	err := s.repo.NotificationSetting.Create(ctx, model.NewDefaultNotificationSetting(userID))
	if err != nil && !errors.Is(err, repository.ErrDuplicateKey) {
		s.logger.Warn("기본 알림 설정 생성 실패", zap.Int64("user_id", userID), zap.Error(err))
	}
}
