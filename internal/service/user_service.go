package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/dto"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

var (
	ErrUserNotFound  = errors.New("유저를 찾을 수 없습니다")
	ErrNicknameTaken = errors.New("이미 사용 중인 닉네임입니다")
)

// ImageUploader 프로필 이미지 업로드 인터페이스. pkg/storage.Client가 구현한다.
type ImageUploader interface {
	Upload(ctx context.Context, dir, filename, contentType string, data []byte) (string, error)
}

// UserService 유저 비즈니스 인터페이스
type UserService interface {
	GetMe(ctx context.Context, userID int64) (*dto.UserResponse, error)
	UpdateNickname(ctx context.Context, userID int64, nickname string) (*dto.UserResponse, error)
	UpdateProfileImage(ctx context.Context, userID int64, filename, contentType string, data []byte) (*dto.UserResponse, error)
	DeleteMe(ctx context.Context, userID int64) error
}

type userService struct {
	repo     *repository.Repository
	uploader ImageUploader
	logger   *zap.Logger
}

// NewUserService UserService 인스턴스 생성
func NewUserService(repo *repository.Repository, uploader ImageUploader, logger *zap.Logger) UserService {
	return &userService{repo: repo, uploader: uploader, logger: logger}
}

func (s *userService) GetMe(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateNickname(ctx context.Context, userID int64, nickname string) (*dto.UserResponse, error) {
	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Nickname != nickname {
		exists, err := s.repo.User.ExistsByNickname(ctx, nickname)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrNicknameTaken
		}
		user.Nickname = nickname
		if err := s.repo.User.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return nil, ErrNicknameTaken
			}
			return nil, err
		}
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfileImage(ctx context.Context, userID int64, filename, contentType string, data []byte) (*dto.UserResponse, error) {
	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, "profiles", filename, contentType, data)
	if err != nil {
		s.logger.Error("프로필 이미지 업로드 실패", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	user.ProfileImageURL = &url
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteMe 소프트 탈퇴. 개인 식별 정보(이메일, 프로필 이미지)와 소셜 연결은 비운다.
// 닉네임은 유니크 제약 때문에 탈퇴 표식을 붙여 반납한다.
func (s *userService) DeleteMe(ctx context.Context, userID int64) error {
	user, err := s.getActiveUser(ctx, userID)
	if err != nil {
		return err
	}

	user.Status = model.UserStatusDeleted
	user.Email = nil
	user.ProfileImageURL = nil
	user.Nickname = "탈퇴회원_" + time.Now().Format("20060102150405")
	if err := s.repo.User.Update(ctx, user); err != nil {
		return err
	}

	if err := s.repo.SocialAuth.DeleteByUserID(ctx, userID); err != nil {
		// 탈퇴 자체는 이미 반영됐으므로 연결 제거 실패는 기록만 한다
		s.logger.Warn("소셜 연결 제거 실패", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

func (s *userService) getActiveUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.IsDeleted() {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:              user.ID,
		Nickname:        user.Nickname,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}
