package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// DispatchLogRepository 알림 발송 이력 데이터 접근 인터페이스.
// 이 이력의 (kind, user_id, sent_date) 유니크 제약이 하루 1회 발송의 최종 방어선이다.
type DispatchLogRepository interface {
	// Create 발송 이력 1건 기록. 이미 같은 (kind, user_id, sent_date) 행이 있으면
	// ErrDuplicateKey를 반환한다 — 호출 측은 이를 실패가 아닌 "이미 발송됨"으로 다룬다.
	Create(ctx context.Context, log *model.NotificationDispatchLog) error
	// ListSentUserIDs 주어진 날짜("YYYY-MM-DD")에 해당 종류 알림을 이미 받은 유저 ID 목록
	ListSentUserIDs(ctx context.Context, kind model.NotificationKind, sentDate string, userIDs []int64) ([]int64, error)
}

type dispatchLogRepo struct {
	db *gorm.DB
}

// NewDispatchLogRepo DispatchLogRepository 생성
func NewDispatchLogRepo(db *gorm.DB) DispatchLogRepository {
	return &dispatchLogRepo{db: db}
}

func (r *dispatchLogRepo) Create(ctx context.Context, log *model.NotificationDispatchLog) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(log).Error)
}

func (r *dispatchLogRepo) ListSentUserIDs(ctx context.Context, kind model.NotificationKind, sentDate string, userIDs []int64) ([]int64, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var sent []int64
	err := r.db.WithContext(ctx).
		Model(&model.NotificationDispatchLog{}).
		Where("kind = ? AND sent_date = ? AND user_id IN ?", kind, sentDate, userIDs).
		Pluck("user_id", &sent).Error
	if err != nil {
		return nil, err
	}
	return sent, nil
}
