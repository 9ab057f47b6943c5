package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

// 알림 종류별 발송 문구
const (
	recordRemindTitle = "기록 알림"
	recordRemindBody  = "오늘의 기록을 남겨보세요."
	dailyCloseTitle   = "마감 알림"
	dailyCloseBody    = "오늘의 섭취를 마감해 주세요."
)

// PushSender 푸시 발송 인터페이스. pkg/fcm.Client가 구현한다.
type PushSender interface {
	SendToTokens(ctx context.Context, tokens []string, title, body string) error
}

// NotificationScheduler 분 단위 예약 알림 발송 서비스.
//
// 매 분 호출되어 현재 시각("HH:MM")과 일치하는 알림 설정의 유저에게 푸시를 보낸다.
// 하루 1회 보장은 발송 이력의 (kind, user_id, sent_date) 유니크 제약이 최종적으로
// 책임지며, 사전 이력 조회는 불필요한 발송을 줄이는 1차 필터일 뿐이다.
type NotificationScheduler interface {
	SendScheduledNotifications(ctx context.Context)
}

type notificationScheduler struct {
	repo   *repository.Repository
	push   PushSender
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time // 테스트에서 주입 가능한 시계
}

// NewNotificationScheduler 스케줄러 생성. loc은 트리거 시각 비교의 기준 시간대.
func NewNotificationScheduler(
	repo *repository.Repository,
	push PushSender,
	loc *time.Location,
	logger *zap.Logger,
) NotificationScheduler {
	return &notificationScheduler{
		repo:   repo,
		push:   push,
		logger: logger,
		loc:    loc,
		now:    time.Now,
	}
}

// SendScheduledNotifications 두 종류의 알림을 순서대로 처리한다.
// 한 종류의 패닉/실패가 다른 종류의 발송을 막지 않는다.
func (s *notificationScheduler) SendScheduledNotifications(ctx context.Context) {
	now := s.now().In(s.loc)
	at := now.Format("15:04")
	today := now.Format("2006-01-02")

	s.runKind(ctx, model.KindRecordRemind, at, today)
	s.runKind(ctx, model.KindDailyClose, at, today)
}

func (s *notificationScheduler) runKind(ctx context.Context, kind model.NotificationKind, at, today string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("알림 발송 처리 중 패닉 복구",
				zap.String("kind", string(kind)),
				zap.Any("panic", r))
		}
	}()

	// 1. 트리거 시각이 일치하는 활성 설정의 유저 조회
	candidates, err := s.listCandidates(ctx, kind, at)
	if err != nil {
		s.logger.Error("알림 대상 조회 실패",
			zap.String("kind", string(kind)), zap.Error(err))
		return
	}
	if len(candidates) == 0 {
		return
	}

	// 2. 오늘 이미 발송된 유저 제외
	sent, err := s.repo.DispatchLog.ListSentUserIDs(ctx, kind, today, candidates)
	if err != nil {
		s.logger.Error("발송 이력 조회 실패",
			zap.String("kind", string(kind)), zap.Error(err))
		return
	}
	eligible := subtract(candidates, sent)
	if len(eligible) == 0 {
		return
	}

	// 3. 활성 디바이스 토큰을 유저별로 묶는다 (공백 제거 + 중복 제거)
	tokensByUser, err := s.listTokensByUser(ctx, eligible)
	if err != nil {
		s.logger.Error("디바이스 토큰 조회 실패",
			zap.String("kind", string(kind)), zap.Error(err))
		return
	}

	title, body := messageFor(kind)

	// 4. 유저 단위 발송 → 성공 시 이력 기록. 실패는 해당 유저에만 격리된다.
	//    실패한 유저의 같은 실행 내 재시도는 하지 않는다 — 다음 날 같은 시각에 다시 대상이 된다.
	for _, userID := range eligible {
		tokens := tokensByUser[userID]
		if len(tokens) == 0 {
			// 보낼 곳이 없으면 이력도 남기지 않는다. 토큰 등록 후 내일 다시 대상이 된다.
			continue
		}

		if err := s.push.SendToTokens(ctx, tokens, title, body); err != nil {
			s.logger.Warn("푸시 발송 실패",
				zap.String("kind", string(kind)),
				zap.Int64("user_id", userID),
				zap.Error(err))
			continue
		}

		log := &model.NotificationDispatchLog{
			Kind:     kind,
			UserID:   userID,
			SentDate: today,
		}
		if err := s.repo.DispatchLog.Create(ctx, log); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				// 다른 실행이 먼저 기록을 남긴 경우. 발송은 중복될 수 있으나
				// 이력은 하루 한 행으로 수렴한다.
				s.logger.Info("발송 이력 중복 — 이미 기록됨",
					zap.String("kind", string(kind)),
					zap.Int64("user_id", userID))
				continue
			}
			s.logger.Error("발송 이력 기록 실패",
				zap.String("kind", string(kind)),
				zap.Int64("user_id", userID),
				zap.Error(err))
		}
	}
}

func (s *notificationScheduler) listCandidates(ctx context.Context, kind model.NotificationKind, at string) ([]int64, error) {
	if kind == model.KindRecordRemind {
		return s.repo.NotificationSetting.ListEnabledByRecordRemindAt(ctx, at)
	}
	return s.repo.NotificationSetting.ListEnabledByDailyCloseAt(ctx, at)
}

// listTokensByUser (유저, 토큰) 쌍을 유저별 토큰 목록으로 변환한다.
// 공백 토큰은 버리고, 같은 유저의 중복 토큰은 한 번만 남기며, 결과는 정렬한다.
func (s *notificationScheduler) listTokensByUser(ctx context.Context, userIDs []int64) (map[int64][]string, error) {
	rows, err := s.repo.Device.ListEnabledTokensByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]map[string]struct{})
	for _, row := range rows {
		if strings.TrimSpace(row.FCMToken) == "" {
			continue
		}
		if seen[row.UserID] == nil {
			seen[row.UserID] = make(map[string]struct{})
		}
		seen[row.UserID][row.FCMToken] = struct{}{}
	}

	result := make(map[int64][]string, len(seen))
	for userID, set := range seen {
		tokens := make([]string, 0, len(set))
		for token := range set {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)
		result[userID] = tokens
	}
	return result, nil
}

func messageFor(kind model.NotificationKind) (title, body string) {
	if kind == model.KindRecordRemind {
		return recordRemindTitle, recordRemindBody
	}
	return dailyCloseTitle, dailyCloseBody
}

// subtract a에서 b에 포함된 원소를 제거한다. a의 순서는 유지된다.
func subtract(a, b []int64) []int64 {
	if len(b) == 0 {
		return a
	}
	exclude := make(map[int64]struct{}, len(b))
	for _, id := range b {
		exclude[id] = struct{}{}
	}
	result := make([]int64, 0, len(a))
	for _, id := range a {
		if _, ok := exclude[id]; !ok {
			result = append(result, id)
		}
	}
	return result
}
