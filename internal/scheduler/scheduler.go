// Package scheduler 예약 알림 발송의 분 단위 트리거.
// 발송 판단과 멱등성은 service.NotificationScheduler가 책임지고,
// 여기서는 주기 실행과 수명 관리만 한다.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
)

// Scheduler cron 기반 주기 실행기
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New 스케줄러 생성. spec은 cron 표현식(기본 "* * * * *" — 매 분).
func New(
	spec string,
	loc *time.Location,
	svc service.NotificationScheduler,
	logger *zap.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc(spec, func() {
		// 한 틱이 늦어도 다음 틱을 막지 않도록 타임아웃을 건다
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
		defer cancel()
		svc.SendScheduledNotifications(ctx)
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start 주기 실행 시작
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("알림 스케줄러 시작")
}

// Stop 실행 중인 작업이 끝날 때까지 기다린 뒤 멈춘다
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("알림 스케줄러 종료")
}
