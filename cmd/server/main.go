package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/api/handler"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/api/router"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/scheduler"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/service"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/database"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/fcm"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/jwt"
	applogger "github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/logger"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/mail"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/oauth"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/redis"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/pkg/storage"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("애플리케이션 시작 중...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 데이터베이스 연결
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}
	logger.Info("데이터베이스 연결 성공")

	// 3.1 마이그레이션 실행
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("sql.DB 획득 실패", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("마이그레이션 실패", zap.Error(err))
	}

	// 4. Redis 연결 (실패 시 블랙리스트/레이트 리밋만 꺼진 채 기동)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 연결 실패 — 토큰 블랙리스트 기능이 비활성화됩니다", zap.Error(err))
		rdb = nil
	}

	// 5. 외부 연동 초기화
	ctx := context.Background()

	pushClient, err := fcm.NewClient(ctx, &cfg.FCM, logger)
	if err != nil {
		logger.Fatal("FCM 초기화 실패", zap.Error(err))
	}

	uploader, err := storage.NewClient(ctx, &cfg.Storage, logger)
	if err != nil {
		logger.Fatal("S3 초기화 실패", zap.Error(err))
	}

	mailer := mail.NewSender(&cfg.Mail)

	verifiers := map[string]oauth.TokenVerifier{
		model.ProviderGoogle: oauth.NewGoogleVerifier(cfg.Auth.GoogleClientID),
		model.ProviderApple:  oauth.NewAppleVerifier(cfg.Auth.AppleClientID),
	}

	loc, err := time.LoadLocation(cfg.Notification.Timezone)
	if err != nil {
		logger.Fatal("타임존 로드 실패", zap.Error(err))
	}

	// 6. JWT 관리자
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. 의존성 주입: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(service.Deps{
		Config:    cfg,
		Repo:      repo,
		JWT:       jwtMgr,
		Redis:     rdb,
		Verifiers: verifiers,
		Push:      pushClient,
		Mailer:    mailer,
		Uploader:  uploader,
		Location:  loc,
		Logger:    logger,
	})
	h := handler.NewHandler(svc)

	// 8. 알림 스케줄러 시작
	sched, err := scheduler.New(cfg.Notification.CronSpec, loc, svc.Scheduler, logger)
	if err != nil {
		logger.Fatal("스케줄러 초기화 실패", zap.Error(err))
	}
	sched.Start()

	// 9. 라우터 초기화
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 10. HTTP 서버 기동 (우아한 종료)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 시작", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 오류", zap.Error(err))
		}
	}()

	// 11. 종료 신호 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 신호 수신, 우아한 종료 시작...", zap.String("signal", sig.String()))

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("서버 종료 오류", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("종료 완료")
}
